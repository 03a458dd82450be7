package main

import (
	"os"

	"github.com/df07/go-bvh-raytracer/cmd"
	"github.com/df07/go-bvh-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("main")

// sceneFlags select a built-in scene or a JSON scene file
var sceneFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "default",
		Usage: "built-in scene name (see the scenes command)",
	},
	cli.StringFlag{
		Name:  "scene-file, f",
		Usage: "JSON scene description; takes precedence over --scene",
	},
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "bvh-raytracer"
	app.Usage = "render sphere and triangle scenes with a BVH-accelerated path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, notice, warning or error (-v and -vv take precedence)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a scene and write the image to --out. The output format is chosen
by extension (.png or .ppm). Without --out the image is written to
output/<scene>/render_<timestamp>.png.`,
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width (default: scene setting)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height (default: scene setting)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (default: scene setting)",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum bounce depth (default: scene setting)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "random seed (default: scene setting)",
				},
				cli.Float64Flag{
					Name:  "vfov",
					Usage: "vertical field of view in degrees",
				},
				cli.Float64Flag{
					Name:  "aperture",
					Usage: "lens aperture for depth of field",
				},
				cli.BoolFlag{
					Name:  "flat",
					Usage: "test every shape instead of building a BVH",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame",
				},
			}, sceneFlags...),
			Action: cmd.Render,
		},
		{
			Name:  "scenes",
			Usage: "list built-in scenes and scene files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir",
					Value: "scenes",
					Usage: "directory of JSON scene files",
				},
			},
			Action: cmd.ListScenes,
		},
		{
			Name:   "info",
			Usage:  "print BVH statistics for a scene and host information",
			Flags:  sceneFlags,
			Action: cmd.Info,
		},
		{
			Name:  "serve",
			Usage: "serve renders over HTTP",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to serve on",
				},
				cli.StringFlag{
					Name:  "dir",
					Value: "scenes",
					Usage: "directory of JSON scene files",
				},
			},
			Action: cmd.Serve,
		},
	}

	return app
}

// run executes the app and returns the process exit code. urfave/cli only
// prints ExitCoder errors, so everything else is logged here.
func run(args []string) int {
	if err := newApp().Run(args); err != nil {
		logger.Errorf("%v", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args))
}
