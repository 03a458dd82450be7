package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"github.com/df07/go-bvh-raytracer/pkg/imageio"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
	"github.com/df07/go-bvh-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func Render(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, err := loadAndBuild(ctx.String("scene"), ctx.String("scene-file"), overridesFromFlags(ctx), !ctx.Bool("flat"))
	if err != nil {
		return err
	}

	rt, err := sc.NewRaytracer()
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if out == "" {
		out = defaultOutputPath(sc.Name, time.Now())
	}
	// Fail on a bad extension before spending time on the frame
	if _, err := imageio.EncoderFor(out); err != nil {
		return err
	}

	config := rt.Config()
	logger.Noticef("rendering %q at %dx%d, %d spp, max depth %d",
		sc.Name, config.Width, config.Height, config.SamplesPerPixel, config.MaxDepth)

	fb, stats := rt.Render()

	if err := imageio.WriteFile(out, fb); err != nil {
		return err
	}

	displayRenderStats(sc, stats, out)
	return nil
}

func overridesFromFlags(ctx *cli.Context) scene.Overrides {
	overrides := scene.Overrides{
		Width:    ctx.Int("width"),
		Height:   ctx.Int("height"),
		Samples:  ctx.Int("spp"),
		MaxDepth: ctx.Int("depth"),
		VFov:     ctx.Float64("vfov"),
		Aperture: ctx.Float64("aperture"),
	}
	if ctx.IsSet("seed") {
		seed := ctx.Int64("seed")
		overrides.Seed = &seed
	}
	return overrides
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.png
func defaultOutputPath(sceneName string, now time.Time) string {
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

func displayRenderStats(sc *scene.Scene, stats renderer.RenderStats, out string) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Shapes", "Pixels", "Samples", "Samples/sec", "Render time"})
	table.Append([]string{
		sc.Name,
		fmt.Sprintf("%d", len(sc.Shapes)),
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
		stats.Elapsed.Round(time.Millisecond).String(),
	})
	table.SetFooter([]string{"", "", "", "", "OUTPUT", out})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
