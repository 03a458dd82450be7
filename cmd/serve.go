package cmd

import (
	"github.com/df07/go-bvh-raytracer/web/server"
	"github.com/urfave/cli"
)

// Serve starts the HTTP render server.
func Serve(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	srv := server.NewServer(ctx.Int("port"), ctx.String("dir"))
	return srv.Start()
}
