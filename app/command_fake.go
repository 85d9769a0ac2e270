package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"sharthi/fakeapi"
)

func (a *application) fakeCommand() *cli.Command {
	return &cli.Command{
		Name:  "fake",
		Usage: "local stand-in for the backend",
		Subcommands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the in-memory backend, for demos and development",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Value: ":8090"},
				},
				Action: a.runFakeServe,
			},
		},
	}
}

func (a *application) runFakeServe(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return fakeapi.NewServer().Run(ctx, c.String("addr"))
}
