package api

import (
	"github.com/rs/zerolog/log"
	"github.com/skyplan/skyplan/pkg/dataimporter"
	"github.com/skyplan/skyplan/pkg/routegraph"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the planner web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
					&cli.StringFlag{
						Name:     "file",
						Usage:    "Flight schedule file (.txt or .csv)",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					flights, err := dataimporter.LoadFlights(c.String("file"))
					if err != nil {
						return err
					}

					log.Info().Int("flights", len(flights)).Msg("Loaded flight schedule")

					graph := routegraph.Build(flights)

					return SetupServer(c.String("listen"), graph)
				},
			},
		},
	}
}
