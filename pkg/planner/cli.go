package planner

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/skyplan/skyplan/pkg/dataimporter"
	"github.com/skyplan/skyplan/pkg/report"
	"github.com/skyplan/skyplan/pkg/routegraph"
	"github.com/skyplan/skyplan/pkg/util"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "planner",
		Usage: "Plan & compare flight itineraries",
		Subcommands: []*cli.Command{
			{
				Name:  "compare",
				Usage: "Compare earliest arrival against the cheapest fare in each cabin",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "Flight schedule file (.txt or .csv)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "origin",
						Usage:    "Origin airport code",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "destination",
						Usage:    "Destination airport code",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "departure-time",
						Usage:    "Earliest departure time (HH:MM)",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					earliestDeparture, err := util.ParseClock(c.String("departure-time"))
					if err != nil {
						return err
					}

					flights, err := dataimporter.LoadFlights(c.String("file"))
					if err != nil {
						return err
					}

					log.Info().
						Str("origin", c.String("origin")).
						Str("destination", c.String("destination")).
						Int("flights", len(flights)).
						Msg("Comparing itineraries")

					graph := routegraph.Build(flights)

					comparison, err := Compare(graph, c.String("origin"), c.String("destination"), earliestDeparture)
					if err != nil {
						return err
					}

					fmt.Println(report.Render(comparison))

					return nil
				},
			},
			{
				Name:  "cabins",
				Usage: "List the supported cabin classes",
				Action: func(c *cli.Context) error {
					fmt.Println(strings.Join(CabinNames(), "\n"))

					return nil
				},
			},
		},
	}
}
