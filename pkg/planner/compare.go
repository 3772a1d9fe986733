package planner

import (
	"fmt"
	"strings"

	"github.com/skyplan/skyplan/pkg/airline"
	"github.com/skyplan/skyplan/pkg/routegraph"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/exp/slices"
)

// Compare runs the full planner comparison between two airports: one
// earliest arrival search plus one cheapest fare search per cabin. The
// graph is read only, so the four searches run concurrently with no
// shared state beyond it.
func Compare(graph routegraph.RouteGraph, origin string, destination string, earliestDeparture int) (*airline.Comparison, error) {
	cabins := airline.Cabins()
	rows := make([]airline.ComparisonRow, 1+len(cabins))

	p := pool.New().WithErrors()

	p.Go(func() error {
		rows[0] = airline.ComparisonRow{
			Mode:      "Earliest arrival",
			Itinerary: FindEarliestItinerary(graph, origin, destination, earliestDeparture),
		}

		return nil
	})

	for i, cabin := range cabins {
		p.Go(func() error {
			itinerary, err := FindCheapestItinerary(graph, origin, destination, earliestDeparture, cabin)
			if err != nil {
				return err
			}

			note := ""
			if itinerary == nil {
				note = "no valid itinerary"
			}

			rows[i+1] = airline.ComparisonRow{
				Mode:      fmt.Sprintf("Cheapest (%s)", titleCase(string(cabin))),
				Cabin:     cabin,
				Itinerary: itinerary,
				Note:      note,
			}

			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	return &airline.Comparison{
		Origin:            origin,
		Destination:       destination,
		EarliestDeparture: earliestDeparture,
		Rows:              rows,
	}, nil
}

// CabinNames lists the accepted cabin values for CLI help text.
func CabinNames() []string {
	cabins := airline.Cabins()

	names := make([]string, len(cabins))
	for i, cabin := range cabins {
		names[i] = string(cabin)
	}
	slices.Sort(names)

	return names
}

func titleCase(value string) string {
	if value == "" {
		return value
	}

	return strings.ToUpper(value[:1]) + value[1:]
}
