package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/skyplan/skyplan/pkg/airline"
	"github.com/skyplan/skyplan/pkg/util"
)

// Render formats a planner comparison as a plain text table for the
// terminal. Rows without an itinerary render as N/A.
func Render(comparison *airline.Comparison) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Comparison for %s -> %s (departing from %s)\n",
		comparison.Origin, comparison.Destination, util.FormatClock(comparison.EarliestDeparture))

	writer := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "Mode\tCabin\tDep\tArr\tStops\tTotal Price\tNotes")

	for _, row := range comparison.Rows {
		fmt.Fprintln(writer, formatRow(row))
	}

	writer.Flush()

	return builder.String()
}

func formatRow(row airline.ComparisonRow) string {
	depart := "N/A"
	arrive := "N/A"
	stops := "N/A"
	price := "N/A"

	if row.Itinerary != nil {
		// A zero leg itinerary (origin == destination) has no times to show
		if row.Itinerary.IsEmpty() {
			depart = "-"
			arrive = "-"
		} else {
			depart = util.FormatClock(row.Itinerary.DepartTime())
			arrive = util.FormatClock(row.Itinerary.ArriveTime())
		}
		stops = fmt.Sprintf("%d", row.Itinerary.Stops())

		if row.Cabin == "" {
			price = ""
		} else {
			price = fmt.Sprintf("%d", row.Itinerary.TotalPrice(row.Cabin))
		}
	}

	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s\t%s", row.Mode, row.Cabin, depart, arrive, stops, price, row.Note)
}
