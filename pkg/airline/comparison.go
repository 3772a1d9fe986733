package airline

// ComparisonRow is one row of a planner comparison - either the
// earliest arrival result (Cabin empty) or the cheapest fare result for
// a single cabin. Itinerary is nil when no valid itinerary exists.
type ComparisonRow struct {
	Mode      string
	Cabin     Cabin
	Itinerary *Itinerary
	Note      string
}

// Comparison is the full result of one planner run between two airports.
type Comparison struct {
	Origin            string
	Destination       string
	EarliestDeparture int

	Rows []ComparisonRow
}
