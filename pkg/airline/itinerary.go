package airline

// Itinerary is an ordered chain of flights forming one journey - each
// flight departs from the previous flight's destination. A zero flight
// itinerary represents the degenerate origin == destination case, which
// is distinct from no itinerary existing at all (a nil *Itinerary).
type Itinerary struct {
	Flights []*Flight
}

func (itinerary *Itinerary) IsEmpty() bool {
	return len(itinerary.Flights) == 0
}

// Origin returns the departure airport of the first leg.
func (itinerary *Itinerary) Origin() string {
	if len(itinerary.Flights) == 0 {
		return ""
	}

	return itinerary.Flights[0].Origin
}

// Destination returns the arrival airport of the last leg.
func (itinerary *Itinerary) Destination() string {
	if len(itinerary.Flights) == 0 {
		return ""
	}

	return itinerary.Flights[len(itinerary.Flights)-1].Destination
}

// DepartTime returns the departure time of the first leg in minutes
// since midnight, or -1 for a zero leg itinerary.
func (itinerary *Itinerary) DepartTime() int {
	if len(itinerary.Flights) == 0 {
		return -1
	}

	return itinerary.Flights[0].Depart
}

// ArriveTime returns the arrival time of the last leg in minutes since
// midnight, or -1 for a zero leg itinerary.
func (itinerary *Itinerary) ArriveTime() int {
	if len(itinerary.Flights) == 0 {
		return -1
	}

	return itinerary.Flights[len(itinerary.Flights)-1].Arrive
}

// TotalPrice sums the per leg price of the given cabin over the whole journey.
func (itinerary *Itinerary) TotalPrice(cabin Cabin) int {
	total := 0
	for _, flight := range itinerary.Flights {
		total += flight.PriceFor(cabin)
	}

	return total
}

// Stops returns the number of intermediate stops on the journey.
func (itinerary *Itinerary) Stops() int {
	if len(itinerary.Flights) == 0 {
		return 0
	}

	return len(itinerary.Flights) - 1
}
