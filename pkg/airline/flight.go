package airline

import "fmt"

// Cabin identifies one of the fare classes a Flight can be booked in.
type Cabin string

const (
	CabinEconomy  Cabin = "economy"
	CabinBusiness Cabin = "business"
	CabinFirst    Cabin = "first"
)

// Cabins lists every fare class in display order.
func Cabins() []Cabin {
	return []Cabin{CabinEconomy, CabinBusiness, CabinFirst}
}

// ParseCabin converts a user supplied cabin name into a Cabin.
func ParseCabin(value string) (Cabin, error) {
	switch Cabin(value) {
	case CabinEconomy, CabinBusiness, CabinFirst:
		return Cabin(value), nil
	}

	return "", fmt.Errorf("unknown cabin %q", value)
}

// Flight is a single scheduled leg between two airports.
// Departure & arrival times are minutes since midnight - flights never
// cross a day boundary so Arrive is always greater than Depart.
type Flight struct {
	Origin       string
	Destination  string
	FlightNumber string

	Depart int
	Arrive int

	Economy  int
	Business int
	First    int
}

// PriceFor returns the price of this leg in the given cabin.
func (f *Flight) PriceFor(cabin Cabin) int {
	switch cabin {
	case CabinBusiness:
		return f.Business
	case CabinFirst:
		return f.First
	default:
		return f.Economy
	}
}
