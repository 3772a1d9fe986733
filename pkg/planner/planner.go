package planner

import (
	"errors"

	"github.com/skyplan/skyplan/pkg/airline"
	"github.com/skyplan/skyplan/pkg/routegraph"
)

// MinLayoverMinutes is the minimum connection time between an arrival
// and the next departure at the same airport. It is a fixed policy of
// the planner, not a tuning knob.
const MinLayoverMinutes = 60

// ErrInconsistentState reports that a search relaxed the destination
// but the predecessor chain back to the origin was broken. That can
// only happen through a bookkeeping defect in the search itself, so it
// is surfaced as an error rather than treated as "no itinerary".
var ErrInconsistentState = errors.New("planner: predecessor chain does not reach the origin")

// minDeparture returns the earliest departure an outbound flight from
// airport may have: the requested earliest departure while still at the
// origin, otherwise the arrival time plus the layover floor.
func minDeparture(airport string, start string, arrive int, earliestDeparture int) int {
	if airport == start {
		return earliestDeparture
	}

	return arrive + MinLayoverMinutes
}

// FindEarliestItinerary finds the itinerary from start to destination
// arriving as early as possible, departing no earlier than
// earliestDeparture. Returns nil when no feasible itinerary exists.
//
// Label-setting search keyed on arrival time. Arrival times only ever
// improve and every edge moves forward in time, so the first time the
// destination is popped its label is final and the loop can stop.
func FindEarliestItinerary(graph routegraph.RouteGraph, start string, destination string, earliestDeparture int) *airline.Itinerary {
	queue := &searchQueue{}
	queue.enqueue(queueItem{Priority: earliestDeparture, Arrive: earliestDeparture, Airport: start})

	bestArrival := map[string]int{start: earliestDeparture}
	previous := map[string]*airline.Flight{}

	for {
		item, ok := queue.dequeue()
		if !ok {
			break
		}

		if item.Airport == destination {
			break
		}

		for _, flight := range graph.DeparturesFrom(item.Airport) {
			if flight.Depart < minDeparture(item.Airport, start, item.Arrive, earliestDeparture) {
				continue
			}

			known, seen := bestArrival[flight.Destination]
			if !seen || flight.Arrive < known {
				bestArrival[flight.Destination] = flight.Arrive
				previous[flight.Destination] = flight

				queue.enqueue(queueItem{Priority: flight.Arrive, Arrive: flight.Arrive, Airport: flight.Destination})
			}
		}
	}

	if start == destination {
		return &airline.Itinerary{}
	}

	if previous[destination] == nil {
		return nil
	}

	flights, ok := walkBack(previous, start, destination)
	if !ok {
		return nil
	}

	return &airline.Itinerary{Flights: flights}
}

// FindCheapestItinerary finds the itinerary from start to destination
// with the lowest total price in the given cabin, departing no earlier
// than earliestDeparture. Returns (nil, nil) when no feasible itinerary
// exists.
//
// Same structure as FindEarliestItinerary but keyed on cumulative
// price, with arrival time carried alongside purely to gate each
// airport's outbound connections. Prices are non-negative so cost never
// decreases along a path and the early exit on popping the destination
// still holds.
func FindCheapestItinerary(graph routegraph.RouteGraph, start string, destination string, earliestDeparture int, cabin airline.Cabin) (*airline.Itinerary, error) {
	if start == destination {
		return &airline.Itinerary{}, nil
	}

	queue := &searchQueue{}
	queue.enqueue(queueItem{Priority: 0, Arrive: earliestDeparture, Airport: start})

	bestCost := map[string]int{start: 0}
	previous := map[string]*airline.Flight{}

	for {
		item, ok := queue.dequeue()
		if !ok {
			break
		}

		if item.Airport == destination {
			break
		}

		for _, flight := range graph.DeparturesFrom(item.Airport) {
			if flight.Depart < minDeparture(item.Airport, start, item.Arrive, earliestDeparture) {
				continue
			}

			cost := item.Priority + flight.PriceFor(cabin)

			known, seen := bestCost[flight.Destination]
			if !seen || cost < known {
				bestCost[flight.Destination] = cost
				previous[flight.Destination] = flight

				queue.enqueue(queueItem{Priority: cost, Arrive: flight.Arrive, Airport: flight.Destination})
			}
		}
	}

	if previous[destination] == nil {
		return nil, nil
	}

	flights, ok := walkBack(previous, start, destination)
	if !ok {
		// Destination was relaxed, so the chain back to the origin must
		// exist. Hitting this means the label bookkeeping is broken.
		return nil, ErrInconsistentState
	}

	return &airline.Itinerary{Flights: flights}, nil
}

// walkBack follows predecessor links from destination to start and
// returns the flights in forward order. ok is false if the chain breaks
// before reaching the origin.
func walkBack(previous map[string]*airline.Flight, start string, destination string) ([]*airline.Flight, bool) {
	var flights []*airline.Flight

	current := destination
	for current != start {
		flight := previous[current]
		if flight == nil {
			return nil, false
		}

		flights = append(flights, flight)
		current = flight.Origin
	}

	for i, j := 0, len(flights)-1; i < j; i, j = i+1, j-1 {
		flights[i], flights[j] = flights[j], flights[i]
	}

	return flights, true
}
