package routegraph

import "github.com/skyplan/skyplan/pkg/airline"

// RouteGraph maps an airport to the flights departing from it, in the
// order they appeared in the source file. Built once per planner run
// and read only afterwards, so concurrent searches can share it.
type RouteGraph map[string][]*airline.Flight

// Build constructs the adjacency mapping from a set of validated
// flights. Validation is the loader's job - Build just files each
// flight under its origin.
func Build(flights []*airline.Flight) RouteGraph {
	graph := RouteGraph{}

	for _, flight := range flights {
		graph[flight.Origin] = append(graph[flight.Origin], flight)
	}

	return graph
}

// DeparturesFrom returns the outbound flights for an airport, or nil if
// the airport has none.
func (graph RouteGraph) DeparturesFrom(airport string) []*airline.Flight {
	return graph[airport]
}
