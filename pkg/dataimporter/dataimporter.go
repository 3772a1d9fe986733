package dataimporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/skyplan/skyplan/pkg/airline"
	"github.com/skyplan/skyplan/pkg/dataimporter/formats/flightcsv"
	"github.com/skyplan/skyplan/pkg/dataimporter/formats/flighttxt"
)

// LoadFlights reads a flight schedule file, choosing the parser from
// the file extension - .csv for the CSV format, anything else is
// treated as the whitespace delimited text format.
func LoadFlights(path string) ([]*airline.Flight, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var flights []*airline.Flight

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		flights, err = flightcsv.ParseFile(file)
	} else {
		flights, err = flighttxt.ParseFile(file)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().Str("file", path).Int("flights", len(flights)).Msg("Loaded flight schedule")

	return flights, nil
}
