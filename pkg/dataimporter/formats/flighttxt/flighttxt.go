package flighttxt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/skyplan/skyplan/pkg/airline"
	"github.com/skyplan/skyplan/pkg/util"
)

// ParseFile reads the whitespace delimited flight schedule format:
//
//	origin dest flight_number depart arrive economy business first
//
// one flight per line, with blank lines and # comments skipped.
func ParseFile(reader io.Reader) ([]*airline.Flight, error) {
	var flights []*airline.Flight

	scanner := bufio.NewScanner(reader)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++

		flight, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		if flight != nil {
			flights = append(flights, flight)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return flights, nil
}

// ParseLine parses a single schedule line. Returns (nil, nil) for blank
// lines and comments.
func ParseLine(line string) (*airline.Flight, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	parts := strings.Fields(line)
	if len(parts) != 8 {
		return nil, fmt.Errorf("malformed flight line, expected 8 fields got %d", len(parts))
	}

	depart, err := util.ParseClock(parts[3])
	if err != nil {
		return nil, err
	}
	arrive, err := util.ParseClock(parts[4])
	if err != nil {
		return nil, err
	}
	if arrive <= depart {
		return nil, fmt.Errorf("arrival %s must be after departure %s", parts[4], parts[3])
	}

	prices := make([]int, 3)
	for i, field := range parts[5:] {
		price, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q", field)
		}
		if price < 0 {
			return nil, fmt.Errorf("negative price %q", field)
		}

		prices[i] = price
	}

	return &airline.Flight{
		Origin:       parts[0],
		Destination:  parts[1],
		FlightNumber: parts[2],

		Depart: depart,
		Arrive: arrive,

		Economy:  prices[0],
		Business: prices[1],
		First:    prices[2],
	}, nil
}
