package flightcsv

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/skyplan/skyplan/pkg/airline"
	"github.com/skyplan/skyplan/pkg/util"
)

type flightRecord struct {
	Origin       string `csv:"origin"`
	Dest         string `csv:"dest"`
	FlightNumber string `csv:"flight_number"`
	Depart       string `csv:"depart"`
	Arrive       string `csv:"arrive"`
	Economy      int    `csv:"economy"`
	Business     int    `csv:"business"`
	First        int    `csv:"first"`
}

// ParseFile reads a flight schedule CSV with the header columns
// origin, dest, flight_number, depart, arrive, economy, business, first.
func ParseFile(reader io.Reader) ([]*airline.Flight, error) {
	var records []*flightRecord

	if err := gocsv.Unmarshal(reader, &records); err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	var flights []*airline.Flight

	for i, record := range records {
		flight, err := record.toFlight()
		if err != nil {
			// gocsv rows are 0 indexed and the header is line 1
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		flights = append(flights, flight)
	}

	return flights, nil
}

func (record *flightRecord) toFlight() (*airline.Flight, error) {
	if record.Origin == "" || record.Dest == "" || record.FlightNumber == "" {
		return nil, fmt.Errorf("missing required columns")
	}

	depart, err := util.ParseClock(record.Depart)
	if err != nil {
		return nil, err
	}
	arrive, err := util.ParseClock(record.Arrive)
	if err != nil {
		return nil, err
	}
	if arrive <= depart {
		return nil, fmt.Errorf("arrival %s must be after departure %s", record.Arrive, record.Depart)
	}

	if record.Economy < 0 || record.Business < 0 || record.First < 0 {
		return nil, fmt.Errorf("negative price for flight %s", record.FlightNumber)
	}

	return &airline.Flight{
		Origin:       record.Origin,
		Destination:  record.Dest,
		FlightNumber: record.FlightNumber,

		Depart: depart,
		Arrive: arrive,

		Economy:  record.Economy,
		Business: record.Business,
		First:    record.First,
	}, nil
}
