package dataimporter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/skyplan/skyplan/pkg/dataimporter"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func TestLoadFlightsTxt(t *testing.T) {
	path := writeFile(t, "schedule.txt", "LHR AMS SP100 08:00 09:00 100 200 300\n")

	flights, err := dataimporter.LoadFlights(path)
	require.NoError(t, err)
	require.Len(t, flights, 1)
	require.Equal(t, "SP100", flights[0].FlightNumber)
}

func TestLoadFlightsCsv(t *testing.T) {
	path := writeFile(t, "schedule.csv", "origin,dest,flight_number,depart,arrive,economy,business,first\nLHR,AMS,SP100,08:00,09:00,100,200,300\n")

	flights, err := dataimporter.LoadFlights(path)
	require.NoError(t, err)
	require.Len(t, flights, 1)
	require.Equal(t, "AMS", flights[0].Destination)
}

func TestLoadFlightsMissingFile(t *testing.T) {
	_, err := dataimporter.LoadFlights(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestLoadFlightsErrorIncludesPath(t *testing.T) {
	path := writeFile(t, "schedule.txt", "LHR AMS SP100 09:00 08:00 100 200 300\n")

	_, err := dataimporter.LoadFlights(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "schedule.txt")
}
