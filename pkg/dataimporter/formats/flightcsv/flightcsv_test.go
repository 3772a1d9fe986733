package flightcsv_test

import (
	"strings"
	"testing"

	"github.com/skyplan/skyplan/pkg/dataimporter/formats/flightcsv"
	"github.com/stretchr/testify/require"
)

func TestParseFile(t *testing.T) {
	input := `origin,dest,flight_number,depart,arrive,economy,business,first
LHR,AMS,SP100,08:00,09:00,100,200,300
AMS,FRA,SP200,10:00,11:00,50,80,120
`

	flights, err := flightcsv.ParseFile(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, flights, 2)

	require.Equal(t, "AMS", flights[1].Origin)
	require.Equal(t, "FRA", flights[1].Destination)
	require.Equal(t, 10*60, flights[1].Depart)
	require.Equal(t, 11*60, flights[1].Arrive)
	require.Equal(t, 50, flights[1].Economy)
}

func TestParseFileRejectsBadRows(t *testing.T) {
	inputs := map[string]string{
		"arrival before departure": "origin,dest,flight_number,depart,arrive,economy,business,first\nLHR,AMS,SP100,09:00,08:00,100,200,300\n",
		"bad time":                 "origin,dest,flight_number,depart,arrive,economy,business,first\nLHR,AMS,SP100,0800,0900,100,200,300\n",
		"negative price":           "origin,dest,flight_number,depart,arrive,economy,business,first\nLHR,AMS,SP100,08:00,09:00,-5,200,300\n",
		"missing columns":          "origin,dest\nLHR,AMS\n",
	}

	for name, input := range inputs {
		_, err := flightcsv.ParseFile(strings.NewReader(input))
		require.Error(t, err, "expected %s to be rejected", name)
	}
}
