package routes_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/skyplan/skyplan/pkg/airline"
	"github.com/skyplan/skyplan/pkg/api/routes"
	"github.com/skyplan/skyplan/pkg/routegraph"
	"github.com/stretchr/testify/require"
)

func testApp() *fiber.App {
	graph := routegraph.Build([]*airline.Flight{
		{Origin: "LHR", Destination: "AMS", FlightNumber: "SP100", Depart: 8 * 60, Arrive: 9 * 60, Economy: 100, Business: 200, First: 300},
		{Origin: "AMS", Destination: "FRA", FlightNumber: "SP200", Depart: 10 * 60, Arrive: 11 * 60, Economy: 50, Business: 80, First: 120},
	})

	app := fiber.New()
	routes.PlannerRouter(app.Group("/planner"), graph)

	return app
}

func TestGetPlanBetweenAirports(t *testing.T) {
	app := testApp()

	response, err := app.Test(httptest.NewRequest("GET", "/planner/LHR/FRA?time=07:00", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, response.StatusCode)

	var body struct {
		Origin            string `json:"origin"`
		Destination       string `json:"destination"`
		EarliestDeparture string `json:"earliest_departure"`
		Rows              []struct {
			Mode      string `json:"mode"`
			Cabin     string `json:"cabin"`
			Note      string `json:"note"`
			Itinerary *struct {
				Depart     string `json:"depart"`
				Arrive     string `json:"arrive"`
				Stops      int    `json:"stops"`
				TotalPrice int    `json:"total_price"`
			} `json:"itinerary"`
		} `json:"rows"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))

	require.Equal(t, "LHR", body.Origin)
	require.Equal(t, "FRA", body.Destination)
	require.Equal(t, "07:00", body.EarliestDeparture)
	require.Len(t, body.Rows, 4)

	require.Equal(t, "Earliest arrival", body.Rows[0].Mode)
	require.NotNil(t, body.Rows[0].Itinerary)
	require.Equal(t, "11:00", body.Rows[0].Itinerary.Arrive)

	require.Equal(t, "economy", body.Rows[1].Cabin)
	require.NotNil(t, body.Rows[1].Itinerary)
	require.Equal(t, 150, body.Rows[1].Itinerary.TotalPrice)
}

func TestGetPlanNoItinerary(t *testing.T) {
	app := testApp()

	response, err := app.Test(httptest.NewRequest("GET", "/planner/LHR/ZZZ?time=07:00", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, response.StatusCode)

	var body struct {
		Rows []struct {
			Note      string          `json:"note"`
			Itinerary json.RawMessage `json:"itinerary"`
		} `json:"rows"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	require.Len(t, body.Rows, 4)

	for _, row := range body.Rows {
		require.Equal(t, "null", string(row.Itinerary))
	}
	require.Equal(t, "no valid itinerary", body.Rows[1].Note)
}

func TestGetPlanBadTime(t *testing.T) {
	app := testApp()

	response, err := app.Test(httptest.NewRequest("GET", "/planner/LHR/FRA?time=notatime", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, response.StatusCode)
}
