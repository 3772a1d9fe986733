package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skyplan/skyplan/pkg/airline"
	"github.com/skyplan/skyplan/pkg/planner"
	"github.com/skyplan/skyplan/pkg/routegraph"
	"github.com/skyplan/skyplan/pkg/util"
)

type comparisonResponse struct {
	Origin            string          `json:"origin"`
	Destination       string          `json:"destination"`
	EarliestDeparture string          `json:"earliest_departure"`
	Rows              []comparisonRow `json:"rows"`
}

type comparisonRow struct {
	Mode      string             `json:"mode"`
	Cabin     string             `json:"cabin,omitempty"`
	Itinerary *itineraryResponse `json:"itinerary"`
	Note      string             `json:"note,omitempty"`
}

type itineraryResponse struct {
	Depart     string         `json:"depart"`
	Arrive     string         `json:"arrive"`
	Stops      int            `json:"stops"`
	TotalPrice int            `json:"total_price,omitempty"`
	Flights    []flightDetail `json:"flights"`
}

type flightDetail struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	FlightNumber string `json:"flight_number"`
	Depart       string `json:"depart"`
	Arrive       string `json:"arrive"`
}

func PlannerRouter(router fiber.Router, graph routegraph.RouteGraph) {
	router.Get("/:origin/:destination", getPlanBetweenAirports(graph))
}

func getPlanBetweenAirports(graph routegraph.RouteGraph) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Params("origin")
		destination := c.Params("destination")

		earliestDeparture, err := util.ParseClock(c.Query("time", "00:00"))
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter time should be a HH:MM clock time",
			})
		}

		comparison, err := planner.Compare(graph, origin, destination, earliestDeparture)
		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		response := comparisonResponse{
			Origin:            comparison.Origin,
			Destination:       comparison.Destination,
			EarliestDeparture: util.FormatClock(comparison.EarliestDeparture),
		}

		for _, row := range comparison.Rows {
			response.Rows = append(response.Rows, comparisonRow{
				Mode:      row.Mode,
				Cabin:     string(row.Cabin),
				Itinerary: itineraryDetail(row.Itinerary, row.Cabin),
				Note:      row.Note,
			})
		}

		return c.JSON(response)
	}
}

func itineraryDetail(itinerary *airline.Itinerary, cabin airline.Cabin) *itineraryResponse {
	if itinerary == nil {
		return nil
	}

	response := &itineraryResponse{
		Stops: itinerary.Stops(),
	}

	// The earliest arrival row has no cabin, so no meaningful price
	if cabin != "" {
		response.TotalPrice = itinerary.TotalPrice(cabin)
	}

	if !itinerary.IsEmpty() {
		response.Depart = util.FormatClock(itinerary.DepartTime())
		response.Arrive = util.FormatClock(itinerary.ArriveTime())
	}

	for _, flight := range itinerary.Flights {
		response.Flights = append(response.Flights, flightDetail{
			Origin:       flight.Origin,
			Destination:  flight.Destination,
			FlightNumber: flight.FlightNumber,
			Depart:       util.FormatClock(flight.Depart),
			Arrive:       util.FormatClock(flight.Arrive),
		})
	}

	return response
}
