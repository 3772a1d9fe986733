package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skyplan/skyplan/pkg/api/routes"
	"github.com/skyplan/skyplan/pkg/routegraph"
)

func SetupServer(listen string, graph routegraph.RouteGraph) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.PlannerRouter(group.Group("/planner"), graph)

	return webApp.Listen(listen)
}
