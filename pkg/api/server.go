package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/travigo/irishtransit/pkg/api/routes"
	"github.com/travigo/irishtransit/pkg/transit"
	"github.com/travigo/irishtransit/pkg/transport"
)

func NewApp(client *transit.Client, metrics *transport.Metrics) (*fiber.App, error) {
	requestMetrics, err := NewRequestMetrics(metrics)
	if err != nil {
		return nil, err
	}

	webApp := fiber.New(fiber.Config{
		ErrorHandler: routes.ErrorHandler,
	})
	webApp.Use(requestMetrics.Handler())
	webApp.Use(NewLogger())

	webApp.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.TrainsRouter(group.Group("/trains"), client)
	routes.StationsRouter(group.Group("/stations"), client)
	routes.BusStopsRouter(group.Group("/bus_stops"), client)
	routes.OperatorsRouter(group.Group("/operators"), client)
	routes.OverviewRouter(group.Group("/overview"), client)

	return webApp, nil
}

func SetupServer(listen string, client *transit.Client, metrics *transport.Metrics) error {
	webApp, err := NewApp(client, metrics)
	if err != nil {
		return err
	}

	return webApp.Listen(listen)
}
