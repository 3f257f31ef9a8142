package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/irishtransit/pkg/transit"
)

func BusStopsRouter(router fiber.Router, client *transit.Client) {
	router.Get("/", listBusStops(client))
}

// listBusStops treats every query parameter other than format, where and detail as a
// path=value constraint, eg. /core/bus_stops?name.short=Parnell%20Square
func listBusStops(client *transit.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := client.ListBusStops(c.UserContext(), transit.BusStopsOptions{
			Fields: queryFields(c),
			Format: transit.Format(c.Query("format")),
			Where:  c.Query("where"),
		})
		if err != nil {
			return err
		}

		return sendResult(c, result)
	}
}
