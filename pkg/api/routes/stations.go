package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/irishtransit/pkg/transit"
)

func StationsRouter(router fiber.Router, client *transit.Client) {
	router.Get("/", listStations(client))
}

func listStations(client *transit.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := client.ListStations(c.UserContext(), transit.StationsOptions{
			Type:   c.Query("type"),
			Format: transit.Format(c.Query("format")),
		})
		if err != nil {
			return err
		}

		return sendResult(c, result)
	}
}
