package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/irishtransit/pkg/transit"
)

func OverviewRouter(router fiber.Router, client *transit.Client) {
	router.Get("/", getOverview(client))
}

func getOverview(client *transit.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		overview, err := client.Overview(c.UserContext())
		if err != nil {
			return err
		}

		return c.JSON(overview)
	}
}
