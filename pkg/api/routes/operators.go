package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/irishtransit/pkg/transit"
)

func OperatorsRouter(router fiber.Router, client *transit.Client) {
	router.Get("/", listOperators(client))
}

func listOperators(client *transit.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := client.ListOperators(c.UserContext(), transit.OperatorsOptions{
			Fields: queryFields(c),
			Where:  c.Query("where"),
		})
		if err != nil {
			return err
		}

		return sendResult(c, result)
	}
}
