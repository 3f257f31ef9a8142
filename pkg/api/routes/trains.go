package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/irishtransit/pkg/gtfsrt"
	"github.com/travigo/irishtransit/pkg/transit"
)

const formatGTFSRT = "gtfsrt"

func TrainsRouter(router fiber.Router, client *transit.Client) {
	router.Get("/", listTrains(client))
	router.Get("/:code/movements", listTrainMovements(client))
}

func listTrains(client *transit.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		format := c.Query("format")

		options := transit.TrainsOptions{
			Status: c.Query("status"),
			Code:   c.Query("code"),
			Format: transit.Format(format),
			Where:  c.Query("where"),
		}
		if format == formatGTFSRT {
			options.Format = transit.FormatRaw
		}

		result, err := client.ListTrains(c.UserContext(), options)
		if err != nil {
			return err
		}

		if format == formatGTFSRT {
			feed, err := gtfsrt.Marshal(gtfsrt.VehiclePositionsFeed(result.Records, time.Now()))
			if err != nil {
				return err
			}

			c.Set(fiber.HeaderContentType, "application/x-protobuf")
			return c.Send(feed)
		}

		return sendResult(c, result)
	}
}

func listTrainMovements(client *transit.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := client.ListTrainMovements(c.UserContext(), transit.TrainMovementsOptions{
			Code: c.Params("code"),
			Date: c.Query("date"),
		})
		if err != nil {
			return err
		}

		return sendResult(c, result)
	}
}
