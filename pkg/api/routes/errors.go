package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/irishtransit/pkg/dataaggregator/source"
)

func ErrorHandler(c *fiber.Ctx, err error) error {
	c.Status(StatusCode(err))

	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}

func StatusCode(err error) int {
	var fiberError *fiber.Error

	switch {
	case errors.Is(err, source.InvalidArgumentError):
		return fiber.StatusBadRequest
	case errors.Is(err, source.UpstreamProtocolError), errors.Is(err, source.UpstreamError):
		return fiber.StatusBadGateway
	case errors.As(err, &fiberError):
		return fiberError.Code
	default:
		return fiber.StatusInternalServerError
	}
}
