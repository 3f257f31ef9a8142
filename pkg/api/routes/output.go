package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/irishtransit/pkg/dataaggregator/source"
	"github.com/travigo/irishtransit/pkg/filter"
	"github.com/travigo/irishtransit/pkg/transit"
)

var detailGroups = map[string][]string{
	"basic":    {"basic"},
	"detailed": {"basic", "detailed"},
	"full":     {"basic", "detailed", "internal"},
}

// reservedQueryParameters are never treated as field constraints
var reservedQueryParameters = []string{"format", "where", "detail"}

func sendResult[T any](c *fiber.Ctx, result *transit.Result[T]) error {
	if result.Features != nil {
		return c.JSON(result.Features)
	}

	groups, ok := detailGroups[c.Query("detail", "basic")]
	if !ok {
		return fmt.Errorf("%w: detail must be one of basic, detailed or full", source.InvalidArgumentError)
	}

	recordsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, result.Records)
	if err != nil {
		return fmt.Errorf("sheriff could not reduce records: %w", err)
	}

	return c.JSON(recordsReduced)
}

func queryFields(c *fiber.Ctx) filter.Fields {
	fields := filter.Fields{}

	for key, value := range c.Queries() {
		fields[key] = value
	}

	for _, key := range reservedQueryParameters {
		delete(fields, key)
	}

	return fields
}
