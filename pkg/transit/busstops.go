package transit

import (
	"context"

	"github.com/travigo/irishtransit/pkg/ctdf"
	"github.com/travigo/irishtransit/pkg/dataaggregator"
	"github.com/travigo/irishtransit/pkg/dataaggregator/query"
	"github.com/travigo/irishtransit/pkg/filter"
)

// ListBusStops returns every bus stop, or when options.Fields is set only the first stop
// matching it (so a list of zero or one) even if several stops would match.
func (c *Client) ListBusStops(ctx context.Context, options BusStopsOptions) (*Result[*ctdf.BusStop], error) {
	format, err := parseFormat(options.Format)
	if err != nil {
		return nil, err
	}

	where, err := compileWhere(options.Where)
	if err != nil {
		return nil, err
	}

	busStops, err := dataaggregator.Lookup[[]*ctdf.BusStop](ctx, c.Aggregator, query.BusStops{})
	if err != nil {
		return nil, err
	}

	busStops = applyWhere(busStops, where)

	if len(options.Fields) > 0 {
		busStops = findOne(busStops, options.Fields)
	}

	return newLocatableResult(busStops, format), nil
}

func findOne[T any](records []T, fields filter.Fields) []T {
	match, found := filter.FindOne(records, fields)
	if !found {
		return []T{}
	}

	return []T{match}
}
