package transit

import (
	"context"

	"github.com/travigo/irishtransit/pkg/ctdf"
	"github.com/travigo/irishtransit/pkg/dataaggregator"
	"github.com/travigo/irishtransit/pkg/dataaggregator/query"
)

func (c *Client) ListStations(ctx context.Context, options StationsOptions) (*Result[*ctdf.Station], error) {
	if err := validateStationType(options.Type); err != nil {
		return nil, err
	}

	format, err := parseFormat(options.Format)
	if err != nil {
		return nil, err
	}

	stations, err := dataaggregator.Lookup[[]*ctdf.Station](ctx, c.Aggregator, query.Stations{
		StationType: options.Type,
	})
	if err != nil {
		return nil, err
	}

	return newLocatableResult(stations, format), nil
}
