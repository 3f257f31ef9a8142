package rtpi

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/irishtransit/pkg/ctdf"
	"github.com/travigo/irishtransit/pkg/dataaggregator/query"
	"github.com/travigo/irishtransit/pkg/dataaggregator/source"
)

func (s Source) BusStopsQuery(ctx context.Context, q query.BusStops) ([]*ctdf.BusStop, error) {
	var busStopsResponse response[BusStopRecord]

	if err := s.Transport.FetchJSON(ctx, s.Endpoint, "busstopinformation", nil, &busStopsResponse); err != nil {
		return nil, err
	}

	if busStopsResponse.Results == nil {
		return nil, fmt.Errorf("%w: bus stop information response has no results", source.UpstreamProtocolError)
	}

	datasource := ctdf.NewDataSource(originalFormat, providerName, "busstopinformation", time.Now())

	busStops := make([]*ctdf.BusStop, 0, len(*busStopsResponse.Results))
	for _, record := range *busStopsResponse.Results {
		busStop := BusStopFromRaw(record)
		busStop.DataSource = datasource

		busStops = append(busStops, busStop)
	}

	log.Debug().Int("count", len(busStops)).Msg("Retrieved RTPI bus stops")

	return busStops, nil
}
