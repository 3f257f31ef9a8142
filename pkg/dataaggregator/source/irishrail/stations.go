package irishrail

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/irishtransit/pkg/ctdf"
	"github.com/travigo/irishtransit/pkg/dataaggregator/query"
	"github.com/travigo/irishtransit/pkg/dataaggregator/source"
)

func (s Source) StationsQuery(ctx context.Context, q query.Stations) ([]*ctdf.Station, error) {
	path := "getAllStationsXML"
	if q.StationType != "" {
		path = "getAllStationsXML_WithStationType"
	}

	var response stationsResponse

	if err := s.Transport.FetchXML(ctx, s.Endpoint, path, q.ToQueryParams(), &response); err != nil {
		return nil, err
	}

	if response.XMLName.Local != "ArrayOfObjStation" {
		return nil, fmt.Errorf("%w: expected ArrayOfObjStation but got %s", source.UpstreamProtocolError, response.XMLName.Local)
	}

	datasource := ctdf.NewDataSource(originalFormat, providerName, path, time.Now())

	stations := make([]*ctdf.Station, 0, len(response.Stations))
	for _, record := range response.Stations {
		station := StationFromRaw(record)
		station.DataSource = datasource

		stations = append(stations, station)
	}

	log.Debug().Int("count", len(stations)).Msg("Retrieved Irish Rail stations")

	return stations, nil
}
