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

func (s Source) TrainPositionsQuery(ctx context.Context, q query.TrainPositions) ([]*ctdf.TrainPosition, error) {
	var response trainPositionsResponse

	if err := s.Transport.FetchXML(ctx, s.Endpoint, "getCurrentTrainsXML", nil, &response); err != nil {
		return nil, err
	}

	if response.XMLName.Local != "ArrayOfObjTrainPositions" {
		return nil, fmt.Errorf("%w: expected ArrayOfObjTrainPositions but got %s", source.UpstreamProtocolError, response.XMLName.Local)
	}

	searchTime := time.Now()
	datasource := ctdf.NewDataSource(originalFormat, providerName, "getCurrentTrainsXML", searchTime)

	trainPositions := make([]*ctdf.TrainPosition, 0, len(response.TrainPositions))
	for _, record := range response.TrainPositions {
		trainPosition := TrainPositionFromRaw(record, searchTime)
		trainPosition.DataSource = datasource

		trainPositions = append(trainPositions, trainPosition)
	}

	log.Debug().Int("count", len(trainPositions)).Msg("Retrieved Irish Rail train positions")

	return trainPositions, nil
}
