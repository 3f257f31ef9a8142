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

func (s Source) TrainMovementsQuery(ctx context.Context, q query.TrainMovements) ([]*ctdf.TrainMovement, error) {
	var response trainMovementsResponse

	if err := s.Transport.FetchXML(ctx, s.Endpoint, "getTrainMovementsXML", q.ToQueryParams(), &response); err != nil {
		return nil, err
	}

	if response.XMLName.Local != "ArrayOfObjTrainMovements" {
		return nil, fmt.Errorf("%w: expected ArrayOfObjTrainMovements but got %s", source.UpstreamProtocolError, response.XMLName.Local)
	}

	datasource := ctdf.NewDataSource(originalFormat, providerName, "getTrainMovementsXML", time.Now())

	trainMovements := make([]*ctdf.TrainMovement, 0, len(response.TrainMovements))
	for _, record := range response.TrainMovements {
		trainMovement := TrainMovementFromRaw(record)
		trainMovement.DataSource = datasource

		trainMovements = append(trainMovements, trainMovement)
	}

	log.Debug().
		Str("train", q.TrainCode).
		Str("date", q.TrainDate).
		Int("count", len(trainMovements)).
		Msg("Retrieved Irish Rail train movements")

	return trainMovements, nil
}
