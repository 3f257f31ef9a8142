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

func (s Source) OperatorsQuery(ctx context.Context, q query.Operators) ([]*ctdf.Operator, error) {
	var operatorsResponse response[OperatorRecord]

	if err := s.Transport.FetchJSON(ctx, s.Endpoint, "operatorinformation", nil, &operatorsResponse); err != nil {
		return nil, err
	}

	if operatorsResponse.Results == nil {
		return nil, fmt.Errorf("%w: operator information response has no results", source.UpstreamProtocolError)
	}

	datasource := ctdf.NewDataSource(originalFormat, providerName, "operatorinformation", time.Now())

	operators := make([]*ctdf.Operator, 0, len(*operatorsResponse.Results))
	for _, record := range *operatorsResponse.Results {
		operator := OperatorFromRaw(record)
		operator.DataSource = datasource

		operators = append(operators, operator)
	}

	log.Debug().Int("count", len(operators)).Msg("Retrieved RTPI operators")

	return operators, nil
}
