package transit

import (
	"context"
	"fmt"

	"github.com/travigo/irishtransit/pkg/ctdf"
	"github.com/travigo/irishtransit/pkg/dataaggregator"
	"github.com/travigo/irishtransit/pkg/dataaggregator/query"
	"github.com/travigo/irishtransit/pkg/dataaggregator/source"
	"github.com/travigo/irishtransit/pkg/filter"
)

func (c *Client) ListTrains(ctx context.Context, options TrainsOptions) (*Result[*ctdf.TrainPosition], error) {
	if err := validateTrainStatus(options.Status); err != nil {
		return nil, err
	}

	format, err := parseFormat(options.Format)
	if err != nil {
		return nil, err
	}

	where, err := compileWhere(options.Where)
	if err != nil {
		return nil, err
	}

	trainPositions, err := dataaggregator.Lookup[[]*ctdf.TrainPosition](ctx, c.Aggregator, query.TrainPositions{})
	if err != nil {
		return nil, err
	}

	trainPositions = filter.Filter(trainPositions, filter.Fields{
		"status": optional(options.Status),
		"code":   optional(options.Code),
	})
	trainPositions = applyWhere(trainPositions, where)

	return newLocatableResult(trainPositions, format), nil
}

func (c *Client) ListTrainMovements(ctx context.Context, options TrainMovementsOptions) (*Result[*ctdf.TrainMovement], error) {
	if options.Code == "" || options.Date == "" {
		return nil, fmt.Errorf("%w: both train code and date are required", source.InvalidArgumentError)
	}

	trainMovements, err := dataaggregator.Lookup[[]*ctdf.TrainMovement](ctx, c.Aggregator, query.TrainMovements{
		TrainCode: options.Code,
		TrainDate: options.Date,
	})
	if err != nil {
		return nil, err
	}

	return newRecordsResult(trainMovements), nil
}
