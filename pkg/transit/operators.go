package transit

import (
	"context"

	"github.com/travigo/irishtransit/pkg/ctdf"
	"github.com/travigo/irishtransit/pkg/dataaggregator"
	"github.com/travigo/irishtransit/pkg/dataaggregator/query"
)

// ListOperators has the same single-match behaviour as ListBusStops when options.Fields is set
func (c *Client) ListOperators(ctx context.Context, options OperatorsOptions) (*Result[*ctdf.Operator], error) {
	where, err := compileWhere(options.Where)
	if err != nil {
		return nil, err
	}

	operators, err := dataaggregator.Lookup[[]*ctdf.Operator](ctx, c.Aggregator, query.Operators{})
	if err != nil {
		return nil, err
	}

	operators = applyWhere(operators, where)

	if len(options.Fields) > 0 {
		operators = findOne(operators, options.Fields)
	}

	return newRecordsResult(operators), nil
}
