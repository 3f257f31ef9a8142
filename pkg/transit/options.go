package transit

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/irishtransit/pkg/ctdf"
	"github.com/travigo/irishtransit/pkg/dataaggregator/source"
	"github.com/travigo/irishtransit/pkg/filter"
	"github.com/travigo/irishtransit/pkg/util"
	"golang.org/x/exp/slices"
)

type Format string

const (
	FormatRaw     Format = "raw"
	FormatGeoJSON Format = "geojson"
)

var TrainStatuses = []ctdf.TrainStatus{ctdf.TrainStatusRunning, ctdf.TrainStatusNotRunning}

// StationTypes accepted by the rail provider: all, mainline, suburban, DART
var StationTypes = []string{"A", "M", "S", "D"}

type TrainsOptions struct {
	Status string
	Code   string
	Format Format
	Where  string
}

type TrainMovementsOptions struct {
	Code string
	Date string
}

type StationsOptions struct {
	Type   string
	Format Format
}

type BusStopsOptions struct {
	// Fields returns at most the first matching bus stop when set
	Fields filter.Fields
	Format Format
	Where  string
}

type OperatorsOptions struct {
	// Fields returns at most the first matching operator when set
	Fields filter.Fields
	Where  string
}

func parseFormat(format Format) (Format, error) {
	switch format {
	case "", FormatRaw:
		return FormatRaw, nil
	case FormatGeoJSON:
		return FormatGeoJSON, nil
	default:
		return "", fmt.Errorf("%w: format must be one of raw or geojson, got %q", source.InvalidArgumentError, format)
	}
}

func validateTrainStatus(status string) error {
	if status == "" || slices.Contains(TrainStatuses, ctdf.TrainStatus(status)) {
		return nil
	}

	return fmt.Errorf("%w: status must be one of running or not_running, got %q", source.InvalidArgumentError, status)
}

func validateStationType(stationType string) error {
	if stationType == "" || slices.Contains(StationTypes, stationType) {
		return nil
	}

	return fmt.Errorf("%w: station type must be one of A, M, S or D, got %q", source.InvalidArgumentError, stationType)
}

func compileWhere(where string) (*filter.Expression, error) {
	if where == "" {
		return nil, nil
	}

	expression, err := filter.NewExpression(where)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid where expression: %w", source.InvalidArgumentError, err)
	}

	return expression, nil
}

// applyWhere drops records the expression rejects or fails to evaluate against
func applyWhere[T any](records []T, expression *filter.Expression) []T {
	if expression == nil {
		return records
	}

	return util.FilterCopy(records, func(record T) bool {
		matched, err := expression.Matches(record)
		if err != nil {
			log.Debug().Err(err).Str("where", expression.String()).Msg("Failed to evaluate where expression")
			return false
		}

		return matched
	})
}

// optional turns an unset string option into a nil constraint
func optional(value string) any {
	if value == "" {
		return nil
	}

	return value
}
