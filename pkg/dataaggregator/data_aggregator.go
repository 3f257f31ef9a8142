package dataaggregator

import (
	"context"
	"errors"
	"reflect"

	"github.com/rs/zerolog/log"
	"github.com/travigo/irishtransit/pkg/dataaggregator/source"
)

type Aggregator struct {
	Sources []DataSource
}

var GlobalAggregator Aggregator

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)

	log.Debug().Str("name", source.GetName()).Msg("Registering new Data Source")
}

// Lookup asks each registered source that supports T for the query, in registration order.
// Sources that reject the query with UnsupportedSourceError are skipped.
func Lookup[T any](ctx context.Context, aggregator *Aggregator, query any) (T, error) {
	var empty T

	lookupType := reflect.TypeOf(*new(T))

	for _, dataSource := range aggregator.Sources {
		matches := false

		for _, supportedType := range dataSource.Supports() {
			if lookupType == supportedType {
				matches = true
				break
			}
		}

		if !matches {
			continue
		}

		returnValue, returnError := dataSource.Lookup(ctx, query)

		if errors.Is(returnError, source.UnsupportedSourceError) {
			continue
		}

		if returnError != nil {
			return empty, returnError
		}

		if returnValue == nil {
			return empty, nil
		}

		typedValue, ok := returnValue.(T)
		if !ok {
			return empty, errors.New("Data Source returned an unexpected type")
		}

		return typedValue, nil
	}

	return empty, source.UnsupportedSourceError
}
