package rtpi

import (
	"context"
	"reflect"

	"github.com/travigo/irishtransit/pkg/ctdf"
	"github.com/travigo/irishtransit/pkg/dataaggregator/query"
	"github.com/travigo/irishtransit/pkg/dataaggregator/source"
	"github.com/travigo/irishtransit/pkg/transport"
)

const DefaultEndpoint = "https://data.smartdublin.ie/cgi-bin/rtpi"

const providerName = "Dublin RTPI"
const originalFormat = "rtpi-json"

type Source struct {
	Endpoint  string
	Transport *transport.Client
}

func (s Source) GetName() string {
	return "Dublin Real Time Passenger Information API"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]*ctdf.BusStop{}),
		reflect.TypeOf([]*ctdf.Operator{}),
	}
}

func (s Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	switch q := q.(type) {
	case query.BusStops:
		return s.BusStopsQuery(ctx, q)
	case query.Operators:
		return s.OperatorsQuery(ctx, q)
	default:
		return nil, source.UnsupportedSourceError
	}
}
