package irishrail

import (
	"context"
	"reflect"

	"github.com/travigo/irishtransit/pkg/ctdf"
	"github.com/travigo/irishtransit/pkg/dataaggregator/query"
	"github.com/travigo/irishtransit/pkg/dataaggregator/source"
	"github.com/travigo/irishtransit/pkg/transport"
)

const DefaultEndpoint = "http://api.irishrail.ie/realtime/realtime.asmx"

const providerName = "Irish Rail"
const originalFormat = "irishrail-xml"

type Source struct {
	Endpoint  string
	Transport *transport.Client
}

func (s Source) GetName() string {
	return "Irish Rail Realtime API"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]*ctdf.TrainPosition{}),
		reflect.TypeOf([]*ctdf.TrainMovement{}),
		reflect.TypeOf([]*ctdf.Station{}),
	}
}

func (s Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	switch q := q.(type) {
	case query.TrainPositions:
		return s.TrainPositionsQuery(ctx, q)
	case query.TrainMovements:
		return s.TrainMovementsQuery(ctx, q)
	case query.Stations:
		return s.StationsQuery(ctx, q)
	default:
		return nil, source.UnsupportedSourceError
	}
}
