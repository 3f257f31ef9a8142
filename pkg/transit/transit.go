// Package transit is the query surface over the registered transit data sources: each operation
// fetches through the aggregator, then filters and optionally re-projects the normalized records.
package transit

import (
	"github.com/travigo/irishtransit/pkg/dataaggregator"
	"github.com/travigo/irishtransit/pkg/geojson"
)

type Client struct {
	Aggregator *dataaggregator.Aggregator
}

func NewClient(aggregator *dataaggregator.Aggregator) *Client {
	return &Client{
		Aggregator: aggregator,
	}
}

// Result holds either the normalized Records or, when GeoJSON was requested, Features
type Result[T any] struct {
	Records  []T
	Features *geojson.FeatureCollection
}

func (r *Result[T]) Count() int {
	if r.Features != nil {
		return len(r.Features.Features)
	}

	return len(r.Records)
}

// Value is whichever of Features or Records the result carries
func (r *Result[T]) Value() any {
	if r.Features != nil {
		return r.Features
	}

	return r.Records
}

func newRecordsResult[T any](records []T) *Result[T] {
	if records == nil {
		records = []T{}
	}

	return &Result[T]{Records: records}
}

func newLocatableResult[T geojson.Locatable](records []T, format Format) *Result[T] {
	if format == FormatGeoJSON {
		return &Result[T]{Features: geojson.FromRecords(records)}
	}

	return newRecordsResult(records)
}
