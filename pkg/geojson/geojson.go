package geojson

import "github.com/travigo/irishtransit/pkg/ctdf"

const (
	TypeFeatureCollection = "FeatureCollection"
	TypeFeature           = "Feature"
	TypePoint             = "Point"
)

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string            `json:"type"`
	Geometry   Geometry          `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [Lon, Lat]
}

type FeatureProperties struct {
	Name string `json:"name"`
}

// Locatable records can be exported as Point features
type Locatable interface {
	GetLocation() ctdf.Location
	GetFeatureName() string
}

func FromRecords[T Locatable](records []T) *FeatureCollection {
	collection := &FeatureCollection{
		Type:     TypeFeatureCollection,
		Features: make([]Feature, 0, len(records)),
	}

	for _, record := range records {
		collection.Features = append(collection.Features, NewPointFeature(record.GetLocation(), record.GetFeatureName()))
	}

	return collection
}

func NewPointFeature(location ctdf.Location, name string) Feature {
	return Feature{
		Type: TypeFeature,
		Geometry: Geometry{
			Type:        TypePoint,
			Coordinates: location.Coordinates(),
		},
		Properties: FeatureProperties{
			Name: name,
		},
	}
}
