package ctdf

type Location struct {
	Longitude float64 `json:"longitude" groups:"basic"`
	Latitude  float64 `json:"latitude" groups:"basic"`
}

// Coordinates returns the location in GeoJSON axis order
func (l Location) Coordinates() []float64 {
	return []float64{l.Longitude, l.Latitude}
}

func (l Location) IsZero() bool {
	return l.Longitude == 0 && l.Latitude == 0
}
