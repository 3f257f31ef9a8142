package ctdf

type BusStop struct {
	ID        string `json:"id" groups:"basic"`
	DisplayID string `json:"displayId" groups:"basic"`

	Name BusStopName `json:"name" groups:"basic"`

	TransportType TransportType `json:"transportType" groups:"detailed"`

	Location Location `json:"location" groups:"basic"`

	UpdatedAt string `json:"updatedAt" groups:"detailed"`

	// Operators is the provider's own operator list for the stop, passed through as-is
	Operators []map[string]any `json:"operators" groups:"detailed"`

	DataSource *DataSource `json:"dataSource,omitempty" groups:"internal"`
}

type BusStopName struct {
	Short          string `json:"short" groups:"basic"`
	ShortLocalised string `json:"shortLocalised" groups:"basic"`
	Full           string `json:"full" groups:"basic"`
	FullLocalised  string `json:"fullLocalised" groups:"basic"`
}

func (b *BusStop) GetLocation() Location {
	return b.Location
}

func (b *BusStop) GetFeatureName() string {
	return b.Name.Full
}
