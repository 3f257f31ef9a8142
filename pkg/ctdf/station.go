package ctdf

type Station struct {
	ID    string `json:"id" groups:"detailed"`
	Name  string `json:"name" groups:"basic"`
	Alias string `json:"alias" groups:"detailed"`
	Code  string `json:"code" groups:"basic"`

	TransportType TransportType `json:"transportType" groups:"detailed"`

	Location Location `json:"location" groups:"basic"`

	DataSource *DataSource `json:"dataSource,omitempty" groups:"internal"`
}

func (s *Station) GetLocation() Location {
	return s.Location
}

func (s *Station) GetFeatureName() string {
	return s.Code
}
