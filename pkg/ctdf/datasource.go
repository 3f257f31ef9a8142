package ctdf

import "time"

type DataSource struct {
	OriginalFormat string `json:"originalFormat" groups:"internal"` // eg. irishrail-xml, rtpi-json
	Provider       string `json:"provider" groups:"internal"`
	Dataset        string `json:"dataset" groups:"internal"`
	Identifier     string `json:"identifier" groups:"internal"`
}

func NewDataSource(originalFormat string, provider string, dataset string, retrievedAt time.Time) *DataSource {
	return &DataSource{
		OriginalFormat: originalFormat,
		Provider:       provider,
		Dataset:        dataset,
		Identifier:     retrievedAt.Format(time.RFC3339),
	}
}
