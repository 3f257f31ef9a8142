package ctdf

import "time"

type TrainStatus string

const (
	TrainStatusRunning    TrainStatus = "running"
	TrainStatusNotRunning TrainStatus = "not_running"
)

// TrainPosition is the last reported position of a train currently known to the rail network.
// Status holds the raw provider code when it is not one of the known values.
type TrainPosition struct {
	Status TrainStatus `json:"status" groups:"basic"`
	Code   string      `json:"code" groups:"basic"`

	Date      string `json:"date" groups:"detailed"`
	Direction string `json:"direction" groups:"detailed"`
	Message   string `json:"message" groups:"detailed"`

	Location Location `json:"location" groups:"basic"`

	SearchTime time.Time `json:"searchTime" groups:"basic"`

	DataSource *DataSource `json:"dataSource,omitempty" groups:"internal"`
}

func (t *TrainPosition) GetLocation() Location {
	return t.Location
}

func (t *TrainPosition) GetFeatureName() string {
	return t.Code
}
