package ctdf

type LocationType string

const (
	LocationTypeOrigin      LocationType = "origin"
	LocationTypeStop        LocationType = "stop"
	LocationTypeTimingPoint LocationType = "timing-point"
	LocationTypeDestination LocationType = "destination"
	LocationTypeUnknown     LocationType = ""
)

// TrainMovement is one calling point in the recorded history of a train on a given date
type TrainMovement struct {
	Code string `json:"code" groups:"basic"`
	Date string `json:"date" groups:"basic"`

	Terminii TrainMovementTerminii `json:"terminii" groups:"basic"`

	Schedule TrainMovementTimes `json:"schedule" groups:"basic"`
	Expected TrainMovementTimes `json:"expected" groups:"basic"`
	Actual   TrainMovementTimes `json:"actual" groups:"detailed"`

	Location TrainMovementLocation `json:"location" groups:"basic"`

	DataSource *DataSource `json:"dataSource,omitempty" groups:"internal"`
}

type TrainMovementTerminii struct {
	From string `json:"from" groups:"basic"`
	To   string `json:"to" groups:"basic"`
}

// TrainMovementTimes are kept as the provider sends them (HH:MM:SS, or 00:00:00 when not applicable)
type TrainMovementTimes struct {
	Arrival   string `json:"arrival" groups:"basic"`
	Departure string `json:"departure" groups:"basic"`
}

type TrainMovementLocation struct {
	Code  string       `json:"code" groups:"basic"`
	Name  string       `json:"name" groups:"basic"`
	Type  LocationType `json:"type" groups:"basic"`
	Order int          `json:"order" groups:"detailed"`
}
