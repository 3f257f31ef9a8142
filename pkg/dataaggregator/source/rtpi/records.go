package rtpi

// Raw payloads of the Dublin RTPI API. Field names follow the provider exactly.

// The errorcode/errormessage envelope is checked by the transport before this is decoded
type response[T any] struct {
	NumberOfResults int    `json:"numberofresults"`
	Timestamp       string `json:"timestamp"`

	// Results is nil when the key is missing from the payload
	Results *[]T `json:"results"`
}

type BusStopRecord struct {
	StopID             string           `json:"stopid"`
	DisplayStopID      string           `json:"displaystopid"`
	ShortName          string           `json:"shortname"`
	ShortNameLocalized string           `json:"shortnamelocalized"`
	FullName           string           `json:"fullname"`
	FullNameLocalized  string           `json:"fullnamelocalized"`
	Latitude           string           `json:"latitude"`
	Longitude          string           `json:"longitude"`
	LastUpdated        string           `json:"lastupdated"`
	Operators          []map[string]any `json:"operators"`
}

type OperatorRecord struct {
	OperatorReference   string `json:"operatorreference"`
	OperatorName        string `json:"operatorname"`
	OperatorDescription string `json:"operatordescription"`
}
