package ctdf

type TransportType string

const (
	TransportTypeBus     TransportType = "Bus"
	TransportTypeRail    TransportType = "Rail"
	TransportTypeUnknown TransportType = "UNKNOWN"
)
