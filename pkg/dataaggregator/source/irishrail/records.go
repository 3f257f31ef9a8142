package irishrail

import "encoding/xml"

// Raw payloads of the Irish Rail realtime API. Element names follow the provider exactly.

type trainPositionsResponse struct {
	XMLName        xml.Name
	TrainPositions []TrainPositionRecord `xml:"objTrainPositions"`
}

type TrainPositionRecord struct {
	TrainStatus    string `xml:"TrainStatus"`
	TrainLatitude  string `xml:"TrainLatitude"`
	TrainLongitude string `xml:"TrainLongitude"`
	TrainCode      string `xml:"TrainCode"`
	TrainDate      string `xml:"TrainDate"`
	PublicMessage  string `xml:"PublicMessage"`
	Direction      string `xml:"Direction"`
}

type trainMovementsResponse struct {
	XMLName        xml.Name
	TrainMovements []TrainMovementRecord `xml:"objTrainMovements"`
}

type TrainMovementRecord struct {
	TrainCode          string `xml:"TrainCode"`
	TrainDate          string `xml:"TrainDate"`
	LocationCode       string `xml:"LocationCode"`
	LocationFullName   string `xml:"LocationFullName"`
	LocationOrder      string `xml:"LocationOrder"`
	LocationType       string `xml:"LocationType"`
	TrainOrigin        string `xml:"TrainOrigin"`
	TrainDestination   string `xml:"TrainDestination"`
	ScheduledArrival   string `xml:"ScheduledArrival"`
	ScheduledDeparture string `xml:"ScheduledDeparture"`
	ExpectedArrival    string `xml:"ExpectedArrival"`
	ExpectedDeparture  string `xml:"ExpectedDeparture"`
	Arrival            string `xml:"Arrival"`
	Departure          string `xml:"Departure"`
	StopType           string `xml:"StopType"`
}

type stationsResponse struct {
	XMLName  xml.Name
	Stations []StationRecord `xml:"objStation"`
}

type StationRecord struct {
	StationDesc      string `xml:"StationDesc"`
	StationAlias     string `xml:"StationAlias"`
	StationLatitude  string `xml:"StationLatitude"`
	StationLongitude string `xml:"StationLongitude"`
	StationCode      string `xml:"StationCode"`
	StationID        string `xml:"StationId"`
}
