package irishrail

import (
	"strconv"
	"strings"
	"time"

	"github.com/travigo/irishtransit/pkg/ctdf"
)

var trainStatusCodes = map[string]ctdf.TrainStatus{
	"N": ctdf.TrainStatusNotRunning,
	"R": ctdf.TrainStatusRunning,
}

var locationTypeCodes = map[string]ctdf.LocationType{
	"O": ctdf.LocationTypeOrigin,
	"S": ctdf.LocationTypeStop,
	"T": ctdf.LocationTypeTimingPoint,
	"D": ctdf.LocationTypeDestination,
}

// DecodeTrainStatus falls back to the raw code when it is not in the table
func DecodeTrainStatus(code string) ctdf.TrainStatus {
	if status, ok := trainStatusCodes[code]; ok {
		return status
	}

	return ctdf.TrainStatus(code)
}

// DecodeLocationType falls back to an empty type when the code is not in the table
func DecodeLocationType(code string) ctdf.LocationType {
	if locationType, ok := locationTypeCodes[code]; ok {
		return locationType
	}

	return ctdf.LocationTypeUnknown
}

func TrainPositionFromRaw(record TrainPositionRecord, searchTime time.Time) *ctdf.TrainPosition {
	return &ctdf.TrainPosition{
		Status:    DecodeTrainStatus(record.TrainStatus),
		Code:      strings.TrimSpace(record.TrainCode),
		Date:      record.TrainDate,
		Direction: record.Direction,
		Message:   record.PublicMessage,
		Location: ctdf.Location{
			Longitude: parseCoordinate(record.TrainLongitude),
			Latitude:  parseCoordinate(record.TrainLatitude),
		},
		SearchTime: searchTime,
	}
}

func TrainMovementFromRaw(record TrainMovementRecord) *ctdf.TrainMovement {
	order, _ := strconv.Atoi(strings.TrimSpace(record.LocationOrder))

	return &ctdf.TrainMovement{
		Code: strings.TrimSpace(record.TrainCode),
		Date: record.TrainDate,
		Terminii: ctdf.TrainMovementTerminii{
			From: record.TrainOrigin,
			To:   record.TrainDestination,
		},
		Schedule: ctdf.TrainMovementTimes{
			Arrival:   record.ScheduledArrival,
			Departure: record.ScheduledDeparture,
		},
		Expected: ctdf.TrainMovementTimes{
			Arrival:   record.ExpectedArrival,
			Departure: record.ExpectedDeparture,
		},
		Actual: ctdf.TrainMovementTimes{
			Arrival:   record.Arrival,
			Departure: record.Departure,
		},
		Location: ctdf.TrainMovementLocation{
			Code:  record.LocationCode,
			Name:  record.LocationFullName,
			Type:  DecodeLocationType(record.LocationType),
			Order: order,
		},
	}
}

func StationFromRaw(record StationRecord) *ctdf.Station {
	return &ctdf.Station{
		ID:    strings.TrimSpace(record.StationID),
		Name:  record.StationDesc,
		Alias: record.StationAlias,
		Code:  strings.TrimSpace(record.StationCode),

		TransportType: ctdf.TransportTypeRail,

		Location: ctdf.Location{
			Longitude: parseCoordinate(record.StationLongitude),
			Latitude:  parseCoordinate(record.StationLatitude),
		},
	}
}

// Rail coordinates arrive as decimal strings; anything unparseable becomes 0
func parseCoordinate(value string) float64 {
	coordinate, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}

	return coordinate
}
