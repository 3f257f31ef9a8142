package output

import (
	"fmt"
	"reflect"
	"time"

	"github.com/travigo/irishtransit/pkg/ctdf"
	"github.com/travigo/irishtransit/pkg/geojson"
)

type TrainPositionRow struct {
	Code       string  `csv:"code"`
	Status     string  `csv:"status"`
	Date       string  `csv:"date"`
	Direction  string  `csv:"direction"`
	Message    string  `csv:"message"`
	Longitude  float64 `csv:"longitude"`
	Latitude   float64 `csv:"latitude"`
	SearchTime string  `csv:"search_time"`
}

type TrainMovementRow struct {
	Code               string `csv:"code"`
	Date               string `csv:"date"`
	LocationCode       string `csv:"location_code"`
	LocationName       string `csv:"location_name"`
	LocationType       string `csv:"location_type"`
	LocationOrder      int    `csv:"location_order"`
	From               string `csv:"from"`
	To                 string `csv:"to"`
	ScheduledArrival   string `csv:"scheduled_arrival"`
	ScheduledDeparture string `csv:"scheduled_departure"`
	ExpectedArrival    string `csv:"expected_arrival"`
	ExpectedDeparture  string `csv:"expected_departure"`
	ActualArrival      string `csv:"actual_arrival"`
	ActualDeparture    string `csv:"actual_departure"`
}

type StationRow struct {
	ID        string  `csv:"id"`
	Code      string  `csv:"code"`
	Name      string  `csv:"name"`
	Alias     string  `csv:"alias"`
	Longitude float64 `csv:"longitude"`
	Latitude  float64 `csv:"latitude"`
}

type BusStopRow struct {
	ID        string  `csv:"id"`
	DisplayID string  `csv:"display_id"`
	ShortName string  `csv:"short_name"`
	FullName  string  `csv:"full_name"`
	Longitude float64 `csv:"longitude"`
	Latitude  float64 `csv:"latitude"`
	UpdatedAt string  `csv:"updated_at"`
	Operators int     `csv:"operators"`
}

type OperatorRow struct {
	Reference   string `csv:"reference"`
	Name        string `csv:"name"`
	Description string `csv:"description"`
}

type FeatureRow struct {
	Name      string  `csv:"name"`
	Longitude float64 `csv:"longitude"`
	Latitude  float64 `csv:"latitude"`
}

// Rows flattens records into the row type matching them. Other structs are written as a single row.
func Rows(value any) (any, error) {
	switch v := value.(type) {
	case *geojson.FeatureCollection:
		return featureRows(v), nil
	case []*ctdf.TrainPosition:
		rows := make([]*TrainPositionRow, 0, len(v))
		for _, trainPosition := range v {
			rows = append(rows, &TrainPositionRow{
				Code:       trainPosition.Code,
				Status:     string(trainPosition.Status),
				Date:       trainPosition.Date,
				Direction:  trainPosition.Direction,
				Message:    trainPosition.Message,
				Longitude:  trainPosition.Location.Longitude,
				Latitude:   trainPosition.Location.Latitude,
				SearchTime: trainPosition.SearchTime.Format(time.RFC3339),
			})
		}
		return rows, nil
	case []*ctdf.TrainMovement:
		rows := make([]*TrainMovementRow, 0, len(v))
		for _, trainMovement := range v {
			rows = append(rows, &TrainMovementRow{
				Code:               trainMovement.Code,
				Date:               trainMovement.Date,
				LocationCode:       trainMovement.Location.Code,
				LocationName:       trainMovement.Location.Name,
				LocationType:       string(trainMovement.Location.Type),
				LocationOrder:      trainMovement.Location.Order,
				From:               trainMovement.Terminii.From,
				To:                 trainMovement.Terminii.To,
				ScheduledArrival:   trainMovement.Schedule.Arrival,
				ScheduledDeparture: trainMovement.Schedule.Departure,
				ExpectedArrival:    trainMovement.Expected.Arrival,
				ExpectedDeparture:  trainMovement.Expected.Departure,
				ActualArrival:      trainMovement.Actual.Arrival,
				ActualDeparture:    trainMovement.Actual.Departure,
			})
		}
		return rows, nil
	case []*ctdf.Station:
		rows := make([]*StationRow, 0, len(v))
		for _, station := range v {
			rows = append(rows, &StationRow{
				ID:        station.ID,
				Code:      station.Code,
				Name:      station.Name,
				Alias:     station.Alias,
				Longitude: station.Location.Longitude,
				Latitude:  station.Location.Latitude,
			})
		}
		return rows, nil
	case []*ctdf.BusStop:
		rows := make([]*BusStopRow, 0, len(v))
		for _, busStop := range v {
			rows = append(rows, &BusStopRow{
				ID:        busStop.ID,
				DisplayID: busStop.DisplayID,
				ShortName: busStop.Name.Short,
				FullName:  busStop.Name.Full,
				Longitude: busStop.Location.Longitude,
				Latitude:  busStop.Location.Latitude,
				UpdatedAt: busStop.UpdatedAt,
				Operators: len(busStop.Operators),
			})
		}
		return rows, nil
	case []*ctdf.Operator:
		rows := make([]*OperatorRow, 0, len(v))
		for _, operator := range v {
			rows = append(rows, &OperatorRow{
				Reference:   operator.Reference,
				Name:        operator.Name,
				Description: operator.Description,
			})
		}
		return rows, nil
	default:
		rv := reflect.ValueOf(value)
		switch {
		case rv.Kind() == reflect.Slice:
			return value, nil
		case rv.Kind() == reflect.Pointer && rv.Elem().Kind() == reflect.Struct:
			rows := reflect.MakeSlice(reflect.SliceOf(rv.Type()), 0, 1)
			return reflect.Append(rows, rv).Interface(), nil
		}

		return nil, fmt.Errorf("csv output is not supported for %T", value)
	}
}

func featureRows(collection *geojson.FeatureCollection) []*FeatureRow {
	rows := make([]*FeatureRow, 0, len(collection.Features))

	for _, feature := range collection.Features {
		row := &FeatureRow{
			Name: feature.Properties.Name,
		}
		if len(feature.Geometry.Coordinates) == 2 {
			row.Longitude = feature.Geometry.Coordinates[0]
			row.Latitude = feature.Geometry.Coordinates[1]
		}

		rows = append(rows, row)
	}

	return rows
}
