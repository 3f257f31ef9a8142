package rtpi

import (
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/travigo/irishtransit/pkg/ctdf"
)

func BusStopFromRaw(record BusStopRecord) *ctdf.BusStop {
	busStop := &ctdf.BusStop{
		ID:        record.StopID,
		DisplayID: record.DisplayStopID,
		Name: ctdf.BusStopName{
			Short:          record.ShortName,
			ShortLocalised: record.ShortNameLocalized,
			Full:           record.FullName,
			FullLocalised:  record.FullNameLocalized,
		},
		TransportType: ctdf.TransportTypeBus,

		Location: ctdf.Location{
			Longitude: parseCoordinate(record.Longitude),
			Latitude:  parseCoordinate(record.Latitude),
		},
		UpdatedAt: record.LastUpdated,
	}

	if record.Operators != nil {
		err := copier.CopyWithOption(&busStop.Operators, record.Operators, copier.Option{DeepCopy: true})
		if err != nil {
			log.Debug().Err(err).Str("stop", record.StopID).Msg("Failed to copy bus stop operators")
			busStop.Operators = record.Operators
		}
	}

	return busStop
}

func OperatorFromRaw(record OperatorRecord) *ctdf.Operator {
	return &ctdf.Operator{
		Reference:   record.OperatorReference,
		Name:        record.OperatorName,
		Description: record.OperatorDescription,
	}
}

func parseCoordinate(value string) float64 {
	coordinate, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}

	return coordinate
}
