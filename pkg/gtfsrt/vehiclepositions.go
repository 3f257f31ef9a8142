package gtfsrt

import (
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/travigo/irishtransit/pkg/ctdf"
	"google.golang.org/protobuf/proto"
)

const gtfsRealtimeVersion = "2.0"

// VehiclePositionsFeed builds a full-dataset GTFS-Realtime feed with one VehiclePosition entity
// per train. Trains without a usable location are still included, without a Position.
func VehiclePositionsFeed(trainPositions []*ctdf.TrainPosition, generatedAt time.Time) *gtfs.FeedMessage {
	feed := &gtfs.FeedMessage{
		Header: &gtfs.FeedHeader{
			GtfsRealtimeVersion: proto.String(gtfsRealtimeVersion),
			Incrementality:      gtfs.FeedHeader_FULL_DATASET.Enum(),
			Timestamp:           proto.Uint64(uint64(generatedAt.Unix())),
		},
	}

	for _, trainPosition := range trainPositions {
		vehiclePosition := &gtfs.VehiclePosition{
			Trip: &gtfs.TripDescriptor{
				TripId: proto.String(trainPosition.Code),
			},
			Vehicle: &gtfs.VehicleDescriptor{
				Id:    proto.String(trainPosition.Code),
				Label: proto.String(trainPosition.Code),
			},
		}

		if !trainPosition.SearchTime.IsZero() {
			vehiclePosition.Timestamp = proto.Uint64(uint64(trainPosition.SearchTime.Unix()))
		}

		if !trainPosition.Location.IsZero() {
			vehiclePosition.Position = &gtfs.Position{
				Latitude:  proto.Float32(float32(trainPosition.Location.Latitude)),
				Longitude: proto.Float32(float32(trainPosition.Location.Longitude)),
			}
		}

		if trainPosition.Status == ctdf.TrainStatusRunning {
			vehiclePosition.CurrentStatus = gtfs.VehiclePosition_IN_TRANSIT_TO.Enum()
		}

		feed.Entity = append(feed.Entity, &gtfs.FeedEntity{
			Id:      proto.String(trainPosition.Code),
			Vehicle: vehiclePosition,
		})
	}

	return feed
}

func Marshal(feed *gtfs.FeedMessage) ([]byte, error) {
	return proto.Marshal(feed)
}
