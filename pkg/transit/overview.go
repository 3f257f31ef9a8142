package transit

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/irishtransit/pkg/ctdf"
	"github.com/travigo/irishtransit/pkg/filter"
)

type Overview struct {
	Trains        int       `json:"trains" csv:"trains"`
	RunningTrains int       `json:"runningTrains" csv:"running_trains"`
	Stations      int       `json:"stations" csv:"stations"`
	BusStops      int       `json:"busStops" csv:"bus_stops"`
	Operators     int       `json:"operators" csv:"operators"`
	SearchTime    time.Time `json:"searchTime" csv:"search_time"`
}

// Overview runs the train, station, bus stop and operator listings concurrently and counts them.
// The first failure cancels the others and is returned.
func (c *Client) Overview(ctx context.Context) (*Overview, error) {
	overview := &Overview{
		SearchTime: time.Now(),
	}

	p := pool.New().WithContext(ctx).WithCancelOnError()

	p.Go(func(ctx context.Context) error {
		trains, err := c.ListTrains(ctx, TrainsOptions{})
		if err != nil {
			return err
		}

		overview.Trains = trains.Count()
		overview.RunningTrains = len(filter.Filter(trains.Records, filter.Fields{"status": ctdf.TrainStatusRunning}))

		return nil
	})
	p.Go(func(ctx context.Context) error {
		stations, err := c.ListStations(ctx, StationsOptions{})
		if err != nil {
			return err
		}

		overview.Stations = stations.Count()

		return nil
	})
	p.Go(func(ctx context.Context) error {
		busStops, err := c.ListBusStops(ctx, BusStopsOptions{})
		if err != nil {
			return err
		}

		overview.BusStops = busStops.Count()

		return nil
	})
	p.Go(func(ctx context.Context) error {
		operators, err := c.ListOperators(ctx, OperatorsOptions{})
		if err != nil {
			return err
		}

		overview.Operators = operators.Count()

		return nil
	})

	if err := p.Wait(); err != nil {
		return nil, err
	}

	return overview, nil
}
