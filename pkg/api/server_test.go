package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/irishtransit/pkg/ctdf"
	"github.com/travigo/irishtransit/pkg/dataaggregator"
	"github.com/travigo/irishtransit/pkg/dataaggregator/query"
	"github.com/travigo/irishtransit/pkg/dataaggregator/source"
	"github.com/travigo/irishtransit/pkg/transit"
	"github.com/travigo/irishtransit/pkg/transport"
	"google.golang.org/protobuf/proto"
)

type fakeSource struct {
	err error
}

func (f fakeSource) GetName() string {
	return "fake"
}

func (f fakeSource) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]*ctdf.TrainPosition{}),
		reflect.TypeOf([]*ctdf.TrainMovement{}),
		reflect.TypeOf([]*ctdf.Station{}),
		reflect.TypeOf([]*ctdf.BusStop{}),
		reflect.TypeOf([]*ctdf.Operator{}),
	}
}

func (f fakeSource) Lookup(ctx context.Context, q any) (interface{}, error) {
	if f.err != nil {
		return nil, f.err
	}

	searchTime := time.Date(2011, time.December, 21, 10, 45, 0, 0, time.UTC)

	switch q := q.(type) {
	case query.TrainPositions:
		return []*ctdf.TrainPosition{
			{Code: "E109", Status: ctdf.TrainStatusRunning, Direction: "Southbound", Location: ctdf.Location{Longitude: -6.24591, Latitude: 53.3531}, SearchTime: searchTime, DataSource: &ctdf.DataSource{Provider: "Irish Rail"}},
			{Code: "P656", Status: ctdf.TrainStatusNotRunning, Location: ctdf.Location{Longitude: -8.4582, Latitude: 51.9018}, SearchTime: searchTime},
		}, nil
	case query.TrainMovements:
		return []*ctdf.TrainMovement{
			{Code: q.TrainCode, Date: q.TrainDate, Location: ctdf.TrainMovementLocation{Code: "CNLLY", Type: ctdf.LocationTypeStop}},
		}, nil
	case query.Stations:
		return []*ctdf.Station{
			{Code: "CNLLY", Name: "Dublin Connolly", Location: ctdf.Location{Longitude: -6.24591, Latitude: 53.3531}},
		}, nil
	case query.BusStops:
		return []*ctdf.BusStop{
			{ID: "2", Name: ctdf.BusStopName{Short: "Parnell Square", Full: "Parnell Square West, stop 2"}},
			{ID: "3", Name: ctdf.BusStopName{Short: "Parnell Square", Full: "Parnell Square West, stop 3"}},
		}, nil
	case query.Operators:
		return []*ctdf.Operator{
			{Reference: "bac", Name: "Dublin Bus"},
		}, nil
	default:
		return nil, source.UnsupportedSourceError
	}
}

func newTestApp(t *testing.T, fake fakeSource) *fiber.App {
	t.Helper()

	aggregator := &dataaggregator.Aggregator{}
	aggregator.RegisterSource(fake)

	webApp, err := NewApp(transit.NewClient(aggregator), transport.NewMetrics())
	require.NoError(t, err)

	return webApp
}

func get(t *testing.T, webApp *fiber.App, target string) (*http.Response, []byte) {
	t.Helper()

	resp, err := webApp.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, body
}

func TestVersion(t *testing.T) {
	resp, body := get(t, newTestApp(t, fakeSource{}), "/core/version")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"version": "v1.0"}`, string(body))
}

func TestTrains(t *testing.T) {
	assert := assert.New(t)

	webApp := newTestApp(t, fakeSource{})

	resp, body := get(t, webApp, "/core/trains?status=running")
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.JSONEq(`[{
		"status": "running",
		"code": "E109",
		"location": {"longitude": -6.24591, "latitude": 53.3531},
		"searchTime": "2011-12-21T10:45:00Z"
	}]`, string(body))

	resp, body = get(t, webApp, "/core/trains?code=E109&detail=detailed")
	assert.Equal(http.StatusOK, resp.StatusCode)

	var detailed []map[string]any
	require.NoError(t, json.Unmarshal(body, &detailed))
	require.Len(t, detailed, 1)
	assert.Equal("Southbound", detailed[0]["direction"])
	assert.NotContains(detailed[0], "dataSource")

	resp, body = get(t, webApp, "/core/trains?code=E109&detail=full")
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Contains(string(body), `"provider":"Irish Rail"`)
}

func TestTrainsGeoJSON(t *testing.T) {
	assert := assert.New(t)

	resp, body := get(t, newTestApp(t, fakeSource{}), "/core/trains?format=geojson")
	assert.Equal(http.StatusOK, resp.StatusCode)

	var collection map[string]any
	require.NoError(t, json.Unmarshal(body, &collection))
	assert.Equal("FeatureCollection", collection["type"])
	assert.Len(collection["features"], 2)
}

func TestTrainsGTFSRT(t *testing.T) {
	assert := assert.New(t)

	resp, body := get(t, newTestApp(t, fakeSource{}), "/core/trains?format=gtfsrt&status=running")
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("application/x-protobuf", resp.Header.Get(fiber.HeaderContentType))

	feed := &gtfs.FeedMessage{}
	require.NoError(t, proto.Unmarshal(body, feed))
	require.Len(t, feed.GetEntity(), 1)
	assert.Equal("E109", feed.GetEntity()[0].GetId())
}

func TestTrainsInvalidStatus(t *testing.T) {
	resp, body := get(t, newTestApp(t, fakeSource{}), "/core/trains?status=bogus")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), `"error"`)
	assert.Contains(t, string(body), "bogus")
}

func TestTrainMovements(t *testing.T) {
	assert := assert.New(t)

	webApp := newTestApp(t, fakeSource{})

	resp, body := get(t, webApp, "/core/trains/E109/movements?date=21%20Dec%202011")
	assert.Equal(http.StatusOK, resp.StatusCode)

	var movements []map[string]any
	require.NoError(t, json.Unmarshal(body, &movements))
	require.Len(t, movements, 1)
	assert.Equal("E109", movements[0]["code"])
	assert.Equal("21 Dec 2011", movements[0]["date"])

	resp, _ = get(t, webApp, "/core/trains/E109/movements")
	assert.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestStations(t *testing.T) {
	webApp := newTestApp(t, fakeSource{})

	resp, body := get(t, webApp, "/core/stations?type=D")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "CNLLY")

	resp, _ = get(t, webApp, "/core/stations?type=Q")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBusStops(t *testing.T) {
	assert := assert.New(t)

	webApp := newTestApp(t, fakeSource{})

	resp, body := get(t, webApp, "/core/bus_stops")
	assert.Equal(http.StatusOK, resp.StatusCode)

	var busStops []map[string]any
	require.NoError(t, json.Unmarshal(body, &busStops))
	assert.Len(busStops, 2)

	resp, body = get(t, webApp, "/core/bus_stops?name.short=Parnell%20Square")
	assert.Equal(http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &busStops))
	require.Len(t, busStops, 1)
	assert.Equal("2", busStops[0]["id"])

	resp, body = get(t, webApp, "/core/bus_stops?id=99")
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.JSONEq(`[]`, string(body))

	resp, body = get(t, webApp, "/core/bus_stops?id=3&format=geojson")
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Contains(string(body), "Parnell Square West, stop 3")
}

func TestOperators(t *testing.T) {
	resp, body := get(t, newTestApp(t, fakeSource{}), "/core/operators?reference=bac")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"reference": "bac", "name": "Dublin Bus", "description": ""}]`, string(body))
}

func TestOverview(t *testing.T) {
	resp, body := get(t, newTestApp(t, fakeSource{}), "/core/overview")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var overview map[string]any
	require.NoError(t, json.Unmarshal(body, &overview))
	assert.Equal(t, 2.0, overview["trains"])
	assert.Equal(t, 1.0, overview["runningTrains"])
	assert.Equal(t, 2.0, overview["busStops"])
}

func TestUpstreamErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: HTTP 503", source.UpstreamError), http.StatusBadGateway},
		{fmt.Errorf("%w: no results", source.UpstreamProtocolError), http.StatusBadGateway},
		{fmt.Errorf("something else"), http.StatusInternalServerError},
	}

	for _, test := range tests {
		resp, body := get(t, newTestApp(t, fakeSource{err: test.err}), "/core/stations")

		assert.Equal(t, test.status, resp.StatusCode, test.err.Error())
		assert.JSONEq(t, fmt.Sprintf(`{"error": %q}`, test.err.Error()), string(body))
	}
}

func TestMetrics(t *testing.T) {
	webApp := newTestApp(t, fakeSource{})

	get(t, webApp, "/core/operators")

	resp, body := get(t, webApp, "/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), "irishtransit_http_requests_total"))
}

func TestNotFound(t *testing.T) {
	resp, _ := get(t, newTestApp(t, fakeSource{}), "/core/nothing")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
