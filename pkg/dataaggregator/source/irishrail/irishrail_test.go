package irishrail

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/irishtransit/pkg/ctdf"
	"github.com/travigo/irishtransit/pkg/dataaggregator/query"
	"github.com/travigo/irishtransit/pkg/dataaggregator/source"
	"github.com/travigo/irishtransit/pkg/transport"
)

// newTestSource serves testdata/<path>.xml for every request and records the last query string
func newTestSource(t *testing.T) (Source, *url.Values) {
	t.Helper()

	lastQuery := &url.Values{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*lastQuery = r.URL.Query()

		name := strings.TrimPrefix(r.URL.Path, "/realtime/realtime.asmx/")
		if name == "getAllStationsXML_WithStationType" {
			name = "getAllStationsXML"
		}

		body, err := os.ReadFile(filepath.Join("testdata", name+".xml"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		w.Write(body)
	}))
	t.Cleanup(server.Close)

	return Source{
		Endpoint:  server.URL + "/realtime/realtime.asmx",
		Transport: transport.NewClient(5*time.Second, "", nil),
	}, lastQuery
}

func TestTrainPositionsQuery(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestSource(t)

	trainPositions, err := s.TrainPositionsQuery(context.Background(), query.TrainPositions{})
	require.NoError(t, err)
	require.Len(t, trainPositions, 3)

	assert.Equal("E109", trainPositions[0].Code)
	assert.Equal(ctdf.TrainStatusRunning, trainPositions[0].Status)
	assert.Equal(53.3531, trainPositions[0].Location.Latitude)
	assert.Equal(-6.24591, trainPositions[0].Location.Longitude)
	assert.Equal("Southbound", trainPositions[0].Direction)

	assert.Equal(ctdf.TrainStatusNotRunning, trainPositions[1].Status)
	assert.Equal(ctdf.TrainStatus("T"), trainPositions[2].Status)

	for _, trainPosition := range trainPositions {
		assert.Equal(trainPositions[0].SearchTime, trainPosition.SearchTime)
		assert.Equal("irishrail-xml", trainPosition.DataSource.OriginalFormat)
	}
	assert.False(trainPositions[0].SearchTime.IsZero())
}

func TestTrainMovementsQuery(t *testing.T) {
	assert := assert.New(t)

	s, lastQuery := newTestSource(t)

	trainMovements, err := s.TrainMovementsQuery(context.Background(), query.TrainMovements{
		TrainCode: "E109",
		TrainDate: "21 Dec 2011",
	})
	require.NoError(t, err)
	require.Len(t, trainMovements, 3)

	assert.Equal("E109", lastQuery.Get("TrainId"))
	assert.Equal("21 Dec 2011", lastQuery.Get("TrainDate"))

	assert.Equal(ctdf.LocationTypeOrigin, trainMovements[0].Location.Type)
	assert.Equal(ctdf.LocationTypeStop, trainMovements[1].Location.Type)
	assert.Equal(ctdf.LocationTypeDestination, trainMovements[2].Location.Type)
	assert.Equal(30, trainMovements[2].Location.Order)
	assert.Equal("10:31:12", trainMovements[0].Actual.Departure)
	assert.Equal("Greystones", trainMovements[1].Terminii.To)
}

func TestStationsQuery(t *testing.T) {
	assert := assert.New(t)

	s, lastQuery := newTestSource(t)

	stations, err := s.StationsQuery(context.Background(), query.Stations{})
	require.NoError(t, err)
	require.Len(t, stations, 2)
	assert.Empty(lastQuery.Get("StationType"))

	assert.Equal("CNLLY", stations[0].Code)
	assert.Equal("100", stations[0].ID)
	assert.Equal("", stations[1].Alias)
	assert.Equal(54.6123, stations[1].Location.Latitude)

	_, err = s.StationsQuery(context.Background(), query.Stations{StationType: "D"})
	require.NoError(t, err)
	assert.Equal("D", lastQuery.Get("StationType"))
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestSource(t)

	result, err := s.Lookup(context.Background(), query.Stations{})
	assert.NoError(err)
	assert.IsType([]*ctdf.Station{}, result)

	_, err = s.Lookup(context.Background(), query.BusStops{})
	assert.ErrorIs(err, source.UnsupportedSourceError)
}

func TestUnexpectedRootElement(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0" encoding="utf-8"?><ArrayOfObjStation xmlns="http://api.irishrail.ie/realtime/"></ArrayOfObjStation>`))
	}))
	defer server.Close()

	s := Source{
		Endpoint:  server.URL,
		Transport: transport.NewClient(5*time.Second, "", nil),
	}

	_, err := s.TrainPositionsQuery(context.Background(), query.TrainPositions{})
	assert.ErrorIs(t, err, source.UpstreamProtocolError)
}

func TestEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0" encoding="utf-8"?><ArrayOfObjTrainPositions xmlns="http://api.irishrail.ie/realtime/" />`))
	}))
	defer server.Close()

	s := Source{
		Endpoint:  server.URL,
		Transport: transport.NewClient(5*time.Second, "", nil),
	}

	trainPositions, err := s.TrainPositionsQuery(context.Background(), query.TrainPositions{})
	assert.NoError(t, err)
	assert.NotNil(t, trainPositions)
	assert.Empty(t, trainPositions)
}

func TestUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	s := Source{
		Endpoint:  server.URL,
		Transport: transport.NewClient(5*time.Second, "", nil),
	}

	_, err := s.StationsQuery(context.Background(), query.Stations{})
	assert.ErrorIs(t, err, source.UpstreamError)
}
