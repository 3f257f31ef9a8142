package query

type BusStops struct{}
