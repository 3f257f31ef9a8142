package query

type TrainPositions struct{}
