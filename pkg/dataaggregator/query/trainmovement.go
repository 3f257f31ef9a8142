package query

import "net/url"

type TrainMovements struct {
	TrainCode string
	TrainDate string
}

func (t *TrainMovements) ToQueryParams() url.Values {
	return url.Values{
		"TrainId":   []string{t.TrainCode},
		"TrainDate": []string{t.TrainDate},
	}
}
