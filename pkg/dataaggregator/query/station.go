package query

import "net/url"

type Stations struct {
	// StationType is one of A (all), M (mainline), S (suburban) or D (DART). Empty means all.
	StationType string
}

func (s *Stations) ToQueryParams() url.Values {
	if s.StationType == "" {
		return nil
	}

	return url.Values{
		"StationType": []string{s.StationType},
	}
}
