package query

type Operators struct{}
