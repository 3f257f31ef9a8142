package source

import "errors"

var UnsupportedSourceError = errors.New("Data source does not support this query")

var InvalidArgumentError = errors.New("invalid argument")
var UpstreamError = errors.New("upstream error")
var UpstreamProtocolError = errors.New("upstream protocol error")
