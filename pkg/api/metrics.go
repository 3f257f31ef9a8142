package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/travigo/irishtransit/pkg/transport"
)

type RequestMetrics struct {
	Requests *prometheus.CounterVec   // route, method, status labels
	Duration *prometheus.HistogramVec // route label
}

func NewRequestMetrics(metrics *transport.Metrics) (*RequestMetrics, error) {
	m := &RequestMetrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "irishtransit_http_requests_total",
			Help: "Total requests served by the web API.",
		}, []string{"route", "method", "status"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "irishtransit_http_request_duration_seconds",
			Help:    "Duration of web API requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}

	if err := metrics.Register(m.Requests, m.Duration); err != nil {
		return nil, err
	}

	return m, nil
}

// Handler must be registered before NewLogger, which writes handler errors to the response
func (m *RequestMetrics) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime := time.Now()
		err := c.Next()

		route := c.Route().Path

		m.Requests.WithLabelValues(route, c.Method(), strconv.Itoa(c.Response().StatusCode())).Inc()
		m.Duration.WithLabelValues(route).Observe(time.Since(startTime).Seconds())

		return err
	}
}
