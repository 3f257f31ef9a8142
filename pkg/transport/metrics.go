package transport

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	reg *prometheus.Registry

	Requests *prometheus.CounterVec   // provider, outcome labels
	Duration *prometheus.HistogramVec // provider label
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		reg: reg,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "irishtransit_upstream_requests_total",
			Help: "Total requests made to upstream transit providers.",
		}, []string{"provider", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "irishtransit_upstream_request_duration_seconds",
			Help:    "Duration of upstream transit provider requests.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"provider"}),
	}

	reg.MustRegister(m.Requests, m.Duration)

	return m
}

func (m *Metrics) Observe(provider string, outcome string, startTime time.Time) {
	if m == nil {
		return
	}

	m.Requests.WithLabelValues(provider, outcome).Inc()
	m.Duration.WithLabelValues(provider).Observe(time.Since(startTime).Seconds())
}

// Register adds further collectors to the registry served by Handler
func (m *Metrics) Register(collectors ...prometheus.Collector) error {
	for _, collector := range collectors {
		if err := m.reg.Register(collector); err != nil {
			return err
		}
	}

	return nil
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
