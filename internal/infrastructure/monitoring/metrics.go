package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of one process. Each instance
// owns its registry, so tests can create as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Transform metrics
	TransformsTotal   *prometheus.CounterVec
	TransformDuration prometheus.Histogram
	ChainDepth        prometheus.Histogram
}

// NewMetrics creates a metrics collector with a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sfcx_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sfcx_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method", "path"},
		),

		TransformsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sfcx_transforms_total",
				Help: "Total number of component transforms",
			},
			[]string{"status", "kind"},
		),
		TransformDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sfcx_transform_duration_seconds",
				Help:    "Component transform duration in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .5},
			},
		),
		ChainDepth: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sfcx_extends_chain_depth",
				Help:    "Number of ancestors resolved per transform",
				Buckets: []float64{0, 1, 2, 3, 4, 6, 8, 16},
			},
		),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records one served request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordTransform records one transform. kind is empty on success.
// A nil receiver records nothing.
func (m *Metrics) RecordTransform(kind string, duration time.Duration, depth int) {
	if m == nil {
		return
	}
	status := "ok"
	if kind != "" {
		status = "error"
	}
	m.TransformsTotal.WithLabelValues(status, kind).Inc()
	m.TransformDuration.Observe(duration.Seconds())
	if kind == "" {
		m.ChainDepth.Observe(float64(depth))
	}
}
