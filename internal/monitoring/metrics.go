package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Parse metrics
	ParseAttempts *prometheus.CounterVec
	ParseDuration *prometheus.HistogramVec
}

// NewMetrics creates a metrics collector on its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipeparse_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recipeparse_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		ParseAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipeparse_parse_attempts_total",
				Help: "Total number of parse calls by winning method and outcome",
			},
			[]string{"parsing_method", "outcome"},
		),
		ParseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recipeparse_parse_duration_seconds",
				Help:    "Parse call duration in seconds by winning method",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"parsing_method"},
		),
	}

	registry.MustRegister(m.RequestsTotal, m.RequestDuration, m.ParseAttempts, m.ParseDuration)
	return m
}

// Registry exposes the private registry for the /metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordParse records one completed parse call.
func (m *Metrics) RecordParse(parsingMethod string, success bool, duration time.Duration) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.ParseAttempts.WithLabelValues(parsingMethod, outcome).Inc()
	m.ParseDuration.WithLabelValues(parsingMethod).Observe(duration.Seconds())
}
