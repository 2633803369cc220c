// Package metrics defines Prometheus metrics for the fragmentor.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fragmentor_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fragmentor_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fragmentor_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	ExtractionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fragmentor_extractions_total",
			Help: "Total fragment extractions by outcome",
		},
		[]string{"outcome"},
	)

	ExtractionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fragmentor_extraction_duration_seconds",
			Help:    "Fragment extraction duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)

	WSConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "fragmentor_websocket_connections",
			Help: "Active WebSocket connections",
		},
	)

	MoleculeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "fragmentor_molecules_total",
			Help: "Total stored molecule count",
		},
	)

	FragmentCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "fragmentor_fragments_total",
			Help: "Total persisted fragment count",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		ExtractionsTotal, ExtractionDuration,
		WSConnections,
		MoleculeCount, FragmentCount,
	)
}
