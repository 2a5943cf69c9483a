package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Visitus
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Adapter Metrics
	GeocodeRequestsTotal prometheus.CounterVec
	PostalLookupsTotal   prometheus.CounterVec

	// Business Metrics
	VisitsRecordedTotal  prometheus.CounterVec
	DatasetMergesTotal   prometheus.Counter
	DatasetDownloadsTotal prometheus.CounterVec
	CacheHitsTotal       prometheus.CounterVec
	CacheMissesTotal     prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "visitus_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "visitus_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "visitus_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		GeocodeRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "visitus_geocode_requests_total",
				Help: "Total geocoding calls by outcome (ok, not_found, error)",
			},
			[]string{"outcome"},
		),
		PostalLookupsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "visitus_postal_lookups_total",
				Help: "Total postal code lookups by outcome (ok, invalid, error)",
			},
			[]string{"outcome"},
		),

		VisitsRecordedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "visitus_visits_recorded_total",
				Help: "Total visitor records appended, by tenant",
			},
			[]string{"tenant"},
		),
		DatasetMergesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "visitus_dataset_merges_total",
				Help: "Total multi-tenant dataset merges served",
			},
		),
		DatasetDownloadsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "visitus_dataset_downloads_total",
				Help: "Total dataset downloads by format (csv, xlsx)",
			},
			[]string{"format"},
		),
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "visitus_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "visitus_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
	}
}
