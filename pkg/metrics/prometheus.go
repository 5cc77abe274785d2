// Package metrics provides Prometheus metrics for the grapplerank dashboard service.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Dataset ingestion
	datasetLoads    *prometheus.CounterVec
	rowsParsed      *prometheus.CounterVec
	rowsDropped     *prometheus.CounterVec
	datasetRows     *prometheus.GaugeVec
	loadDuration    prometheus.Histogram
	snapshotLastUTC prometheus.Gauge

	// Derived views
	derivations *prometheus.CounterVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByEndpoint *prometheus.CounterVec
	errorRateByType     *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

var runtimeOnce sync.Once //nolint:gochecknoglobals // guards collector registration

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "grapplerank",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every metric
	auto := promauto.With(m.registry)

	m.datasetLoads = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "dataset_loads_total",
			Help:      "Dataset load attempts by dataset and outcome",
		},
		[]string{"dataset", "outcome"},
	)

	m.rowsParsed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "rows_parsed_total",
			Help:      "Data rows kept after parsing",
		},
		[]string{"dataset"},
	)

	m.rowsDropped = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "rows_dropped_total",
			Help:      "Data rows dropped because the identity field was empty",
		},
		[]string{"dataset"},
	)

	m.datasetRows = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "dataset_rows",
			Help:      "Records held by the current snapshot",
		},
		[]string{"dataset"},
	)

	m.loadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "load_duration_milliseconds",
		Help:      "Time spent fetching and parsing both datasets",
		Buckets:   m.histogramBuckets,
	})

	m.snapshotLastUTC = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_last_unix",
		Help:      "Unix time of the last completed load",
	})

	m.derivations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "derivations_total",
			Help:      "Derived views computed, by view",
		},
		[]string{"view"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "HTTP errors by endpoint, method and error type",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.errorRateByType = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_type_total",
			Help:      "HTTP errors by type and severity",
		},
		[]string{"error_type", "severity"},
	)
}

// RecordDatasetLoad counts a load attempt; outcome is "ok" or "failed".
func (m *Manager) RecordDatasetLoad(dataset, outcome string) {
	m.datasetLoads.WithLabelValues(dataset, outcome).Inc()
}

// RecordRows records parse results for one dataset.
func (m *Manager) RecordRows(dataset string, kept, dropped int) {
	m.rowsParsed.WithLabelValues(dataset).Add(float64(kept))
	m.rowsDropped.WithLabelValues(dataset).Add(float64(dropped))
	m.datasetRows.WithLabelValues(dataset).Set(float64(kept))
}

// RecordLoad records a completed load and its duration.
func (m *Manager) RecordLoad(d time.Duration, at time.Time) {
	m.loadDuration.Observe(float64(d.Milliseconds()))
	m.snapshotLastUTC.Set(float64(at.Unix()))
}

// RecordDerivation counts one computation of a derived view.
func (m *Manager) RecordDerivation(view string) {
	m.derivations.WithLabelValues(view).Inc()
}

// RecordHTTPRequest records an HTTP request with its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordHTTPError records an HTTP error by endpoint and type.
func (m *Manager) RecordHTTPError(endpoint, method, errorType, severity string) {
	m.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	m.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// Package-level helpers delegating to the global manager.

// RecordDatasetLoad counts a load attempt on the global manager.
func RecordDatasetLoad(dataset, outcome string) {
	globalManager.RecordDatasetLoad(dataset, outcome)
}

// RecordRows records parse results on the global manager.
func RecordRows(dataset string, kept, dropped int) {
	globalManager.RecordRows(dataset, kept, dropped)
}

// RecordLoad records a completed load on the global manager.
func RecordLoad(d time.Duration, at time.Time) {
	globalManager.RecordLoad(d, at)
}

// RecordDerivation counts a derived view on the global manager.
func RecordDerivation(view string) {
	globalManager.RecordDerivation(view)
}

// RecordHTTPRequest records an HTTP request on the global manager.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// RecordHTTPError records an HTTP error on the global manager.
func RecordHTTPError(endpoint, method, errorType, severity string) {
	globalManager.RecordHTTPError(endpoint, method, errorType, severity)
}

// GetRegistry returns the custom registry used for metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RegisterRuntimeCollectors adds the Go runtime and process collectors to the
// custom registry. Safe to call more than once.
func RegisterRuntimeCollectors() {
	runtimeOnce.Do(func() {
		customRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	})
}
