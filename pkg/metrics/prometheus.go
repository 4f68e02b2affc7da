// Package metrics provides Prometheus metrics for the biodemo services.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dataset label values for RecordRecordsServed.
const (
	DatasetGenes    = "genes"
	DatasetPatients = "patients"
)

// Manager manages all Prometheus metrics for the biodemo services.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      map[string]string
	registry         prometheus.Registerer

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Catalog Metrics
	geneLookups       *prometheus.CounterVec
	recordsServed     *prometheus.CounterVec
	frontendFallbacks prometheus.Counter

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "biodemo",
		subsystem:        "http",
		histogramBuckets: []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000},
		enabled:          true,
		constLabels:      make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "requests_total",
			Help:        "Total number of HTTP requests by service, route, method and status",
			ConstLabels: m.constLabels,
		},
		[]string{"service", "route", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "request_duration_milliseconds",
			Help:        "HTTP request duration in milliseconds",
			Buckets:     m.histogramBuckets,
			ConstLabels: m.constLabels,
		},
		[]string{"service", "route", "method", "status_code"},
	)

	m.geneLookups = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   "catalog",
			Name:        "gene_lookups_total",
			Help:        "Gene by-id lookups partitioned by result (hit or miss)",
			ConstLabels: m.constLabels,
		},
		[]string{"result"},
	)

	m.recordsServed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   "catalog",
			Name:        "records_served_total",
			Help:        "Number of dataset records written to responses",
			ConstLabels: m.constLabels,
		},
		[]string{"dataset"},
	)

	m.frontendFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "frontend",
		Name:        "fallbacks_total",
		Help:        "Requests answered with the fallback entry document",
		ConstLabels: m.constLabels,
	})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   "system",
		Name:        "memory_usage_bytes",
		Help:        "Current heap allocation in bytes",
		ConstLabels: m.constLabels,
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   "system",
		Name:        "goroutine_count",
		Help:        "Current number of goroutines",
		ConstLabels: m.constLabels,
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   "system",
		Name:        "gc_pause_milliseconds",
		Help:        "Average garbage collection pause in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})
}

// RecordHTTPRequest counts one request and observes its duration.
func (m *Manager) RecordHTTPRequest(service, route, method, statusCode string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(service, route, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(service, route, method, statusCode).Observe(durationMs)
}

// RecordGeneLookup counts a by-id lookup.
func (m *Manager) RecordGeneLookup(found bool) {
	if !m.enabled {
		return
	}
	result := "miss"
	if found {
		result = "hit"
	}
	m.geneLookups.WithLabelValues(result).Inc()
}

// RecordRecordsServed adds n records of dataset to the served counter.
func (m *Manager) RecordRecordsServed(dataset string, n int) {
	if !m.enabled || n <= 0 {
		return
	}
	m.recordsServed.WithLabelValues(dataset).Add(float64(n))
}

// RecordFrontendFallback counts one fallback document response.
func (m *Manager) RecordFrontendFallback() {
	if !m.enabled {
		return
	}
	m.frontendFallbacks.Inc()
}

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func (m *Manager) UpdateSystemMemoryUsage(bytes uint64) {
	if !m.enabled {
		return
	}
	m.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func (m *Manager) UpdateSystemGoroutineCount(count int) {
	if !m.enabled {
		return
	}
	m.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime observes an average GC pause.
func (m *Manager) RecordSystemGCPauseTime(pauseMs float64) {
	if !m.enabled {
		return
	}
	m.systemGCPauseTime.Observe(pauseMs)
}

// Global convenience functions.

func RecordHTTPRequest(service, route, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(service, route, method, statusCode, durationMs)
}

func RecordGeneLookup(found bool) {
	globalManager.RecordGeneLookup(found)
}

func RecordRecordsServed(dataset string, n int) {
	globalManager.RecordRecordsServed(dataset, n)
}

func RecordFrontendFallback() {
	globalManager.RecordFrontendFallback()
}

func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.UpdateSystemMemoryUsage(bytes)
}

func UpdateSystemGoroutineCount(count int) {
	globalManager.UpdateSystemGoroutineCount(count)
}

func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.RecordSystemGCPauseTime(pauseMs)
}

// GetRegistry returns the registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Handler serves the global registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}
