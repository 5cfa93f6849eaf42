// Package metrics provides Prometheus metrics for the event sheet generator.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Document kinds used as label values.
const (
	KindEventSheet = "event_sheet"
	KindDigest     = "digest"
)

// Manager manages all Prometheus metrics for the generator.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	customLabels     map[string]string
	registry         prometheus.Registerer

	documentsGenerated *prometheus.CounterVec
	generationErrors   *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	pagesRendered      *prometheus.CounterVec
	lastPageCount      *prometheus.GaugeVec
	bytesWritten       *prometheus.CounterVec
	layoutPasses       prometheus.Counter

	storageReads       *prometheus.CounterVec
	storageReadLatency *prometheus.HistogramVec
	storageErrors      prometheus.Counter
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
		namespace:        "eventsheet",
		subsystem:        "generator",
		histogramBuckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		enabled:          true,
		customLabels:     make(map[string]string),
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

	m.documentsGenerated = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "documents_generated_total",
		Help:        "Total number of documents written to disk",
		ConstLabels: m.customLabels,
	}, []string{"kind"})

	m.generationErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "generation_errors_total",
		Help:        "Total number of failed generations by error kind",
		ConstLabels: m.customLabels,
	}, []string{"kind", "error"})

	m.generationDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "generation_duration_seconds",
		Help:        "Wall time of a full generation including both layout passes",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.customLabels,
	}, []string{"kind"})

	m.pagesRendered = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "pages_rendered_total",
		Help:        "Total number of pages emitted by render passes",
		ConstLabels: m.customLabels,
	}, []string{"kind"})

	m.lastPageCount = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "last_page_count",
		Help:        "Page count of the most recent document",
		ConstLabels: m.customLabels,
	}, []string{"kind"})

	m.bytesWritten = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "bytes_written_total",
		Help:        "Total bytes of document output written",
		ConstLabels: m.customLabels,
	}, []string{"kind"})

	m.layoutPasses = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "layout_passes_total",
		Help:        "Total number of layout passes (discovery and render)",
		ConstLabels: m.customLabels,
	})

	m.storageReads = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "storage",
		Name:        "reads_total",
		Help:        "Total number of storage queries by query name",
		ConstLabels: m.customLabels,
	}, []string{"query"})

	m.storageReadLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   "storage",
		Name:        "read_latency_seconds",
		Help:        "Latency of storage queries",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.customLabels,
	}, []string{"query"})

	m.storageErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "storage",
		Name:        "errors_total",
		Help:        "Total number of failed storage reads",
		ConstLabels: m.customLabels,
	})
}

// RecordDocument records a successfully written document.
func (m *Manager) RecordDocument(kind string, pages int, bytes int64, seconds float64) {
	if !m.enabled {
		return
	}
	m.documentsGenerated.WithLabelValues(kind).Inc()
	m.pagesRendered.WithLabelValues(kind).Add(float64(pages))
	m.lastPageCount.WithLabelValues(kind).Set(float64(pages))
	m.bytesWritten.WithLabelValues(kind).Add(float64(bytes))
	m.generationDuration.WithLabelValues(kind).Observe(seconds)
}

// RecordGenerationError records a failed generation.
func (m *Manager) RecordGenerationError(kind, errorKind string) {
	if !m.enabled {
		return
	}
	m.generationErrors.WithLabelValues(kind, errorKind).Inc()
}

// RecordLayoutPass records one layout pass.
func (m *Manager) RecordLayoutPass() {
	if !m.enabled {
		return
	}
	m.layoutPasses.Inc()
}

// RecordStorageRead records a storage query and its latency.
func (m *Manager) RecordStorageRead(query string, seconds float64) {
	if !m.enabled {
		return
	}
	m.storageReads.WithLabelValues(query).Inc()
	m.storageReadLatency.WithLabelValues(query).Observe(seconds)
}

// RecordStorageError records a failed storage read.
func (m *Manager) RecordStorageError() {
	if !m.enabled {
		return
	}
	m.storageErrors.Inc()
}

// Global convenience functions.

func RecordDocument(kind string, pages int, bytes int64, seconds float64) {
	globalManager.RecordDocument(kind, pages, bytes, seconds)
}

func RecordGenerationError(kind, errorKind string) {
	globalManager.RecordGenerationError(kind, errorKind)
}

func RecordLayoutPass() {
	globalManager.RecordLayoutPass()
}

func RecordStorageRead(query string, seconds float64) {
	globalManager.RecordStorageRead(query, seconds)
}

func RecordStorageError() {
	globalManager.RecordStorageError()
}

// GetRegistry returns the registry backing the global metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile writes the global metrics in the text exposition format, for
// pickup by a node exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, customRegistry); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}
