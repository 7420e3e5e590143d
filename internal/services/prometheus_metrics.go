package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics
const (
	MetricSearchRequest     = "search_request"
	MetricSearchDuration    = "search_duration"
	MetricIndexBuild        = "index_build"
	MetricIndexBuildTime    = "index_build_duration"
	MetricIndexLoad         = "index_load"
	MetricIndexSize         = "index_size"
	MetricSummaryRequest    = "summary_request"
	MetricLLMRequest        = "llm_request"
	MetricLLMDuration       = "llm_duration"
	MetricCircuitBreakerSet = "circuit_breaker_state"
)

type PrometheusMetrics struct {
	searchRequests      *prometheus.CounterVec
	searchDuration      prometheus.Histogram
	indexBuilds         *prometheus.CounterVec
	indexBuildDuration  prometheus.Histogram
	indexLoads          *prometheus.CounterVec
	indexSize           prometheus.Gauge
	summaryRequests     *prometheus.CounterVec
	llmRequests         *prometheus.CounterVec
	llmDuration         prometheus.Histogram
	circuitBreakerState *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the service metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		searchRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_requests_total",
				Help: "Total number of similarity search requests",
			},
			[]string{"status"},
		),
		searchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "search_duration_seconds",
				Help:    "Similarity search duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		indexBuilds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "index_builds_total",
				Help: "Total number of index builds",
			},
			[]string{"status"},
		),
		indexBuildDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "index_build_duration_seconds",
				Help:    "Index build duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 14),
			},
		),
		indexLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "index_loads_total",
				Help: "Total number of snapshot loads",
			},
			[]string{"status"},
		),
		indexSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "index_transactions",
				Help: "Number of transactions in the published index snapshot",
			},
		),
		summaryRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "summary_requests_total",
				Help: "Total number of summary reports computed",
			},
			[]string{"operation"},
		),
		llmRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "llm_requests_total",
				Help: "Total number of language model requests",
			},
			[]string{"operation", "status"},
		),
		llmDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "llm_request_duration_seconds",
				Help:    "Language model request duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricSearchRequest:
		if status != "" {
			m.searchRequests.WithLabelValues(status).Inc()
		}
	case MetricIndexBuild:
		if status != "" {
			m.indexBuilds.WithLabelValues(status).Inc()
		}
	case MetricIndexLoad:
		if status != "" {
			m.indexLoads.WithLabelValues(status).Inc()
		}
	case MetricSummaryRequest:
		m.summaryRequests.WithLabelValues(tags["operation"]).Inc()
	case MetricLLMRequest:
		m.llmRequests.WithLabelValues(tags["operation"], status).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricSearchDuration:
		m.searchDuration.Observe(duration.Seconds())
	case MetricIndexBuildTime:
		m.indexBuildDuration.Observe(duration.Seconds())
	case MetricLLMDuration:
		m.llmDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricIndexSize:
		m.indexSize.Set(value)
	case MetricCircuitBreakerSet:
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}

type noopMetrics struct{}

// NewNoopMetrics returns a recorder that drops everything
func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}
