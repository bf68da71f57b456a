// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the map service:
// - API endpoint latency and throughput
// - Dataset loads and scheduled refreshes
// - Name resolution and filter evaluation outcomes
// - Upstream backend calls and circuit breaker state
// - Cache efficiency

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Dataset Metrics
	DatasetProvinces = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_provinces",
			Help: "Number of provinces in the active dataset snapshot",
		},
	)

	DatasetVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_version",
			Help: "Version counter of the active dataset snapshot",
		},
	)

	DatasetReloadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_reload_duration_seconds",
			Help:    "Duration of dataset reloads in seconds",
			Buckets: []float64{.01, .05, .1, .5, 1, 5, 10, 30},
		},
		[]string{"source"}, // "seed", "upstream"
	)

	DatasetReloadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_reload_errors_total",
			Help: "Total number of failed dataset reloads",
		},
		[]string{"source", "error_type"},
	)

	DatasetLastReload = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_last_reload_timestamp",
			Help: "Unix timestamp of the last successful dataset reload",
		},
	)

	// Map Core Metrics
	NameResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "name_resolutions_total",
			Help: "Total number of display name resolutions by outcome",
		},
		[]string{"outcome"}, // "exact", "lowercase", "substring", "miss"
	)

	FilterEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filter_evaluations_total",
			Help: "Total number of full-map filter evaluations",
		},
		[]string{"cached"},
	)

	FilterEvaluationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "filter_evaluation_duration_seconds",
			Help:    "Duration of full-map filter evaluations in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		},
	)

	UnrecognizedInclinations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "unrecognized_inclinations_total",
			Help: "Inclination labels that fell back to the negative sentiment bucket",
		},
	)

	// Upstream Backend Metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests to the upstream backend",
		},
		[]string{"operation", "result"}, // result: "success", "error"
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Duration of upstream backend requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	UpstreamRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_retries_total",
			Help: "Total number of upstream retries after HTTP 429",
		},
		[]string{"operation"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "filter", "scores", "analytics"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordDatasetReload records a dataset reload from the given source
func RecordDatasetReload(source string, duration time.Duration, provinces int, version uint64, err error) {
	DatasetReloadDuration.WithLabelValues(source).Observe(duration.Seconds())
	if err != nil {
		errorType := "other"
		errorMsg := err.Error()
		switch {
		case contains(errorMsg, "upstream"):
			errorType = "upstream"
		case contains(errorMsg, "seed"):
			errorType = "seed_file"
		case contains(errorMsg, "decode"), contains(errorMsg, "parse"):
			errorType = "decode"
		}
		DatasetReloadErrors.WithLabelValues(source, errorType).Inc()
		return
	}
	DatasetProvinces.Set(float64(provinces))
	DatasetVersion.Set(float64(version))
	DatasetLastReload.Set(float64(time.Now().Unix()))
}

// RecordNameResolution records the outcome of a display name lookup
func RecordNameResolution(outcome string) {
	NameResolutions.WithLabelValues(outcome).Inc()
}

// RecordFilterEvaluation records a full-map filter evaluation
func RecordFilterEvaluation(duration time.Duration, cached bool) {
	if cached {
		FilterEvaluations.WithLabelValues("true").Inc()
		return
	}
	FilterEvaluations.WithLabelValues("false").Inc()
	FilterEvaluationDuration.Observe(duration.Seconds())
}

// RecordUpstreamRequest records a call to the upstream backend
func RecordUpstreamRequest(operation string, duration time.Duration, err error) {
	UpstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		UpstreamRequestsTotal.WithLabelValues(operation, "error").Inc()
		return
	}
	UpstreamRequestsTotal.WithLabelValues(operation, "success").Inc()
}

// RecordCacheLookup records a cache hit or miss for the given cache
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}

// Helper function to check if string contains substring
func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
