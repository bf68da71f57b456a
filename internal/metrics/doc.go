// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Requests in flight (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)

Dataset Metrics:
  - dataset_provinces: Provinces in the active snapshot (gauge)
  - dataset_version: Snapshot version counter (gauge)
  - dataset_reload_duration_seconds: Reload duration (histogram)
    Labels: source (seed, upstream)
  - dataset_reload_errors_total: Failed reloads (counter)
    Labels: source, error_type
  - dataset_last_reload_timestamp: Unix timestamp of last successful reload (gauge)

Map Core Metrics:
  - name_resolutions_total: Display name lookups (counter)
    Labels: outcome (exact, lowercase, substring, miss)
  - filter_evaluations_total: Full-map filter evaluations (counter)
    Labels: cached
  - filter_evaluation_duration_seconds: Uncached evaluation time (histogram)
  - unrecognized_inclinations_total: Inclination labels that fell back to negative (counter)

Upstream Metrics:
  - upstream_requests_total: Backend calls (counter)
    Labels: operation, result
  - upstream_request_duration_seconds: Backend latency (histogram)
  - upstream_retries_total: Retries after HTTP 429 (counter)
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total, circuit_breaker_consecutive_failures,
    circuit_breaker_state_transitions_total

Cache Metrics:
  - cache_hits_total / cache_misses_total: Lookups (counter)
    Labels: cache_type (filter, scores, analytics)
  - cache_entries: Current entries (gauge)

Example PromQL queries:

	# Share of display names that needed the substring fallback
	sum(rate(name_resolutions_total{outcome="substring"}[5m])) / sum(rate(name_resolutions_total[5m]))

	# Filter cache hit rate
	sum(rate(cache_hits_total{cache_type="filter"}[5m])) /
	  (sum(rate(cache_hits_total{cache_type="filter"}[5m])) + sum(rate(cache_misses_total{cache_type="filter"}[5m])))

# Thread Safety

All metric recording functions are thread-safe and designed for concurrent use
from multiple goroutines. The Prometheus client library handles synchronization
internally.

# Cardinality Management

Labels never carry user input. Unrecognized inclination labels are counted
without a label, and endpoint labels come from the request path only.
*/
package metrics
