// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

/*
Package upstream provides the HTTP client for the optional Jeososyal REST
backend that owns the collected social media counters.

Two backend operations are used:

  - GET  provinces/                 raw per-province sentiment counts and ranked hashtags
  - POST provinces/hashtag-scores/  externally computed hashtag relevance scores

GET filters/ serves as a connectivity check.

# Resilience

Client applies three layers of protection, following the same pattern as the
other HTTP integrations of the service:

  - Client-side token bucket (golang.org/x/time/rate) so a refresh burst never
    floods the backend
  - Automatic HTTP 429 handling with exponential backoff, honoring Retry-After
  - BreakerClient wraps Client with a sony/gobreaker circuit breaker that opens
    at a 60% failure rate over at least 10 requests

# Degradation

Callers treat every error from this package as "backend unavailable". The
dataset loader keeps local data and the score provider returns an empty lookup,
so the map keeps working with the fallback score.

# Thread Safety

Client and BreakerClient are safe for concurrent use.
*/
package upstream
