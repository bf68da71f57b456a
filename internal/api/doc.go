// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

/*
Package api provides the HTTP API of the Jeososyal service.

Routes are served by a Chi router (see SetupChi) under /api/v1:

  - /health, /health/live, /health/ready: service, liveness and readiness status
  - /provinces, /provinces/{id}/data, /provinces/{id}/realtime: province list and detail
  - /provinces/compare, /provinces/hashtag-scores: multi-province payloads
  - /filters, /national-agenda, /weekly-trends, /regional-performance,
    /platform-comparison, /social-media/city/{id}: dashboard side panels
  - /map/filter-matches, /map/colors, /map/resolve, /map/features: the map core

Plus /metrics (Prometheus) and /swagger/* (API documentation).

Response Format:

Every endpoint answers with the same envelope:

	{
	  "success": true,
	  "data": {...},
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 1}
	}

Errors set success=false and an error object with a machine-readable code
(BAD_REQUEST, VALIDATION_FAILED, NOT_FOUND, SERVICE_UNAVAILABLE, ...).
Endpoints that need the dataset answer 503 until the first snapshot is loaded.

Middleware:

Request IDs, access logging, CORS (go-chi/cors), per-IP rate limiting
(go-chi/httprate), security headers, response compression and Prometheus
request metrics labelled by route pattern.

Caching:

Analytics payloads are memoized per dataset version (and per day for
trend-based payloads). The handler cache is cleared on every snapshot swap.
*/
package api
