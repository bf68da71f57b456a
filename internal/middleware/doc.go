// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

/*
Package middleware provides HTTP middleware shared by the API router.

  - RequestID: request and correlation IDs for tracing (X-Request-ID)
  - PrometheusMetrics: request count, duration and in-flight gauge labeled by
    chi route pattern
  - AccessLog: structured request log with slow request warnings
  - TrustedRealIP: chi's RealIP, applied only to requests from configured proxies

CORS, rate limiting and compression come from go-chi/cors, go-chi/httprate and
chi's middleware package and are assembled in the api package.

Ordering in the router:

	r.Use(middleware.RequestID) // IDs first so every log line has them
	r.Use(middleware.TrustedRealIP(proxies))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog(middleware.DefaultSlowRequestThreshold))
	// per API group:
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
