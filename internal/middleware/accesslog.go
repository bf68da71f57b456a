// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/jeososyal/internal/logging"
)

// DefaultSlowRequestThreshold is the duration above which a request is logged
// at warn level.
const DefaultSlowRequestThreshold = time.Second

// AccessLog logs every completed request through the request-scoped logger.
// Requests slower than threshold are logged at warn level, others at debug.
func AccessLog(threshold time.Duration) func(http.Handler) http.Handler {
	if threshold <= 0 {
		threshold = DefaultSlowRequestThreshold
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapper, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())
			event := logger.Debug()
			msg := "Request completed"
			if duration > threshold {
				event = logger.Warn().Dur("threshold", threshold)
				msg = "Slow request detected"
			}
			event.
				Str("method", r.Method).
				Str("route", RoutePattern(r)).
				Str("path", r.URL.Path).
				Int("status", wrapper.statusCode).
				Dur("duration", duration).
				Msg(msg)
		})
	}
}
