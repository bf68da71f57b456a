// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package api

import (
	"net/http"

	"github.com/tomtom215/jeososyal/internal/config"
)

// Router wires the handler and middleware into a Chi route tree.
type Router struct {
	handler        *Handler
	chiMiddleware  *ChiMiddleware
	trustedProxies []string
}

// NewRouter creates a router. A nil config uses the defaults.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Router{
		handler:        handler,
		chiMiddleware:  NewChiMiddleware(ChiMiddlewareConfigFrom(&cfg.Security)),
		trustedProxies: cfg.Security.TrustedProxies,
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).NotFound("No route for " + r.Method + " " + sanitizeLogValue(r.URL.Path))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
}
