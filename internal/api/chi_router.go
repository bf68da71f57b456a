// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/jeososyal/internal/middleware"
)

// SetupChi builds the HTTP route tree.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()
	h := router.handler

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(middleware.TrustedRealIP(router.trustedProxies))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog(middleware.DefaultSlowRequestThreshold))
	// CORS must be global to answer OPTIONS preflight before routing
	r.Use(router.chiMiddleware.CORS())
	// Dashboard clients call "provinces/" style paths
	r.Use(chimiddleware.StripSlashes)
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		// ========================
		// Health Endpoints
		// ========================
		r.Route("/health", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitHealth())
			r.Get("/", h.Health)
			r.Get("/live", h.HealthLive)
			r.Get("/ready", h.HealthReady)
		})

		// ========================
		// Province and Analytics Endpoints
		// ========================
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())

			r.Get("/provinces", h.Provinces)
			r.Get("/provinces/{id}/data", h.ProvinceData)
			r.Get("/provinces/{id}/realtime", h.ProvinceData)
			r.Post("/provinces/compare", h.CompareProvinces)
			r.Post("/provinces/hashtag-scores", h.HashtagScores)
			r.Get("/filters", h.Filters)

			r.Get("/national-agenda", h.NationalAgenda)
			r.Get("/weekly-trends", h.WeeklyTrends)
			r.Get("/regional-performance", h.RegionalPerformance)
			r.Get("/platform-comparison", h.PlatformComparison)
			r.Get("/social-media/city/{id}", h.CitySocial)
		})

		// ========================
		// Map Core Endpoints
		// ========================
		r.Route("/map", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitMap())
			r.Post("/filter-matches", h.FilterMatches)
			r.Get("/filter-matches/{id}", h.FilterMatch)
			r.Post("/colors", h.Colors)
			r.Get("/resolve", h.Resolve)
			r.Get("/features", h.Features)
		})
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
