// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/jeososyal/internal/models"
)

// upstreamPingTimeout bounds the backend check of the health endpoint
const upstreamPingTimeout = 5 * time.Second

// Health handles health check requests
//
// @Summary Get service health status
// @Description Returns dataset state, upstream backend connectivity, last refresh time and uptime
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=models.HealthStatus} "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := models.HealthStatus{
		Status:  "healthy",
		Mode:    h.config.Mode(),
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}

	if snap, err := h.store.Snapshot(); err == nil {
		loadedAt := snap.LoadedAt
		health.DatasetLoaded = true
		health.DatasetVersion = snap.Version
		health.Provinces = snap.Len()
		health.LastRefreshTime = &loadedAt
	} else {
		health.Status = "degraded"
	}

	if h.upstream != nil {
		ctx, cancel := context.WithTimeout(r.Context(), upstreamPingTimeout)
		health.UpstreamConnected = h.upstream.Ping(ctx) == nil
		cancel()
		if !health.UpstreamConnected {
			health.Status = "degraded"
		}
	}

	NewResponseWriter(w, r).Success(health)
}

// HealthLive handles liveness check requests. It returns 200 while the
// process is able to serve HTTP at all.
//
// @Summary Liveness check
// @Description Returns 200 OK if the process is alive, regardless of dataset or backend state
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness check requests. The service is ready once a
// dataset snapshot is loaded; the upstream backend is optional and never
// blocks readiness.
//
// @Summary Readiness check
// @Description Returns 200 OK once a dataset is loaded, 503 before
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Service is ready"
// @Failure 503 {object} APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := h.store.Loaded()
	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	NewResponseWriter(w, r).Status(status, ready, map[string]interface{}{
		"dataset_loaded": ready,
		"ready_to_serve": ready,
		"uptime":         time.Since(h.startTime).Seconds(),
	})
}
