// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package models

import (
	"time"
)

// HealthStatus represents the health check response
type HealthStatus struct {
	Status            string     `json:"status"`
	Mode              string     `json:"mode"` // "local" (seed data only) or "upstream" (with backend refresh)
	Version           string     `json:"version"`
	DatasetLoaded     bool       `json:"dataset_loaded"`
	DatasetVersion    uint64     `json:"dataset_version"`
	Provinces         int        `json:"provinces"`
	UpstreamConnected bool       `json:"upstream_connected"`
	LastRefreshTime   *time.Time `json:"last_refresh_time,omitempty"`
	Uptime            float64    `json:"uptime_seconds"`
}

// FeatureBinding links one geometry feature name to a resolved province.
type FeatureBinding struct {
	FeatureName  string `json:"featureName"`
	ProvinceID   string `json:"provinceId,omitempty"`
	ProvinceName string `json:"provinceName,omitempty"`
	Matched      bool   `json:"matched"`
}

// ResolveResult is the response for display-name resolution. An unmatched name
// is a soft failure, not an error.
type ResolveResult struct {
	Query    string    `json:"query"`
	Matched  bool      `json:"matched"`
	Province *Province `json:"province,omitempty"`
}

// ColorMap is the per-province fill color for one repaint.
type ColorMap struct {
	Theme           string            `json:"theme"`
	Colors          map[string]string `json:"colors"`
	PaintExpression []interface{}     `json:"paintExpression"`
}
