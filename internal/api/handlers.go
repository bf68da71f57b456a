// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package api

import (
	"time"

	"github.com/tomtom215/jeososyal/internal/cache"
	"github.com/tomtom215/jeososyal/internal/choropleth"
	"github.com/tomtom215/jeososyal/internal/config"
	"github.com/tomtom215/jeososyal/internal/dataset"
	"github.com/tomtom215/jeososyal/internal/geo"
	"github.com/tomtom215/jeososyal/internal/logging"
	"github.com/tomtom215/jeososyal/internal/scores"
	"github.com/tomtom215/jeososyal/internal/upstream"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, cache control (this file)
//   - handlers_helpers.go: request decoding and shared lookups
//   - handlers_health.go: health, liveness and readiness endpoints
//   - handlers_provinces.go: province list, detail, compare, hashtag scores
//   - handlers_analytics.go: national and per-city analytics panels
//   - handlers_map.go: filter matches, colors, name resolution, features
type Handler struct {
	config    *config.Config
	store     *dataset.Store
	scores    *scores.Provider
	evaluator *choropleth.Evaluator
	cache     *cache.Cache // analytics payloads
	upstream  upstream.API
	features  *geo.FeatureCollection
	palettes  map[choropleth.Theme]choropleth.Palette
	version   string
	startTime time.Time
	now       func() time.Time
}

// Dependencies are the collaborators of a Handler. Upstream and Features are
// optional; Cache, Scores and Evaluator get in-memory defaults when nil.
type Dependencies struct {
	Config    *config.Config
	Store     *dataset.Store
	Scores    *scores.Provider
	Evaluator *choropleth.Evaluator
	Cache     *cache.Cache
	Upstream  upstream.API
	Features  *geo.FeatureCollection
	Version   string
}

// NewHandler creates the API handler.
//
// Example:
//
//	handler := api.NewHandler(api.Dependencies{Config: cfg, Store: store})
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(":8081", router.SetupChi())
func NewHandler(deps Dependencies) *Handler {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if deps.Cache == nil {
		deps.Cache = cache.New("analytics", cfg.Cache.AnalyticsTTL)
	}
	if deps.Scores == nil {
		deps.Scores = scores.NewProvider(nil, nil)
	}
	if deps.Evaluator == nil {
		deps.Evaluator = choropleth.NewEvaluator(nil)
	}
	if deps.Version == "" {
		deps.Version = "dev"
	}

	palettes := make(map[choropleth.Theme]choropleth.Palette, 2)
	for _, theme := range []choropleth.Theme{choropleth.ThemeLight, choropleth.ThemeDark} {
		palettes[theme] = choropleth.PaletteFor(theme).WithAccents(cfg.Map.HighlightColor, cfg.Map.GlowColor)
	}

	return &Handler{
		config:    cfg,
		store:     deps.Store,
		scores:    deps.Scores,
		evaluator: deps.Evaluator,
		cache:     deps.Cache,
		upstream:  deps.Upstream,
		features:  deps.Features,
		palettes:  palettes,
		version:   deps.Version,
		startTime: time.Now(),
		now:       time.Now,
	}
}

// ClearCache drops cached analytics payloads. Registered on the dataset
// store so every snapshot swap serves fresh data.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		h.cache.Clear()
		logging.Debug().Msg("Analytics cache cleared")
	}
}

// palette returns the palette for a requested theme, falling back to the
// configured default.
func (h *Handler) palette(theme string) choropleth.Palette {
	if theme == "" {
		theme = h.config.Map.Theme
	}
	parsed, err := choropleth.ParseTheme(theme)
	if err != nil {
		parsed = choropleth.ThemeLight
	}
	return h.palettes[parsed]
}
