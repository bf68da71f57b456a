// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/jeososyal/internal/choropleth"
	"github.com/tomtom215/jeososyal/internal/dataset"
	"github.com/tomtom215/jeososyal/internal/geo"
	"github.com/tomtom215/jeososyal/internal/logging"
	"github.com/tomtom215/jeososyal/internal/models"
)

// maxResolveNameLength bounds the name accepted by the resolve endpoint
const maxResolveNameLength = 200

// matchSet evaluates criteria against the snapshot. Hashtag scores are only
// fetched when a hashtag filter is active.
func (h *Handler) matchSet(ctx context.Context, snap *dataset.Snapshot, criteria models.FilterCriteria) (*choropleth.MatchSet, string, error) {
	var lookup models.ScoreLookup
	source := ""
	if criteria.HasHashtags() {
		result, err := h.scores.Scores(ctx, snap, criteria.Hashtags)
		if err != nil {
			return nil, "", err
		}
		lookup = result.Lookup()
		source = result.Source
	}
	return h.evaluator.Matches(snap.Version, snap.Provinces, criteria, lookup), source, nil
}

func (h *Handler) respondMatchError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) {
		respondCanceled(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Error().Err(err).Msg("Filter evaluation failed")
	NewResponseWriter(w, r).InternalError("Failed to evaluate filters")
}

// FilterMatches evaluates filter criteria for every province.
//
// @Summary Evaluate filters for all provinces
// @Description Returns a map of province ID to {score, type, isVisible}. Region and sentiment constraints are checked first; hashtag filters use relevance scores with tiers high >= 1.2, medium >= 0.8, low >= 0.4.
// @Tags Map
// @Accept json
// @Produce json
// @Param request body models.FilterMatchRequest true "Filter criteria"
// @Success 200 {object} APIResponse{data=map[string]models.FilterMatchResult}
// @Failure 400 {object} APIResponse "Invalid criteria"
// @Router /map/filter-matches [post]
func (h *Handler) FilterMatches(w http.ResponseWriter, r *http.Request) {
	var req models.FilterMatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	set, source, err := h.matchSet(r.Context(), snap, req.Criteria)
	if err != nil {
		h.respondMatchError(w, r, err)
		return
	}
	NewResponseWriter(w, r).SuccessWithMeta(set.Results(), &APIMeta{
		ScoreSource:    source,
		DatasetVersion: snap.Version,
	})
}

// FilterMatch evaluates filter criteria for one province. Provinces without
// a result, including unknown IDs, get the default {0, none, false}.
//
// @Summary Evaluate filters for one province
// @Tags Map
// @Produce json
// @Param id path string true "Province ID"
// @Param hashtags query string false "Comma-separated hashtags"
// @Param regions query string false "Comma-separated regions"
// @Param sentiment query string false "Comma-separated sentiment buckets (positive, neutral, negative)"
// @Success 200 {object} APIResponse{data=models.FilterMatchResult}
// @Failure 400 {object} APIResponse "Invalid criteria"
// @Router /map/filter-matches/{id} [get]
func (h *Handler) FilterMatch(w http.ResponseWriter, r *http.Request) {
	criteria := models.FilterCriteria{
		Hashtags:  queryList(r, "hashtags"),
		Regions:   queryList(r, "regions"),
		Sentiment: queryList(r, "sentiment"),
	}
	criteria.Normalize()
	if !validateRequest(w, r, &criteria) {
		return
	}
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	set, source, err := h.matchSet(r.Context(), snap, criteria)
	if err != nil {
		h.respondMatchError(w, r, err)
		return
	}
	NewResponseWriter(w, r).SuccessWithMeta(set.Get(chi.URLParam(r, "id")), &APIMeta{
		ScoreSource:    source,
		DatasetVersion: snap.Version,
	})
}

// Colors resolves the fill color of every province for one repaint.
//
// @Summary Resolve choropleth colors
// @Description Per province fill colors and a MapLibre match expression. Selected provinces glow; filtered-out provinces use the default fill; hashtag filters paint a lightness gradient by score.
// @Tags Map
// @Accept json
// @Produce json
// @Param request body models.ColorRequest true "Criteria, selection and theme"
// @Success 200 {object} APIResponse{data=models.ColorMap}
// @Failure 400 {object} APIResponse "Invalid request"
// @Router /map/colors [post]
func (h *Handler) Colors(w http.ResponseWriter, r *http.Request) {
	var req models.ColorRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	set, source, err := h.matchSet(r.Context(), snap, req.Criteria)
	if err != nil {
		h.respondMatchError(w, r, err)
		return
	}
	resolver := choropleth.NewColorResolver(h.palette(req.Theme), set, choropleth.Selection{
		SelectedID:       req.SelectedID,
		MultiSelectedIDs: req.MultiSelectedIDs,
	})
	NewResponseWriter(w, r).SuccessWithMeta(
		resolver.ColorMap(snap.Provinces, h.config.Dataset.NameProperty),
		&APIMeta{ScoreSource: source, DatasetVersion: snap.Version},
	)
}

// Resolve maps a geometry display name to a province. An unknown name is
// not an error: the response has matched=false.
//
// @Summary Resolve a display name
// @Description Exact, case-insensitive, diacritic-folded, alias and substring matching of a feature name to a province
// @Tags Map
// @Produce json
// @Param name query string true "Display name, e.g. Gumushane"
// @Success 200 {object} APIResponse{data=models.ResolveResult}
// @Failure 400 {object} APIResponse "Missing name"
// @Router /map/resolve [get]
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" || len(name) > maxResolveNameLength {
		NewResponseWriter(w, r).BadRequest("Query parameter 'name' is required (max 200 bytes)")
		return
	}
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	result := models.ResolveResult{Query: name}
	if p, found := snap.Resolver.Resolve(name); found {
		result.Matched = true
		result.Province = &p
	} else {
		logging.Ctx(r.Context()).Debug().Str("name", sanitizeLogValue(name)).Msg("Display name did not resolve")
	}
	NewResponseWriter(w, r).SuccessWithMeta(result, &APIMeta{DatasetVersion: snap.Version})
}

// Features returns the province binding of every configured geometry feature.
//
// @Summary Reconciled geometry features
// @Description Every feature of the configured GeoJSON with the province it resolves to
// @Tags Map
// @Produce json
// @Success 200 {object} APIResponse{data=[]models.FeatureBinding}
// @Failure 404 {object} APIResponse "No GeoJSON configured"
// @Router /map/features [get]
func (h *Handler) Features(w http.ResponseWriter, r *http.Request) {
	if h.features == nil {
		NewResponseWriter(w, r).NotFound("No geometry configured (set GEOJSON_PATH)")
		return
	}
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	bindings := cachedAnalytics(r.Context(), h, snap, "features", nil, func() []models.FeatureBinding {
		return geo.Reconcile(h.features, h.config.Dataset.NameProperty, snap.Resolver)
	})
	NewResponseWriter(w, r).SuccessWithMeta(bindings, &APIMeta{DatasetVersion: snap.Version})
}
