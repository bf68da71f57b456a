// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/jeososyal/internal/analytics"
	"github.com/tomtom215/jeososyal/internal/models"
)

// Provinces lists every province of the current dataset.
//
// @Summary List provinces
// @Description Returns every province with sentiment percentages, inclination, ranked hashtags and region
// @Tags Provinces
// @Produce json
// @Success 200 {object} APIResponse{data=[]models.Province}
// @Failure 503 {object} APIResponse "Dataset not loaded"
// @Router /provinces [get]
func (h *Handler) Provinces(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	NewResponseWriter(w, r).SuccessWithMeta(snap.Provinces, &APIMeta{DatasetVersion: snap.Version})
}

// ProvinceData returns the detail panel of one province. The realtime route
// serves the same payload.
//
// @Summary Province detail
// @Description Sentiment, word-cloud topics, hashtags and the 6-day post trend of one province
// @Tags Provinces
// @Produce json
// @Param id path string true "Province ID"
// @Success 200 {object} APIResponse{data=models.CityData}
// @Failure 404 {object} APIResponse "Unknown province"
// @Failure 503 {object} APIResponse "Dataset not loaded"
// @Router /provinces/{id}/data [get]
func (h *Handler) ProvinceData(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	id, ok := h.provinceRecord(w, r, snap)
	if !ok {
		return
	}
	now := h.now()
	detail := cachedAnalytics(r.Context(), h, snap, "province-detail", dayParams(now, id), func() models.CityData {
		rec, _ := snap.Record(id)
		return analytics.ProvinceDetail(rec, now)
	})
	NewResponseWriter(w, r).SuccessWithMeta(detail, &APIMeta{DatasetVersion: snap.Version})
}

// CompareProvinces returns the detail panels of up to ten provinces.
//
// @Summary Compare provinces
// @Description Detail payloads for 1 to 10 provinces, in request order
// @Tags Provinces
// @Accept json
// @Produce json
// @Param request body models.CompareRequest true "Province IDs"
// @Success 200 {object} APIResponse{data=[]models.CityData}
// @Failure 400 {object} APIResponse "Invalid request"
// @Failure 404 {object} APIResponse "Unknown province"
// @Router /provinces/compare [post]
func (h *Handler) CompareProvinces(w http.ResponseWriter, r *http.Request) {
	var req models.CompareRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	now := h.now()
	out := make([]models.CityData, 0, len(req.ProvinceIDs))
	for _, id := range req.ProvinceIDs {
		rec, err := snap.Record(id)
		if err != nil {
			NewResponseWriter(w, r).NotFound("Province not found: " + id)
			return
		}
		out = append(out, analytics.ProvinceDetail(rec, now))
	}
	NewResponseWriter(w, r).SuccessWithMeta(out, &APIMeta{DatasetVersion: snap.Version})
}

// HashtagScores returns the relevance score of every province for a hashtag set.
//
// @Summary Hashtag relevance scores
// @Description Scores from the upstream backend when enabled, otherwise computed from local hashtag counters. Backend failures yield an empty list with score_source "none".
// @Tags Provinces
// @Accept json
// @Produce json
// @Param request body models.HashtagScoreRequest true "Hashtags"
// @Success 200 {object} APIResponse{data=[]models.ProvinceScore}
// @Failure 400 {object} APIResponse "Invalid request"
// @Router /provinces/hashtag-scores [post]
func (h *Handler) HashtagScores(w http.ResponseWriter, r *http.Request) {
	var req models.HashtagScoreRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	result, err := h.scores.Scores(r.Context(), snap, req.Hashtags)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			respondCanceled(w, r, err)
			return
		}
		NewResponseWriter(w, r).InternalError("Failed to compute hashtag scores")
		return
	}
	NewResponseWriter(w, r).SuccessWithMeta(result.Scores, &APIMeta{
		ScoreSource:    result.Source,
		DatasetVersion: snap.Version,
	})
}

// Filters returns every hashtag known to the dataset, most used first.
//
// @Summary Hashtag filter options
// @Description All hashtags summed over provinces, ordered by count descending
// @Tags Provinces
// @Produce json
// @Success 200 {object} APIResponse{data=[]string}
// @Router /filters [get]
func (h *Handler) Filters(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	tags := cachedAnalytics(r.Context(), h, snap, "filters", nil, func() []string {
		return analytics.GlobalHashtags(snap.Records)
	})
	NewResponseWriter(w, r).SuccessWithMeta(tags, &APIMeta{DatasetVersion: snap.Version})
}
