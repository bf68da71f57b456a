// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/jeososyal/internal/analytics"
	"github.com/tomtom215/jeososyal/internal/models"
)

// analyticsParams keys day-dependent payloads. The day is part of the key so
// trends roll over at midnight even without a dataset refresh.
type analyticsParams struct {
	Day string `json:"day"`
	ID  string `json:"id,omitempty"`
}

func dayParams(now time.Time, id string) analyticsParams {
	return analyticsParams{Day: now.Format(time.DateOnly), ID: id}
}

// NationalAgenda returns the national sentiment, top topics and hashtags.
//
// @Summary National agenda
// @Description National sentiment percentages, top 10 topics with day-over-day trend and top 10 hashtags
// @Tags Analytics
// @Produce json
// @Success 200 {object} APIResponse{data=models.NationalAgenda}
// @Router /national-agenda [get]
func (h *Handler) NationalAgenda(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	now := h.now()
	agenda := cachedAnalytics(r.Context(), h, snap, "national-agenda", dayParams(now, ""), func() models.NationalAgenda {
		return analytics.NationalAgenda(snap.Records, now)
	})
	NewResponseWriter(w, r).SuccessWithMeta(agenda, &APIMeta{DatasetVersion: snap.Version})
}

// WeeklyTrends returns national post volume for the last six days.
//
// @Summary Weekly trends
// @Description Six days ending today, oldest first, labelled with Turkish day abbreviations
// @Tags Analytics
// @Produce json
// @Success 200 {object} APIResponse{data=[]models.TrendPoint}
// @Router /weekly-trends [get]
func (h *Handler) WeeklyTrends(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	now := h.now()
	trends := cachedAnalytics(r.Context(), h, snap, "weekly-trends", dayParams(now, ""), func() []models.TrendPoint {
		return analytics.WeeklyTrends(snap.Records, now)
	})
	NewResponseWriter(w, r).SuccessWithMeta(trends, &APIMeta{DatasetVersion: snap.Version})
}

// RegionalPerformance returns each region's share of today's posts.
//
// @Summary Regional performance
// @Description Per region share of today's posts and the day-over-day trend
// @Tags Analytics
// @Produce json
// @Success 200 {object} APIResponse{data=[]models.RegionalPerformance}
// @Router /regional-performance [get]
func (h *Handler) RegionalPerformance(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	now := h.now()
	regions := cachedAnalytics(r.Context(), h, snap, "regional-performance", dayParams(now, ""), func() []models.RegionalPerformance {
		return analytics.RegionalPerformance(snap.Records, now)
	})
	NewResponseWriter(w, r).SuccessWithMeta(regions, &APIMeta{DatasetVersion: snap.Version})
}

// PlatformComparison returns the national per-platform summary.
//
// @Summary Platform comparison
// @Description Per platform sentiment, post totals, top region and main hashtag, plus a 6-day volume comparison
// @Tags Analytics
// @Produce json
// @Success 200 {object} APIResponse{data=models.PlatformComparison}
// @Router /platform-comparison [get]
func (h *Handler) PlatformComparison(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	now := h.now()
	cmp := cachedAnalytics(r.Context(), h, snap, "platform-comparison", dayParams(now, ""), func() models.PlatformComparison {
		return analytics.PlatformComparison(snap.Records, now)
	})
	NewResponseWriter(w, r).SuccessWithMeta(cmp, &APIMeta{DatasetVersion: snap.Version})
}

// CitySocial returns the per-platform breakdown of one province.
//
// @Summary City social media breakdown
// @Description Per platform sentiment, posts, main hashtag, top topic and impact for one province
// @Tags Analytics
// @Produce json
// @Param id path string true "Province ID"
// @Success 200 {object} APIResponse{data=[]models.CitySocial}
// @Failure 404 {object} APIResponse "Unknown province"
// @Router /social-media/city/{id} [get]
func (h *Handler) CitySocial(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	id, ok := h.provinceRecord(w, r, snap)
	if !ok {
		return
	}
	social := cachedAnalytics(r.Context(), h, snap, "city-social", analyticsParams{ID: id}, func() []models.CitySocial {
		rec, _ := snap.Record(id)
		return analytics.CitySocial(rec)
	})
	NewResponseWriter(w, r).SuccessWithMeta(social, &APIMeta{DatasetVersion: snap.Version})
}
