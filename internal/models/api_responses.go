// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package models

import "strings"

// CompareRequest is the body of POST /provinces/compare.
type CompareRequest struct {
	ProvinceIDs []string `json:"provinceIds" validate:"required,min=1,max=10,dive,required,max=64"`
}

// HashtagScoreRequest is the body of POST /provinces/hashtag-scores.
type HashtagScoreRequest struct {
	Hashtags []string `json:"hashtags" validate:"max=20,dive,required,max=140"`
}

// FilterMatchRequest is the body of POST /map/filter-matches.
type FilterMatchRequest struct {
	Criteria FilterCriteria `json:"criteria"`
}

// Normalize cleans the criteria before validation.
func (r *FilterMatchRequest) Normalize() { r.Criteria.Normalize() }

// ColorRequest is the body of POST /map/colors.
type ColorRequest struct {
	Criteria         FilterCriteria `json:"criteria"`
	SelectedID       string         `json:"selectedId" validate:"omitempty,max=64"`
	MultiSelectedIDs []string       `json:"multiSelectedIds" validate:"max=10,dive,required,max=64"`
	Theme            string         `json:"theme" validate:"omitempty,oneof=light dark"`
}

// Normalize cleans the criteria and selection before validation.
func (r *ColorRequest) Normalize() {
	r.Criteria.Normalize()
	r.SelectedID = strings.TrimSpace(r.SelectedID)
	r.MultiSelectedIDs = normalizeValues(r.MultiSelectedIDs)
}

// Normalize trims hashtags, drops blanks and removes duplicates.
func (r *HashtagScoreRequest) Normalize() { r.Hashtags = normalizeValues(r.Hashtags) }
