// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package models

import "strings"

// Province is the canonical province record served to the map and the side panels.
// JSON field names follow the dashboard contract (camelCase) rather than the envelope style.
type Province struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	MainHashtag string             `json:"mainHashtag"`
	Sentiment   SentimentBreakdown `json:"sentiment"`
	Inclination string             `json:"inclination"`
	Hashtags    []string           `json:"hashtags"`
	Region      string             `json:"region"`
	GeometryKey string             `json:"geometryKey,omitempty"` // Feature name used for geometry joins (defaults to Name)
}

// JoinKey returns the name used to join the province with geometry features.
func (p *Province) JoinKey() string {
	if p.GeometryKey != "" {
		return p.GeometryKey
	}
	return p.Name
}

// SentimentBreakdown holds sentiment percentages that sum to roughly 100.
type SentimentBreakdown struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// ProvinceScore is an externally computed hashtag relevance score for one province.
type ProvinceScore struct {
	ProvinceID string  `json:"provinceId"`
	Score      float64 `json:"score"`
}

// ScoreLookup indexes hashtag relevance scores by province ID.
// A nil lookup is valid and behaves as "no scores yet".
type ScoreLookup map[string]float64

// NewScoreLookup indexes a score list. Later entries for the same province win.
func NewScoreLookup(scores []ProvinceScore) ScoreLookup {
	lookup := make(ScoreLookup, len(scores))
	for _, s := range scores {
		lookup[s.ProvinceID] = s.Score
	}
	return lookup
}

// Score returns the score for a province and whether one is present.
func (l ScoreLookup) Score(provinceID string) (float64, bool) {
	if l == nil {
		return 0, false
	}
	score, ok := l[provinceID]
	return score, ok
}

// FilterCriteria is the set of user-selected constraints. Each empty list means no
// constraint on that dimension; dimensions are ANDed.
type FilterCriteria struct {
	Hashtags  []string `json:"hashtags" validate:"max=20,dive,required,max=140"`
	Regions   []string `json:"regions" validate:"max=7,dive,region"`
	Sentiment []string `json:"sentiment" validate:"max=3,dive,sentiment_bucket"`
}

// IsEmpty reports whether no dimension is constrained.
func (c *FilterCriteria) IsEmpty() bool {
	return len(c.Hashtags) == 0 && len(c.Regions) == 0 && len(c.Sentiment) == 0
}

// HasHashtags reports whether a hashtag filter is part of the active criteria.
// Blank entries do not count.
func (c *FilterCriteria) HasHashtags() bool {
	for _, h := range c.Hashtags {
		if strings.TrimSpace(h) != "" {
			return true
		}
	}
	return false
}

// Normalize trims every value, drops blanks and removes duplicates while
// keeping first-seen order. A dimension left empty no longer constrains.
func (c *FilterCriteria) Normalize() {
	c.Hashtags = normalizeValues(c.Hashtags)
	c.Regions = normalizeValues(c.Regions)
	c.Sentiment = normalizeValues(c.Sentiment)
}

func normalizeValues(values []string) []string {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// MatchType is the informational relevance tier of a filter match.
type MatchType string

// Match tiers, highest first.
const (
	MatchHigh   MatchType = "high"
	MatchMedium MatchType = "medium"
	MatchLow    MatchType = "low"
	MatchNone   MatchType = "none"
)

// FilterMatchResult is the derived per-province filter outcome. Score is only
// meaningful when IsVisible is true.
type FilterMatchResult struct {
	Score     float64   `json:"score"`
	Type      MatchType `json:"type"`
	IsVisible bool      `json:"isVisible"`
}

// NoMatch is returned for provinces without a computed result.
var NoMatch = FilterMatchResult{Score: 0, Type: MatchNone, IsVisible: false}

// Sentiment buckets used by the sentiment filter dimension.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// SentimentBuckets lists the valid sentiment filter values.
var SentimentBuckets = []string{SentimentPositive, SentimentNeutral, SentimentNegative}

// Inclination labels attached to provinces and platform records.
const (
	InclinationVeryPositive = "Çok Olumlu"
	InclinationPositive     = "Olumlu"
	InclinationNeutral      = "Nötr"
	InclinationNegative     = "Olumsuz"
	InclinationVeryNegative = "Çok Olumsuz"
)

// Region names. The set is fixed; provinces carry exactly one.
const (
	RegionCentralAnatolia      = "İç Anadolu Bölgesi"
	RegionEasternAnatolia      = "Doğu Anadolu Bölgesi"
	RegionSoutheasternAnatolia = "Güneydoğu Anadolu Bölgesi"
	RegionAegean               = "Ege Bölgesi"
	RegionMarmara              = "Marmara Bölgesi"
	RegionMediterranean        = "Akdeniz Bölgesi"
	RegionBlackSea             = "Karadeniz Bölgesi"
)

// Regions lists every region in display order.
var Regions = []string{
	RegionCentralAnatolia,
	RegionEasternAnatolia,
	RegionSoutheasternAnatolia,
	RegionAegean,
	RegionMarmara,
	RegionMediterranean,
	RegionBlackSea,
}

// IsRegion reports whether name is one of the known regions.
func IsRegion(name string) bool {
	for _, r := range Regions {
		if r == name {
			return true
		}
	}
	return false
}
