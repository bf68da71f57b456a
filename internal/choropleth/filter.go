// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package choropleth

import (
	"slices"
	"sync"

	"github.com/tomtom215/jeososyal/internal/logging"
	"github.com/tomtom215/jeososyal/internal/metrics"
	"github.com/tomtom215/jeososyal/internal/models"
)

// DefaultScore is assigned to visible provinces when no hashtag ranking was requested.
const DefaultScore = 1.5

// Tier thresholds, closed at the lower bound.
const (
	HighThreshold   = 1.2
	MediumThreshold = 0.8
	LowThreshold    = 0.4
)

// warnedLabels remembers inclination labels already logged so a bad dataset
// logs each label once instead of once per evaluation.
var warnedLabels sync.Map

// SentimentBucket maps an inclination label to a sentiment filter bucket.
// Unrecognized labels fall back to negative; the second result reports
// whether the label was recognized.
func SentimentBucket(inclination string) (string, bool) {
	switch inclination {
	case models.InclinationVeryPositive, models.InclinationPositive:
		return models.SentimentPositive, true
	case models.InclinationNeutral:
		return models.SentimentNeutral, true
	case models.InclinationNegative, models.InclinationVeryNegative:
		return models.SentimentNegative, true
	default:
		return models.SentimentNegative, false
	}
}

func bucketFor(p *models.Province) string {
	bucket, recognized := SentimentBucket(p.Inclination)
	if !recognized {
		metrics.UnrecognizedInclinations.Inc()
		if _, seen := warnedLabels.LoadOrStore(p.Inclination, struct{}{}); !seen {
			logging.Warn().
				Str("province_id", p.ID).
				Str("inclination", p.Inclination).
				Msg("Unrecognized inclination label, treating as negative")
		}
	}
	return bucket
}

// TierFor classifies a positive hashtag relevance score.
func TierFor(score float64) models.MatchType {
	switch {
	case score >= HighThreshold:
		return models.MatchHigh
	case score >= MediumThreshold:
		return models.MatchMedium
	case score >= LowThreshold:
		return models.MatchLow
	default:
		return models.MatchNone
	}
}

// Evaluate computes the filter outcome for one province. Every active
// dimension is checked; any rejection makes the province invisible.
// A nil or empty score lookup means no province has a hashtag score.
func Evaluate(p *models.Province, criteria *models.FilterCriteria, scores models.ScoreLookup) models.FilterMatchResult {
	visible := true

	if len(criteria.Regions) > 0 && !slices.Contains(criteria.Regions, p.Region) {
		visible = false
	}

	if len(criteria.Sentiment) > 0 && !slices.Contains(criteria.Sentiment, bucketFor(p)) {
		visible = false
	}

	if criteria.HasHashtags() {
		score, ok := scores.Score(p.ID)
		// NaN fails the > 0 test as well.
		if !ok || !(score > 0) {
			visible = false
		}
		if !visible {
			return models.NoMatch
		}
		return models.FilterMatchResult{Score: score, Type: TierFor(score), IsVisible: true}
	}

	if !visible {
		return models.NoMatch
	}
	return models.FilterMatchResult{Score: DefaultScore, Type: models.MatchHigh, IsVisible: true}
}

// MatchSet holds the filter outcome of every province for one criteria set.
// It is built in one pass and never mutated afterwards.
type MatchSet struct {
	criteria models.FilterCriteria
	results  map[string]models.FilterMatchResult
}

// EvaluateAll evaluates every province from scratch.
func EvaluateAll(provinces []models.Province, criteria models.FilterCriteria, scores models.ScoreLookup) *MatchSet {
	set := &MatchSet{
		criteria: criteria,
		results:  make(map[string]models.FilterMatchResult, len(provinces)),
	}
	for i := range provinces {
		set.results[provinces[i].ID] = Evaluate(&provinces[i], &criteria, scores)
	}
	return set
}

// Get returns the outcome for a province, or NoMatch when it was not evaluated.
func (m *MatchSet) Get(provinceID string) models.FilterMatchResult {
	if m == nil {
		return models.NoMatch
	}
	if r, ok := m.results[provinceID]; ok {
		return r
	}
	return models.NoMatch
}

// Criteria returns the criteria the set was evaluated with.
func (m *MatchSet) Criteria() models.FilterCriteria {
	if m == nil {
		return models.FilterCriteria{}
	}
	return m.criteria
}

// FiltersActive reports whether any dimension was constrained.
func (m *MatchSet) FiltersActive() bool {
	c := m.Criteria()
	return !c.IsEmpty()
}

// Results returns a copy of all outcomes keyed by province ID.
func (m *MatchSet) Results() map[string]models.FilterMatchResult {
	if m == nil {
		return map[string]models.FilterMatchResult{}
	}
	out := make(map[string]models.FilterMatchResult, len(m.results))
	for id, r := range m.results {
		out[id] = r
	}
	return out
}

// VisibleCount returns how many provinces passed every active filter.
func (m *MatchSet) VisibleCount() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, r := range m.results {
		if r.IsVisible {
			n++
		}
	}
	return n
}
