// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package choropleth

import (
	"sort"
	"time"

	"github.com/tomtom215/jeososyal/internal/cache"
	"github.com/tomtom215/jeososyal/internal/metrics"
	"github.com/tomtom215/jeososyal/internal/models"
)

// Evaluator memoizes full-map evaluations keyed by (dataset version,
// criteria, scores). Results are always recomputed from scratch on a miss.
type Evaluator struct {
	cache *cache.Cache
}

// NewEvaluator returns an evaluator backed by c. A nil cache disables memoization.
func NewEvaluator(c *cache.Cache) *Evaluator {
	return &Evaluator{cache: c}
}

type matchKey struct {
	Version  uint64                `json:"v"`
	Criteria models.FilterCriteria `json:"c"`
	Scores   models.ScoreLookup    `json:"s"`
}

// Matches returns the match set for the given dataset version and inputs.
func (e *Evaluator) Matches(version uint64, provinces []models.Province, criteria models.FilterCriteria, scores models.ScoreLookup) *MatchSet {
	if e == nil || e.cache == nil {
		return e.evaluate(provinces, criteria, scores)
	}

	key := cache.GenerateKey("filter", matchKey{
		Version:  version,
		Criteria: canonicalCriteria(criteria),
		Scores:   scores,
	})
	if cached, ok := e.cache.Get(key); ok {
		if set, typed := cached.(*MatchSet); typed {
			metrics.RecordFilterEvaluation(0, true)
			return set
		}
	}
	set := e.evaluate(provinces, criteria, scores)
	e.cache.Set(key, set)
	return set
}

func (e *Evaluator) evaluate(provinces []models.Province, criteria models.FilterCriteria, scores models.ScoreLookup) *MatchSet {
	start := time.Now()
	set := EvaluateAll(provinces, criteria, scores)
	metrics.RecordFilterEvaluation(time.Since(start), false)
	return set
}

// canonicalCriteria sorts and dedupes each dimension so equivalent criteria share a key.
func canonicalCriteria(c models.FilterCriteria) models.FilterCriteria {
	return models.FilterCriteria{
		Hashtags:  sortedUnique(c.Hashtags),
		Regions:   sortedUnique(c.Regions),
		Sentiment: sortedUnique(c.Sentiment),
	}
}

func sortedUnique(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := append([]string(nil), values...)
	sort.Strings(out)
	n := 1
	for i := 1; i < len(out); i++ {
		if out[i] != out[n-1] {
			out[n] = out[i]
			n++
		}
	}
	return out[:n]
}
