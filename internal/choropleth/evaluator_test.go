// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package choropleth

import (
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/jeososyal/internal/cache"
	"github.com/tomtom215/jeososyal/internal/models"
)

func TestEvaluator_Memoizes(t *testing.T) {
	t.Parallel()

	c := cache.New("filter-test", time.Minute)
	defer c.Close()
	e := NewEvaluator(c)
	provinces := scenarioProvinces()

	criteria := models.FilterCriteria{Regions: []string{models.RegionMarmara, models.RegionBlackSea}}
	first := e.Matches(1, provinces, criteria, nil)

	reordered := models.FilterCriteria{Regions: []string{models.RegionBlackSea, models.RegionMarmara, models.RegionMarmara}}
	second := e.Matches(1, provinces, reordered, nil)
	if first != second {
		t.Error("equivalent criteria should share a cached match set")
	}

	third := e.Matches(2, provinces, criteria, nil)
	if first == third {
		t.Error("a new dataset version must not reuse cached results")
	}

	withScores := e.Matches(1, provinces, criteria, models.ScoreLookup{"A": 1})
	if first == withScores {
		t.Error("different scores must not reuse cached results")
	}
}

func TestEvaluator_NilCache(t *testing.T) {
	t.Parallel()

	e := NewEvaluator(nil)
	set := e.Matches(1, scenarioProvinces(), models.FilterCriteria{}, nil)
	if set.VisibleCount() != 3 {
		t.Errorf("VisibleCount() = %d, want 3", set.VisibleCount())
	}
}

func TestCanonicalCriteria(t *testing.T) {
	t.Parallel()

	got := canonicalCriteria(models.FilterCriteria{
		Hashtags:  []string{"#b", "#a", "#b"},
		Sentiment: []string{"negative"},
	})
	want := models.FilterCriteria{
		Hashtags:  []string{"#a", "#b"},
		Sentiment: []string{"negative"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("canonicalCriteria() = %+v, want %+v", got, want)
	}
}
