// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package models

import (
	"sort"
	"time"
)

// SentimentCounts holds raw classified post counts. The YAML/JSON keys match the
// labels produced by the upstream classifier.
type SentimentCounts struct {
	Positive float64 `json:"Pozitif" yaml:"Pozitif"`
	Neutral  float64 `json:"Nötr" yaml:"Nötr"`
	Negative float64 `json:"Negatif" yaml:"Negatif"`
}

// Total returns the sum of all counts.
func (s SentimentCounts) Total() float64 {
	return s.Positive + s.Neutral + s.Negative
}

// Add returns the element-wise sum of two count sets.
func (s SentimentCounts) Add(o SentimentCounts) SentimentCounts {
	return SentimentCounts{
		Positive: s.Positive + o.Positive,
		Neutral:  s.Neutral + o.Neutral,
		Negative: s.Negative + o.Negative,
	}
}

// Platform display names and their icon keys.
const (
	PlatformX         = "X (Twitter)"
	PlatformInstagram = "Instagram"
	PlatformNSosyal   = "NSosyal"
)

// Platforms lists the tracked platforms in display order.
var Platforms = []string{PlatformX, PlatformInstagram, PlatformNSosyal}

// PlatformIcon maps a platform display name to the icon key used by the dashboard.
func PlatformIcon(platform string) string {
	switch platform {
	case PlatformX:
		return "twitter"
	case PlatformInstagram:
		return "instagram"
	case PlatformNSosyal:
		return "next"
	default:
		return ""
	}
}

// PlatformRecord is one day of activity for a province on a single platform.
type PlatformRecord struct {
	Platform  string             `json:"platform" yaml:"platform"`
	Date      time.Time          `json:"date" yaml:"date"`
	Posts     int64              `json:"posts" yaml:"posts"`
	Sentiment SentimentCounts    `json:"sentiment" yaml:"sentiment"`
	Hashtags  map[string]float64 `json:"hashtags,omitempty" yaml:"hashtags"`
	Topics    map[string]float64 `json:"topics,omitempty" yaml:"topics"`
}

// ProvinceRecord carries the raw counters from which a Province is derived.
type ProvinceRecord struct {
	ID          string             `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Region      string             `json:"region" yaml:"region"`
	GeometryKey string             `json:"geometryKey,omitempty" yaml:"geometry_key"`
	Sentiment   SentimentCounts    `json:"sentiment" yaml:"sentiment"`
	Hashtags    map[string]float64 `json:"hashtags,omitempty" yaml:"hashtags"`
	Topics      map[string]float64 `json:"topics,omitempty" yaml:"topics"`
	Platforms   []PlatformRecord   `json:"platforms,omitempty" yaml:"platforms"`
}

// Counted is a name with an aggregated count.
type Counted struct {
	Name  string
	Count float64
}

// RankCounts orders a count map by count descending. Ties order by name so the
// ranking is stable across runs.
func RankCounts(counts map[string]float64) []Counted {
	ranked := make([]Counted, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, Counted{Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}

// RankedNames returns the names of a count map ordered by RankCounts.
func RankedNames(counts map[string]float64) []string {
	ranked := RankCounts(counts)
	names := make([]string, len(ranked))
	for i, c := range ranked {
		names[i] = c.Name
	}
	return names
}

// MergeCounts adds every entry of src into dst and returns dst.
func MergeCounts(dst, src map[string]float64) map[string]float64 {
	if dst == nil {
		dst = make(map[string]float64, len(src))
	}
	for k, v := range src {
		dst[k] += v
	}
	return dst
}
