// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package models

// CityData is the detail payload shown when a province is clicked.
type CityData struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Region      string             `json:"region"`
	Inclination string             `json:"inclination"`
	Sentiment   SentimentBreakdown `json:"sentiment"`
	Topics      []TopicWeight      `json:"topics"`
	Hashtags    []string           `json:"hashtags"`
	WeeklyTrend []TrendPoint       `json:"weeklyTrend"`
}

// TopicWeight is a word-cloud entry.
type TopicWeight struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

// TrendPoint is one day of post volume labelled with the Turkish day abbreviation.
type TrendPoint struct {
	Day    string `json:"day"`
	Volume int64  `json:"volume"`
}

// TopicMention is a national agenda topic.
type TopicMention struct {
	Name     string  `json:"name"`
	Mentions float64 `json:"mentions"`
	Trend    float64 `json:"trend"`
}

// NationalAgenda aggregates every province into the national overview.
type NationalAgenda struct {
	Sentiment        SentimentBreakdown `json:"sentiment"`
	TopTopics        []TopicMention     `json:"topTopics"`
	NationalHashtags []string           `json:"nationalHashtags"`
}

// RegionalPerformance is a region's share of today's posts with its day-over-day trend.
type RegionalPerformance struct {
	Region     string  `json:"region"`
	Percentage float64 `json:"percentage"`
	Trend      string  `json:"trend"`
}

// PlatformSummary is the national view of one platform.
type PlatformSummary struct {
	Platform     string  `json:"platform"`
	Icon         string  `json:"icon"`
	AvgSentiment float64 `json:"avgSentiment"`
	TotalPosts   int64   `json:"totalPosts"`
	TopRegion    string  `json:"topRegion"`
	MainHashtag  string  `json:"mainHashtag"`
}

// PlatformDay is one day of per-platform post volume, keyed by icon.
type PlatformDay struct {
	Day       string `json:"day"`
	Twitter   int64  `json:"twitter"`
	Instagram int64  `json:"instagram"`
	Next      int64  `json:"next"`
}

// PlatformComparison is the national platform comparison payload.
type PlatformComparison struct {
	NationalSocial   []PlatformSummary `json:"nationalSocial"`
	WeeklyComparison []PlatformDay     `json:"weeklyComparison"`
}

// CitySocial is the per-platform breakdown for one province.
type CitySocial struct {
	Platform    string             `json:"platform"`
	Icon        string             `json:"icon"`
	Sentiment   SentimentBreakdown `json:"sentiment"`
	Posts       int64              `json:"posts"`
	MainHashtag string             `json:"mainHashtag"`
	TopTopic    string             `json:"topTopic"`
	Impact      float64            `json:"impact"`
}
