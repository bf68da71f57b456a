// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package analytics

import (
	"time"

	"github.com/tomtom215/jeososyal/internal/models"
	"github.com/tomtom215/jeososyal/internal/sentiment"
)

// DetailListLimit caps the hashtags and topics returned in a province detail.
const DetailListLimit = 10

// Normalize fills province-level counters that are missing from a record by
// summing its platform records. Counters present on the record are kept.
func Normalize(rec models.ProvinceRecord) models.ProvinceRecord {
	if rec.Sentiment.Total() == 0 {
		var sum models.SentimentCounts
		for _, p := range rec.Platforms {
			sum = sum.Add(p.Sentiment)
		}
		rec.Sentiment = sum
	}
	if len(rec.Hashtags) == 0 {
		var merged map[string]float64
		for _, p := range rec.Platforms {
			merged = models.MergeCounts(merged, p.Hashtags)
		}
		rec.Hashtags = merged
	}
	if len(rec.Topics) == 0 {
		var merged map[string]float64
		for _, p := range rec.Platforms {
			merged = models.MergeCounts(merged, p.Topics)
		}
		rec.Topics = merged
	}
	return rec
}

// Derive builds the served province from a normalized record.
func Derive(rec *models.ProvinceRecord) models.Province {
	hashtags := models.RankedNames(rec.Hashtags)
	mainHashtag := ""
	if len(hashtags) > 0 {
		mainHashtag = hashtags[0]
	}
	return models.Province{
		ID:          rec.ID,
		Name:        rec.Name,
		MainHashtag: mainHashtag,
		Sentiment:   sentiment.Percentages(rec.Sentiment),
		Inclination: sentiment.InclinationFor(rec.Sentiment),
		Hashtags:    hashtags,
		Region:      rec.Region,
		GeometryKey: rec.GeometryKey,
	}
}

// DeriveAll derives every record in order.
func DeriveAll(records []models.ProvinceRecord) []models.Province {
	provinces := make([]models.Province, len(records))
	for i := range records {
		provinces[i] = Derive(&records[i])
	}
	return provinces
}

// ProvinceDetail is the click-through payload for one province: sentiment,
// the ten strongest topics and hashtags, and the six-day post volume.
func ProvinceDetail(rec *models.ProvinceRecord, now time.Time) models.CityData {
	p := Derive(rec)

	ranked := models.RankCounts(rec.Topics)
	topics := make([]models.TopicWeight, 0, min(len(ranked), DetailListLimit))
	for _, c := range ranked {
		if len(topics) == DetailListLimit {
			break
		}
		topics = append(topics, models.TopicWeight{Text: c.Name, Value: c.Count})
	}

	hashtags := p.Hashtags
	if len(hashtags) > DetailListLimit {
		hashtags = hashtags[:DetailListLimit]
	}

	return models.CityData{
		ID:          p.ID,
		Name:        p.Name,
		Region:      p.Region,
		Inclination: p.Inclination,
		Sentiment:   p.Sentiment,
		Topics:      topics,
		Hashtags:    append([]string{}, hashtags...),
		WeeklyTrend: CityWeeklyTrend(rec, now),
	}
}
