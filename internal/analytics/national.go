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

// AgendaListLimit caps the topics and hashtags in the national agenda.
const AgendaListLimit = 10

// GlobalHashtags ranks every hashtag by its count summed over all provinces.
func GlobalHashtags(records []models.ProvinceRecord) []string {
	var merged map[string]float64
	for i := range records {
		merged = models.MergeCounts(merged, records[i].Hashtags)
	}
	return models.RankedNames(merged)
}

// NationalAgenda aggregates all provinces: sentiment shares truncated to three
// decimals, the top topics with their day-over-day trend, and the top hashtags.
func NationalAgenda(records []models.ProvinceRecord, now time.Time) models.NationalAgenda {
	var counts models.SentimentCounts
	var topics map[string]float64
	for i := range records {
		counts = counts.Add(records[i].Sentiment)
		topics = models.MergeCounts(topics, records[i].Topics)
	}

	todayTopics, yesterdayTopics := topicsByDay(records, now)
	ranked := models.RankCounts(topics)
	top := make([]models.TopicMention, 0, min(len(ranked), AgendaListLimit))
	for _, c := range ranked {
		if len(top) == AgendaListLimit {
			break
		}
		top = append(top, models.TopicMention{
			Name:     c.Name,
			Mentions: c.Count,
			Trend:    topicTrend(todayTopics[c.Name], yesterdayTopics[c.Name]),
		})
	}

	hashtags := GlobalHashtags(records)
	if len(hashtags) > AgendaListLimit {
		hashtags = hashtags[:AgendaListLimit]
	}

	return models.NationalAgenda{
		Sentiment:        sentiment.PercentagesWithPrecision(counts, 3),
		TopTopics:        top,
		NationalHashtags: hashtags,
	}
}

func topicsByDay(records []models.ProvinceRecord, now time.Time) (today, yesterday map[string]float64) {
	t, y := dateOf(now), dateOf(now.AddDate(0, 0, -1))
	today = make(map[string]float64)
	yesterday = make(map[string]float64)
	for i := range records {
		for _, p := range records[i].Platforms {
			switch dateOf(p.Date) {
			case t:
				models.MergeCounts(today, p.Topics)
			case y:
				models.MergeCounts(yesterday, p.Topics)
			}
		}
	}
	return today, yesterday
}

func topicTrend(today, yesterday float64) float64 {
	if yesterday <= 0 {
		return 0
	}
	return sentiment.Truncate(today*100/yesterday-100, 2)
}

// HashtagPoints is what each requested hashtag a province carries adds to its
// score, wherever it ranks in the province's list.
const HashtagPoints = 0.5

// HashtagScores rates every province against the requested hashtags. Each
// requested hashtag present in a province earns HashtagPoints; the total is
// normalised by half the number of requested hashtags, so a province carrying
// all of them scores 1.0. Without hashtags every province scores 1.0.
func HashtagScores(records []models.ProvinceRecord, hashtags []string) []models.ProvinceScore {
	requested := uniqueNonEmpty(hashtags)
	scores := make([]models.ProvinceScore, 0, len(records))
	for i := range records {
		score := 1.0
		if len(requested) > 0 {
			points := 0.0
			for _, tag := range requested {
				if _, ok := records[i].Hashtags[tag]; ok {
					points += HashtagPoints
				}
			}
			score = points / (0.5 * float64(len(requested)))
		}
		scores = append(scores, models.ProvinceScore{ProvinceID: records[i].ID, Score: score})
	}
	return scores
}

func uniqueNonEmpty(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
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
