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

// PlatformComparison summarises each platform nationally and lists the six-day
// per-platform post volume, oldest first.
func PlatformComparison(records []models.ProvinceRecord, now time.Time) models.PlatformComparison {
	summaries := make([]models.PlatformSummary, 0, len(models.Platforms))
	for _, platform := range models.Platforms {
		summaries = append(summaries, platformSummary(records, platform))
	}
	return models.PlatformComparison{
		NationalSocial:   summaries,
		WeeklyComparison: weeklyComparison(records, now),
	}
}

func platformSummary(records []models.ProvinceRecord, platform string) models.PlatformSummary {
	var counts models.SentimentCounts
	var hashtags map[string]float64
	var total int64
	topProvince := ""
	var topPosts int64 = -1

	for i := range records {
		var provincePosts int64
		seen := false
		for _, p := range records[i].Platforms {
			if p.Platform != platform {
				continue
			}
			seen = true
			provincePosts += p.Posts
			counts = counts.Add(p.Sentiment)
			hashtags = models.MergeCounts(hashtags, p.Hashtags)
		}
		total += provincePosts
		if seen && provincePosts > topPosts {
			topPosts = provincePosts
			topProvince = records[i].Name
		}
	}

	return models.PlatformSummary{
		Platform:     platform,
		Icon:         models.PlatformIcon(platform),
		AvgSentiment: sentiment.Share(counts.Positive, counts.Total(), 2),
		TotalPosts:   total,
		TopRegion:    topProvince,
		MainHashtag:  topName(hashtags),
	}
}

func weeklyComparison(records []models.ProvinceRecord, now time.Time) []models.PlatformDay {
	byPlatform := make(map[string]map[civilDate]int64, len(models.Platforms))
	for _, platform := range models.Platforms {
		byPlatform[platform] = postsByDate(records, platform)
	}

	days := window(now)
	out := make([]models.PlatformDay, len(days))
	for i, d := range days {
		key := dateOf(d)
		out[i] = models.PlatformDay{
			Day:       DayName(d.Weekday()),
			Twitter:   byPlatform[models.PlatformX][key],
			Instagram: byPlatform[models.PlatformInstagram][key],
			Next:      byPlatform[models.PlatformNSosyal][key],
		}
	}
	return out
}

// CitySocial breaks one province down per platform. Impact is the platform's
// share of the province's posts as a fraction truncated to two decimals.
func CitySocial(rec *models.ProvinceRecord) []models.CitySocial {
	out := make([]models.CitySocial, 0, len(models.Platforms))
	var provinceTotal int64
	for _, platform := range models.Platforms {
		var counts models.SentimentCounts
		var hashtags, topics map[string]float64
		var posts int64
		for _, p := range rec.Platforms {
			if p.Platform != platform {
				continue
			}
			posts += p.Posts
			counts = counts.Add(p.Sentiment)
			hashtags = models.MergeCounts(hashtags, p.Hashtags)
			topics = models.MergeCounts(topics, p.Topics)
		}
		provinceTotal += posts
		out = append(out, models.CitySocial{
			Platform:    platform,
			Icon:        models.PlatformIcon(platform),
			Sentiment:   sentiment.Percentages(counts),
			Posts:       posts,
			MainHashtag: topName(hashtags),
			TopTopic:    topName(topics),
		})
	}
	for i := range out {
		if provinceTotal > 0 {
			out[i].Impact = sentiment.Truncate(float64(out[i].Posts)/float64(provinceTotal), 2)
		}
	}
	return out
}

func topName(counts map[string]float64) string {
	ranked := models.RankedNames(counts)
	if len(ranked) == 0 {
		return ""
	}
	return ranked[0]
}
