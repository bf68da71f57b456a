// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package analytics

import (
	"strconv"
	"time"

	"github.com/tomtom215/jeososyal/internal/models"
	"github.com/tomtom215/jeososyal/internal/sentiment"
)

// TrendDays is the length of every weekly series, today included.
const TrendDays = 6

// dayNames are the Turkish weekday abbreviations indexed by time.Weekday.
var dayNames = [7]string{"Paz", "Pzt", "Sal", "Çar", "Per", "Cum", "Cmt"}

// DayName returns the Turkish abbreviation of a weekday.
func DayName(d time.Weekday) string {
	return dayNames[d%7]
}

// civilDate is a calendar day without time or location.
type civilDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) civilDate {
	y, m, d := t.Date()
	return civilDate{year: y, month: m, day: d}
}

// window returns the TrendDays calendar days ending at now, oldest first.
func window(now time.Time) []time.Time {
	days := make([]time.Time, TrendDays)
	for i := 0; i < TrendDays; i++ {
		days[TrendDays-1-i] = now.AddDate(0, 0, -i)
	}
	return days
}

// postsByDate sums posts per calendar day, optionally restricted to one platform.
// Record dates are compared by their own calendar fields so a date-only value
// decoded as UTC midnight still lands on the intended day.
func postsByDate(records []models.ProvinceRecord, platform string) map[civilDate]int64 {
	out := make(map[civilDate]int64)
	for i := range records {
		for _, p := range records[i].Platforms {
			if platform != "" && p.Platform != platform {
				continue
			}
			out[dateOf(p.Date)] += p.Posts
		}
	}
	return out
}

func trendSeries(records []models.ProvinceRecord, now time.Time) []models.TrendPoint {
	byDate := postsByDate(records, "")
	days := window(now)
	series := make([]models.TrendPoint, len(days))
	for i, d := range days {
		series[i] = models.TrendPoint{Day: DayName(d.Weekday()), Volume: byDate[dateOf(d)]}
	}
	return series
}

// WeeklyTrends is the national post volume for the six days ending today,
// oldest first. Days without data have volume 0.
func WeeklyTrends(records []models.ProvinceRecord, now time.Time) []models.TrendPoint {
	return trendSeries(records, now)
}

// CityWeeklyTrend is WeeklyTrends for a single province.
func CityWeeklyTrend(rec *models.ProvinceRecord, now time.Time) []models.TrendPoint {
	return trendSeries([]models.ProvinceRecord{*rec}, now)
}

// RegionalPerformance reports each region's share of today's posts and the
// day-over-day change of its volume. Regions are listed in the fixed order.
func RegionalPerformance(records []models.ProvinceRecord, now time.Time) []models.RegionalPerformance {
	today := dateOf(now)
	yesterday := dateOf(now.AddDate(0, 0, -1))

	todayPosts := make(map[string]int64, len(models.Regions))
	yesterdayPosts := make(map[string]int64, len(models.Regions))
	var total int64
	for i := range records {
		for _, p := range records[i].Platforms {
			switch dateOf(p.Date) {
			case today:
				todayPosts[records[i].Region] += p.Posts
			case yesterday:
				yesterdayPosts[records[i].Region] += p.Posts
			}
		}
	}
	for _, region := range models.Regions {
		total += todayPosts[region]
	}

	out := make([]models.RegionalPerformance, 0, len(models.Regions))
	for _, region := range models.Regions {
		out = append(out, models.RegionalPerformance{
			Region:     region,
			Percentage: sentiment.Share(float64(todayPosts[region]), float64(total), 2),
			Trend:      FormatTrend(ChangePercent(todayPosts[region], yesterdayPosts[region])),
		})
	}
	return out
}

// ChangePercent is the relative change from previous to current in percent,
// truncated to two decimals. A zero previous value yields 0.
func ChangePercent(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	return sentiment.Truncate(float64(current)*100/float64(previous)-100, 2)
}

// FormatTrend renders a change with an explicit plus sign when positive.
func FormatTrend(change float64) string {
	if change == 0 {
		return "0"
	}
	s := strconv.FormatFloat(change, 'f', -1, 64)
	if change > 0 {
		return "+" + s
	}
	return s
}
