// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package analytics

import (
	"fmt"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/jeososyal/internal/models"
)

// Monday 19 October 2026.
var testNow = time.Date(2026, time.October, 19, 15, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2026, time.October, d, 0, 0, 0, 0, time.UTC)
}

func fixtureRecords() []models.ProvinceRecord {
	raw := []models.ProvinceRecord{
		{
			ID: "34", Name: "İstanbul", Region: models.RegionMarmara,
			Platforms: []models.PlatformRecord{
				{
					Platform: models.PlatformX, Date: day(19), Posts: 100,
					Sentiment: models.SentimentCounts{Positive: 60, Neutral: 20, Negative: 20},
					Hashtags:  map[string]float64{"#a": 10, "#b": 5},
					Topics:    map[string]float64{"ekonomi": 8},
				},
				{
					Platform: models.PlatformInstagram, Date: day(19), Posts: 50,
					Sentiment: models.SentimentCounts{Positive: 10, Neutral: 10, Negative: 30},
					Hashtags:  map[string]float64{"#b": 20},
					Topics:    map[string]float64{"spor": 3},
				},
				{
					Platform: models.PlatformX, Date: day(18), Posts: 80,
					Topics: map[string]float64{"ekonomi": 4},
				},
			},
		},
		{
			ID: "06", Name: "Ankara", Region: models.RegionCentralAnatolia,
			Platforms: []models.PlatformRecord{
				{
					Platform: models.PlatformNSosyal, Date: day(19), Posts: 50,
					Sentiment: models.SentimentCounts{Positive: 5, Neutral: 5},
					Hashtags:  map[string]float64{"#c": 1},
				},
				{Platform: models.PlatformX, Date: day(18), Posts: 100},
			},
		},
	}
	for i := range raw {
		raw[i] = Normalize(raw[i])
	}
	return raw
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	records := fixtureRecords()
	ist := records[0]
	want := models.SentimentCounts{Positive: 70, Neutral: 30, Negative: 50}
	if ist.Sentiment != want {
		t.Errorf("Sentiment = %+v, want %+v", ist.Sentiment, want)
	}
	if ist.Hashtags["#b"] != 25 || ist.Hashtags["#a"] != 10 {
		t.Errorf("Hashtags = %v", ist.Hashtags)
	}
	if ist.Topics["ekonomi"] != 12 {
		t.Errorf("Topics = %v", ist.Topics)
	}

	explicit := Normalize(models.ProvinceRecord{
		Sentiment: models.SentimentCounts{Positive: 1},
		Hashtags:  map[string]float64{"#own": 1},
		Platforms: []models.PlatformRecord{{Hashtags: map[string]float64{"#other": 9}}},
	})
	if _, ok := explicit.Hashtags["#other"]; ok {
		t.Error("record-level counters must not be replaced by platform sums")
	}
}

func TestDerive(t *testing.T) {
	t.Parallel()

	records := fixtureRecords()
	p := Derive(&records[0])

	if p.MainHashtag != "#b" {
		t.Errorf("MainHashtag = %s, want #b", p.MainHashtag)
	}
	if !reflect.DeepEqual(p.Hashtags, []string{"#b", "#a"}) {
		t.Errorf("Hashtags = %v", p.Hashtags)
	}
	// 46.66 + 20/2 = 56.66
	if p.Inclination != models.InclinationNeutral {
		t.Errorf("Inclination = %s, want Nötr", p.Inclination)
	}
	if !closeTo(p.Sentiment.Positive, 46.66) || !closeTo(p.Sentiment.Neutral, 20) {
		t.Errorf("Sentiment = %+v", p.Sentiment)
	}

	empty := Derive(&models.ProvinceRecord{ID: "99", Name: "Boş"})
	if empty.Inclination != models.InclinationVeryNegative || empty.MainHashtag != "" || len(empty.Hashtags) != 0 {
		t.Errorf("empty record derived as %+v", empty)
	}
}

func TestHashtagScores(t *testing.T) {
	t.Parallel()

	counts := make(map[string]float64, 25)
	for i := 0; i < 25; i++ {
		counts[fmt.Sprintf("h%d", i)] = float64(100 - i)
	}
	records := []models.ProvinceRecord{{ID: "01", Hashtags: counts}, {ID: "02"}}

	tests := []struct {
		name     string
		hashtags []string
		want     float64
	}{
		{"no hashtags", nil, 1.0},
		{"top ranked", []string{"h0"}, 1.0},
		{"rank seven", []string{"h7"}, 1.0},
		{"rank twelve", []string{"h12"}, 1.0},
		{"rank twenty two", []string{"h22"}, 1.0},
		{"last rank", []string{"h24"}, 1.0},
		{"missing", []string{"nope"}, 0},
		{"one of two present", []string{"h0", "nope"}, 0.5},
		{"two of three present", []string{"h0", "h22", "nope"}, 2.0 / 3.0},
		{"duplicates collapse", []string{"h0", "h0", ""}, 1.0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			scores := HashtagScores(records, tt.hashtags)
			if len(scores) != 2 || scores[0].ProvinceID != "01" {
				t.Fatalf("scores = %+v", scores)
			}
			if !closeTo(scores[0].Score, tt.want) {
				t.Errorf("score = %v, want %v", scores[0].Score, tt.want)
			}
			if len(tt.hashtags) > 0 && tt.hashtags[0] != "" && scores[1].Score != 0 {
				t.Errorf("province without hashtags scored %v", scores[1].Score)
			}
		})
	}
}

func TestGlobalHashtags(t *testing.T) {
	t.Parallel()

	got := GlobalHashtags(fixtureRecords())
	if !reflect.DeepEqual(got, []string{"#b", "#a", "#c"}) {
		t.Errorf("GlobalHashtags() = %v", got)
	}
	if got := GlobalHashtags(nil); len(got) != 0 {
		t.Errorf("GlobalHashtags(nil) = %v", got)
	}
}

func TestNationalAgenda(t *testing.T) {
	t.Parallel()

	agenda := NationalAgenda(fixtureRecords(), testNow)

	if !closeTo(agenda.Sentiment.Positive, 46.875) || !closeTo(agenda.Sentiment.Neutral, 21.875) || !closeTo(agenda.Sentiment.Negative, 31.25) {
		t.Errorf("Sentiment = %+v", agenda.Sentiment)
	}
	wantTopics := []models.TopicMention{
		{Name: "ekonomi", Mentions: 12, Trend: 100},
		{Name: "spor", Mentions: 3, Trend: 0},
	}
	if !reflect.DeepEqual(agenda.TopTopics, wantTopics) {
		t.Errorf("TopTopics = %+v, want %+v", agenda.TopTopics, wantTopics)
	}
	if !reflect.DeepEqual(agenda.NationalHashtags, []string{"#b", "#a", "#c"}) {
		t.Errorf("NationalHashtags = %v", agenda.NationalHashtags)
	}
}

func TestNationalAgenda_Limits(t *testing.T) {
	t.Parallel()

	topics := make(map[string]float64)
	hashtags := make(map[string]float64)
	for i := 0; i < 15; i++ {
		topics[fmt.Sprintf("t%02d", i)] = float64(i)
		hashtags[fmt.Sprintf("#h%02d", i)] = float64(i)
	}
	agenda := NationalAgenda([]models.ProvinceRecord{{Topics: topics, Hashtags: hashtags}}, testNow)
	if len(agenda.TopTopics) != AgendaListLimit || len(agenda.NationalHashtags) != AgendaListLimit {
		t.Errorf("got %d topics and %d hashtags", len(agenda.TopTopics), len(agenda.NationalHashtags))
	}
	if agenda.TopTopics[0].Name != "t14" {
		t.Errorf("first topic = %s, want t14", agenda.TopTopics[0].Name)
	}
	if agenda.Sentiment != (models.SentimentBreakdown{}) {
		t.Errorf("zero counts should give zero shares, got %+v", agenda.Sentiment)
	}
}

func TestWeeklyTrends(t *testing.T) {
	t.Parallel()

	got := WeeklyTrends(fixtureRecords(), testNow)
	want := []models.TrendPoint{
		{Day: "Çar", Volume: 0},
		{Day: "Per", Volume: 0},
		{Day: "Cum", Volume: 0},
		{Day: "Cmt", Volume: 0},
		{Day: "Paz", Volume: 180},
		{Day: "Pzt", Volume: 200},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WeeklyTrends() = %+v, want %+v", got, want)
	}
}

func TestCityWeeklyTrend(t *testing.T) {
	t.Parallel()

	records := fixtureRecords()
	got := CityWeeklyTrend(&records[1], testNow)
	if len(got) != TrendDays {
		t.Fatalf("len = %d", len(got))
	}
	if got[4].Volume != 100 || got[5].Volume != 50 {
		t.Errorf("CityWeeklyTrend() = %+v", got)
	}
}

func TestRegionalPerformance(t *testing.T) {
	t.Parallel()

	got := RegionalPerformance(fixtureRecords(), testNow)
	if len(got) != len(models.Regions) {
		t.Fatalf("len = %d", len(got))
	}
	byRegion := make(map[string]models.RegionalPerformance, len(got))
	for _, r := range got {
		byRegion[r.Region] = r
	}

	marmara := byRegion[models.RegionMarmara]
	if !closeTo(marmara.Percentage, 75) || marmara.Trend != "+87.5" {
		t.Errorf("Marmara = %+v", marmara)
	}
	central := byRegion[models.RegionCentralAnatolia]
	if !closeTo(central.Percentage, 25) || central.Trend != "-50" {
		t.Errorf("İç Anadolu = %+v", central)
	}
	aegean := byRegion[models.RegionAegean]
	if aegean.Percentage != 0 || aegean.Trend != "0" {
		t.Errorf("Ege = %+v", aegean)
	}
	if got[0].Region != models.RegionCentralAnatolia {
		t.Errorf("regions must keep the fixed order, first = %s", got[0].Region)
	}
}

func TestFormatTrend(t *testing.T) {
	t.Parallel()

	tests := map[float64]string{12.34: "+12.34", -3.5: "-3.5", 0: "0", math.Copysign(0, -1): "0"}
	for in, want := range tests {
		if got := FormatTrend(in); got != want {
			t.Errorf("FormatTrend(%v) = %s, want %s", in, got, want)
		}
	}
	if got := ChangePercent(5, 0); got != 0 {
		t.Errorf("ChangePercent with zero yesterday = %v", got)
	}
}

func TestPlatformComparison(t *testing.T) {
	t.Parallel()

	got := PlatformComparison(fixtureRecords(), testNow)

	wantSocial := []models.PlatformSummary{
		{Platform: models.PlatformX, Icon: "twitter", AvgSentiment: 60, TotalPosts: 280, TopRegion: "İstanbul", MainHashtag: "#a"},
		{Platform: models.PlatformInstagram, Icon: "instagram", AvgSentiment: 20, TotalPosts: 50, TopRegion: "İstanbul", MainHashtag: "#b"},
		{Platform: models.PlatformNSosyal, Icon: "next", AvgSentiment: 50, TotalPosts: 50, TopRegion: "Ankara", MainHashtag: "#c"},
	}
	if !reflect.DeepEqual(got.NationalSocial, wantSocial) {
		t.Errorf("NationalSocial = %+v, want %+v", got.NationalSocial, wantSocial)
	}

	if len(got.WeeklyComparison) != TrendDays {
		t.Fatalf("WeeklyComparison len = %d", len(got.WeeklyComparison))
	}
	today := got.WeeklyComparison[TrendDays-1]
	if today != (models.PlatformDay{Day: "Pzt", Twitter: 100, Instagram: 50, Next: 50}) {
		t.Errorf("today = %+v", today)
	}
	yesterday := got.WeeklyComparison[TrendDays-2]
	if yesterday != (models.PlatformDay{Day: "Paz", Twitter: 180}) {
		t.Errorf("yesterday = %+v", yesterday)
	}
}

func TestCitySocial(t *testing.T) {
	t.Parallel()

	records := fixtureRecords()
	got := CitySocial(&records[0])
	if len(got) != 3 {
		t.Fatalf("len = %d", len(got))
	}

	x := got[0]
	if x.Posts != 180 || x.MainHashtag != "#a" || x.TopTopic != "ekonomi" || !closeTo(x.Impact, 0.78) {
		t.Errorf("X = %+v", x)
	}
	if !closeTo(x.Sentiment.Positive, 60) {
		t.Errorf("X sentiment = %+v", x.Sentiment)
	}
	if ig := got[1]; ig.Posts != 50 || !closeTo(ig.Impact, 0.21) || ig.TopTopic != "spor" {
		t.Errorf("Instagram = %+v", ig)
	}
	if ns := got[2]; ns.Posts != 0 || ns.Impact != 0 || ns.MainHashtag != "" || ns.Icon != "next" {
		t.Errorf("NSosyal = %+v", ns)
	}

	empty := CitySocial(&models.ProvinceRecord{ID: "x"})
	for _, s := range empty {
		if s.Impact != 0 || s.Posts != 0 {
			t.Errorf("empty province = %+v", s)
		}
	}
}

func TestProvinceDetail(t *testing.T) {
	t.Parallel()

	records := fixtureRecords()
	got := ProvinceDetail(&records[0], testNow)

	if got.ID != "34" || got.Name != "İstanbul" || got.Region != models.RegionMarmara {
		t.Errorf("identity = %+v", got)
	}
	wantTopics := []models.TopicWeight{{Text: "ekonomi", Value: 12}, {Text: "spor", Value: 3}}
	if !reflect.DeepEqual(got.Topics, wantTopics) {
		t.Errorf("Topics = %+v", got.Topics)
	}
	if !reflect.DeepEqual(got.Hashtags, []string{"#b", "#a"}) {
		t.Errorf("Hashtags = %v", got.Hashtags)
	}
	if len(got.WeeklyTrend) != TrendDays || got.WeeklyTrend[TrendDays-1].Volume != 150 {
		t.Errorf("WeeklyTrend = %+v", got.WeeklyTrend)
	}
}

func TestDayName(t *testing.T) {
	t.Parallel()

	if DayName(time.Sunday) != "Paz" || DayName(time.Wednesday) != "Çar" || DayName(time.Saturday) != "Cmt" {
		t.Error("unexpected weekday abbreviations")
	}
}
