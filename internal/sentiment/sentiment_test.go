// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package sentiment

import (
	"math"
	"testing"

	"github.com/tomtom215/jeososyal/internal/models"
)

func TestPercentages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		counts models.SentimentCounts
		want   models.SentimentBreakdown
	}{
		{"zero total", models.SentimentCounts{}, models.SentimentBreakdown{}},
		{"even thirds truncated", models.SentimentCounts{Positive: 1, Neutral: 1, Negative: 1},
			models.SentimentBreakdown{Positive: 33.33, Neutral: 33.33, Negative: 33.33}},
		{"all positive", models.SentimentCounts{Positive: 12},
			models.SentimentBreakdown{Positive: 100}},
		{"two thirds not rounded up", models.SentimentCounts{Positive: 2, Negative: 1},
			models.SentimentBreakdown{Positive: 66.66, Negative: 33.33}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Percentages(tt.counts)
			if !closeTo(got.Positive, tt.want.Positive) || !closeTo(got.Neutral, tt.want.Neutral) || !closeTo(got.Negative, tt.want.Negative) {
				t.Errorf("Percentages(%+v) = %+v, want %+v", tt.counts, got, tt.want)
			}
		})
	}
}

func TestInclinationFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		counts models.SentimentCounts
		want   string
	}{
		{"no posts", models.SentimentCounts{}, models.InclinationVeryNegative},
		{"all positive", models.SentimentCounts{Positive: 10}, models.InclinationVeryPositive},
		{"exactly 80", models.SentimentCounts{Positive: 80, Negative: 20}, models.InclinationVeryPositive},
		{"60 via neutral half", models.SentimentCounts{Positive: 40, Neutral: 40, Negative: 20}, models.InclinationPositive},
		{"all neutral", models.SentimentCounts{Neutral: 5}, models.InclinationNeutral},
		{"exactly 20", models.SentimentCounts{Positive: 20, Negative: 80}, models.InclinationNegative},
		{"just below 20", models.SentimentCounts{Positive: 1999, Negative: 8001}, models.InclinationVeryNegative},
		{"all negative", models.SentimentCounts{Negative: 3}, models.InclinationVeryNegative},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := InclinationFor(tt.counts); got != tt.want {
				t.Errorf("InclinationFor(%+v) = %s, want %s (point %v)", tt.counts, got, tt.want, Point(tt.counts))
			}
		})
	}
}

func TestLabelForPoint_Bounds(t *testing.T) {
	t.Parallel()

	cases := map[float64]string{
		100:    models.InclinationVeryPositive,
		80:     models.InclinationVeryPositive,
		79.99:  models.InclinationPositive,
		60:     models.InclinationPositive,
		59.99:  models.InclinationNeutral,
		40:     models.InclinationNeutral,
		39.99:  models.InclinationNegative,
		20:     models.InclinationNegative,
		19.99:  models.InclinationVeryNegative,
		0:      models.InclinationVeryNegative,
		-1:     models.InclinationVeryNegative,
		120.00: models.InclinationVeryPositive,
	}
	for point, want := range cases {
		if got := LabelForPoint(point); got != want {
			t.Errorf("LabelForPoint(%v) = %s, want %s", point, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := Truncate(12.3456, 2); !closeTo(got, 12.34) {
		t.Errorf("Truncate(12.3456, 2) = %v", got)
	}
	if got := Truncate(-1.239, 1); !closeTo(got, -1.2) {
		t.Errorf("Truncate(-1.239, 1) = %v", got)
	}
	if got := Truncate(math.NaN(), 2); got != 0 {
		t.Errorf("Truncate(NaN) = %v", got)
	}
	if got := Share(1, 0, 2); got != 0 {
		t.Errorf("Share with zero total = %v", got)
	}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
