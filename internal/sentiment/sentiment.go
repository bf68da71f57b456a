// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package sentiment

import (
	"math"

	"github.com/tomtom215/jeososyal/internal/models"
)

// Inclination band lower bounds on the 0..100 point scale.
const (
	VeryPositiveFloor = 80.0
	PositiveFloor     = 60.0
	NeutralFloor      = 40.0
	NegativeFloor     = 20.0
)

// Truncate cuts v to the given number of decimals without rounding.
func Truncate(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	scale := math.Pow(10, float64(decimals))
	return math.Trunc(v*scale) / scale
}

// Share returns part/total as a percentage truncated to decimals, or 0 for an empty total.
func Share(part, total float64, decimals int) float64 {
	if total <= 0 {
		return 0
	}
	return Truncate(part*100/total, decimals)
}

// Percentages converts raw counts into percentages truncated to two decimals.
// A zero total yields all zeros.
func Percentages(counts models.SentimentCounts) models.SentimentBreakdown {
	return PercentagesWithPrecision(counts, 2)
}

// PercentagesWithPrecision is Percentages with a custom number of decimals.
func PercentagesWithPrecision(counts models.SentimentCounts, decimals int) models.SentimentBreakdown {
	total := counts.Total()
	return models.SentimentBreakdown{
		Positive: Share(counts.Positive, total, decimals),
		Neutral:  Share(counts.Neutral, total, decimals),
		Negative: Share(counts.Negative, total, decimals),
	}
}

// Point is the inclination score: positive share plus half the neutral share.
func Point(counts models.SentimentCounts) float64 {
	p := Percentages(counts)
	return p.Positive + p.Neutral/2
}

// InclinationFor derives the inclination label from raw counts. Provinces
// without any classified posts are labelled Çok Olumsuz.
func InclinationFor(counts models.SentimentCounts) string {
	return LabelForPoint(Point(counts))
}

// LabelForPoint maps a point value to its band. Bands are closed at the lower bound.
func LabelForPoint(point float64) string {
	switch {
	case point >= VeryPositiveFloor:
		return models.InclinationVeryPositive
	case point >= PositiveFloor:
		return models.InclinationPositive
	case point >= NeutralFloor:
		return models.InclinationNeutral
	case point >= NegativeFloor:
		return models.InclinationNegative
	default:
		return models.InclinationVeryNegative
	}
}
