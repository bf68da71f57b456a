// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

// Package sentiment turns raw Pozitif/Nötr/Negatif post counts into the
// percentage breakdown and five-step inclination label shown on the map.
//
// Percentages are truncated, never rounded, so the three values may sum to
// slightly less than 100.
package sentiment
