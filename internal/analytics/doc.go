// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

/*
Package analytics derives the dashboard side-panel data from raw province
records: the served Province values, hashtag relevance scores, the national
agenda, weekly volume trends, regional performance and platform comparisons.

Every function is pure. Time-dependent aggregations take "now" explicitly and
compare record dates by calendar day, so results are reproducible in tests.

Percentages are truncated (not rounded): two decimals for per-province and
per-platform shares, three for the national sentiment breakdown.
*/
package analytics
