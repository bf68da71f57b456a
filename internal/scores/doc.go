// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

// Package scores selects the source of hashtag relevance scores. Without a
// backend the scores are computed from the dataset counters; with one they are
// fetched, translated onto local province IDs and cached per dataset version.
package scores
