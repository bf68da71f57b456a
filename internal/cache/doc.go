// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

/*
Package cache provides thread-safe in-memory caching with TTL support.

The service keeps three named caches:

  - filter: full-map filter match sets keyed by dataset version, criteria and scores
  - scores: hashtag relevance scores keyed by dataset version and hashtag set
  - analytics: national and per-province analytics payloads

Every cache is cleared when the dataset snapshot is swapped, so cached values
never outlive the data they were computed from.

# Keys

GenerateKey hashes JSON-encoded parameters with SHA-256:

	key := cache.GenerateKey("filter", struct {
	    Version  uint64
	    Criteria models.FilterCriteria
	}{version, criteria})

# Lifecycle

New starts a background sweeper that removes expired entries every five
minutes. Close stops it.

# Metrics

Hits, misses and entry counts are exported as cache_hits_total,
cache_misses_total and cache_entries labelled with the cache name.
*/
package cache
