// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

/*
Package dataset owns the in-memory province data.

The dataset is assembled from three layers:

  - the embedded reference table of the 81 provinces (plate code, name, region)
  - an optional YAML seed file with sentiment, hashtag, topic and platform counters
  - an optional remote source (the upstream backend), which wins over the seed

Each load produces an immutable Snapshot holding the raw records, the derived
provinces and a name resolver built for exactly those provinces. Store swaps
snapshots atomically and bumps the version, which keys every derived cache.
Nothing is persisted; seed files are read-only inputs.
*/
package dataset
