// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/jeososyal/internal/logging"
	"github.com/tomtom215/jeososyal/internal/metrics"
	"github.com/tomtom215/jeososyal/internal/models"
)

// Snapshot sources, also used as metrics labels.
const (
	SourceReference = "reference"
	SourceSeed      = "seed"
	SourceUpstream  = "upstream"
)

// ProvinceSource provides province records from a remote backend.
type ProvinceSource interface {
	ListProvinces(ctx context.Context) ([]models.ProvinceRecord, error)
}

// Loader assembles a dataset from the embedded reference table, an optional
// seed file and an optional remote source, in that order.
type Loader struct {
	SeedPath string
	Source   ProvinceSource
	Aliases  map[string]string
}

// Load builds the record list. A missing or broken seed file is an error;
// a failing remote source only degrades the result to local data.
func (l *Loader) Load(ctx context.Context) ([]models.ProvinceRecord, string, error) {
	records, err := ReferenceTable()
	if err != nil {
		return nil, "", err
	}
	source := SourceReference

	if l.SeedPath != "" {
		seed, err := LoadSeed(l.SeedPath)
		if err != nil {
			return nil, SourceSeed, err
		}
		records = Merge(records, seed, l.Aliases)
		source = SourceSeed
	}

	if l.Source != nil {
		remote, err := l.Source.ListProvinces(ctx)
		switch {
		case err == nil:
			records = Merge(records, remote, l.Aliases)
			source = SourceUpstream
		case errors.Is(err, context.Canceled):
			return nil, source, err
		default:
			logging.Ctx(ctx).Warn().Err(err).Str("fallback", source).
				Msg("Upstream province fetch failed, using local dataset")
			metrics.DatasetReloadErrors.WithLabelValues(SourceUpstream, "upstream").Inc()
		}
	}
	return records, source, nil
}

// Reload loads the dataset and swaps it into the store. On error the current
// snapshot stays in place.
func (l *Loader) Reload(ctx context.Context, store *Store) (*Snapshot, error) {
	start := time.Now()
	records, source, err := l.Load(ctx)
	if err != nil {
		metrics.RecordDatasetReload(source, time.Since(start), 0, 0, err)
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return store.Replace(records, source)
}
