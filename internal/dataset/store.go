// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package dataset

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/jeososyal/internal/analytics"
	"github.com/tomtom215/jeososyal/internal/geo"
	"github.com/tomtom215/jeososyal/internal/logging"
	"github.com/tomtom215/jeososyal/internal/metrics"
	"github.com/tomtom215/jeososyal/internal/models"
)

// Snapshot is one immutable version of the dataset. Callers must not modify
// the slices it exposes.
type Snapshot struct {
	Version   uint64
	Source    string
	LoadedAt  time.Time
	Records   []models.ProvinceRecord
	Provinces []models.Province
	Resolver  *geo.NameResolver

	index map[string]int
}

// Province returns the served province for id.
func (s *Snapshot) Province(id string) (models.Province, error) {
	i, ok := s.index[id]
	if !ok {
		return models.Province{}, fmt.Errorf("%w: %s", ErrProvinceNotFound, id)
	}
	return s.Provinces[i], nil
}

// Record returns the raw counters for id.
func (s *Snapshot) Record(id string) (*models.ProvinceRecord, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProvinceNotFound, id)
	}
	return &s.Records[i], nil
}

// Len returns the number of provinces.
func (s *Snapshot) Len() int {
	return len(s.Provinces)
}

// Store holds the current snapshot. Readers load it without locking; writers
// build a complete new snapshot and swap it in, so a reader never sees a
// partially applied reload.
type Store struct {
	current atomic.Pointer[Snapshot]
	version atomic.Uint64
	aliases map[string]string

	mu       sync.Mutex // serialises Replace and guards onChange
	onChange []func(*Snapshot)
}

// NewStore creates an empty store. The aliases are passed to every name resolver it builds.
func NewStore(aliases map[string]string) *Store {
	return &Store{aliases: aliases}
}

// OnChange registers a callback run after every successful swap, e.g. to clear caches.
func (s *Store) OnChange(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Snapshot returns the current snapshot or ErrNoDataset.
func (s *Store) Snapshot() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNoDataset
	}
	return snap, nil
}

// Loaded reports whether a snapshot is available.
func (s *Store) Loaded() bool {
	return s.current.Load() != nil
}

// Replace normalizes records, derives the served provinces, builds a new
// resolver and swaps the snapshot in. Duplicate IDs keep the first record.
func (s *Store) Replace(records []models.ProvinceRecord, source string) (*Snapshot, error) {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.build(records, source)
	if err != nil {
		metrics.RecordDatasetReload(source, time.Since(start), 0, 0, err)
		return nil, err
	}
	s.current.Store(snap)
	metrics.RecordDatasetReload(source, time.Since(start), snap.Len(), snap.Version, nil)

	logging.Info().
		Str("source", source).
		Uint64("version", snap.Version).
		Int("provinces", snap.Len()).
		Int("name_variants", snap.Resolver.VariantCount()).
		Dur("duration", time.Since(start)).
		Msg("Dataset snapshot swapped")

	for _, fn := range s.onChange {
		fn(snap)
	}
	return snap, nil
}

func (s *Store) build(records []models.ProvinceRecord, source string) (*Snapshot, error) {
	kept := make([]models.ProvinceRecord, 0, len(records))
	index := make(map[string]int, len(records))
	for _, rec := range records {
		if rec.ID == "" {
			continue
		}
		if _, dup := index[rec.ID]; dup {
			logging.Warn().Str("id", rec.ID).Str("source", source).Msg("Duplicate province ID, keeping the first")
			continue
		}
		index[rec.ID] = len(kept)
		kept = append(kept, analytics.Normalize(rec))
	}
	if len(kept) == 0 {
		return nil, ErrEmptyDataset
	}

	provinces := analytics.DeriveAll(kept)
	return &Snapshot{
		Version:   s.version.Add(1),
		Source:    source,
		LoadedAt:  time.Now(),
		Records:   kept,
		Provinces: provinces,
		Resolver:  geo.NewNameResolver(provinces, s.aliases),
		index:     index,
	}, nil
}
