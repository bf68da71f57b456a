// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/jeososyal/internal/geo"
	"github.com/tomtom215/jeososyal/internal/models"
)

const seedYAML = `
provinces:
  - id: "34"
    sentiment: {Pozitif: 80, Nötr: 10, Negatif: 10}
    hashtags: {"#deprem": 40, "#ekonomi": 12}
    topics: {ekonomi: 9}
    platforms:
      - platform: "X (Twitter)"
        date: 2026-10-19
        posts: 310
        sentiment: {Pozitif: 8, Nötr: 1, Negatif: 1}
  - name: Afyon
    hashtags: {"#kaymak": 3}
  - id: "99"
    name: Kıbrıs
    region: Akdeniz Bölgesi
  - id: "98"
    name: Nowhere
    region: Atlantis
`

func TestReferenceTable(t *testing.T) {
	t.Parallel()

	records, err := ReferenceTable()
	if err != nil {
		t.Fatalf("ReferenceTable() error = %v", err)
	}
	if len(records) != 81 {
		t.Fatalf("len = %d, want 81", len(records))
	}

	perRegion := make(map[string]int)
	seen := make(map[string]bool)
	for _, r := range records {
		if seen[r.ID] {
			t.Errorf("duplicate plate code %s", r.ID)
		}
		seen[r.ID] = true
		perRegion[r.Region]++
	}
	want := map[string]int{
		models.RegionMediterranean:        8,
		models.RegionAegean:               8,
		models.RegionMarmara:              11,
		models.RegionCentralAnatolia:      13,
		models.RegionBlackSea:             18,
		models.RegionEasternAnatolia:      14,
		models.RegionSoutheasternAnatolia: 9,
	}
	for region, n := range want {
		if perRegion[region] != n {
			t.Errorf("%s has %d provinces, want %d", region, perRegion[region], n)
		}
	}
}

func TestParseSeed(t *testing.T) {
	t.Parallel()

	records, err := ParseSeed([]byte(seedYAML))
	if err != nil {
		t.Fatalf("ParseSeed() error = %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("len = %d", len(records))
	}
	ist := records[0]
	if ist.Sentiment.Positive != 80 || ist.Hashtags["#deprem"] != 40 {
		t.Errorf("counters = %+v", ist)
	}
	if len(ist.Platforms) != 1 {
		t.Fatalf("platforms = %+v", ist.Platforms)
	}
	p := ist.Platforms[0]
	y, m, d := p.Date.Date()
	if y != 2026 || m != time.October || d != 19 || p.Posts != 310 {
		t.Errorf("platform record = %+v", p)
	}
}

func TestParseSeed_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"bad yaml":         "provinces: [",
		"anonymous entry":  "provinces:\n  - sentiment: {Pozitif: 1}\n",
		"unknown platform": "provinces:\n  - id: \"01\"\n    platforms:\n      - platform: MySpace\n",
	}
	for name, doc := range tests {
		doc := doc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, err := ParseSeed([]byte(doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base, err := ReferenceTable()
	if err != nil {
		t.Fatal(err)
	}
	seed, err := ParseSeed([]byte(seedYAML))
	if err != nil {
		t.Fatal(err)
	}
	merged := Merge(base, seed, geo.DefaultAliases)

	if len(merged) != 82 {
		t.Fatalf("len = %d, want 82 (81 + one new province)", len(merged))
	}

	byID := make(map[string]models.ProvinceRecord, len(merged))
	for _, r := range merged {
		byID[r.ID] = r
	}
	ist := byID["34"]
	if ist.Name != "İstanbul" || ist.Region != models.RegionMarmara || ist.Hashtags["#deprem"] != 40 {
		t.Errorf("İstanbul = %+v", ist)
	}
	afyon := byID["03"]
	if afyon.Name != "Afyonkarahisar" || afyon.Hashtags["#kaymak"] != 3 {
		t.Errorf("alias-matched entry not merged: %+v", afyon)
	}
	if _, ok := byID["99"]; !ok {
		t.Error("new province with a known region should be appended")
	}
	if _, ok := byID["98"]; ok {
		t.Error("entry with unknown region should be skipped")
	}
	if base[33].Hashtags != nil {
		t.Error("Merge must not modify the base slice")
	}
}

func TestStore_NoDataset(t *testing.T) {
	t.Parallel()

	s := NewStore(nil)
	if _, err := s.Snapshot(); !errors.Is(err, ErrNoDataset) {
		t.Errorf("Snapshot() error = %v, want ErrNoDataset", err)
	}
	if s.Loaded() {
		t.Error("Loaded() = true before any load")
	}
	if _, err := s.Replace(nil, SourceSeed); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("Replace(nil) error = %v, want ErrEmptyDataset", err)
	}
	if s.Loaded() {
		t.Error("a failed replace must not install a snapshot")
	}
}

func TestStore_Replace(t *testing.T) {
	t.Parallel()

	s := NewStore(geo.DefaultAliases)
	var changes []uint64
	s.OnChange(func(snap *Snapshot) { changes = append(changes, snap.Version) })

	records := []models.ProvinceRecord{
		{ID: "29", Name: "Gümüşhane", Region: models.RegionBlackSea,
			Sentiment: models.SentimentCounts{Positive: 9, Negative: 1}, Hashtags: map[string]float64{"#pestil": 5}},
		{ID: "29", Name: "Duplicate", Region: models.RegionBlackSea},
		{ID: "", Name: "No ID"},
	}
	first, err := s.Replace(records, SourceSeed)
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if first.Version != 1 || first.Len() != 1 {
		t.Errorf("snapshot version=%d len=%d", first.Version, first.Len())
	}

	p, err := first.Province("29")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Gümüşhane" || p.Inclination != models.InclinationVeryPositive || p.MainHashtag != "#pestil" {
		t.Errorf("Province(29) = %+v", p)
	}
	if got, ok := first.Resolver.Resolve("Gumushane"); !ok || got.ID != "29" {
		t.Errorf("resolver did not pick up the alias: %+v %v", got, ok)
	}
	if _, err := first.Province("00"); !errors.Is(err, ErrProvinceNotFound) {
		t.Errorf("Province(00) error = %v", err)
	}
	if _, err := first.Record("00"); !errors.Is(err, ErrProvinceNotFound) {
		t.Errorf("Record(00) error = %v", err)
	}

	second, err := s.Replace(records[:1], SourceUpstream)
	if err != nil {
		t.Fatal(err)
	}
	if second.Version != 2 || second.Source != SourceUpstream {
		t.Errorf("second snapshot = version %d source %s", second.Version, second.Source)
	}
	current, _ := s.Snapshot()
	if current != second {
		t.Error("Snapshot() should return the latest swap")
	}
	if len(changes) != 2 || changes[1] != 2 {
		t.Errorf("OnChange calls = %v", changes)
	}
}

func TestStore_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	s := NewStore(nil)
	records, err := ReferenceTable()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Replace(records, SourceReference); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				snap, err := s.Snapshot()
				if err != nil {
					t.Error(err)
					return
				}
				if len(snap.Provinces) != len(snap.Records) {
					t.Error("snapshot provinces and records out of step")
					return
				}
			}
		}()
	}
	for i := 0; i < 5; i++ {
		if _, err := s.Replace(records[:10+i], SourceSeed); err != nil {
			t.Fatal(err)
		}
	}
	wg.Wait()
}

type fakeSource struct {
	records []models.ProvinceRecord
	err     error
}

func (f *fakeSource) ListProvinces(context.Context) ([]models.ProvinceRecord, error) {
	return f.records, f.err
}

func TestLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	seedPath := filepath.Join(dir, "seed.yaml")
	if err := os.WriteFile(seedPath, []byte(seedYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("reference only", func(t *testing.T) {
		t.Parallel()
		l := &Loader{}
		records, source, err := l.Load(context.Background())
		if err != nil || source != SourceReference || len(records) != 81 {
			t.Errorf("Load() = %d records, %s, %v", len(records), source, err)
		}
	})

	t.Run("seed", func(t *testing.T) {
		t.Parallel()
		l := &Loader{SeedPath: seedPath, Aliases: geo.DefaultAliases}
		records, source, err := l.Load(context.Background())
		if err != nil || source != SourceSeed || len(records) != 82 {
			t.Errorf("Load() = %d records, %s, %v", len(records), source, err)
		}
	})

	t.Run("missing seed file", func(t *testing.T) {
		t.Parallel()
		l := &Loader{SeedPath: filepath.Join(dir, "missing.yaml")}
		if _, _, err := l.Load(context.Background()); err == nil {
			t.Error("expected error for missing seed file")
		}
	})

	t.Run("upstream wins", func(t *testing.T) {
		t.Parallel()
		src := &fakeSource{records: []models.ProvinceRecord{
			{ID: "34", Hashtags: map[string]float64{"#remote": 1}},
		}}
		l := &Loader{SeedPath: seedPath, Source: src}
		records, source, err := l.Load(context.Background())
		if err != nil || source != SourceUpstream {
			t.Fatalf("Load() source=%s err=%v", source, err)
		}
		for _, r := range records {
			if r.ID == "34" {
				if _, ok := r.Hashtags["#remote"]; !ok {
					t.Errorf("upstream record not applied: %+v", r)
				}
			}
		}
	})

	t.Run("upstream failure degrades", func(t *testing.T) {
		t.Parallel()
		l := &Loader{SeedPath: seedPath, Source: &fakeSource{err: errors.New("upstream: 502")}}
		records, source, err := l.Load(context.Background())
		if err != nil || source != SourceSeed || len(records) != 82 {
			t.Errorf("Load() = %d records, %s, %v", len(records), source, err)
		}
	})

	t.Run("reload swaps", func(t *testing.T) {
		t.Parallel()
		store := NewStore(nil)
		l := &Loader{SeedPath: seedPath}
		snap, err := l.Reload(context.Background(), store)
		if err != nil || snap.Len() != 82 {
			t.Fatalf("Reload() = %v, %v", snap, err)
		}

		broken := &Loader{SeedPath: filepath.Join(dir, "missing.yaml")}
		if _, err := broken.Reload(context.Background(), store); err == nil {
			t.Fatal("expected error")
		}
		current, _ := store.Snapshot()
		if current != snap {
			t.Error("failed reload must keep the previous snapshot")
		}
	})
}
