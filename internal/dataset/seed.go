// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package dataset

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tomtom215/jeososyal/internal/geo"
	"github.com/tomtom215/jeososyal/internal/logging"
	"github.com/tomtom215/jeososyal/internal/models"
)

// SeedFile is the on-disk format of province counters.
//
//	provinces:
//	  - id: "34"
//	    sentiment: {Pozitif: 120, Nötr: 40, Negatif: 60}
//	    hashtags: {"#deprem": 42}
//	    platforms:
//	      - platform: "X (Twitter)"
//	        date: 2026-10-19
//	        posts: 310
type SeedFile struct {
	Provinces []models.ProvinceRecord `yaml:"provinces"`
}

// LoadSeed reads a seed file from disk.
func LoadSeed(path string) ([]models.ProvinceRecord, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	records, err := ParseSeed(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return records, nil
}

// ParseSeed decodes seed YAML.
func ParseSeed(data []byte) ([]models.ProvinceRecord, error) {
	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode seed yaml: %w", err)
	}
	for i, rec := range file.Provinces {
		if strings.TrimSpace(rec.ID) == "" && strings.TrimSpace(rec.Name) == "" {
			return nil, fmt.Errorf("seed entry %d has neither id nor name", i)
		}
		for j, p := range rec.Platforms {
			if models.PlatformIcon(p.Platform) == "" {
				return nil, fmt.Errorf("seed entry %d platform %d: unknown platform %q", i, j, p.Platform)
			}
		}
	}
	return file.Provinces, nil
}

// Merge overlays counters onto base records. An overlay entry is matched by
// ID first, then by resolving its name; matched entries replace the base
// counters and keep the base identity unless the overlay names a region.
// Unmatched entries with an ID, name and known region are appended as new
// provinces; anything else is skipped with a warning.
func Merge(base, overlay []models.ProvinceRecord, aliases map[string]string) []models.ProvinceRecord {
	out := make([]models.ProvinceRecord, len(base))
	copy(out, base)

	index := make(map[string]int, len(out))
	for i := range out {
		index[out[i].ID] = i
	}
	resolver := geo.NewNameResolver(identities(out), aliases)

	for _, rec := range overlay {
		pos, ok := index[rec.ID]
		if !ok && rec.Name != "" {
			if p, found := resolver.Resolve(rec.Name); found {
				pos, ok = index[p.ID]
			}
		}
		if ok {
			out[pos] = overlayRecord(out[pos], rec)
			continue
		}
		if rec.ID == "" || rec.Name == "" || !models.IsRegion(rec.Region) {
			logging.Warn().
				Str("id", rec.ID).
				Str("name", rec.Name).
				Str("region", rec.Region).
				Msg("Skipping dataset entry that matches no province")
			continue
		}
		index[rec.ID] = len(out)
		out = append(out, rec)
	}
	return out
}

func overlayRecord(base, rec models.ProvinceRecord) models.ProvinceRecord {
	merged := rec
	merged.ID = base.ID
	merged.Name = base.Name
	if merged.Region == "" || !models.IsRegion(merged.Region) {
		merged.Region = base.Region
	}
	if merged.GeometryKey == "" {
		merged.GeometryKey = base.GeometryKey
	}
	return merged
}

func identities(records []models.ProvinceRecord) []models.Province {
	out := make([]models.Province, len(records))
	for i := range records {
		out[i] = models.Province{
			ID:          records[i].ID,
			Name:        records[i].Name,
			Region:      records[i].Region,
			GeometryKey: records[i].GeometryKey,
		}
	}
	return out
}
