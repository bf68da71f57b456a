// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package dataset

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tomtom215/jeososyal/internal/models"
)

//go:embed provinces.yaml
var referenceYAML []byte

type referenceEntry struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	Region      string `yaml:"region"`
	GeometryKey string `yaml:"geometry_key"`
}

type referenceFile struct {
	Provinces []referenceEntry `yaml:"provinces"`
}

// ReferenceTable returns the embedded 81-province table as empty records
// keyed by plate code.
func ReferenceTable() ([]models.ProvinceRecord, error) {
	var file referenceFile
	if err := yaml.Unmarshal(referenceYAML, &file); err != nil {
		return nil, fmt.Errorf("decode embedded province table: %w", err)
	}
	records := make([]models.ProvinceRecord, 0, len(file.Provinces))
	for _, e := range file.Provinces {
		if !models.IsRegion(e.Region) {
			return nil, fmt.Errorf("embedded province %s has unknown region %q", e.Code, e.Region)
		}
		records = append(records, models.ProvinceRecord{
			ID:          e.Code,
			Name:        e.Name,
			Region:      e.Region,
			GeometryKey: e.GeometryKey,
		})
	}
	return records, nil
}
