// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package geo

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/jeososyal/internal/models"
)

// DefaultNameProperty is the feature property holding the province display name.
const DefaultNameProperty = "name"

// ErrNotFeatureCollection is returned when the document is not a GeoJSON FeatureCollection.
var ErrNotFeatureCollection = errors.New("geojson document is not a FeatureCollection")

// Feature is a GeoJSON feature. Geometry is kept raw; only properties are inspected.
type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   json.RawMessage        `json:"geometry"`
}

// FeatureCollection is a static province geometry dataset, loaded once at startup.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// LoadFeatureCollection reads a GeoJSON FeatureCollection from disk.
func LoadFeatureCollection(path string) (*FeatureCollection, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("read geojson %s: %w", path, err)
	}
	fc, err := ParseFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse geojson %s: %w", path, err)
	}
	return fc, nil
}

// ParseFeatureCollection decodes a GeoJSON FeatureCollection.
func ParseFeatureCollection(data []byte) (*FeatureCollection, error) {
	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, err
	}
	if fc.Type != "FeatureCollection" {
		return nil, ErrNotFeatureCollection
	}
	return &fc, nil
}

// DisplayName returns the string value of the given property, or "".
func (f *Feature) DisplayName(property string) string {
	if f.Properties == nil {
		return ""
	}
	v, ok := f.Properties[property].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

// Reconcile binds every feature to a province through the resolver. Features
// whose names do not resolve are reported with Matched=false.
func Reconcile(fc *FeatureCollection, property string, resolver *NameResolver) []models.FeatureBinding {
	if fc == nil {
		return []models.FeatureBinding{}
	}
	if property == "" {
		property = DefaultNameProperty
	}
	bindings := make([]models.FeatureBinding, 0, len(fc.Features))
	for i := range fc.Features {
		name := fc.Features[i].DisplayName(property)
		binding := models.FeatureBinding{FeatureName: name}
		if p, ok := resolver.Resolve(name); ok {
			binding.ProvinceID = p.ID
			binding.ProvinceName = p.Name
			binding.Matched = true
		}
		bindings = append(bindings, binding)
	}
	return bindings
}

// FeatureNames returns the display names of all features in document order.
func FeatureNames(fc *FeatureCollection, property string) []string {
	if fc == nil {
		return nil
	}
	if property == "" {
		property = DefaultNameProperty
	}
	names := make([]string, 0, len(fc.Features))
	for i := range fc.Features {
		names = append(names, fc.Features[i].DisplayName(property))
	}
	return names
}
