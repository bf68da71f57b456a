// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package choropleth

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/jeososyal/internal/models"
)

// Theme selects the base palette.
type Theme string

// Supported themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("unknown theme %q (expected light or dark)", s)
	}
}

// FallbackColor is the paint expression default for features without a province.
const FallbackColor = "#e5e7eb"

// Palette is the set of resolved colors for one theme. It is computed once
// from configuration and passed to every ColorResolver by value.
type Palette struct {
	Theme       Theme  `json:"theme"`
	DefaultFill string `json:"defaultFill"` // no filters, or rejected by a filter
	Border      string `json:"border"`
	Highlight   string `json:"highlight"` // visible under region/sentiment filters only
	Glow        string `json:"glow"`      // selected or multi-selected
	Fallback    string `json:"fallback"`
	GradientHue int    `json:"gradientHue"`
	GradientSat int    `json:"gradientSaturation"`
}

// LightPalette is the built-in light theme.
func LightPalette() Palette {
	return Palette{
		Theme:       ThemeLight,
		DefaultFill: "hsla(100, 0%, 95%, 1)",
		Border:      "hsla(220, 15%, 20%, 1)",
		Highlight:   "hsl(239, 84%, 67%)",
		Glow:        "hsl(258, 90%, 66%)",
		Fallback:    FallbackColor,
		GradientHue: 220,
		GradientSat: 80,
	}
}

// DarkPalette is the built-in dark theme. Default fill and border swap
// relative to the light theme.
func DarkPalette() Palette {
	return Palette{
		Theme:       ThemeDark,
		DefaultFill: "hsla(220, 15%, 20%, 1)",
		Border:      "hsla(100, 0%, 95%, 1)",
		Highlight:   "hsl(234, 89%, 74%)",
		Glow:        "hsl(255, 92%, 76%)",
		Fallback:    FallbackColor,
		GradientHue: 220,
		GradientSat: 80,
	}
}

// PaletteFor returns the built-in palette of a theme; unknown themes get light.
func PaletteFor(theme Theme) Palette {
	if theme == ThemeDark {
		return DarkPalette()
	}
	return LightPalette()
}

// WithAccents returns a copy with highlight and glow replaced when non-empty.
func (p Palette) WithAccents(highlight, glow string) Palette {
	if highlight != "" {
		p.Highlight = highlight
	}
	if glow != "" {
		p.Glow = glow
	}
	return p
}

// GradientLightness maps a relevance score to a lightness percentage.
// Scores are clamped to [0, 1]; higher relevance gives a darker shade.
func GradientLightness(score float64) float64 {
	if math.IsNaN(score) {
		score = 0
	}
	score = math.Max(0, math.Min(1, score))
	return 40 + 40*(1-score)
}

// Gradient returns the ramp color for a score.
func (p Palette) Gradient(score float64) string {
	l := strconv.FormatFloat(GradientLightness(score), 'f', -1, 64)
	return fmt.Sprintf("hsl(%d, %d%%, %s%%)", p.GradientHue, p.GradientSat, l)
}

// Selection is the current single selection and comparison multi-selection.
type Selection struct {
	SelectedID       string
	MultiSelectedIDs []string
}

// ColorResolver picks a fill color per province for one repaint.
type ColorResolver struct {
	palette  Palette
	matches  *MatchSet
	selected map[string]struct{}
}

// NewColorResolver binds a palette, a match set and the selection state.
func NewColorResolver(palette Palette, matches *MatchSet, sel Selection) *ColorResolver {
	selected := make(map[string]struct{}, len(sel.MultiSelectedIDs)+1)
	if sel.SelectedID != "" {
		selected[sel.SelectedID] = struct{}{}
	}
	for _, id := range sel.MultiSelectedIDs {
		selected[id] = struct{}{}
	}
	return &ColorResolver{palette: palette, matches: matches, selected: selected}
}

// Palette returns the palette in use.
func (r *ColorResolver) Palette() Palette {
	return r.palette
}

// ColorFor resolves a province color. Precedence, highest first:
//  1. selected or multi-selected: glow
//  2. no filters active: default fill
//  3. filtered out: default fill
//  4. hashtag filter active: gradient by raw score
//  5. otherwise: flat highlight
//
// Unknown IDs go through the same chain with the NoMatch result, so they get
// the default fill under any active filter; the old dashboard painted them glow.
func (r *ColorResolver) ColorFor(provinceID string) string {
	if _, ok := r.selected[provinceID]; ok {
		return r.palette.Glow
	}
	if !r.matches.FiltersActive() {
		return r.palette.DefaultFill
	}
	result := r.matches.Get(provinceID)
	if !result.IsVisible {
		return r.palette.DefaultFill
	}
	criteria := r.matches.Criteria()
	if criteria.HasHashtags() {
		return r.palette.Gradient(result.Score)
	}
	return r.palette.Highlight
}

// Colors resolves every province in one pass.
func (r *ColorResolver) Colors(provinces []models.Province) map[string]string {
	colors := make(map[string]string, len(provinces))
	for i := range provinces {
		colors[provinces[i].ID] = r.ColorFor(provinces[i].ID)
	}
	return colors
}

// PaintExpression builds a MapLibre "match" expression on the feature name
// property: one label/color pair per province join key, then the fallback.
// Duplicate join keys keep the first province.
func (r *ColorResolver) PaintExpression(provinces []models.Province, nameProperty string) []interface{} {
	if nameProperty == "" {
		nameProperty = "name"
	}
	expr := []interface{}{"match", []interface{}{"get", nameProperty}}
	seen := make(map[string]struct{}, len(provinces))
	for i := range provinces {
		key := provinces[i].JoinKey()
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		expr = append(expr, key, r.ColorFor(provinces[i].ID))
	}
	fallback := r.palette.Fallback
	if fallback == "" {
		fallback = FallbackColor
	}
	if len(seen) == 0 {
		// "match" needs at least one label/output pair.
		return []interface{}{"to-color", fallback}
	}
	return append(expr, fallback)
}

// ColorMap bundles the per-province colors and the paint expression.
func (r *ColorResolver) ColorMap(provinces []models.Province, nameProperty string) models.ColorMap {
	return models.ColorMap{
		Theme:           string(r.palette.Theme),
		Colors:          r.Colors(provinces),
		PaintExpression: r.PaintExpression(provinces, nameProperty),
	}
}
