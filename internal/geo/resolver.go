// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package geo

import (
	"sort"
	"strings"

	"github.com/tomtom215/jeososyal/internal/logging"
	"github.com/tomtom215/jeososyal/internal/metrics"
	"github.com/tomtom215/jeososyal/internal/models"
)

// Outcome describes which lookup stage produced a resolution.
type Outcome string

// Resolution stages, in the order they are tried.
const (
	OutcomeExact     Outcome = "exact"
	OutcomeLowercase Outcome = "lowercase"
	OutcomeSubstring Outcome = "substring"
	OutcomeMiss      Outcome = "miss"
)

// DefaultAliases maps historical or alternate spellings to canonical province names.
var DefaultAliases = map[string]string{
	"Gumushane": "Gümüşhane",
	"gumushane": "Gümüşhane",
	"Afyon":     "Afyonkarahisar",
	"afyon":     "Afyonkarahisar",
}

// Match is the result of a display name lookup.
type Match struct {
	Province models.Province
	Outcome  Outcome
	Variant  string // registered variant that matched
}

// phrase is a lowercase variant used by the substring scan.
type phrase struct {
	key   string
	id    string
	runes int
}

// NameResolver maps free-form geometry display names to canonical provinces.
// It is immutable once built and safe for concurrent use. Build a new one
// whenever the province list changes.
type NameResolver struct {
	byID     map[string]models.Province
	variants map[string]string
	phrases  []phrase
}

// NewNameResolver registers every name variant of every province plus the
// alias table. Province variants never overwrite each other (first wins);
// aliases overwrite province variants. Aliases naming an absent province are
// skipped.
func NewNameResolver(provinces []models.Province, aliases map[string]string) *NameResolver {
	r := &NameResolver{
		byID:     make(map[string]models.Province, len(provinces)),
		variants: make(map[string]string, len(provinces)*6),
	}

	byName := make(map[string]string, len(provinces))
	for i := range provinces {
		p := provinces[i]
		if p.ID == "" {
			continue
		}
		if _, dup := r.byID[p.ID]; dup {
			continue
		}
		r.byID[p.ID] = p
		if _, ok := byName[p.Name]; !ok {
			byName[p.Name] = p.ID
		}
		for _, name := range []string{p.Name, p.GeometryKey} {
			for _, v := range variantsOf(name) {
				if _, taken := r.variants[v]; !taken {
					r.variants[v] = p.ID
				}
			}
		}
	}

	// Sorted so alias overrides are applied in a stable order.
	aliasNames := make([]string, 0, len(aliases))
	for alias := range aliases {
		aliasNames = append(aliasNames, alias)
	}
	sort.Strings(aliasNames)
	for _, alias := range aliasNames {
		id, ok := byName[aliases[alias]]
		if !ok {
			continue
		}
		r.variants[strings.TrimSpace(alias)] = id
	}

	r.phrases = buildPhrases(r.variants)
	return r
}

// buildPhrases orders the substring candidates: longest first, then lexical,
// then province ID. The first hit in this order wins.
func buildPhrases(variants map[string]string) []phrase {
	seen := make(map[string]struct{}, len(variants))
	phrases := make([]phrase, 0, len(variants))
	for v, id := range variants {
		key := LowerKey(v)
		if key == "" {
			continue
		}
		dedupe := key + "\x00" + id
		if _, ok := seen[dedupe]; ok {
			continue
		}
		seen[dedupe] = struct{}{}
		phrases = append(phrases, phrase{key: key, id: id, runes: runeLen(key)})
	}
	sort.Slice(phrases, func(i, j int) bool {
		if phrases[i].runes != phrases[j].runes {
			return phrases[i].runes > phrases[j].runes
		}
		if phrases[i].key != phrases[j].key {
			return phrases[i].key < phrases[j].key
		}
		return phrases[i].id < phrases[j].id
	})
	return phrases
}

// Resolve returns the province for a display name. A false result is a soft
// failure; callers ignore the interaction.
func (r *NameResolver) Resolve(name string) (models.Province, bool) {
	m, ok := r.Lookup(name)
	return m.Province, ok
}

// Lookup is Resolve with the matching stage and variant reported.
func (r *NameResolver) Lookup(name string) (Match, bool) {
	m, ok := r.lookup(name)
	metrics.RecordNameResolution(string(m.Outcome))
	if !ok {
		logging.Debug().Str("name", name).Msg("Display name did not resolve to a province")
	}
	return m, ok
}

func (r *NameResolver) lookup(name string) (Match, bool) {
	miss := Match{Outcome: OutcomeMiss}
	if r == nil {
		return miss, false
	}
	raw := strings.TrimSpace(name)
	if raw == "" {
		return miss, false
	}

	if id, ok := r.variants[raw]; ok {
		return r.match(id, OutcomeExact, raw), true
	}

	for _, lowered := range []string{LowerTurkish(raw), LowerKey(raw)} {
		if id, ok := r.variants[lowered]; ok {
			return r.match(id, OutcomeLowercase, lowered), true
		}
	}

	query := LowerKey(raw)
	for _, p := range r.phrases {
		if strings.Contains(p.key, query) || strings.Contains(query, p.key) {
			return r.match(p.id, OutcomeSubstring, p.key), true
		}
	}
	return miss, false
}

func (r *NameResolver) match(id string, outcome Outcome, variant string) Match {
	return Match{Province: r.byID[id], Outcome: outcome, Variant: variant}
}

// ByID returns the province registered under id.
func (r *NameResolver) ByID(id string) (models.Province, bool) {
	if r == nil {
		return models.Province{}, false
	}
	p, ok := r.byID[id]
	return p, ok
}

// Len returns the number of registered provinces.
func (r *NameResolver) Len() int {
	if r == nil {
		return 0
	}
	return len(r.byID)
}

// VariantCount returns the number of registered name variants, aliases included.
func (r *NameResolver) VariantCount() int {
	if r == nil {
		return 0
	}
	return len(r.variants)
}
