// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package geo

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// turkishFolder maps Turkish letters to their closest ASCII letter.
var turkishFolder = strings.NewReplacer(
	"ğ", "g", "ü", "u", "ş", "s", "ı", "i", "ö", "o", "ç", "c",
	"Ğ", "G", "Ü", "U", "Ş", "S", "İ", "I", "Ö", "O", "Ç", "C",
)

// combiningDotAbove is what language-neutral lowercasing leaves behind for "İ".
const combiningDotAbove = '\u0307'

// FoldDiacritics replaces Turkish letters with ASCII ones ("Gümüşhane" -> "Gumushane").
func FoldDiacritics(s string) string {
	return turkishFolder.Replace(norm.NFC.String(s))
}

// LowerTurkish lowercases with Turkish rules: "İ" -> "i" and "I" -> "ı".
// A cases.Caser is stateful, so one is built per call.
func LowerTurkish(s string) string {
	return cases.Lower(language.Turkish).String(norm.NFC.String(s))
}

// LowerKey lowercases with language-neutral rules ("I" -> "i") and drops the
// combining dot left by "İ", so "İzmir", "IZMIR" and "izmir" share a key.
func LowerKey(s string) string {
	lowered := norm.NFD.String(cases.Lower(language.Und).String(s))
	lowered = strings.Map(func(r rune) rune {
		if r == combiningDotAbove {
			return -1
		}
		return r
	}, lowered)
	return norm.NFC.String(lowered)
}

// variantsOf returns the distinct lookup variants of a canonical name in
// registration order.
func variantsOf(name string) []string {
	name = norm.NFC.String(strings.TrimSpace(name))
	if name == "" {
		return nil
	}
	folded := FoldDiacritics(name)
	candidates := []string{
		name,
		LowerTurkish(name),
		LowerKey(name),
		folded,
		LowerKey(folded),
	}

	seen := make(map[string]struct{}, len(candidates))
	out := candidates[:0]
	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
