// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

/*
Package choropleth decides which provinces pass the active filters and which
fill color each province gets on the map.

Filtering is done by Evaluate / EvaluateAll. Region, sentiment and hashtag
dimensions are ANDed; an empty dimension never constrains. With a hashtag
filter active, the province's relevance score becomes its match score and
tier:

	score >= 1.2  high
	score >= 0.8  medium
	score >= 0.4  low
	otherwise     none

Without a hashtag filter every visible province scores 1.5 (high).

Coloring is done by ColorResolver with a fixed precedence: selection glow,
then default fill when no filter is active or the province was rejected,
then the blue lightness ramp when hashtags are filtered, then the flat
highlight color.

Evaluator memoizes MatchSets in a cache keyed by dataset version, canonical
criteria and scores. Clear the cache whenever the dataset changes.
*/
package choropleth
