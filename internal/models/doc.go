// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

/*
Package models defines data structures for the Jeososyal service.

This package contains the province records served to the map, the raw counters
they are derived from, the filter criteria and match results used by the
choropleth core, and the analytics payloads shown in the side panels.

Key Components:

  - Province: Canonical province record (sentiment percentages, inclination, hashtags)
  - ProvinceRecord / PlatformRecord: Raw counters loaded from seed data or the backend
  - FilterCriteria / FilterMatchResult: Input and output of the filter match evaluator
  - ProvinceScore / ScoreLookup: Hashtag relevance scores keyed by province ID

Model Categories:

1. Map Core:
  - FilterCriteria, FilterMatchResult, MatchType
  - ScoreLookup, ColorMap, FeatureBinding, ResolveResult

2. Province Data:
  - Province, SentimentBreakdown, SentimentCounts
  - ProvinceRecord, PlatformRecord

3. Analytics Payloads:
  - CityData, NationalAgenda, RegionalPerformance
  - PlatformComparison, CitySocial

JSON Conventions:

Province and analytics payloads use the camelCase field names the dashboard
consumes. Service-level payloads such as HealthStatus use snake_case like the
API envelope.

Thread Safety:

Models are plain values. Province slices handed out by the dataset store are
shared and must be treated as read-only.
*/
package models
