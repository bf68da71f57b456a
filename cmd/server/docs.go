// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

// @title Jeososyal API
// @version 1.0
// @description Province sentiment map service for Turkey's 81 provinces.
// @description
// @description ## Features
// @description
// @description - **Province data**: sentiment breakdown, hashtags and platform activity per province
// @description - **Analytics**: national agenda, weekly trends, regional and platform comparisons
// @description - **Choropleth**: filter evaluation, relevance tiers and MapLibre paint expressions
// @description - **Name resolution**: diacritic and case insensitive province matching
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. Map endpoints allow 600.
// @description
// @description ## Responses
// @description
// @description Every response uses the same envelope:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "NOT_FOUND",
// @description     "message": "Province not found: 99",
// @description     "request_id": "..."
// @description   },
// @description   "meta": {
// @description     "request_id": "...",
// @description     "timestamp": "2026-10-19T12:00:00Z",
// @description     "duration_ms": 0
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/jeososyal/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health and readiness checks
//
// @tag.name Provinces
// @tag.description Province listings, detail, comparison and hashtag scores
//
// @tag.name Analytics
// @tag.description Aggregated social media analytics
//
// @tag.name Map
// @tag.description Choropleth filter matches, colors, name resolution and geometry
package main
