// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

/*
Package config provides centralized configuration management for Jeososyal.

Configuration is layered with Koanf v2. Built-in defaults are loaded first,
then an optional YAML file, then environment variables. The result is
unmarshaled into Config and validated before any component starts.

# Configuration Sources

  - Defaults: defaultConfig()
  - YAML file: CONFIG_PATH, or the first existing entry of DefaultConfigPaths
  - Environment variables: only the names listed in envMappings

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8081)
  - HTTP_TIMEOUT: Per-request timeout (default: 30s)
  - ENVIRONMENT: development, staging or production (default: development)

Dataset:
  - SEED_PATH: YAML seed with per-province counters (optional)
  - GEOJSON_PATH: province FeatureCollection (optional)
  - GEOJSON_NAME_PROPERTY: feature property carrying the name (default: name)

Upstream backend:
  - UPSTREAM_ENABLED, UPSTREAM_URL, UPSTREAM_API_KEY
  - UPSTREAM_TIMEOUT (30s), UPSTREAM_MAX_RETRIES (5), UPSTREAM_RETRY_DELAY (1s)
  - UPSTREAM_RPS (5), UPSTREAM_BURST (10), UPSTREAM_SCORES_ENABLED (true)

Refresh:
  - REFRESH_ENABLED (true), REFRESH_SCHEDULE (every 15 minutes), REFRESH_TIMEOUT (2m)

Map:
  - MAP_THEME: light or dark (default: light)
  - MAP_HIGHLIGHT_COLOR, MAP_GLOW_COLOR: accent overrides

Cache:
  - CACHE_FILTER_TTL (5m), CACHE_SCORES_TTL (1m), CACHE_ANALYTICS_TTL (5m)

Security:
  - RATE_LIMIT_REQUESTS (100), RATE_LIMIT_WINDOW (1m), DISABLE_RATE_LIMIT
  - CORS_ORIGINS: comma-separated list (default: *)
  - TRUSTED_PROXIES: comma-separated list

Logging:
  - LOG_LEVEL (info), LOG_FORMAT (json), LOG_CALLER (false)

# Usage Example

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(cfg.Mode(), cfg.Server.Port)

# Thread Safety

Config is read-only after Load returns and can be shared between goroutines.
*/
package config
