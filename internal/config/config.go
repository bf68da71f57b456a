// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package config

import (
	"time"
)

// Config holds all service configuration.
//
// Sources, lowest to highest priority:
//  1. Built-in defaults (defaultConfig)
//  2. YAML config file (CONFIG_PATH or one of DefaultConfigPaths)
//  3. Environment variables (see envTransformFunc for the mapping)
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Dataset  DatasetConfig  `koanf:"dataset"`
	Upstream UpstreamConfig `koanf:"upstream"`
	Refresh  RefreshConfig  `koanf:"refresh"`
	Map      MapConfig      `koanf:"map"`
	Cache    CacheConfig    `koanf:"cache"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging or production
}

// DatasetConfig locates the local data files.
//
// Environment Variables:
//   - SEED_PATH: YAML seed file with province counters (optional)
//   - GEOJSON_PATH: province FeatureCollection used for feature reconciliation (optional)
//   - GEOJSON_NAME_PROPERTY: feature property holding the province name (default: name)
type DatasetConfig struct {
	SeedPath     string `koanf:"seed_path"`
	GeoJSONPath  string `koanf:"geojson_path"`
	NameProperty string `koanf:"name_property"`
}

// UpstreamConfig holds connection settings for the optional Jeososyal REST backend.
// When disabled the service runs on the embedded table and seed file only.
//
// Environment Variables:
//   - UPSTREAM_ENABLED: enable the backend (default: false)
//   - UPSTREAM_URL: backend base URL, e.g. http://localhost:8000/api
//   - UPSTREAM_API_KEY: bearer token sent with every request (optional)
//   - UPSTREAM_SCORES_ENABLED: take hashtag scores from the backend (default: true)
type UpstreamConfig struct {
	Enabled           bool          `koanf:"enabled"`
	URL               string        `koanf:"url"`
	APIKey            string        `koanf:"api_key"`
	Timeout           time.Duration `koanf:"timeout"`
	MaxRetries        int           `koanf:"max_retries"`
	RetryBaseDelay    time.Duration `koanf:"retry_base_delay"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
	ScoresEnabled     bool          `koanf:"scores_enabled"`
}

// RefreshConfig controls the scheduled dataset reload.
//
// Environment Variables:
//   - REFRESH_ENABLED: run the scheduler (default: true)
//   - REFRESH_SCHEDULE: standard 5-field cron expression (default: */15 * * * *)
//   - REFRESH_TIMEOUT: maximum duration of one reload (default: 2m)
type RefreshConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Schedule string        `koanf:"schedule"`
	Timeout  time.Duration `koanf:"timeout"`
}

// MapConfig holds the choropleth defaults. Empty accent colors keep the
// built-in palette values.
type MapConfig struct {
	Theme          string `koanf:"theme"`
	HighlightColor string `koanf:"highlight_color"`
	GlowColor      string `koanf:"glow_color"`
}

// CacheConfig holds TTLs of the in-memory caches.
type CacheConfig struct {
	FilterTTL    time.Duration `koanf:"filter_ttl"`
	ScoresTTL    time.Duration `koanf:"scores_ttl"`
	AnalyticsTTL time.Duration `koanf:"analytics_ttl"`
}

// SecurityConfig holds CORS and rate limiting settings. The service has no
// authentication; every endpoint is public.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, the optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Mode describes how the dataset is fed, for the health endpoint.
func (c *Config) Mode() string {
	if c.Upstream.Enabled {
		return "upstream"
	}
	return "local"
}
