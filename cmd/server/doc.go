// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

/*
Package main is the entry point for the Jeososyal server.

Jeososyal serves social media sentiment data for Turkey's 81 provinces and
the choropleth logic behind its map dashboard: filter evaluation, color
resolution and display name reconciliation.

# Application Architecture

The server runs under Suture v4 process supervision:

	RootSupervisor ("jeososyal")
	├── DataSupervisor ("data-layer")
	│   └── Dataset refresh (cron schedule, optional)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (Chi router)

Startup order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Upstream client: optional, wrapped in a gobreaker circuit breaker
 4. Dataset: embedded reference table, optional seed file, optional upstream
 5. Geometry: optional GeoJSON feature collection
 6. Caches: scores, filter matches and analytics payloads
 7. Supervisor Tree: refresh service and HTTP server

# Configuration

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	HTTP_PORT=8081               # HTTP server port
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	SEED_PATH=/data/seed.yaml    # province seed overlay (YAML or JSON)
	GEOJSON_PATH=/data/tr.json   # province geometry for /map/features
	GEOJSON_NAME_PROPERTY=name   # feature property holding the display name

	UPSTREAM_ENABLED=false
	UPSTREAM_URL=http://backend:8000
	UPSTREAM_SCORES_ENABLED=true

	REFRESH_ENABLED=true
	REFRESH_SCHEDULE="0,15,30,45 * * * *"   # every 15 minutes

	MAP_THEME=light              # light or dark

# Signal Handling

SIGINT and SIGTERM stop the supervisor tree. The HTTP server drains
in-flight requests for up to 10s; services that miss the shutdown timeout
are reported and the process exits non-zero.

# API Documentation

Swagger documentation is served at /swagger/index.html and Prometheus
metrics at /metrics.
*/
package main
