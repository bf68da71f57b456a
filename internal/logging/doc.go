// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

// Package logging provides zerolog-based structured logging for Jeososyal.
//
// A single global logger is configured once from main and used everywhere:
// JSON output for production, console output for development.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//
//	logging.Info().Int("provinces", 81).Msg("Dataset loaded")
//	logging.Err(err).Str("source", "upstream").Msg("Refresh failed")
//
// # Request Context
//
// The HTTP middleware stores a request ID and a correlation ID in the request
// context. Ctx returns a logger carrying both:
//
//	logging.Ctx(r.Context()).Warn().Str("label", label).Msg("Unrecognized inclination")
//
// # slog Bridge
//
// NewSlogLogger adapts the global logger to log/slog for libraries that only
// accept slog (the suture supervisor event hook).
//
// # Configuration
//
// Level, format and caller info come from the logging section of the
// configuration (LOG_LEVEL, LOG_FORMAT, LOG_CALLER environment variables).
package logging
