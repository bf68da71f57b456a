// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

/*
Package services provides suture.Service wrappers for Jeososyal components.

Each wrapper translates a component lifecycle into suture's context-aware
Serve(ctx) error and implements fmt.Stringer so supervisor events name it.

HTTP Server (HTTPServerService):
  - Runs ListenAndServe in a goroutine
  - Calls Shutdown with a fresh timeout context when the tree stops

Dataset Refresh (RefreshService):
  - Runs a RefreshFunc on a 5-field cron schedule (robfig/cron/v3)
  - Skips a tick while the previous refresh is still running
  - Bounds every run with the configured timeout
*/
package services
