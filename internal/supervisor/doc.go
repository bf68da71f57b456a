// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

/*
Package supervisor provides process supervision for Jeososyal using suture v4.

# Overview

	RootSupervisor ("jeososyal")
	├── DataSupervisor ("data-layer")
	│   └── RefreshService (if REFRESH_ENABLED)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with suture's backoff. A failing refresh never takes
the HTTP server down; readers keep the last good dataset snapshot.

Supervisor events are logged through sutureslog into the slog bridge of the
logging package, so they share the zerolog output.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	refresh, err := services.NewRefreshService(cfg.Refresh.Schedule, cfg.Refresh.Timeout, reload)
	if err != nil {
	    return err
	}
	tree.AddDataService(refresh)
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh

See the services subpackage for the service wrappers.
*/
package supervisor
