// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/jeososyal/docs" // Import generated swagger docs
	"github.com/tomtom215/jeososyal/internal/api"
	"github.com/tomtom215/jeososyal/internal/cache"
	"github.com/tomtom215/jeososyal/internal/choropleth"
	"github.com/tomtom215/jeososyal/internal/config"
	"github.com/tomtom215/jeososyal/internal/dataset"
	"github.com/tomtom215/jeososyal/internal/geo"
	"github.com/tomtom215/jeososyal/internal/logging"
	"github.com/tomtom215/jeososyal/internal/metrics"
	"github.com/tomtom215/jeososyal/internal/scores"
	"github.com/tomtom215/jeososyal/internal/supervisor"
	"github.com/tomtom215/jeososyal/internal/supervisor/services"
	"github.com/tomtom215/jeososyal/internal/upstream"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config not yet available, the default logger is used
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	logging.Info().
		Str("version", version).
		Str("mode", cfg.Mode()).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Jeososyal with supervisor tree")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Upstream backend with circuit breaker (optional)
	var remote upstream.API
	if cfg.Upstream.Enabled {
		remote = upstream.NewBreakerClient(upstream.NewClient(&cfg.Upstream))
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := remote.Ping(pingCtx); err != nil {
			logging.Warn().Err(err).Str("url", cfg.Upstream.URL).Msg("Upstream backend unreachable, serving local data until it recovers")
		} else {
			logging.Info().Str("url", cfg.Upstream.URL).Msg("Connected to upstream backend")
		}
		cancel()
	} else {
		logging.Info().Msg("Upstream backend disabled, running in local mode")
	}

	store := dataset.NewStore(geo.DefaultAliases)
	loader := &dataset.Loader{
		SeedPath: cfg.Dataset.SeedPath,
		Aliases:  geo.DefaultAliases,
	}
	if remote != nil {
		loader.Source = remote
	}

	snap, err := loader.Reload(ctx, store)
	if err != nil {
		return fmt.Errorf("initial dataset load: %w", err)
	}
	logging.Info().
		Int("provinces", snap.Len()).
		Str("source", snap.Source).
		Uint64("version", snap.Version).
		Msg("Dataset loaded")

	var features *geo.FeatureCollection
	if cfg.Dataset.GeoJSONPath != "" {
		features, err = geo.LoadFeatureCollection(cfg.Dataset.GeoJSONPath)
		if err != nil {
			return fmt.Errorf("load geometry: %w", err)
		}
		logging.Info().
			Str("path", cfg.Dataset.GeoJSONPath).
			Int("features", len(features.Features)).
			Msg("Geometry loaded")
	}

	// Score source: upstream only when explicitly enabled for scores
	var scoreSource upstream.API
	if remote != nil && cfg.Upstream.ScoresEnabled {
		scoreSource = remote
	}

	scoreCache := cache.New("scores", cfg.Cache.ScoresTTL)
	defer scoreCache.Close()
	filterCache := cache.New("filter", cfg.Cache.FilterTTL)
	defer filterCache.Close()
	analyticsCache := cache.New("analytics", cfg.Cache.AnalyticsTTL)
	defer analyticsCache.Close()

	handler := api.NewHandler(api.Dependencies{
		Config:    cfg,
		Store:     store,
		Scores:    scores.NewProvider(scoreSource, scoreCache),
		Evaluator: choropleth.NewEvaluator(filterCache),
		Cache:     analyticsCache,
		Upstream:  remote,
		Features:  features,
		Version:   version,
	})

	// Every derived payload is keyed on the dataset version; dropping them
	// on swap just frees memory early.
	store.OnChange(func(s *dataset.Snapshot) {
		handler.ClearCache()
		scoreCache.Clear()
		filterCache.Clear()
		logging.Info().Uint64("version", s.Version).Str("source", s.Source).Msg("Dataset swapped, caches cleared")
	})

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS is configured with wildcard origin (CORS_ORIGINS=*); set explicit origins in production")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	if cfg.Refresh.Enabled {
		refresh, err := services.NewRefreshService(cfg.Refresh.Schedule, cfg.Refresh.Timeout, func(ctx context.Context) error {
			_, err := loader.Reload(ctx, store)
			return err
		})
		if err != nil {
			return fmt.Errorf("create refresh service: %w", err)
		}
		tree.AddDataService(refresh)
		logging.Info().Str("schedule", cfg.Refresh.Schedule).Msg("Dataset refresh scheduled")
	}

	router := api.NewRouter(handler, cfg)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server configured")

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
		stop()
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
		return fmt.Errorf("%d services failed to stop within timeout", len(unstopped))
	}
	return nil
}
