// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/tomtom215/jeososyal/internal/logging"
)

// RefreshFunc performs one dataset refresh.
type RefreshFunc func(ctx context.Context) error

// RefreshService runs RefreshFunc on a standard 5-field cron schedule.
// Overlapping runs are skipped; each run gets its own timeout and is
// canceled when the service stops.
type RefreshService struct {
	schedule string
	timeout  time.Duration
	refresh  RefreshFunc
	logger   zerolog.Logger
	runs     atomic.Int64
	failures atomic.Int64
}

// NewRefreshService creates a refresh service. The schedule is validated here
// so a bad expression fails at startup instead of inside the supervisor.
func NewRefreshService(schedule string, timeout time.Duration, refresh RefreshFunc) (*RefreshService, error) {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &RefreshService{
		schedule: schedule,
		timeout:  timeout,
		refresh:  refresh,
		logger:   logging.WithComponent("refresh"),
	}, nil
}

// Serve implements suture.Service.
func (r *RefreshService) Serve(ctx context.Context) error {
	cl := cronLogger{log: r.logger}
	c := cron.New(cron.WithLogger(cl), cron.WithChain(cron.SkipIfStillRunning(cl)))

	if _, err := c.AddFunc(r.schedule, func() { r.runOnce(ctx) }); err != nil {
		return fmt.Errorf("schedule refresh: %w", err)
	}

	c.Start()
	r.logger.Info().Str("schedule", r.schedule).Dur("timeout", r.timeout).Msg("Dataset refresh scheduled")

	<-ctx.Done()
	stopped := c.Stop()
	select {
	case <-stopped.Done():
	case <-time.After(r.timeout):
		r.logger.Warn().Msg("Refresh still running at shutdown")
	}
	return ctx.Err()
}

// runOnce performs one bounded refresh. Failures are logged and counted; the
// scheduler keeps running and the previous dataset stays in place.
func (r *RefreshService) runOnce(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, r.timeout)
	defer cancel()

	start := time.Now()
	r.runs.Add(1)
	if err := r.refresh(ctx); err != nil {
		r.failures.Add(1)
		r.logger.Error().Err(err).Dur("duration", time.Since(start)).Msg("Scheduled dataset refresh failed")
		return
	}
	r.logger.Debug().Dur("duration", time.Since(start)).Msg("Scheduled dataset refresh completed")
}

// Runs returns the number of started refreshes.
func (r *RefreshService) Runs() int64 {
	return r.runs.Load()
}

// Failures returns the number of failed refreshes.
func (r *RefreshService) Failures() int64 {
	return r.failures.Load()
}

// String implements fmt.Stringer for supervisor logs.
func (r *RefreshService) String() string {
	return "dataset-refresh"
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
