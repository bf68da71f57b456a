// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/jeososyal/internal/config"
	"github.com/tomtom215/jeososyal/internal/metrics"
	"github.com/tomtom215/jeososyal/internal/models"
)

// maxErrorBodySize limits how much of an error response body is read
const maxErrorBodySize = 64 * 1024 // 64KB

// ErrUpstreamDisabled is returned by a nil client.
var ErrUpstreamDisabled = errors.New("upstream backend is disabled")

// API is the set of backend operations the service depends on. It is
// implemented by Client and BreakerClient and by fakes in tests.
type API interface {
	Ping(ctx context.Context) error
	ListProvinces(ctx context.Context) ([]models.ProvinceRecord, error)
	HashtagScores(ctx context.Context, hashtags []string) ([]RemoteScore, error)
}

// RemoteScore is one backend hashtag score. Name is filled from the last
// province listing when the backend only returns its own ID.
type RemoteScore struct {
	ProvinceID string
	Name       string
	Score      float64
}

// readBodyForError reads at most maxErrorBodySize bytes for error reporting
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// Client talks to the backend REST API.
//
// Features:
//   - Configurable request timeout
//   - Optional bearer token
//   - Token bucket limiting of outgoing requests
//   - Retry on HTTP 429 with exponential backoff (1s, 2s, 4s, ...)
type Client struct {
	baseURL        string
	apiKey         string
	client         *http.Client
	limiter        *rate.Limiter
	maxRetries     int
	retryBaseDelay time.Duration

	// names remembers backend ID -> province name from the last listing
	names sync.Map
}

// NewClient creates a backend client from the upstream configuration.
func NewClient(cfg *config.UpstreamConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	limit := rate.Limit(cfg.RequestsPerSecond)
	if cfg.RequestsPerSecond <= 0 {
		limit = rate.Inf
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &Client{
		baseURL:        strings.TrimRight(cfg.URL, "/"),
		apiKey:         cfg.APIKey,
		client:         &http.Client{Timeout: timeout},
		limiter:        rate.NewLimiter(limit, burst),
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: cfg.RetryBaseDelay,
	}
}

// endpoint joins a relative path onto the base URL
func (c *Client) endpoint(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// doRequestWithRateLimit performs a request, waiting on the client-side limiter
// before every attempt and backing off on HTTP 429. The body is replayed on
// each attempt.
func (c *Client) doRequestWithRateLimit(ctx context.Context, operation, method, reqURL string, body []byte) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		var reader io.Reader = http.NoBody
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		_ = resp.Body.Close()

		if attempt == c.maxRetries {
			lastErr = fmt.Errorf("rate limit exceeded after %d retries (HTTP 429)", c.maxRetries)
			break
		}
		metrics.UpstreamRetries.WithLabelValues(operation).Inc()

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds >= 0 {
				delay = time.Duration(seconds) * time.Second
			}
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, lastErr
}

// call performs one JSON request and decodes a 200 response into result.
// A nil result discards the body.
func (c *Client) call(ctx context.Context, operation, method, path string, payload, result any) (err error) {
	start := time.Now()
	defer func() { metrics.RecordUpstreamRequest(operation, time.Since(start), err) }()

	var body []byte
	if payload != nil {
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", operation, err)
		}
	}

	resp, err := c.doRequestWithRateLimit(ctx, operation, method, c.endpoint(path), body)
	if err != nil {
		return fmt.Errorf("failed to make %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s request failed with status %d: %s", operation, resp.StatusCode, string(readBodyForError(resp.Body)))
	}
	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", operation, err)
	}
	return nil
}
