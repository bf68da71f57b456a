// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/jeososyal/internal/cache"
	"github.com/tomtom215/jeososyal/internal/dataset"
	"github.com/tomtom215/jeososyal/internal/logging"
	"github.com/tomtom215/jeososyal/internal/validation"
)

// maxBodyBytes bounds JSON request bodies
const maxBodyBytes = 64 << 10

// sanitizeLogValue removes control characters from strings to prevent log injection.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// decodeJSON reads a bounded JSON body into dst, normalizes and validates it.
// An empty body leaves dst at its zero value. On failure the error response has
// already been written and false is returned.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	rw := NewResponseWriter(w, r)
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			rw.Error(http.StatusRequestEntityTooLarge, ErrCodeBadRequest, "Request body too large")
			return false
		}
		rw.BadRequest("Failed to read request body")
		return false
	}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, dst); err != nil {
			rw.BadRequest("Invalid JSON body")
			return false
		}
	}
	if n, ok := dst.(normalizer); ok {
		n.Normalize()
	}
	return validateRequest(w, r, dst)
}

// normalizer is implemented by request bodies that clean themselves before
// validation.
type normalizer interface {
	Normalize()
}

// validateRequest runs the validator and writes a VALIDATION_FAILED response
// on failure.
func validateRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return true
	}
	apiErr := verr.ToAPIError()
	NewResponseWriter(w, r).ValidationError(apiErr.Message, apiErr.Details)
	return false
}

// parseCommaSeparated parses a comma-separated value into a slice, dropping blanks.
func parseCommaSeparated(value string) []string {
	if value == "" {
		return nil
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// queryList collects a list parameter given either repeated (?regions=a&regions=b)
// or comma-separated (?regions=a,b).
func queryList(r *http.Request, key string) []string {
	var result []string
	for _, v := range r.URL.Query()[key] {
		result = append(result, parseCommaSeparated(v)...)
	}
	return result
}

// snapshot returns the current dataset or writes a 503.
func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) (*dataset.Snapshot, bool) {
	snap, err := h.store.Snapshot()
	if err != nil {
		NewResponseWriter(w, r).ServiceUnavailable("Dataset not loaded yet")
		return nil, false
	}
	return snap, true
}

// provinceRecord resolves the {id} path parameter or writes a 404.
func (h *Handler) provinceRecord(w http.ResponseWriter, r *http.Request, snap *dataset.Snapshot) (string, bool) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if _, err := snap.Record(id); err != nil {
		NewResponseWriter(w, r).NotFound("Province not found: " + id)
		return "", false
	}
	return id, true
}

// respondCanceled handles a canceled request context. The client is gone,
// so the status is informational only.
func respondCanceled(w http.ResponseWriter, r *http.Request, err error) {
	logging.Ctx(r.Context()).Debug().Err(err).Msg("Request canceled")
	WriteError(w, r, 499, ErrCodeRequestCanceled, "Request canceled")
}

// cachedAnalytics memoizes an analytics payload per dataset version.
func cachedAnalytics[T any](ctx context.Context, h *Handler, snap *dataset.Snapshot, name string, params interface{}, compute func() T) T {
	key := cache.GenerateKey(name, struct {
		Version uint64      `json:"v"`
		Params  interface{} `json:"p"`
	}{snap.Version, params})

	v, hit, _ := cache.GetOrCompute(h.cache, key, func() (T, error) {
		return compute(), nil
	})
	if !hit {
		logging.Ctx(ctx).Debug().Str("payload", name).Uint64("version", snap.Version).Msg("Analytics computed")
	}
	return v
}
