// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package api

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/jeososyal/internal/models"
)

func TestParseCommaSeparated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a, b ,c", []string{"a", "b", "c"}},
		{" , ,", nil},
		{"#deprem,,#trafik", []string{"#deprem", "#trafik"}},
	}

	for _, tt := range tests {
		if got := parseCommaSeparated(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseCommaSeparated(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestQueryList(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?regions=a,b&regions=c&other=x", nil)
	if got := queryList(req, "regions"); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("queryList(regions) = %v", got)
	}
	if got := queryList(req, "missing"); got != nil {
		t.Errorf("queryList(missing) = %v, want nil", got)
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	if got := sanitizeLogValue("İstanbul\nfake=entry\x7f"); got != `İstanbul\x0afake=entry\x7f` {
		t.Errorf("sanitizeLogValue() = %q", got)
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantOK   bool
		wantCode int
		wantErr  string
	}{
		{"empty body is zero value", "", true, http.StatusOK, ""},
		{"valid", `{"theme":"dark"}`, true, http.StatusOK, ""},
		{"malformed", `{"theme":`, false, http.StatusBadRequest, ErrCodeBadRequest},
		{"fails validation", `{"theme":"sepia"}`, false, http.StatusBadRequest, ErrCodeValidationFailed},
		{"too large", `{"selectedId":"` + strings.Repeat("x", maxBodyBytes) + `"}`, false, http.StatusRequestEntityTooLarge, ErrCodeBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			var dst models.ColorRequest
			ok := decodeJSON(rec, req, &dst)
			if ok != tt.wantOK {
				t.Fatalf("decodeJSON() = %v, want %v (%s)", ok, tt.wantOK, rec.Body.String())
			}
			if ok {
				return
			}
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			resp := decodeEnvelope(t, rec)
			if resp.Error == nil || resp.Error.Code != tt.wantErr {
				t.Errorf("error = %+v, want %s", resp.Error, tt.wantErr)
			}
		})
	}
}
