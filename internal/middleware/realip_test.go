// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTrustedRealIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		proxies    []string
		remoteAddr string
		want       string
	}{
		{"no proxies ignores header", nil, "203.0.113.7:5000", "203.0.113.7:5000"},
		{"trusted single IP", []string{"10.0.0.1"}, "10.0.0.1:443", "198.51.100.20"},
		{"trusted CIDR", []string{"10.0.0.0/8"}, "10.20.30.40:443", "198.51.100.20"},
		{"untrusted peer", []string{"10.0.0.0/8"}, "203.0.113.7:5000", "203.0.113.7:5000"},
		{"invalid entries skipped", []string{"not-an-ip", " "}, "10.0.0.1:443", "10.0.0.1:443"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			handler := TrustedRealIP(tt.proxies)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.RemoteAddr
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			req.Header.Set("X-Forwarded-For", "198.51.100.20")
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want {
				t.Errorf("RemoteAddr = %q, want %q", got, tt.want)
			}
		})
	}
}
