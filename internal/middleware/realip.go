// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package middleware

import (
	"net"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/jeososyal/internal/logging"
)

// TrustedRealIP applies chi's RealIP only to requests whose direct peer is
// one of the trusted proxies (IP addresses or CIDR ranges). Forwarding
// headers from anyone else are ignored, so clients cannot pick their own
// rate limit key. An empty list trusts nobody.
func TrustedRealIP(proxies []string) func(http.Handler) http.Handler {
	nets := parseTrustedProxies(proxies)
	return func(next http.Handler) http.Handler {
		if len(nets) == 0 {
			return next
		}
		withRealIP := chimiddleware.RealIP(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isTrustedPeer(r.RemoteAddr, nets) {
				withRealIP.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func parseTrustedProxies(proxies []string) []*net.IPNet {
	nets := make([]*net.IPNet, 0, len(proxies))
	for _, p := range proxies {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.Contains(p, "/") {
			if ip := net.ParseIP(p); ip != nil {
				bits := 32
				if ip.To4() == nil {
					bits = 128
				}
				nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
				continue
			}
		}
		_, ipNet, err := net.ParseCIDR(p)
		if err != nil {
			logging.Warn().Str("proxy", p).Msg("Ignoring invalid trusted proxy entry")
			continue
		}
		nets = append(nets, ipNet)
	}
	return nets
}

func isTrustedPeer(remoteAddr string, nets []*net.IPNet) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	for _, n := range nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}
