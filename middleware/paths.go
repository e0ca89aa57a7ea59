// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"net/http"
	"strings"
)

// NormalizePath redirects requests whose path smuggles an encoded newline
// (%0A or %0a) to the same path with every occurrence removed. The redirect
// is permanent and keeps the raw query string unchanged.
func NormalizePath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.EscapedPath()
		if !strings.Contains(raw, "%0A") && !strings.Contains(raw, "%0a") {
			next.ServeHTTP(w, r)
			return
		}

		target := SanitizePath(raw, r.URL.RawQuery)
		slog.Warn("encoded newline in request path",
			"remote", GetClientIP(r),
			"request_id", RequestIDFromContext(r.Context()),
			"location", target,
		)

		// Location is set verbatim; http.Redirect would clean the path.
		w.Header().Set("Location", target)
		w.WriteHeader(http.StatusMovedPermanently)
	})
}

// SanitizePath strips %0A/%0a from an escaped path, drops one trailing
// slash, guarantees a leading slash and re-attaches rawQuery when non-empty.
func SanitizePath(escapedPath, rawQuery string) string {
	clean := strings.ReplaceAll(escapedPath, "%0A", "")
	clean = strings.ReplaceAll(clean, "%0a", "")
	clean = strings.TrimSuffix(clean, "/")
	if !strings.HasPrefix(clean, "/") {
		clean = "/" + clean
	}
	if rawQuery != "" {
		clean += "?" + rawQuery
	}
	return clean
}
