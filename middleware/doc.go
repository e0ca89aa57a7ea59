// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms).

# Path Normalization

NormalizePath answers any request whose escaped path contains %0A or %0a
with a 301 to the same path minus every occurrence, one trailing slash
trimmed and the raw query kept:

	/api/v1/analytics/records/%0A?page=2  ->  /api/v1/analytics/records?page=2

It must sit in front of the mux so the redirect happens before routing.

# Request IDs

RequestID reuses an incoming X-Request-ID or generates a UUID, echoes it in
the response and stores it in the request context:

	id := middleware.RequestIDFromContext(r.Context())

# CORS Middleware

Allows methods GET, POST, OPTIONS with headers Content-Type, Authorization,
X-Request-ID. Preflight requests are answered directly.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

ErrorResponse writes the standard error envelope. ReadBody reads a request
body under a byte limit.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
