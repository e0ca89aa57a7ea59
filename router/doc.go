// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes using Go 1.22+ enhanced routing.

# Creating the Router

	handler := router.NewRouter(visitorStore)
	http.ListenAndServe(":8000", handler)

# Route Table

System:

	GET /health → "OK"
	GET /       → API documentation

Analytics (prefix /api/v1/analytics):

	POST /visitors/        → TrackVisitors
	GET  /records/         → ListRecords
	GET  /stores/metrics/  → StoreMetrics (?store_id=&date=)

Patterns end in {$} so a trailing-slash route does not swallow deeper paths.
The mux also redirects /records to /records/ (301) for the method the route
serves.

# Middleware

Outermost first:

  - RequestID: X-Request-ID propagation
  - Recover: panics become 500 envelopes
  - NormalizePath: 301 away from paths carrying %0A / %0a
  - CORS: cross-origin headers, OPTIONS preflight
  - WithLogging: per-route request logging
*/
package router
