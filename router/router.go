// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/store-analytics/handlers"
	"github.com/danielhkuo/store-analytics/middleware"
	"github.com/danielhkuo/store-analytics/store"
)

// NewRouter builds the route table and wraps it in the middleware chain:
// RequestID, Recover, NormalizePath, CORS, then the mux. The mux answers
// slashless GETs of the anchored routes with a 301 to the slash form.
func NewRouter(st store.VisitorStore) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	analyticsHandler := handlers.NewAnalyticsHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API documentation
	mux.HandleFunc("GET /{$}", middleware.WithLogging(analyticsHandler.Home))

	// Visitor analytics
	mux.HandleFunc("POST "+handlers.APIBase+"/visitors/{$}", middleware.WithLogging(analyticsHandler.TrackVisitors))
	mux.HandleFunc("GET "+handlers.APIBase+"/records/{$}", middleware.WithLogging(analyticsHandler.ListRecords))
	mux.HandleFunc("GET "+handlers.APIBase+"/stores/metrics/{$}", middleware.WithLogging(analyticsHandler.StoreMetrics))

	var h http.Handler = middleware.CORS(mux)
	h = middleware.NormalizePath(h)
	h = middleware.Recover(h)
	h = middleware.RequestID(h)
	return h
}
