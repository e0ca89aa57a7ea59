// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/store-analytics/models"
	"github.com/danielhkuo/store-analytics/store"
	"github.com/danielhkuo/store-analytics/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { db.Close() })
	return NewRouter(store.NewSQLStore(db, "sqlite"))
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var home models.HomeData
	env := testutil.DecodeEnvelope(t, w, &home)
	if env.Status != models.StatusSuccess {
		t.Errorf("Expected status success, got %s", env.Status)
	}
	if len(home.Endpoints) != 3 {
		t.Errorf("Expected 3 endpoints, got %d", len(home.Endpoints))
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	// 400 and 404 are valid handler answers; only routing failures matter here
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"POST", "/api/v1/analytics/visitors/"},
		{"GET", "/api/v1/analytics/records/"},
		{"GET", "/api/v1/analytics/stores/metrics/?store_id=1"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
			if w.Header().Get("Content-Type") == "text/plain; charset=utf-8" && tc.path != "/health" {
				t.Errorf("Route %s %s fell through to the mux: %s", tc.method, tc.path, w.Body.String())
			}
		})
	}
}

func TestUnknownPath(t *testing.T) {
	mux := newTestRouter(t)

	for _, path := range []string{"/api/v1/analytics/unknown/", "/api/v1/analytics/records/extra/"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404 for %s, got %d", path, w.Code)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t)

	// Test that unsupported methods on defined routes return 405
	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"GET", "/api/v1/analytics/visitors/"},
		{"POST", "/api/v1/analytics/records/"},
		{"DELETE", "/api/v1/analytics/records/"},
		{"PUT", "/api/v1/analytics/stores/metrics/"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestRedirects(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		name     string
		method   string
		target   string
		location string
	}{
		{"encoded newline", "GET", "/api/v1/analytics/records/%0A", "/api/v1/analytics/records"},
		{"encoded newline with query", "GET", "/api/v1/analytics/records%0A/?x=1", "/api/v1/analytics/records?x=1"},
		{"lowercase on POST", "POST", "/api/v1/analytics/visitors/%0a", "/api/v1/analytics/visitors"},
		{"missing trailing slash", "GET", "/api/v1/analytics/records", "/api/v1/analytics/records/"},
		{"missing trailing slash keeps query", "GET", "/api/v1/analytics/stores/metrics?store_id=5", "/api/v1/analytics/stores/metrics/?store_id=5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.target, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMovedPermanently {
				t.Fatalf("Expected 301, got %d", w.Code)
			}
			if got := w.Header().Get("Location"); got != tc.location {
				t.Errorf("Expected Location %q, got %q", tc.location, got)
			}
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/analytics/records/", nil)
	req.Header.Set("X-Request-ID", "trace-42")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "trace-42" {
		t.Errorf("Expected X-Request-ID trace-42, got %q", got)
	}
}

func TestTrackThenMetrics(t *testing.T) {
	mux := newTestRouter(t)

	for _, body := range []string{
		`{"store_id": "12", "unique_faces_count": 5}`,
		`[{"store_id": 12, "unique_faces_count": 8}]`,
	} {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/v1/analytics/visitors/", body, nil))
		testutil.AssertStatus(t, w, http.StatusCreated)
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/analytics/stores/metrics/?store_id=12", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var metrics models.StoreMetrics
	testutil.DecodeEnvelope(t, w, &metrics)
	if metrics.StoreID != "12" || metrics.UniqueVisitors != 13 {
		t.Errorf("Expected store 12 with 13 visitors, got %+v", metrics)
	}
	if metrics.Date != "" {
		t.Errorf("Expected no date on unfiltered metrics, got %q", metrics.Date)
	}
}
