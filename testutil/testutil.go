// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/store-analytics/db"
	"github.com/danielhkuo/store-analytics/models"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CreateTestRecord inserts a visitor record directly and returns its ID
func CreateTestRecord(t *testing.T, conn *sql.DB, storeID string, date models.Date, uniqueVisitors int64) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO visitor_record (store_id, date, unique_visitors)
		VALUES (?, ?, ?)
		RETURNING id
	`, storeID, date, uniqueVisitors).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test record: %v", err)
	}

	return id
}

// CountRecords returns the number of rows in visitor_record
func CountRecords(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM visitor_record`).Scan(&n); err != nil {
		t.Fatalf("Failed to count records: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var raw []byte
		switch b := body.(type) {
		case string:
			raw = []byte(b)
		case []byte:
			raw = b
		default:
			raw, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// Envelope mirrors models.Envelope with raw data for per-test decoding
type Envelope struct {
	Version   string          `json:"version"`
	Timestamp string          `json:"timestamp"`
	Status    string          `json:"status"`
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message"`
	Error     string          `json:"error"`
}

// DecodeEnvelope decodes the response envelope and, if data is non-nil, its payload
func DecodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, data interface{}) Envelope {
	t.Helper()

	var env Envelope
	AssertJSON(t, w, &env)
	if data != nil {
		if len(env.Data) == 0 {
			t.Fatalf("Expected data in envelope, got none (error: %q)", env.Error)
		}
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("Failed to decode envelope data: %v", err)
		}
	}
	return env
}
