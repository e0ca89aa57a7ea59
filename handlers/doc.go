// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Store Analytics API.

# Handler Types

AnalyticsHandler serves every endpoint and depends only on a store.VisitorStore:

	analyticsHandler := handlers.NewAnalyticsHandler(store.NewSQLStore(conn, db.SQLite))

# Endpoints

	GET  /                                  → Home
	POST /api/v1/analytics/visitors/        → TrackVisitors
	GET  /api/v1/analytics/records/         → ListRecords
	GET  /api/v1/analytics/stores/metrics/  → StoreMetrics

# Tracking Visitors

The face-detection pipeline posts one object (or an array whose first element
is used):

	{"store_id": 12, "unique_faces_count": 37}

store_id is stored as text and the record date is always today's UTC date.
Missing fields, malformed JSON, non-numeric counts and storage failures all
answer 400 with the error text.

# Store Metrics

	GET /api/v1/analytics/stores/metrics/?store_id=12&date=2025-06-01

Missing store_id answers 400, a store with no records at all answers 404, and
a date with no records answers unique_visitors 0. The date is not checked by
the handler: a malformed value fails in the store and answers 500.

# Responses

All responses use models.Envelope; status "error" responses carry an error
string and no data.
*/
package handlers
