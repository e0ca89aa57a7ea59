// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain record and the JSON shapes of the API.

# Domain Types

  - VisitorRecord: id, store_id, date, unique_visitors
  - Date: calendar date, serialized as "YYYY-MM-DD" in JSON and SQL

# Response Types

Every response is wrapped in an Envelope:

	{
	  "version": "1.0",
	  "timestamp": "2025-06-01T10:30:00.123456+00:00",
	  "status": "success",
	  "data": {...},
	  "message": "..."
	}

Failed requests carry "status": "error" and an "error" string instead of data.
The HTTP status code is set independently of the status field.

Payloads carried in Envelope.Data:

  - HomeData: version, description, endpoints
  - StoreMetrics: store_id, unique_visitors, last_updated, date (optional)
  - VisitorRecord / []VisitorRecord

# Timestamps

FormatTimestamp renders ISO-8601 in UTC with a numeric offset. Fractional
seconds are always six digits, and are left off entirely on a whole second.
*/
package models
