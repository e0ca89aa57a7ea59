// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// APIVersion is reported in every envelope and in the home payload.
const APIVersion = "1.0"

// Envelope status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Timestamp layouts: six-digit microseconds whenever the instant has any,
// none at all on a whole second.
const (
	TimestampLayout       = "2006-01-02T15:04:05.000000-07:00"
	TimestampLayoutSecond = "2006-01-02T15:04:05-07:00"
)

// Domain types

// VisitorRecord is one unique-visitor observation for a store on a date.
type VisitorRecord struct {
	ID             int64  `json:"id"`
	StoreID        string `json:"store_id"`
	Date           Date   `json:"date"`
	UniqueVisitors int64  `json:"unique_visitors"`
}

// Response types

type Envelope struct {
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
	Data      any    `json:"data,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

type HomeData struct {
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
}

type StoreMetrics struct {
	StoreID        string `json:"store_id"`
	UniqueVisitors int64  `json:"unique_visitors"`
	LastUpdated    string `json:"last_updated"`
	Date           string `json:"date,omitempty"`
}

// FormatTimestamp renders t in UTC, truncated to microseconds.
func FormatTimestamp(t time.Time) string {
	t = t.UTC().Truncate(time.Microsecond)
	if t.Nanosecond() == 0 {
		return t.Format(TimestampLayoutSecond)
	}
	return t.Format(TimestampLayout)
}

// NewEnvelope wraps a payload. A non-empty errMsg marks the envelope as an
// error; data and message are omitted from JSON when empty.
func NewEnvelope(now time.Time, data any, message, errMsg string) Envelope {
	status := StatusSuccess
	if errMsg != "" {
		status = StatusError
	}
	return Envelope{
		Version:   APIVersion,
		Timestamp: FormatTimestamp(now),
		Status:    status,
		Data:      data,
		Message:   message,
		Error:     errMsg,
	}
}
