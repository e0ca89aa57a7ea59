// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect Dialect) error {
	schema := sqliteSchema
	if dialect == Postgres {
		schema = postgresSchema
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const postgresSchema = `
-- Visitor records (append-only)
CREATE TABLE IF NOT EXISTS visitor_record (
    id BIGSERIAL PRIMARY KEY,
    store_id VARCHAR(100) NOT NULL,
    date DATE NOT NULL DEFAULT CURRENT_DATE,
    unique_visitors INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_visitor_record_store_date ON visitor_record(store_id, date);
CREATE INDEX IF NOT EXISTS idx_visitor_record_date ON visitor_record(date);
`

const sqliteSchema = `
-- Visitor records (append-only)
CREATE TABLE IF NOT EXISTS visitor_record (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    store_id VARCHAR(100) NOT NULL,
    date DATE NOT NULL DEFAULT (date('now')),
    unique_visitors INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_visitor_record_store_date ON visitor_record(store_id, date);
CREATE INDEX IF NOT EXISTS idx_visitor_record_date ON visitor_record(date);
`
