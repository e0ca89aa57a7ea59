// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database connection and creates the schema.

# Connections

Open supports two dialects, selected by DATABASE_TYPE:

  - sqlite: modernc.org/sqlite (pure Go), DSN is a file path or ":memory:"
  - postgres: github.com/lib/pq, DSN is a postgres:// URL

	conn, err := db.Open(db.SQLite, "analytics.db")

# Schema Creation

CreateSchema initializes the visitor_record table:

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and indexes.

# Tables

  - visitor_record: id, store_id, date, unique_visitors (append-only)

# Indexes

  - visitor_record.(store_id, date): per-store existence checks and sums
  - visitor_record.date: listing in date order

# Placeholders

Queries are written with ? and passed through Rebind, which emits $1, $2, ...
for PostgreSQL.
*/
package db
