// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Store Analytics API server.

Store Analytics records per-store unique-visitor counts reported by a
face-detection pipeline and serves listings and per-store totals.

# Starting the Server

With defaults (SQLite file analytics.db, port 8000):

	go run .

Against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 8000 -t postgres -d "postgres://..."

A .env file in the working directory is loaded before flags are parsed.

# Configuration

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string (required for postgres)
  - LOG_LEVEL (-log-level), LOG_FORMAT (-log-format)

# Architecture

  - handlers: HTTP request handlers (home, visitors, records, metrics)
  - router: Route table and middleware chain
  - middleware: path normalization, request IDs, CORS, logging, JSON helpers
  - store: Visitor record persistence
  - models: Records, dates and the response envelope
  - errs: Error classification
  - db: Connections and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
