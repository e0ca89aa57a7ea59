// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: Connection string; defaults to analytics.db for sqlite
  - LogLevel: debug, info, warn or error (default: info)
  - LogFormat: text or json (default: text)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-log-level    Log level
	-log-format   Log format

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	LOG_LEVEL     → -log-level
	LOG_FORMAT    → -log-format

CLI flags take precedence over environment variables. main loads a .env
file (if present) before ParseFlags runs.

# Validation

The resolved Config is checked with go-playground/validator; a postgres
database type without DATABASE_URL is rejected.
*/
package cliparse
