// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Call LoadEnvFile first to pick up a local .env file:

	_ = cliparse.LoadEnvFile(".env")

Variables already present in the environment are never overridden by the file.

# Config Fields

  - Port: Server listen port (default: 5000)
  - SourceType: csv, sqlite or postgres (default: csv)
  - DataDir: Directory with the four CSV files (default: Data)
  - DatabaseURL: Connection string for sqlite and postgres sources
  - StaticDir: Frontend files served at / (optional)
  - ImportCSV: Copy DataDir into the database, then exit

# CLI Flags

	-p        Server port
	-t        Data source type
	-data     CSV data directory
	-d        Database URL
	-static   Static files directory
	-import   Import CSV into the database and exit

# Environment Variables

Flags fall back to environment variables:

	PORT         → -p
	DATA_SOURCE  → -t
	DATA_DIR     → -data
	DATABASE_URL → -d
	STATIC_DIR   → -static

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - PORT is not a number
  - the source type is unknown
  - a sqlite or postgres source has no database URL
  - -import is combined with the csv source
*/
package cliparse
