// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quorum-summary API server.

quorum-summary loads four legislative datasets (legislators, bills, votes
and vote results), joins them in memory and serves two read-only summaries:
how many bills each legislator supported or opposed, and how many
legislators supported or opposed each bill.

# Starting the Server

By default the server reads CSV files from ./Data and listens on port 5000:

	go run .

Or with flags:

	go run . -p 8080 -data ./fixtures -static ./wwwroot

A .env file in the working directory is read before flags are parsed.

# Configuration

  - PORT (-p): Server port (default: 5000)
  - DATA_SOURCE (-t): csv, sqlite or postgres (default: csv)
  - DATA_DIR (-data): Directory holding the CSV files (default: Data)
  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - STATIC_DIR (-static): Directory served at / when set

# Importing

With -import the CSV files in the data directory are copied into the
configured database and the process exits:

	go run . -import -t sqlite -d quorum.db

# Architecture

  - records: Loading the datasets from CSV or SQL into a Snapshot
  - summary: Legislator and bill summaries over a Snapshot
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Record and response types
  - db: Schema creation and CSV import
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
