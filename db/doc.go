// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the SQL schema for database-backed data sources.

# Schema Creation

CreateSchema initializes the four tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The SQL is portable between SQLite and PostgreSQL.

# Tables

  - legislator: id, name
  - bill: id, title, sponsor_id
  - vote: id, bill_id
  - vote_result: id, legislator_id, vote_id, vote_type

# Relationships

	legislator 1──* bill (sponsor_id)
	bill 1──* vote
	vote 1──* vote_result
	legislator 1──* vote_result

None of these are enforced with foreign keys. The source data does not
guarantee referential integrity and the summaries handle dangling ids.

# Importing

Import copies a loaded snapshot into the tables in one transaction:

	snap, err := records.NewCSVSource("Data").Load(ctx)
	err = db.Import(ctx, conn, snap)
*/
package db
