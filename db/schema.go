// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/quorum-summary/records"
)

// CreateSchema creates the tables read by records.SQLSource.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Import writes a snapshot into the schema tables in a single transaction.
// Rows with an id already present are an error; the transaction is rolled back.
func Import(ctx context.Context, db *sql.DB, snap *records.Snapshot) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	for _, l := range snap.Legislators() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO legislator (id, name) VALUES ($1, $2)
		`, l.ID, l.Name)
		if err != nil {
			return fmt.Errorf("failed to insert legislator %d: %w", l.ID, err)
		}
	}

	for _, b := range snap.Bills() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO bill (id, title, sponsor_id) VALUES ($1, $2, $3)
		`, b.ID, b.Title, b.SponsorID)
		if err != nil {
			return fmt.Errorf("failed to insert bill %d: %w", b.ID, err)
		}
	}

	for _, v := range snap.Votes() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO vote (id, bill_id) VALUES ($1, $2)
		`, v.ID, v.BillID)
		if err != nil {
			return fmt.Errorf("failed to insert vote %d: %w", v.ID, err)
		}
	}

	for _, vr := range snap.VoteResults() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO vote_result (id, legislator_id, vote_id, vote_type) VALUES ($1, $2, $3, $4)
		`, vr.ID, vr.LegislatorID, vr.VoteID, vr.VoteType)
		if err != nil {
			return fmt.Errorf("failed to insert vote result %d: %w", vr.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	return nil
}

// No foreign keys: sponsor, legislator, and vote references may dangle.
const schema = `
-- Legislators
CREATE TABLE IF NOT EXISTS legislator (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);

-- Bills
CREATE TABLE IF NOT EXISTS bill (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    sponsor_id INTEGER NOT NULL
);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id INTEGER PRIMARY KEY,
    bill_id INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_bill_id ON vote(bill_id);

-- Vote Results
CREATE TABLE IF NOT EXISTS vote_result (
    id INTEGER PRIMARY KEY,
    legislator_id INTEGER NOT NULL,
    vote_id INTEGER NOT NULL,
    vote_type INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_result_legislator_id ON vote_result(legislator_id);
CREATE INDEX IF NOT EXISTS idx_vote_result_vote_id ON vote_result(vote_id);
`
