// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package records

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/quorum-summary/models"
)

// SQLSource loads the datasets from the tables created by db.CreateSchema.
// Works with both the sqlite and postgres drivers.
type SQLSource struct {
	DB *sql.DB
}

func NewSQLSource(db *sql.DB) SQLSource {
	return SQLSource{DB: db}
}

// Load reads every table inside one transaction so the four
// datasets come from the same point in time.
func (s SQLSource) Load(ctx context.Context) (*Snapshot, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin load transaction: %w", err)
	}
	defer tx.Rollback()

	legislators, err := queryRows(ctx, tx, DatasetLegislators, `
		SELECT id, name FROM legislator ORDER BY id
	`, func(rows *sql.Rows) (models.Legislator, error) {
		var l models.Legislator
		err := rows.Scan(&l.ID, &l.Name)
		return l, err
	})
	if err != nil {
		return nil, err
	}

	bills, err := queryRows(ctx, tx, DatasetBills, `
		SELECT id, title, sponsor_id FROM bill ORDER BY id
	`, func(rows *sql.Rows) (models.Bill, error) {
		var b models.Bill
		err := rows.Scan(&b.ID, &b.Title, &b.SponsorID)
		return b, err
	})
	if err != nil {
		return nil, err
	}

	votes, err := queryRows(ctx, tx, DatasetVotes, `
		SELECT id, bill_id FROM vote ORDER BY id
	`, func(rows *sql.Rows) (models.Vote, error) {
		var v models.Vote
		err := rows.Scan(&v.ID, &v.BillID)
		return v, err
	})
	if err != nil {
		return nil, err
	}

	voteResults, err := queryRows(ctx, tx, DatasetVoteResults, `
		SELECT id, legislator_id, vote_id, vote_type FROM vote_result ORDER BY id
	`, func(rows *sql.Rows) (models.VoteResult, error) {
		var vr models.VoteResult
		err := rows.Scan(&vr.ID, &vr.LegislatorID, &vr.VoteID, &vr.VoteType)
		return vr, err
	})
	if err != nil {
		return nil, err
	}

	return NewSnapshot(legislators, bills, votes, voteResults), nil
}

func queryRows[T any](ctx context.Context, tx *sql.Tx, dataset, query string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, &LoadError{Dataset: dataset, Err: fmt.Errorf("query failed: %w", err)}
	}
	defer rows.Close()

	out := []T{}
	line := 0
	for rows.Next() {
		line++
		row, err := scan(rows)
		if err != nil {
			return nil, &LoadError{Dataset: dataset, Line: line, Err: fmt.Errorf("%w: %w", ErrMalformedValue, err)}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Dataset: dataset, Err: err}
	}

	return out, nil
}
