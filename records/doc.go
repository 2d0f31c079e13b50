// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package records holds the loaded datasets and the sources that load them.

# Snapshot

A Snapshot owns the legislators, bills, votes, and vote results of one load.
Accessors return copies in source order, so callers cannot change it:

	snap, err := records.NewCSVSource("Data").Load(ctx)
	for _, l := range snap.Legislators() {
		// ...
	}

Tests build snapshots directly:

	snap := records.NewSnapshot(legislators, bills, votes, voteResults)

# Sources

  - CSVSource: legislators.csv, bills.csv, votes.csv, vote_results.csv in one directory
  - SQLSource: legislator, bill, vote, vote_result tables (see package db)

CSV headers are matched case-insensitively and unknown columns are ignored.

# Load Errors

Loading is all or nothing. Failures carry a *LoadError with the dataset,
line, and column, wrapping one of:

  - ErrMissingHeader: the file is empty
  - ErrMissingColumn: a required column is absent
  - ErrMalformedValue: a ragged row or a non-integer id

Missing files surface as wrapped fs.ErrNotExist.
*/
package records
