// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package summary computes the legislator and bill voting summaries.

Both functions are pure: they read a records.Snapshot, build their own
indexes, and return fresh slices. They never return nil and are safe to
call from concurrent requests.

# Legislator Summaries

	rows := summary.Legislators(snap)

Every legislator appears exactly once, even with no votes (0/0).
vote_type 1 counts as supported, 2 as opposed.

# Bill Summaries

	rows := summary.Bills(snap)

vote_result → vote → bill. Only bills with at least one resolvable vote
result appear. primarySponsor is the sponsor's name, or "Unknown" when
sponsor_id matches no legislator.

# Dangling References

	unknown legislator_id   → counted for no legislator
	unknown vote_id         → counted for no bill
	vote for an unknown bill → counted for no bill
	unknown sponsor_id      → "Unknown"
	vote_type not 1 or 2    → counted nowhere
*/
package summary
