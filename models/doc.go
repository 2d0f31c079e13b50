// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the base records, summary views, and response types.

# Base Records

Loaded once from the data source and never modified:

  - Legislator: id, name
  - Bill: id, title, sponsor_id (may reference an unknown legislator)
  - Vote: id, bill_id
  - VoteResult: id, legislator_id, vote_id, vote_type

# Summary Types

Computed on every request:

  - LegislatorSummary: id, legislator, supportedBills, opposedBills
  - BillSummary: id, bill, supporters, opposers, primarySponsor

# Constants

Vote types:

	VoteYea = 1
	VoteNay = 2

Any other vote_type value is counted as neither.

Sponsor fallback:

	UnknownSponsor = "Unknown"
*/
package models
