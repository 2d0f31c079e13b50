// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the summary API.

# Handler Types

  - SummaryHandler: legislator and bill voting summaries

Handlers are created with the snapshot loaded at startup:

	summaryHandler := handlers.NewSummaryHandler(snap)

# Endpoints

	GET /api/summary/legislators → GetLegislatorSummaries
	GET /api/summary/bills       → GetBillSummaries

Both answer 200 with a JSON array (empty when there is no data). The
summaries are recomputed from the snapshot on every request. A handler
built without a snapshot answers 503.
*/
package handlers
