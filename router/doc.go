// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the summary API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(snap, cfg)

# Endpoints

Health:

	GET /health

Summaries:

	GET /api/summary/legislators - Per-legislator supported/opposed counts
	GET /api/summary/bills       - Per-bill supporters/opposers and sponsor

Frontend:

	GET / - Files from cfg.StaticDir (index.html by default),
	        or a plain-text banner when StaticDir is empty

Only GET is routed; other methods on these paths get 405.
*/
package router
