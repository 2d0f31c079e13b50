// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quorum-summary/cliparse"
	"github.com/danielhkuo/quorum-summary/handlers"
	"github.com/danielhkuo/quorum-summary/middleware"
	"github.com/danielhkuo/quorum-summary/records"
)

func NewRouter(snap *records.Snapshot, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	summaryHandler := handlers.NewSummaryHandler(snap)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Summaries (public, read-only)
	mux.HandleFunc("GET /api/summary/legislators", middleware.WithLogging(summaryHandler.GetLegislatorSummaries))
	mux.HandleFunc("GET /api/summary/bills", middleware.WithLogging(summaryHandler.GetBillSummaries))

	// Frontend, or a plain banner when none is configured
	if cfg.StaticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticDir)))
	} else {
		mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("quorum-summary API v1"))
		})
	}

	return mux
}
