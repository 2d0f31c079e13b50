// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quorum-summary/middleware"
	"github.com/danielhkuo/quorum-summary/records"
	"github.com/danielhkuo/quorum-summary/summary"
)

type SummaryHandler struct {
	snap *records.Snapshot
}

func NewSummaryHandler(snap *records.Snapshot) *SummaryHandler {
	return &SummaryHandler{snap: snap}
}

// GetLegislatorSummaries handles GET /api/summary/legislators
// Returns every legislator with supported/opposed counts
func (h *SummaryHandler) GetLegislatorSummaries(w http.ResponseWriter, r *http.Request) {
	if h.snap == nil {
		slog.Error("legislator summary requested without loaded data")
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Data not loaded")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, summary.Legislators(h.snap))
}

// GetBillSummaries handles GET /api/summary/bills
// Returns bills that received votes, with supporter/opposer counts and sponsor
func (h *SummaryHandler) GetBillSummaries(w http.ResponseWriter, r *http.Request) {
	if h.snap == nil {
		slog.Error("bill summary requested without loaded data")
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Data not loaded")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, summary.Bills(h.snap))
}
