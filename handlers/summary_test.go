// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/quorum-summary/models"
	"github.com/danielhkuo/quorum-summary/records"
	"github.com/danielhkuo/quorum-summary/testutil"
)

func TestGetLegislatorSummaries(t *testing.T) {
	handler := NewSummaryHandler(testutil.SampleSnapshot())

	req := httptest.NewRequest("GET", "/api/summary/legislators", nil)
	w := httptest.NewRecorder()

	handler.GetLegislatorSummaries(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got '%s'", ct)
	}

	var resp []models.LegislatorSummary
	testutil.AssertJSON(t, w, &resp)

	if len(resp) != len(testutil.SampleLegislators) {
		t.Fatalf("Expected %d legislators, got %d", len(testutil.SampleLegislators), len(resp))
	}

	tests := []struct {
		name      string
		id        int
		supported int
		opposed   int
	}{
		{"Rep. Bacon", testutil.BaconID, 1, 1},
		{"Rep. Ocasio-Cortez", testutil.AOCID, 1, 1},
		{"Rep. Yarmuth", testutil.YarmuthID, 1, 0},
		{"Rep. Bowman without votes", testutil.BowmanID, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var found *models.LegislatorSummary
			for i := range resp {
				if resp[i].ID == tt.id {
					found = &resp[i]
				}
			}
			if found == nil {
				t.Fatalf("Legislator %d not in response", tt.id)
			}
			if found.SupportedBills != tt.supported || found.OpposedBills != tt.opposed {
				t.Errorf("Expected %d/%d, got %d/%d", tt.supported, tt.opposed, found.SupportedBills, found.OpposedBills)
			}
		})
	}
}

func TestGetBillSummaries(t *testing.T) {
	handler := NewSummaryHandler(testutil.SampleSnapshot())

	req := httptest.NewRequest("GET", "/api/summary/bills", nil)
	w := httptest.NewRecorder()

	handler.GetBillSummaries(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp []models.BillSummary
	testutil.AssertJSON(t, w, &resp)

	if len(resp) != 2 {
		t.Fatalf("Expected 2 bills with votes, got %d", len(resp))
	}

	for _, b := range resp {
		switch b.ID {
		case testutil.BBBBillID:
			if b.PrimarySponsor != "Rep. John Yarmuth (D-KY-3)" {
				t.Errorf("Expected Yarmuth as sponsor, got '%s'", b.PrimarySponsor)
			}
			if b.Supporters != 3 || b.Opposers != 1 {
				t.Errorf("Expected 3/1, got %d/%d", b.Supporters, b.Opposers)
			}
		case testutil.InfrastructureBillID:
			if b.PrimarySponsor != models.UnknownSponsor {
				t.Errorf("Expected unknown sponsor, got '%s'", b.PrimarySponsor)
			}
			if b.Supporters != 2 || b.Opposers != 2 {
				t.Errorf("Expected 2/2, got %d/%d", b.Supporters, b.Opposers)
			}
		default:
			t.Errorf("Unexpected bill %d in response", b.ID)
		}
	}
}

func TestSummaryWireFormat(t *testing.T) {
	snap := records.NewSnapshot(
		[]models.Legislator{{ID: 1, Name: "A"}},
		[]models.Bill{{ID: 10, Title: "X", SponsorID: 1}},
		[]models.Vote{{ID: 100, BillID: 10}},
		[]models.VoteResult{
			{ID: 1000, LegislatorID: 1, VoteID: 100, VoteType: models.VoteYea},
			{ID: 1001, LegislatorID: 1, VoteID: 100, VoteType: models.VoteNay},
		},
	)
	handler := NewSummaryHandler(snap)

	tests := []struct {
		name     string
		serve    http.HandlerFunc
		expected string
	}{
		{
			name:     "legislators",
			serve:    handler.GetLegislatorSummaries,
			expected: `[{"id":1,"legislator":"A","supportedBills":1,"opposedBills":1}]`,
		},
		{
			name:     "bills",
			serve:    handler.GetBillSummaries,
			expected: `[{"id":10,"bill":"X","supporters":1,"opposers":1,"primarySponsor":"A"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.serve(w, httptest.NewRequest("GET", "/", nil))

			if body := strings.TrimSpace(w.Body.String()); body != tt.expected {
				t.Errorf("Expected body %s, got %s", tt.expected, body)
			}
		})
	}
}

func TestEmptyDataReturnsEmptyArrays(t *testing.T) {
	handler := NewSummaryHandler(records.NewSnapshot(nil, nil, nil, nil))

	for _, serve := range []http.HandlerFunc{handler.GetLegislatorSummaries, handler.GetBillSummaries} {
		w := httptest.NewRecorder()
		serve(w, httptest.NewRequest("GET", "/", nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		if body := strings.TrimSpace(w.Body.String()); body != "[]" {
			t.Errorf("Expected empty JSON array, got %s", body)
		}
	}
}

func TestNoSnapshot(t *testing.T) {
	handler := NewSummaryHandler(nil)

	for _, serve := range []http.HandlerFunc{handler.GetLegislatorSummaries, handler.GetBillSummaries} {
		w := httptest.NewRecorder()
		serve(w, httptest.NewRequest("GET", "/", nil))

		testutil.AssertStatus(t, w, http.StatusServiceUnavailable)

		var resp models.ErrorResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Message != "Data not loaded" {
			t.Errorf("Expected 'Data not loaded', got '%s'", resp.Message)
		}
	}
}

// TestConcurrentRequests hits both endpoints from many goroutines against
// one shared snapshot and checks every response is identical
func TestConcurrentRequests(t *testing.T) {
	handler := NewSummaryHandler(testutil.SampleSnapshot())

	baseline := func(serve http.HandlerFunc) string {
		w := httptest.NewRecorder()
		serve(w, httptest.NewRequest("GET", "/", nil))
		return w.Body.String()
	}
	wantLegislators := baseline(handler.GetLegislatorSummaries)
	wantBills := baseline(handler.GetBillSummaries)

	var mismatches atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			serve, want := handler.GetLegislatorSummaries, wantLegislators
			if n%2 == 1 {
				serve, want = handler.GetBillSummaries, wantBills
			}

			w := httptest.NewRecorder()
			serve(w, httptest.NewRequest("GET", "/", nil))

			if w.Code != http.StatusOK || w.Body.String() != want {
				mismatches.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if n := mismatches.Load(); n != 0 {
		t.Errorf("Expected identical responses, got %d mismatches", n)
	}
}
