// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/quorum-summary/middleware"
	"github.com/danielhkuo/quorum-summary/models"
	"github.com/danielhkuo/quorum-summary/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	mux := NewRouter(testutil.SampleSnapshot(), testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := NewRouter(testutil.SampleSnapshot(), testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "quorum-summary API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestSummaryRoutes(t *testing.T) {
	mux := NewRouter(testutil.SampleSnapshot(), testutil.GetTestConfig())

	t.Run("legislators", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("GET", "/api/summary/legislators", nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		if w.Header().Get(middleware.RequestIDHeader) == "" {
			t.Error("Expected summary routes to be wrapped with request logging")
		}

		var resp []models.LegislatorSummary
		testutil.AssertJSON(t, w, &resp)
		if len(resp) != len(testutil.SampleLegislators) {
			t.Errorf("Expected %d legislators, got %d", len(testutil.SampleLegislators), len(resp))
		}
	})

	t.Run("bills", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("GET", "/api/summary/bills", map[string]string{
			middleware.RequestIDHeader: "trace-1",
		}))

		testutil.AssertStatus(t, w, http.StatusOK)
		if got := w.Header().Get(middleware.RequestIDHeader); got != "trace-1" {
			t.Errorf("Expected request id 'trace-1', got '%s'", got)
		}

		var resp []models.BillSummary
		testutil.AssertJSON(t, w, &resp)
		if len(resp) != 2 {
			t.Errorf("Expected 2 bills, got %d", len(resp))
		}
	})
}

func TestMethodNotAllowed(t *testing.T) {
	mux := NewRouter(testutil.SampleSnapshot(), testutil.GetTestConfig())

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"POST", "/api/summary/legislators"},
		{"PUT", "/api/summary/bills"},
		{"DELETE", "/api/summary/bills"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestUnknownPath(t *testing.T) {
	mux := NewRouter(testutil.SampleSnapshot(), testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/api/summary/votes", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "index.html", "<html>charts</html>")
	testutil.WriteFile(t, dir, "app.js", "loadLegislatorsSummary();")

	cfg := testutil.GetTestConfig()
	cfg.StaticDir = dir
	mux := NewRouter(testutil.SampleSnapshot(), cfg)

	testCases := []struct {
		path     string
		contains string
	}{
		{"/", "<html>charts</html>"},
		{"/app.js", "loadLegislatorsSummary"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest("GET", tc.path, nil))

			testutil.AssertStatus(t, w, http.StatusOK)
			if !strings.Contains(w.Body.String(), tc.contains) {
				t.Errorf("Expected body to contain '%s', got '%s'", tc.contains, w.Body.String())
			}
		})
	}

	t.Run("api still routed", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/summary/bills", nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		if ct := w.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON from API route, got '%s'", ct)
		}
	})
}
