// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quorum-summary/cliparse"
	"github.com/danielhkuo/quorum-summary/db"
	"github.com/danielhkuo/quorum-summary/models"
	"github.com/danielhkuo/quorum-summary/records"
)

// Sample ids referenced by tests
const (
	BaconID    = 904789
	AOCID      = 1269767
	YarmuthID  = 412211
	BowmanID   = 1603850 // casts no votes
	ThompsonID = 400440

	BBBBillID            = 2952375
	InfrastructureBillID = 2900994 // sponsored by an unknown legislator
	UnvotedBillID        = 2999999

	UnknownSponsorID    = 400100
	UnknownLegislatorID = 999999
	UnknownVoteID       = 4000000
)

// SampleLegislators, SampleBills, SampleVotes and SampleVoteResults form a
// small dataset with every kind of dangling reference:
//
//   - Bowman has no vote results
//   - the infrastructure bill's sponsor is not a legislator
//   - the unvoted bill has no votes
//   - one vote result belongs to an unknown legislator
//   - one of Thompson's vote results points at an unknown vote
var (
	SampleLegislators = []models.Legislator{
		{ID: BaconID, Name: "Rep. Don Bacon (R-NE-2)"},
		{ID: AOCID, Name: "Rep. Alexandria Ocasio-Cortez (D-NY-14)"},
		{ID: YarmuthID, Name: "Rep. John Yarmuth (D-KY-3)"},
		{ID: BowmanID, Name: "Rep. Jamaal Bowman (D-NY-16)"},
		{ID: ThompsonID, Name: "Rep. Bennie Thompson (D-MS-2)"},
	}

	SampleBills = []models.Bill{
		{ID: BBBBillID, Title: "H.R. 5376: Build Back Better Act", SponsorID: YarmuthID},
		{ID: InfrastructureBillID, Title: "H.R. 3684: Infrastructure Investment and Jobs Act", SponsorID: UnknownSponsorID},
		{ID: UnvotedBillID, Title: "H.R. 9999: Unvoted Act", SponsorID: BaconID},
	}

	SampleVotes = []models.Vote{
		{ID: 3314452, BillID: InfrastructureBillID},
		{ID: 3321166, BillID: BBBBillID},
	}

	SampleVoteResults = []models.VoteResult{
		{ID: 92516784, LegislatorID: BaconID, VoteID: 3314452, VoteType: models.VoteYea},
		{ID: 92516785, LegislatorID: BaconID, VoteID: 3321166, VoteType: models.VoteNay},
		{ID: 92516786, LegislatorID: AOCID, VoteID: 3314452, VoteType: models.VoteNay},
		{ID: 92516787, LegislatorID: AOCID, VoteID: 3321166, VoteType: models.VoteYea},
		{ID: 92516788, LegislatorID: YarmuthID, VoteID: 3321166, VoteType: models.VoteYea},
		{ID: 92516789, LegislatorID: ThompsonID, VoteID: 3314452, VoteType: models.VoteYea},
		{ID: 92516790, LegislatorID: ThompsonID, VoteID: 3321166, VoteType: models.VoteYea},
		{ID: 92516791, LegislatorID: UnknownLegislatorID, VoteID: 3314452, VoteType: models.VoteNay},
		{ID: 92516792, LegislatorID: ThompsonID, VoteID: UnknownVoteID, VoteType: models.VoteYea},
	}
)

// SampleSnapshot returns a snapshot of the sample dataset
func SampleSnapshot() *records.Snapshot {
	return records.NewSnapshot(SampleLegislators, SampleBills, SampleVotes, SampleVoteResults)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:       5000,
		SourceType: cliparse.SourceCSV,
		DataDir:    cliparse.DefaultDataDir,
	}
}

// WriteFile writes raw content to dir/name
func WriteFile(t *testing.T, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// WriteSnapshotCSV writes the four CSV files for snap into dir
func WriteSnapshotCSV(t *testing.T, dir string, snap *records.Snapshot) {
	t.Helper()

	var rows [][]string

	rows = [][]string{{"id", "name"}}
	for _, l := range snap.Legislators() {
		rows = append(rows, []string{itoa(l.ID), l.Name})
	}
	writeCSV(t, filepath.Join(dir, records.FileLegislators), rows)

	rows = [][]string{{"id", "title", "sponsor_id"}}
	for _, b := range snap.Bills() {
		rows = append(rows, []string{itoa(b.ID), b.Title, itoa(b.SponsorID)})
	}
	writeCSV(t, filepath.Join(dir, records.FileBills), rows)

	rows = [][]string{{"id", "bill_id"}}
	for _, v := range snap.Votes() {
		rows = append(rows, []string{itoa(v.ID), itoa(v.BillID)})
	}
	writeCSV(t, filepath.Join(dir, records.FileVotes), rows)

	rows = [][]string{{"id", "legislator_id", "vote_id", "vote_type"}}
	for _, vr := range snap.VoteResults() {
		rows = append(rows, []string{itoa(vr.ID), itoa(vr.LegislatorID), itoa(vr.VoteID), itoa(vr.VoteType)})
	}
	writeCSV(t, filepath.Join(dir, records.FileVoteResults), rows)
}

func writeCSV(t *testing.T, path string, rows [][]string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// SetupTestDB opens an in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Each connection to :memory: is a separate database
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
