// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package summary

import (
	"github.com/danielhkuo/quorum-summary/models"
	"github.com/danielhkuo/quorum-summary/records"
)

// tally counts yea and nay ballots; other vote types are ignored
type tally struct {
	yea int
	nay int
}

func (t *tally) add(voteType int) {
	switch voteType {
	case models.VoteYea:
		t.yea++
	case models.VoteNay:
		t.nay++
	}
}

// Legislators returns one summary per legislator in snapshot order.
// Legislators without any vote results get zero counts. Vote results
// whose legislator is unknown have no row to count toward.
func Legislators(snap *records.Snapshot) []models.LegislatorSummary {
	tallies := make(map[int]*tally)
	for _, vr := range snap.VoteResults() {
		t, ok := tallies[vr.LegislatorID]
		if !ok {
			t = &tally{}
			tallies[vr.LegislatorID] = t
		}
		t.add(vr.VoteType)
	}

	legislators := snap.Legislators()
	summaries := make([]models.LegislatorSummary, 0, len(legislators))
	for _, l := range legislators {
		s := models.LegislatorSummary{
			ID:         l.ID,
			Legislator: l.Name,
		}
		if t, ok := tallies[l.ID]; ok {
			s.SupportedBills = t.yea
			s.OpposedBills = t.nay
		}
		summaries = append(summaries, s)
	}

	return summaries
}

// Bills returns one summary per bill that has at least one vote result,
// in snapshot order. Vote results whose vote or bill cannot be resolved
// are dropped. Sponsors missing from the legislators are reported as
// models.UnknownSponsor.
func Bills(snap *records.Snapshot) []models.BillSummary {
	// vote_id -> bill_id
	voteBills := make(map[int]int)
	for _, v := range snap.Votes() {
		voteBills[v.ID] = v.BillID
	}

	sponsors := make(map[int]string)
	for _, l := range snap.Legislators() {
		if _, ok := sponsors[l.ID]; !ok {
			sponsors[l.ID] = l.Name
		}
	}

	tallies := make(map[int]*tally)
	for _, vr := range snap.VoteResults() {
		billID, ok := voteBills[vr.VoteID]
		if !ok {
			continue
		}
		t, ok := tallies[billID]
		if !ok {
			t = &tally{}
			tallies[billID] = t
		}
		t.add(vr.VoteType)
	}

	summaries := []models.BillSummary{}
	seen := make(map[int]bool)
	for _, b := range snap.Bills() {
		t, ok := tallies[b.ID]
		if !ok || seen[b.ID] {
			continue
		}
		seen[b.ID] = true

		sponsor, ok := sponsors[b.SponsorID]
		if !ok {
			sponsor = models.UnknownSponsor
		}

		summaries = append(summaries, models.BillSummary{
			ID:             b.ID,
			Bill:           b.Title,
			Supporters:     t.yea,
			Opposers:       t.nay,
			PrimarySponsor: sponsor,
		})
	}

	return summaries
}
