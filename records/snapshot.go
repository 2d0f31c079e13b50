// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package records

import (
	"context"
	"slices"

	"github.com/danielhkuo/quorum-summary/models"
)

// Dataset names, also used in load errors
const (
	DatasetLegislators = "legislators"
	DatasetBills       = "bills"
	DatasetVotes       = "votes"
	DatasetVoteResults = "vote_results"
)

// Source loads a complete snapshot of the four datasets.
// Either every dataset loads or an error is returned.
type Source interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// Snapshot is a read-only view of one load. Safe for concurrent readers.
type Snapshot struct {
	legislators []models.Legislator
	bills       []models.Bill
	votes       []models.Vote
	voteResults []models.VoteResult
}

// NewSnapshot copies the given rows into a new snapshot, keeping their order
func NewSnapshot(legislators []models.Legislator, bills []models.Bill, votes []models.Vote, voteResults []models.VoteResult) *Snapshot {
	return &Snapshot{
		legislators: slices.Clone(legislators),
		bills:       slices.Clone(bills),
		votes:       slices.Clone(votes),
		voteResults: slices.Clone(voteResults),
	}
}

func (s *Snapshot) Legislators() []models.Legislator {
	return slices.Clone(s.legislators)
}

func (s *Snapshot) Bills() []models.Bill {
	return slices.Clone(s.bills)
}

func (s *Snapshot) Votes() []models.Vote {
	return slices.Clone(s.votes)
}

func (s *Snapshot) VoteResults() []models.VoteResult {
	return slices.Clone(s.voteResults)
}

// Stats returns the row count of each dataset
func (s *Snapshot) Stats() models.DatasetStats {
	return models.DatasetStats{
		Legislators: len(s.legislators),
		Bills:       len(s.bills),
		Votes:       len(s.votes),
		VoteResults: len(s.voteResults),
	}
}
