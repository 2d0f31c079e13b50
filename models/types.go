// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Vote type constants as recorded in vote_results
const (
	VoteYea = 1
	VoteNay = 2
)

// UnknownSponsor is reported when a bill's sponsor is not a known legislator
const UnknownSponsor = "Unknown"

// Base records

type Legislator struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SponsorID references a Legislator but may dangle
type Bill struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	SponsorID int    `json:"sponsor_id"`
}

type Vote struct {
	ID     int `json:"id"`
	BillID int `json:"bill_id"`
}

// One legislator's ballot on one vote
type VoteResult struct {
	ID           int `json:"id"`
	LegislatorID int `json:"legislator_id"`
	VoteID       int `json:"vote_id"`
	VoteType     int `json:"vote_type"`
}

// Summary types

type LegislatorSummary struct {
	ID             int    `json:"id"`
	Legislator     string `json:"legislator"`
	SupportedBills int    `json:"supportedBills"`
	OpposedBills   int    `json:"opposedBills"`
}

type BillSummary struct {
	ID             int    `json:"id"`
	Bill           string `json:"bill"`
	Supporters     int    `json:"supporters"`
	Opposers       int    `json:"opposers"`
	PrimarySponsor string `json:"primarySponsor"`
}

// DatasetStats holds row counts for a loaded snapshot
type DatasetStats struct {
	Legislators int `json:"legislators"`
	Bills       int `json:"bills"`
	Votes       int `json:"votes"`
	VoteResults int `json:"vote_results"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
