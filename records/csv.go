// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package records

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/danielhkuo/quorum-summary/models"
)

// File names expected inside a CSV data directory
const (
	FileLegislators = "legislators.csv"
	FileBills       = "bills.csv"
	FileVotes       = "votes.csv"
	FileVoteResults = "vote_results.csv"
)

// CSVSource loads the datasets from a directory of CSV files
type CSVSource struct {
	Dir string
}

func NewCSVSource(dir string) CSVSource {
	return CSVSource{Dir: dir}
}

// Load reads all four files. The first failing file aborts the load.
func (s CSVSource) Load(ctx context.Context) (*Snapshot, error) {
	legislators, err := readFile(ctx, filepath.Join(s.Dir, FileLegislators), ParseLegislators)
	if err != nil {
		return nil, err
	}
	bills, err := readFile(ctx, filepath.Join(s.Dir, FileBills), ParseBills)
	if err != nil {
		return nil, err
	}
	votes, err := readFile(ctx, filepath.Join(s.Dir, FileVotes), ParseVotes)
	if err != nil {
		return nil, err
	}
	voteResults, err := readFile(ctx, filepath.Join(s.Dir, FileVoteResults), ParseVoteResults)
	if err != nil {
		return nil, err
	}

	return NewSnapshot(legislators, bills, votes, voteResults), nil
}

func readFile[T any](ctx context.Context, path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return rows, nil
}

// ParseLegislators reads a legislators table (id, name)
func ParseLegislators(r io.Reader) ([]models.Legislator, error) {
	return parseTable(r, DatasetLegislators, []string{"id", "name"}, func(t *csvTable) (models.Legislator, error) {
		var l models.Legislator
		var err error
		if l.ID, err = t.intField("id"); err != nil {
			return l, err
		}
		l.Name = t.stringField("name")
		return l, nil
	})
}

// ParseBills reads a bills table (id, title, sponsor_id)
func ParseBills(r io.Reader) ([]models.Bill, error) {
	return parseTable(r, DatasetBills, []string{"id", "title", "sponsor_id"}, func(t *csvTable) (models.Bill, error) {
		var b models.Bill
		var err error
		if b.ID, err = t.intField("id"); err != nil {
			return b, err
		}
		b.Title = t.stringField("title")
		if b.SponsorID, err = t.intField("sponsor_id"); err != nil {
			return b, err
		}
		return b, nil
	})
}

// ParseVotes reads a votes table (id, bill_id)
func ParseVotes(r io.Reader) ([]models.Vote, error) {
	return parseTable(r, DatasetVotes, []string{"id", "bill_id"}, func(t *csvTable) (models.Vote, error) {
		var v models.Vote
		var err error
		if v.ID, err = t.intField("id"); err != nil {
			return v, err
		}
		if v.BillID, err = t.intField("bill_id"); err != nil {
			return v, err
		}
		return v, nil
	})
}

// ParseVoteResults reads a vote results table (id, legislator_id, vote_id, vote_type)
func ParseVoteResults(r io.Reader) ([]models.VoteResult, error) {
	return parseTable(r, DatasetVoteResults, []string{"id", "legislator_id", "vote_id", "vote_type"}, func(t *csvTable) (models.VoteResult, error) {
		var vr models.VoteResult
		var err error
		if vr.ID, err = t.intField("id"); err != nil {
			return vr, err
		}
		if vr.LegislatorID, err = t.intField("legislator_id"); err != nil {
			return vr, err
		}
		if vr.VoteID, err = t.intField("vote_id"); err != nil {
			return vr, err
		}
		if vr.VoteType, err = t.intField("vote_type"); err != nil {
			return vr, err
		}
		return vr, nil
	})
}

// csvTable maps header names to positions for the row being decoded
type csvTable struct {
	dataset string
	reader  *csv.Reader
	columns map[string]int
	record  []string
	line    int
}

func parseTable[T any](r io.Reader, dataset string, required []string, decode func(*csvTable) (T, error)) ([]T, error) {
	t := &csvTable{
		dataset: dataset,
		reader:  csv.NewReader(r),
		columns: make(map[string]int),
	}

	header, err := t.reader.Read()
	if err == io.EOF {
		return nil, &LoadError{Dataset: dataset, Err: ErrMissingHeader}
	}
	if err != nil {
		return nil, t.readError(err)
	}

	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.ToLower(strings.TrimSpace(name))
		// First occurrence wins for duplicate headers
		if _, ok := t.columns[name]; !ok {
			t.columns[name] = i
		}
	}
	for _, col := range required {
		if _, ok := t.columns[col]; !ok {
			return nil, &LoadError{Dataset: dataset, Line: 1, Column: col, Err: ErrMissingColumn}
		}
	}

	rows := []T{}
	for {
		record, err := t.reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, t.readError(err)
		}
		t.record = record
		t.line, _ = t.reader.FieldPos(0)

		row, err := decode(t)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (t *csvTable) readError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &LoadError{
			Dataset: t.dataset,
			Line:    parseErr.Line,
			Err:     fmt.Errorf("%w: %w", ErrMalformedValue, parseErr.Err),
		}
	}
	return &LoadError{Dataset: t.dataset, Err: err}
}

func (t *csvTable) stringField(col string) string {
	return t.record[t.columns[col]]
}

func (t *csvTable) intField(col string) (int, error) {
	raw := strings.TrimSpace(t.stringField(col))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &LoadError{
			Dataset: t.dataset,
			Line:    t.line,
			Column:  col,
			Err:     fmt.Errorf("%w: %q is not an integer", ErrMalformedValue, raw),
		}
	}
	return n, nil
}
