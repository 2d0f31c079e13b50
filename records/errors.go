// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package records

import (
	"errors"
	"fmt"
)

var (
	ErrMissingHeader  = errors.New("missing header row")
	ErrMissingColumn  = errors.New("missing required column")
	ErrMalformedValue = errors.New("malformed value")
)

// LoadError describes where a dataset failed to load.
// Line is 1-based and zero when the failure is not tied to a row.
type LoadError struct {
	Dataset string
	Line    int
	Column  string
	Err     error
}

func (e *LoadError) Error() string {
	msg := "load " + e.Dataset
	if e.Line > 0 {
		msg += fmt.Sprintf(" line %d", e.Line)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(" column %q", e.Column)
	}
	return msg + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
