package statement

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is matched by every structural parse failure.
	ErrMalformed = errors.New("malformed statement")

	// ErrEmptyStatement is returned for a source with no rows at all.
	ErrEmptyStatement = errors.New("empty statement")

	// errEmptySection signals a blank row where a transactions heading was
	// expected, ie. a card with nothing to report. Never returned to callers.
	errEmptySection = errors.New("empty section")
)

// ParseError describes a structural problem at a given row (1-based).
type ParseError struct {
	Row    int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("row %d: %s: %v", e.Row, e.Reason, e.Err)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}
