package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is returned when a line of puzzle input cannot be parsed.
	ErrMalformedInput = errors.New("aoc: malformed input")

	// ErrInvalidState is returned when well-formed input breaks a puzzle invariant.
	ErrInvalidState = errors.New("aoc: invalid state")

	// ErrNoWinner is returned when a bingo game ends with no winning board.
	ErrNoWinner = fmt.Errorf("%w: no board won", ErrInvalidState)
)

// ParseError describes a malformed token in puzzle input.
type ParseError struct {
	// Line is the 1-based line number, or 0 when the error is not tied to a line.
	Line int
	// Text is the offending line or token.
	Text string
	// Err is the underlying cause. It may be nil.
	Err error
}

// NewParseError builds a ParseError for the given line.
func NewParseError(line int, text string, err error) *ParseError {
	return &ParseError{Line: line, Text: text, Err: err}
}

func (e *ParseError) Error() string {
	msg := ErrMalformedInput.Error()
	if e.Line > 0 {
		msg = fmt.Sprintf("%s: line %d", msg, e.Line)
	}
	msg = fmt.Sprintf("%s: %q", msg, e.Text)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap lets errors.Is match both ErrMalformedInput and the cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedInput}
	}
	return []error{ErrMalformedInput, e.Err}
}
