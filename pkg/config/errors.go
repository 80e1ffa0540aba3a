package config

import (
	"errors"
	"fmt"
	"strings"
)

// Structural parse error kinds. All are fatal to the parse call; match with
// errors.Is.
var (
	ErrUnterminatedQuote  = errors.New("unterminated quoted value")
	ErrUnexpectedNext     = errors.New("next outside an edit block")
	ErrUnexpectedEnd      = errors.New("end outside a config block")
	ErrUnclosedBlocks     = errors.New("unclosed blocks at end of input")
	ErrMalformedStatement = errors.New("malformed statement")
)

// ParseError is a structural error at a specific line of the input.
type ParseError struct {
	Err    error  // one of the kind sentinels above
	Line   int    // 1-based line number
	Text   string // offending raw line, or a description for end-of-input errors
	Reason string // extra detail for malformed statements
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "line %d: %v", e.Line, e.Err)
	if e.Reason != "" {
		fmt.Fprintf(&b, ": %s", e.Reason)
	}
	if e.Text != "" {
		fmt.Fprintf(&b, ": %q", strings.TrimSpace(e.Text))
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }
