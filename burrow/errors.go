// SPDX-License-Identifier: MIT
// Package: amphipod/burrow
//
// errors.go: sentinel and typed errors for the burrow package.
//
// Callers branch with errors.Is(err, ErrParse) or errors.As(err, &*ParseError).

package burrow

import (
	"errors"
	"fmt"
)

// ErrParse indicates that an input diagram could not be turned into a Burrow.
// Every *ParseError unwraps to it.
var ErrParse = errors.New("burrow: parse error")

// ParseError locates a problem in an input diagram.
// Line and Col are 1-based; Col is zero when the problem concerns a whole line
// or the diagram as a whole.
type ParseError struct {
	Line   int
	Col    int
	Char   rune
	Reason string
}

// Error implements error.
func (e *ParseError) Error() string {
	switch {
	case e.Char != 0:
		return fmt.Sprintf("burrow: line %d col %d: %s %q", e.Line, e.Col, e.Reason, e.Char)
	case e.Col != 0:
		return fmt.Sprintf("burrow: line %d col %d: %s", e.Line, e.Col, e.Reason)
	case e.Line != 0:
		return fmt.Sprintf("burrow: line %d: %s", e.Line, e.Reason)
	default:
		return "burrow: " + e.Reason
	}
}

// Unwrap lets errors.Is(err, ErrParse) match.
func (e *ParseError) Unwrap() error { return ErrParse }

// parseErrorf builds a *ParseError for the 0-based row/col of the diagram.
func parseErrorf(row, col int, ch rune, format string, args ...any) *ParseError {
	pe := &ParseError{Char: ch, Reason: fmt.Sprintf(format, args...)}
	if row >= 0 {
		pe.Line = row + 1
	}
	if col >= 0 {
		pe.Col = col + 1
	}
	return pe
}
