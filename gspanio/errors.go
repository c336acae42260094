package gspanio

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by ErrParse (spec §7 "Input parse error"). Callers
// branch on these with errors.Is.
var (
	ErrMalformedLine    = errors.New("gspanio: malformed line")
	ErrDuplicateVertex  = errors.New("gspanio: duplicate vertex id")
	ErrDuplicateEdge    = errors.New("gspanio: duplicate edge")
	ErrForwardReference = errors.New("gspanio: edge references a vertex not yet declared")
	ErrUnknownToken     = errors.New("gspanio: unknown line token")
)

// ErrParse wraps one of the sentinels above with the input line number and
// byte offset where the fault occurred.
type ErrParse struct {
	Line   int
	Offset int64
	Msg    string
	Err    error
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("gspanio: line %d (offset %d): %s: %v", e.Line, e.Offset, e.Msg, e.Err)
}

func (e *ErrParse) Unwrap() error {
	return e.Err
}
