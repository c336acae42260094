package miner

import "errors"

// Sentinel precondition errors (spec §6.3, §7). Callers branch on these with
// errors.Is; Params.Validate wraps them with the offending value.
var (
	// ErrInvalidMinSupport indicates Params.MinSupport is outside (0, 1].
	ErrInvalidMinSupport = errors.New("miner: minSupport must be in (0, 1]")

	// ErrNegativeMaxEdges indicates Params.MaxEdges is negative.
	ErrNegativeMaxEdges = errors.New("miner: maxEdges must not be negative")
)
