package miner

import "fmt"

// Params holds the mining run's user-facing knobs (spec §6.3).
type Params struct {
	// MinSupport is the minimum frequency, in (0, 1], a pattern must reach
	// as a fraction of the database's graph count.
	MinSupport float64
	// OutputSingleVertices requests one-vertex closed patterns (spec §4.8
	// step 5) in addition to the recursive search's results.
	OutputSingleVertices bool
	// MaxEdges bounds recursion depth. Zero means "produce no output"; any
	// positive value caps reported patterns to at most that many edges.
	MaxEdges int
	// OutputGraphIDs requests the "x" line (spec §6.2) on every reported
	// pattern.
	OutputGraphIDs bool
}

// Validate reports a precondition error (spec §7) if Params is out of range,
// before any work begins.
func (p Params) Validate() error {
	if p.MinSupport <= 0 || p.MinSupport > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidMinSupport, p.MinSupport)
	}
	if p.MaxEdges < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativeMaxEdges, p.MaxEdges)
	}

	return nil
}
