package closure

import (
	"github.com/katalvlaran/cgspan/dfscode"
	"github.com/katalvlaran/cgspan/projection"
)

// ClosedPattern is one reported closed connected subgraph: its canonical
// code, the projections realizing it, and the derived support figures
// (spec §3 "Closed pattern").
type ClosedPattern struct {
	Code        dfscode.Code
	Support     int
	GraphIDs    []int
	Projections *projection.Set
}

// NewClosedPattern snapshots code and pi into a ClosedPattern. code is
// copied so later mutation of the caller's working code cannot alias it.
func NewClosedPattern(code dfscode.Code, pi *projection.Set) *ClosedPattern {
	return &ClosedPattern{
		Code:        code.Copy(),
		Support:     pi.Support(),
		GraphIDs:    pi.GraphIDs(),
		Projections: pi,
	}
}
