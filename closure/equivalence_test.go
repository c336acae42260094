package closure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgspan/closure"
	"github.com/katalvlaran/cgspan/dfscode"
	"github.com/katalvlaran/cgspan/gstore"
	"github.com/katalvlaran/cgspan/projection"
)

func eid(gid int, pe *gstore.PhysicalEdge) gstore.EdgeID {
	return gstore.EdgeID{GraphID: gid, Edge: pe}
}

func chainOf(arena *projection.Arena, gid int, edges ...*gstore.PhysicalEdge) *projection.Node {
	var n *projection.Node
	for _, pe := range edges {
		n = arena.New(eid(gid, pe), false, n)
	}

	return n
}

func setOf(chains ...*projection.Node) *projection.Set {
	s := projection.NewSet()
	for _, c := range chains {
		s.Add(c)
	}

	return s
}

func TestEquivalent_ChildContainedInParent(t *testing.T) {
	arena := projection.NewArena()
	e1 := &gstore.PhysicalEdge{V1: 0, V2: 1, Label: 1, Index: 0}
	e2 := &gstore.PhysicalEdge{V1: 1, V2: 2, Label: 1, Index: 1}

	parent := setOf(chainOf(arena, 1, e1, e2))
	child := setOf(chainOf(arena, 1, e1))

	assert.True(t, closure.Equivalent(parent, child), "child's single edge is a subset of parent's two-edge footprint in the same graph")
}

func TestEquivalent_FailsOnDifferentGraphCoverage(t *testing.T) {
	arena := projection.NewArena()
	e1 := &gstore.PhysicalEdge{V1: 0, V2: 1, Label: 1, Index: 0}

	parent := setOf(chainOf(arena, 1, e1))
	child := setOf(chainOf(arena, 2, e1))

	assert.False(t, closure.Equivalent(parent, child))
}

func TestEquivalent_FailsWhenChildHasMoreProjections(t *testing.T) {
	arena := projection.NewArena()
	e1 := &gstore.PhysicalEdge{V1: 0, V2: 1, Label: 1, Index: 0}
	e2 := &gstore.PhysicalEdge{V1: 1, V2: 2, Label: 1, Index: 1}

	parent := setOf(chainOf(arena, 1, e1))
	child := setOf(chainOf(arena, 1, e1), chainOf(arena, 1, e2))

	assert.False(t, closure.Equivalent(parent, child))
}

func TestIndex_TryEarlyTerminate_EmptyCodeNeverTerminates(t *testing.T) {
	arena := projection.NewArena()
	e1 := &gstore.PhysicalEdge{V1: 0, V2: 1, Label: 1, Index: 0}
	candidatePi := setOf(chainOf(arena, 1, e1))

	idx := closure.NewIndex()
	cp, ok := idx.TryEarlyTerminate(dfscode.Empty(), candidatePi)
	assert.False(t, ok, "an empty code has no last step to early-terminate on")
	assert.Nil(t, cp)
}

func TestIndex_TryEarlyTerminate_FindsExemplarMatch(t *testing.T) {
	arena := projection.NewArena()
	e1 := &gstore.PhysicalEdge{V1: 0, V2: 1, Label: 1, Index: 0}
	e2 := &gstore.PhysicalEdge{V1: 1, V2: 2, Label: 1, Index: 1}

	dummyStep := dfscode.Code{{V1: 0, V2: 1, L1: 1, L2: 1, LE: 1}}
	recordedPi := setOf(chainOf(arena, 1, e1, e2))
	recorded := closure.NewClosedPattern(dummyStep, recordedPi)

	idx := closure.NewIndex()
	idx.Register(recorded)

	candidatePi := setOf(chainOf(arena, 1, e1))
	cp, ok := idx.TryEarlyTerminate(dummyStep, candidatePi)
	require.True(t, ok, "candidate's single-edge footprint is contained in the recorded pattern's exemplar-graph footprint")
	assert.Same(t, recorded, cp)
}
