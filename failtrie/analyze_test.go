package failtrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgspan/dfscode"
	"github.com/katalvlaran/cgspan/extension"
	"github.com/katalvlaran/cgspan/gstore"
	"github.com/katalvlaran/cgspan/projection"
)

// buildStore turns a set of edge lists (one per graph, every vertex and
// every edge labeled 1) into a Store.
// Every fixture in this file uses uniform labels so each case's trigger
// condition is driven purely by topology, matching the "two triangles,
// uniform label" texture of the miner package's own S1 fixture.
func buildStore(t *testing.T, numVertices int, edgesPerGraph ...[][2]int) *gstore.Store {
	t.Helper()
	var graphs []*gstore.Graph
	for gid, edges := range edgesPerGraph {
		raw := gstore.NewRawGraph(gid)
		for v := 0; v < numVertices; v++ {
			require.NoError(t, raw.AddVertex(v, 1))
		}
		for _, e := range edges {
			require.NoError(t, raw.AddEdge(e[0], e[1], 1))
		}
		graphs = append(graphs, gstore.Build(raw))
	}

	return gstore.NewStore(graphs)
}

// ee builds a uniformly-labeled ExtendedEdge from v1 to v2.
func ee(v1, v2 int) dfscode.ExtendedEdge {
	return dfscode.ExtendedEdge{V1: v1, V2: v2, L1: 1, L2: 1, LE: 1}
}

// extend grows code by step, asserting step is among code's actual
// extensions under store, and returns the child code and its projections.
func extend(t *testing.T, store *gstore.Store, arena *projection.Arena, code dfscode.Code, pi *projection.Set, step dfscode.ExtendedEdge) (dfscode.Code, *projection.Set) {
	t.Helper()
	exts := extension.Extend(code, pi, store, arena)
	childPi, ok := exts[step]
	require.True(t, ok, "step %+v must be a real extension of %+v", step, code)

	return code.WithStep(step), childPi
}

// triangleEdges is the 0-1,1-2,2-0 triangle shared by every graph below.
var triangleEdges = [][2]int{{0, 1}, {1, 2}, {2, 0}}

// diamondEdges adds a fourth vertex bridging 1 and 2, completing the
// triangle into a diamond (two triangles sharing edge 1-2).
var diamondEdges = [][2]int{{0, 1}, {1, 2}, {2, 0}, {1, 3}, {3, 2}}

func TestCase1_TriggersOnBrokenEdgeToAnOffPathUsedVertex(t *testing.T) {
	// Code branches at the root (0-1, then 0-2), leaving vertex 1 off the
	// new rightmost path [0,2]; both graphs additionally carry the
	// physical edge 2-1, which the code itself never visits.
	edges := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	store := buildStore(t, 3, edges, edges)
	arena := projection.NewArena()
	code1, pi1 := extend(t, store, arena, dfscode.Empty(), nil, ee(0, 1))
	code, pi := extend(t, store, arena, code1, pi1, ee(0, 2))
	require.Equal(t, []int{0, 2}, code.RightMostPath())

	a := NewAnalyzer(2, store)
	exts := extension.Extend(code, pi, store, arena)
	assert.True(t, a.Analyze(code, pi, exts, New()), "the 2-1 edge to the off-path vertex 1, present in both graphs, must trigger case 1")
}

func TestCase1_DoesNotTriggerBelowMinSup(t *testing.T) {
	// Only graph 0 carries the broken 2-1 edge; graph 1 has just the tree
	// edges 0-1, 0-2.
	store := buildStore(t, 3, [][2]int{{0, 1}, {0, 2}, {1, 2}}, [][2]int{{0, 1}, {0, 2}})
	arena := projection.NewArena()
	code1, pi1 := extend(t, store, arena, dfscode.Empty(), nil, ee(0, 1))
	code, pi := extend(t, store, arena, code1, pi1, ee(0, 2))

	a := NewAnalyzer(2, store)
	exts := extension.Extend(code, pi, store, arena)
	assert.False(t, a.Analyze(code, pi, exts, New()), "a single-graph broken edge below minSup must not trigger")
}

func TestCase2_TriggersOnBreakFromNonRightmostPathVertex(t *testing.T) {
	// Code: 0-1, 1-2 (straight path), then 0-3 (a branch off vertex 0,
	// still on the rightmost path). The new rightmost path is [0,3],
	// leaving 1 and 2 off-path. Both graphs additionally carry the
	// physical edge 0-2: a break reachable only from source vertex 0, not
	// from the rightmost vertex 3 (whose only neighbor is 0).
	edges := [][2]int{{0, 1}, {1, 2}, {0, 3}, {0, 2}}
	store := buildStore(t, 4, edges, edges)
	arena := projection.NewArena()
	code1, pi1 := extend(t, store, arena, dfscode.Empty(), nil, ee(0, 1))
	code2, pi2 := extend(t, store, arena, code1, pi1, ee(1, 2))
	code, pi := extend(t, store, arena, code2, pi2, ee(0, 3))
	require.Equal(t, []int{0, 3}, code.RightMostPath())

	a := NewAnalyzer(2, store)
	exts := extension.Extend(code, pi, store, arena)
	require.True(t, a.Analyze(code, pi, exts, New()), "the 0-2 branch must trigger case 2")

	// Confirm it is genuinely case 2 and not case 1: the rightmost vertex
	// (3) has no neighbor besides its own parent (0), so case 1 alone
	// (source restricted to the rightmost vertex) finds nothing.
	assert.False(t, a.case1(code, pi, exts), "case 1's rightmost-only source must miss the 0-2 branch")
}

func TestCase3_TriggersOnClosingEdgeToFirstVertex(t *testing.T) {
	// Triangle in both graphs, code stops at the two forward edges
	// (0-1, 1-2) sharing (LE, L2); case 3 looks for the closing edge 2-0
	// that the code itself does not yet contain.
	store := buildStore(t, 3, triangleEdges, triangleEdges)
	arena := projection.NewArena()
	code1, pi1 := extend(t, store, arena, dfscode.Empty(), nil, ee(0, 1))
	code, pi := extend(t, store, arena, code1, pi1, ee(1, 2))

	a := NewAnalyzer(2, store)
	exts := extension.Extend(code, pi, store, arena)
	assert.True(t, a.Analyze(code, pi, exts, New()), "the 2-0 closing edge, present in both graphs, must trigger case 3")
}

func TestCase4_TriggersOnUnusedNeighborMatchingBackwardEdge(t *testing.T) {
	// Diamond in both graphs: after the triangle closes (0-1, 1-2, 2-0
	// backward), vertex 2's graph-vertex has an extra neighbor (3) not
	// mapped by any code-vertex, reachable with the same label pair as the
	// backward edge itself.
	store := buildStore(t, 4, diamondEdges, diamondEdges)
	arena := projection.NewArena()
	code1, pi1 := extend(t, store, arena, dfscode.Empty(), nil, ee(0, 1))
	code2, pi2 := extend(t, store, arena, code1, pi1, ee(1, 2))
	code, pi := extend(t, store, arena, code2, pi2, ee(2, 0))
	require.True(t, code[len(code)-1].IsBackward())

	a := NewAnalyzer(2, store)
	exts := extension.Extend(code, pi, store, arena)
	assert.True(t, a.Analyze(code, pi, exts, New()), "vertex 3, unused by the triangle's own isomorphism, must trigger case 4")
}

func TestCase4_DoesNotTriggerWithoutAnUnusedNeighbor(t *testing.T) {
	// Plain triangle, no fourth vertex: nothing for case 4 to find.
	store := buildStore(t, 3, triangleEdges, triangleEdges)
	arena := projection.NewArena()
	code1, pi1 := extend(t, store, arena, dfscode.Empty(), nil, ee(0, 1))
	code2, pi2 := extend(t, store, arena, code1, pi1, ee(1, 2))
	code, pi := extend(t, store, arena, code2, pi2, ee(2, 0))

	a := NewAnalyzer(2, store)
	exts := extension.Extend(code, pi, store, arena)
	assert.False(t, a.Analyze(code, pi, exts, New()), "a bare triangle has no opposite-direction edge to find")
}

func TestCase5_TriggersOnBackwardTerminatedPrefixOfALongerCode(t *testing.T) {
	// Full diamond code: 0-1, 1-2, 2-0 (closing the triangle), 2-3, 3-1
	// (closing the diamond). The triangle-terminated prefix (the first
	// three steps) is where case 4's opposite-direction edge (to vertex 3)
	// is visible; by the time the full code finishes, vertex 3 is already
	// mapped, so only the prefix reconstruction case 5 performs can find
	// it.
	store := buildStore(t, 4, diamondEdges, diamondEdges)
	arena := projection.NewArena()
	code1, pi1 := extend(t, store, arena, dfscode.Empty(), nil, ee(0, 1))
	code2, pi2 := extend(t, store, arena, code1, pi1, ee(1, 2))
	code3, pi3 := extend(t, store, arena, code2, pi2, ee(2, 0))
	code4, pi4 := extend(t, store, arena, code3, pi3, ee(2, 3))
	code, pi := extend(t, store, arena, code4, pi4, ee(3, 1))
	require.True(t, code[len(code)-1].IsBackward())

	a := NewAnalyzer(2, store)
	exts := extension.Extend(code, pi, store, arena)

	assert.False(t, a.case4(code, pi, exts), "on the full diamond code, vertex 3 is already used — case 4 alone finds nothing")
	assert.True(t, a.Analyze(code, pi, exts, New()), "case 5 must recover the trigger from the triangle-terminated prefix")
}

func TestCase5_DoesNotTriggerBelowMinSupAcrossGraphs(t *testing.T) {
	// Only graph 0 has the diamond; graph 1 stops at the bare triangle, so
	// the full 5-edge code does not even exist in graph 1.
	store := buildStore(t, 4, diamondEdges, triangleEdges)
	arena := projection.NewArena()
	code1, pi1 := extend(t, store, arena, dfscode.Empty(), nil, ee(0, 1))
	code2, pi2 := extend(t, store, arena, code1, pi1, ee(1, 2))
	code3, pi3 := extend(t, store, arena, code2, pi2, ee(2, 0))
	code4, pi4 := extend(t, store, arena, code3, pi3, ee(2, 3))
	code, pi := extend(t, store, arena, code4, pi4, ee(3, 1))

	a := NewAnalyzer(2, store)
	exts := extension.Extend(code, pi, store, arena)
	assert.False(t, a.Analyze(code, pi, exts, New()), "a single-graph diamond below minSup must not trigger case 5")
}
