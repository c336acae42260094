package extension

import (
	"sort"

	"github.com/katalvlaran/cgspan/dfscode"
	"github.com/katalvlaran/cgspan/gstore"
	"github.com/katalvlaran/cgspan/projection"
)

// Extend computes, for every rightmost-path extension of code under pi, the
// projected set of embeddings realizing it (spec §4.3). The returned map is
// keyed by ExtendedEdge; its iteration order is not meaningful, callers must
// sort the keys themselves (spec §9 "Comparators and ordered containers").
//
// arena allocates every new projection.Node created while grouping
// embeddings by extension.
func Extend(code dfscode.Code, pi *projection.Set, store *gstore.Store, arena *projection.Arena) map[dfscode.ExtendedEdge]*projection.Set {
	if len(code) == 0 {
		return extendEmpty(store, arena)
	}

	out := make(map[dfscode.ExtendedEdge]*projection.Set)
	rightMost := code.RightMost()
	rmPath := code.RightMostPath()

	for _, chain := range pi.Chains {
		gid := chain.GraphID()
		g, ok := store.Graph(gid)
		if !ok {
			continue
		}
		// Edge-count pruning (spec §4.3): a graph with no more physical
		// edges than the code already uses cannot support one more.
		if g.NumEdges() <= len(code) {
			continue
		}

		iso, _, ok := Reconstruct(code, chain)
		if !ok {
			continue
		}
		isoInverse := make(map[int]int, len(iso))
		for cv, gv := range iso {
			isoInverse[gv] = cv
		}

		// Backward extensions: neighbors of iso[rightMost].
		rmGraphVertex := iso[rightMost]
		for _, x := range g.Neighbors(rmGraphVertex) {
			v, exists := isoInverse[x]
			if !exists {
				continue
			}
			if !code.OnRightMostPath(v) || !code.NotPreOfRM(v) {
				continue
			}
			if code.ContainsEdge(rightMost, v) {
				continue
			}
			l1, _ := g.Label(rmGraphVertex)
			l2, _ := g.Label(x)
			le, _ := g.EdgeLabel(rmGraphVertex, x)
			ee := dfscode.ExtendedEdge{V1: rightMost, V2: v, L1: l1, L2: l2, LE: le}
			pe, _ := g.EdgeBetween(rmGraphVertex, x)
			reversed := pe.V1 != rmGraphVertex
			addEmbedding(out, ee, g, pe, reversed, chain, arena)
		}

		// Forward extensions: neighbors of every vertex on the rightmost path.
		usedGraphVertices := isoInverse
		for _, v := range rmPath {
			gv := iso[v]
			for _, x := range g.Neighbors(gv) {
				if _, used := usedGraphVertices[x]; used {
					continue
				}
				l1, _ := g.Label(gv)
				l2, _ := g.Label(x)
				le, _ := g.EdgeLabel(gv, x)
				ee := dfscode.ExtendedEdge{V1: v, V2: rightMost + 1, L1: l1, L2: l2, LE: le}
				pe, _ := g.EdgeBetween(gv, x)
				reversed := pe.V1 != gv
				addEmbedding(out, ee, g, pe, reversed, chain, arena)
			}
		}
	}

	return out
}

// Reconstruct walks chain (oldest edge first) to rebuild the code-vertex to
// graph-vertex isomorphism iso, and returns the per-step reversed flags
// alongside an ok flag that is false if the chain's depth disagrees with
// code's length (a programmer-error guard, never expected to trip).
//
// Exported for reuse by the failure analyzer (spec §4.7), which needs the
// same code-vertex to graph-vertex mapping to locate rightmost-path
// counterparts inside each projection's transaction graph.
func Reconstruct(code dfscode.Code, chain *projection.Node) (iso map[int]int, reversed []bool, ok bool) {
	nodes := chain.WalkNodes()
	if len(nodes) != len(code) {
		return nil, nil, false
	}
	iso = make(map[int]int, code.NumVertices())
	reversed = make([]bool, len(code))
	for i, ee := range code {
		pe := nodes[i].Edge.Edge
		gv1, gv2 := pe.V1, pe.V2
		if nodes[i].Reversed {
			gv1, gv2 = pe.V2, pe.V1
		}
		iso[ee.V1] = gv1
		iso[ee.V2] = gv2
		reversed[i] = nodes[i].Reversed
	}

	return iso, reversed, true
}

func addEmbedding(out map[dfscode.ExtendedEdge]*projection.Set, ee dfscode.ExtendedEdge, g *gstore.Graph, pe *gstore.PhysicalEdge, reversed bool, parent *projection.Node, arena *projection.Arena) {
	set, ok := out[ee]
	if !ok {
		set = projection.NewSet()
		out[ee] = set
	}
	node := arena.New(g.EdgeID(pe), reversed, parent)
	set.Add(node)
}

// extendEmpty enumerates every distinct (min(L1,L2), max(L1,L2), Le) edge
// across every transaction graph (spec §4.3, "Empty-code case"), each
// yielding one projection with Prev == nil.
func extendEmpty(store *gstore.Store, arena *projection.Arena) map[dfscode.ExtendedEdge]*projection.Set {
	out := make(map[dfscode.ExtendedEdge]*projection.Set)
	gids := store.GraphIDs()
	sort.Ints(gids)
	for _, gid := range gids {
		g, _ := store.Graph(gid)
		for _, pe := range g.Edges() {
			l1, _ := g.Label(pe.V1)
			l2, _ := g.Label(pe.V2)
			minL, maxL := l1, l2
			reversed := false
			if l1 > l2 {
				minL, maxL = l2, l1
				reversed = true
			}
			ee := dfscode.ExtendedEdge{V1: 0, V2: 1, L1: minL, L2: maxL, LE: pe.Label}
			set, ok := out[ee]
			if !ok {
				set = projection.NewSet()
				out[ee] = set
			}
			node := arena.New(g.EdgeID(pe), reversed, nil)
			set.Add(node)
		}
	}

	return out
}
