package miner

import (
	"github.com/katalvlaran/cgspan/closure"
	"github.com/katalvlaran/cgspan/dfscode"
	"github.com/katalvlaran/cgspan/extension"
	"github.com/katalvlaran/cgspan/gspanio"
	"github.com/katalvlaran/cgspan/gstore"
	"github.com/katalvlaran/cgspan/projection"
)

// singleVertexPatterns implements spec §4.8 step 5: a vertex label L is
// one-vertex closed iff no frequent extension from the empty code projects
// onto every occurrence of L. Per the Open Question resolution recorded in
// DESIGN.md, "every occurrence" is measured as a total occurrence count
// (labelCountInProjections == labelCount), not occurrence-set equality.
func (d *Driver) singleVertexPatterns(store *gstore.Store, minSup int) []*ClosedPattern {
	arena := projection.NewArena()
	extsFromEmpty := extension.Extend(dfscode.Empty(), nil, store, arena)

	labelCount := make(map[int]int)
	graphsWithLabel := make(map[int][]int)
	for _, gid := range store.GraphIDs() {
		g, _ := store.Graph(gid)
		for _, label := range g.Labels() {
			n := len(g.VerticesWithLabel(label))
			labelCount[label] += n
			if n > 0 {
				graphsWithLabel[label] = append(graphsWithLabel[label], gid)
			}
		}
	}

	var out []*ClosedPattern
	for label, total := range labelCount {
		gids := graphsWithLabel[label]
		if len(gids) < minSup {
			continue
		}
		if swallowed(extsFromEmpty, store, label, total, minSup) {
			continue
		}
		out = append(out, &closure.ClosedPattern{
			Code:     dfscode.Code{{V1: 0, V2: 0, L1: label, L2: label, LE: gspanio.SingleVertexEdgeLabel}},
			Support:  len(gids),
			GraphIDs: gids,
		})
	}

	return out
}

// swallowed reports whether some frequent extension from the empty code
// touches every one of label's total occurrences.
func swallowed(exts map[dfscode.ExtendedEdge]*projection.Set, store *gstore.Store, label, total, minSup int) bool {
	for ee, set := range exts {
		if ee.L1 != label && ee.L2 != label {
			continue
		}
		if set.Support() < minSup {
			continue
		}
		covered := make(map[[2]int]bool)
		for _, chain := range set.Chains {
			g, ok := store.Graph(chain.GraphID())
			if !ok {
				continue
			}
			pe := chain.Edge.Edge
			if l, _ := g.Label(pe.V1); l == label {
				covered[[2]int{chain.GraphID(), pe.V1}] = true
			}
			if l, _ := g.Label(pe.V2); l == label {
				covered[[2]int{chain.GraphID(), pe.V2}] = true
			}
		}
		if len(covered) == total {
			return true
		}
	}

	return false
}

