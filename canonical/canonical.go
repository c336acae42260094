package canonical

import (
	"github.com/katalvlaran/cgspan/dfscode"
	"github.com/katalvlaran/cgspan/extension"
	"github.com/katalvlaran/cgspan/gstore"
	"github.com/katalvlaran/cgspan/projection"
)

// IsCanonical reports whether code equals the minimum DFS code of its own
// abstract pattern graph (spec §4.4). The empty code is canonical by
// convention (it has no steps to dispute).
func IsCanonical(code dfscode.Code) bool {
	if len(code) == 0 {
		return true
	}

	store := abstractStore(code)
	arena := projection.NewArena()

	cur := dfscode.Empty()
	var pi *projection.Set
	for i := 0; i < len(code); i++ {
		exts := extension.Extend(cur, pi, store, arena)
		if len(exts) == 0 {
			// No extension exists at all where the original code claims
			// one does; the abstract graph cannot realize code, which
			// should never happen for a well-formed code but is not
			// canonical either way.
			return false
		}
		minEE, minSet := smallest(exts)
		if dfscode.Compare(minEE, code[i]) != 0 {
			return false
		}
		cur = cur.WithStep(minEE)
		pi = minSet
	}

	return true
}

// smallest returns the lexicographically smallest key in exts (per
// dfscode.Compare) and its associated projected set.
func smallest(exts map[dfscode.ExtendedEdge]*projection.Set) (dfscode.ExtendedEdge, *projection.Set) {
	first := true
	var best dfscode.ExtendedEdge
	var bestSet *projection.Set
	for ee, set := range exts {
		if first || dfscode.Compare(ee, best) < 0 {
			best, bestSet = ee, set
			first = false
		}
	}

	return best, bestSet
}

// abstractStore builds a one-graph gstore.Store representing code's own
// pattern: vertices 0..NumVertices-1 with the labels code assigns them, and
// one edge per code step carrying that step's edge label.
func abstractStore(code dfscode.Code) *gstore.Store {
	raw := gstore.NewRawGraph(0)
	n := code.NumVertices()
	for v := 0; v < n; v++ {
		label, _ := code.VertexLabel(v)
		_ = raw.AddVertex(v, label)
	}
	for _, ee := range code {
		_ = raw.AddEdge(ee.V1, ee.V2, ee.LE)
	}

	return gstore.NewStore([]*gstore.Graph{gstore.Build(raw)})
}
