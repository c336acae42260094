package failtrie

import (
	"github.com/katalvlaran/cgspan/dfscode"
	"github.com/katalvlaran/cgspan/extension"
	"github.com/katalvlaran/cgspan/gstore"
	"github.com/katalvlaran/cgspan/projection"
)

// Analyzer runs the five-case early-termination-failure check (spec §4.7)
// after a non-trivial recursive exit.
type Analyzer struct {
	minSup int
	store  *gstore.Store
}

// NewAnalyzer returns an Analyzer that measures frequency against minSup
// using store to look up each projection's transaction graph.
func NewAnalyzer(minSup int, store *gstore.Store) *Analyzer {
	return &Analyzer{minSup: minSup, store: store}
}

// breakKey groups broken edges the way each case's prose specifies.
type breakKey struct {
	source      int // code-vertex the broken edge starts from; -1 when not case-specific
	edgeLabel   int
	targetLabel int
}

// Analyze inspects code's own projections and its already-computed
// extensions, and reports whether any of the five cases finds enough
// "broken" occurrences to make some forward extension frequent on its own.
// On a positive result it inserts code into trie (spec: "insert the current
// code into the failure trie").
func (a *Analyzer) Analyze(code dfscode.Code, pi *projection.Set, extensions map[dfscode.ExtendedEdge]*projection.Set, trie *Trie) bool {
	if len(code) == 0 {
		return false
	}

	triggered := a.case1(code, pi, extensions) ||
		a.case2(code, pi, extensions) ||
		a.case3(code, pi, extensions) ||
		(code[len(code)-1].IsBackward() && (a.case4(code, pi, extensions) || a.case5(code, pi, extensions)))

	if triggered {
		trie.Insert(code)
	}

	return triggered
}

// isos returns, for every chain in pi, its code-vertex to graph-vertex
// mapping and owning graph, skipping any chain whose graph has vanished
// from the store (pruned mid-run; never expected but handled defensively).
func (a *Analyzer) isos(code dfscode.Code, pi *projection.Set) []struct {
	iso   map[int]int
	g     *gstore.Graph
	chain *projection.Node
} {
	out := make([]struct {
		iso   map[int]int
		g     *gstore.Graph
		chain *projection.Node
	}, 0, pi.Len())
	for _, chain := range pi.Chains {
		g, ok := a.store.Graph(chain.GraphID())
		if !ok {
			continue
		}
		iso, _, ok := extension.Reconstruct(code, chain)
		if !ok {
			continue
		}
		out = append(out, struct {
			iso   map[int]int
			g     *gstore.Graph
			chain *projection.Node
		}{iso, g, chain})
	}

	return out
}

// triggerWithMerge reports whether gids alone reaches minSup, or reaches it
// once merged with the graph-id set of ext (the matching existing forward
// extension, if any).
func (a *Analyzer) triggerWithMerge(gids map[int]struct{}, ext *projection.Set) bool {
	if len(gids) >= a.minSup {
		return true
	}
	if ext == nil {
		return false
	}
	merged := make(map[int]struct{}, len(gids))
	for id := range gids {
		merged[id] = struct{}{}
	}
	for _, gid := range ext.GraphIDs() {
		merged[gid] = struct{}{}
	}

	return len(merged) >= a.minSup
}

// matchingForwardExtension finds, among extensions, the forward extension
// sourced at source whose (LE, L2) equal key's (edgeLabel, targetLabel), if
// any — the "matching existing forward extension" each case's prose refers
// to.
func matchingForwardExtension(extensions map[dfscode.ExtendedEdge]*projection.Set, source, edgeLabel, targetLabel int) *projection.Set {
	for ee, set := range extensions {
		if ee.IsForward() && ee.V1 == source && ee.LE == edgeLabel && ee.L2 == targetLabel {
			return set
		}
	}

	return nil
}

// case1 implements spec §4.7 Case 1: the last step is forward; enumerate,
// for every projection, edges from the rightmost graph-vertex to any
// code-vertex not on the rightmost path, grouped by (edgeLabel, targetLabel).
func (a *Analyzer) case1(code dfscode.Code, pi *projection.Set, extensions map[dfscode.ExtendedEdge]*projection.Set) bool {
	if code[len(code)-1].IsBackward() {
		return false
	}

	return a.forwardBreakCases(code, pi, extensions, []int{code.RightMost()})
}

// case2 implements spec §4.7 Case 2: as Case 1, but the candidate source may
// be any vertex earlier on the rightmost path, keyed additionally on that
// source vertex.
//
// Every rightmost-path vertex except the rightmost one is a candidate
// source, each keyed independently; the case triggers if any source's key
// reaches minSup. It does not stop at, or give precedence to, the first
// fork on the rightmost path.
func (a *Analyzer) case2(code dfscode.Code, pi *projection.Set, extensions map[dfscode.ExtendedEdge]*projection.Set) bool {
	path := code.RightMostPath()
	if len(path) < 2 {
		return false
	}

	return a.forwardBreakCases(code, pi, extensions, path[:len(path)-1])
}

// forwardBreakCases is the shared engine behind Case 1 and Case 2: for each
// candidate source code-vertex, accumulate broken-edge gid sets keyed by
// (source, edgeLabel, targetLabel) across every projection, and report
// whether any key's gid set (alone or merged with a matching existing
// forward extension from that source) reaches minSup.
func (a *Analyzer) forwardBreakCases(code dfscode.Code, pi *projection.Set, extensions map[dfscode.ExtendedEdge]*projection.Set, sources []int) bool {
	onPath := make(map[int]bool, len(code)+1)
	for _, v := range code.RightMostPath() {
		onPath[v] = true
	}

	buckets := make(map[breakKey]map[int]struct{})
	for _, rec := range a.isos(code, pi) {
		isoInverse := make(map[int]int, len(rec.iso))
		for cv, gv := range rec.iso {
			isoInverse[gv] = cv
		}
		for _, source := range sources {
			gv, ok := rec.iso[source]
			if !ok {
				continue
			}
			for _, x := range rec.g.Neighbors(gv) {
				v, used := isoInverse[x]
				if !used || onPath[v] {
					continue
				}
				if code.ContainsEdge(source, v) {
					continue
				}
				edgeLabel, _ := rec.g.EdgeLabel(gv, x)
				targetLabel, _ := rec.g.Label(x)
				key := breakKey{source: source, edgeLabel: edgeLabel, targetLabel: targetLabel}
				if buckets[key] == nil {
					buckets[key] = make(map[int]struct{})
				}
				buckets[key][rec.chain.GraphID()] = struct{}{}
			}
		}
	}

	for key, gids := range buckets {
		ext := matchingForwardExtension(extensions, key.source, key.edgeLabel, key.targetLabel)
		if a.triggerWithMerge(gids, ext) {
			return true
		}
	}

	return false
}

// case3 implements spec §4.7 Case 3: when the last two rightmost-path edges
// share (edgeLabel, L2), test edges from the rightmost graph-vertex back to
// the graph-vertex mapped from the first rightmost-path vertex (code-vertex
// 0).
func (a *Analyzer) case3(code dfscode.Code, pi *projection.Set, extensions map[dfscode.ExtendedEdge]*projection.Set) bool {
	if len(code) < 2 {
		return false
	}
	last, prev := code[len(code)-1], code[len(code)-2]
	if last.LE != prev.LE || last.L2 != prev.L2 {
		return false
	}

	rm := code.RightMost()
	gids := make(map[int]struct{})
	for _, rec := range a.isos(code, pi) {
		rmGV, ok1 := rec.iso[rm]
		zeroGV, ok2 := rec.iso[0]
		if !ok1 || !ok2 || rm == 0 {
			continue
		}
		if code.ContainsEdge(rm, 0) {
			continue
		}
		if rec.g.IsNeighbor(rmGV, zeroGV) {
			gids[rec.chain.GraphID()] = struct{}{}
		}
	}

	edgeLabel := last.LE
	targetLabel, _ := code.VertexLabel(0)
	ext := matchingForwardExtension(extensions, rm, edgeLabel, targetLabel)

	return a.triggerWithMerge(gids, ext)
}

// case4 implements spec §4.7 Case 4: the last step is backward, closing the
// rightmost code-vertex back to an earlier code-vertex ("target"). The
// "opposite-direction rightmost path" asks whether that closing edge could
// instead have realized a forward extension: for each projection, look past
// the graph-vertex the backward step actually landed on and search the
// rightmost graph-vertex's other neighbors for an alternate physical edge
// carrying the backward step's own (edgeLabel, targetLabel) that lands on a
// graph-vertex the isomorphism does not use at all (not yet used, by any
// code-vertex). Such an edge is a genuine new forward extension the
// backward closure never considers, because it never looks past the
// vertex it actually matched.
func (a *Analyzer) case4(code dfscode.Code, pi *projection.Set, extensions map[dfscode.ExtendedEdge]*projection.Set) bool {
	last := code[len(code)-1]
	if !last.IsBackward() {
		return false
	}

	rm := last.V1
	edgeLabel := last.LE
	targetLabel, ok := code.VertexLabel(last.V2)
	if !ok {
		return false
	}

	gids := make(map[int]struct{})
	for _, rec := range a.isos(code, pi) {
		rmGV, ok := rec.iso[rm]
		if !ok {
			continue
		}
		usedGV := make(map[int]bool, len(rec.iso))
		for _, gv := range rec.iso {
			usedGV[gv] = true
		}
		for _, x := range rec.g.Neighbors(rmGV) {
			if usedGV[x] {
				continue
			}
			el, _ := rec.g.EdgeLabel(rmGV, x)
			tl, _ := rec.g.Label(x)
			if el == edgeLabel && tl == targetLabel {
				gids[rec.chain.GraphID()] = struct{}{}
				break
			}
		}
	}

	ext := matchingForwardExtension(extensions, rm, edgeLabel, targetLabel)

	return a.triggerWithMerge(gids, ext)
}

// case5 generalizes Case 4 over every code prefix whose final step is
// backward, requiring the prefix's last rightmost-path edge and the edge
// immediately before the loop point to agree in label structure. Each
// prefix's projections are reconstructed by walking back |C|-|prefix| nodes
// in every chain and deduplicating tails.
func (a *Analyzer) case5(code dfscode.Code, pi *projection.Set, extensions map[dfscode.ExtendedEdge]*projection.Set) bool {
	for k := len(code) - 1; k >= 2; k-- {
		prefix := code[:k]
		if !prefix[len(prefix)-1].IsBackward() {
			continue
		}
		last, before := prefix[len(prefix)-1], prefix[len(prefix)-2]
		if last.LE != before.LE || last.L2 != before.L2 {
			continue
		}

		prefixPi := prefixProjections(code, pi, len(code)-k)
		if a.case4(prefix, prefixPi, extensions) {
			return true
		}
	}

	return false
}

// prefixProjections reconstructs the projection of code's first len(code)-back
// steps by walking back steps nodes in every chain of pi, deduplicating
// chains that collapse onto the same tail.
func prefixProjections(code dfscode.Code, pi *projection.Set, back int) *projection.Set {
	out := projection.NewSet()
	seen := make(map[*projection.Node]bool)
	for _, chain := range pi.Chains {
		anc := chain.Ancestor(back)
		if anc == nil || seen[anc] {
			continue
		}
		seen[anc] = true
		out.Add(anc)
	}

	return out
}
