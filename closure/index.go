package closure

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/cgspan/dfscode"
	"github.com/katalvlaran/cgspan/gstore"
	"github.com/katalvlaran/cgspan/projection"
)

// Index is the closure hash index (spec §4.6): it maps the fingerprint of a
// set of EdgeIDs to every recorded ClosedPattern that was, at some code
// step, realized by exactly that edge set.
type Index struct {
	byFingerprint map[string][]*ClosedPattern
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{byFingerprint: make(map[string][]*ClosedPattern)}
}

// Register adds cp to the index under the fingerprint of every one of its
// code steps' EdgeID sets, so a later, shorter code can find it regardless
// of which step its own last edge corresponds to.
func (idx *Index) Register(cp *ClosedPattern) {
	for i := range cp.Code {
		key := fingerprint(cp.Projections.EdgeIDsAtStep(i))
		idx.byFingerprint[key] = append(idx.byFingerprint[key], cp)
	}
}

// TryEarlyTerminate looks up codes registered under the same last-step
// EdgeID-set fingerprint as (code, pi), and returns the first candidate
// occurrence-equivalent to (code, pi) under the exemplar-graph heuristic of
// spec §4.6. The caller (the mining driver) treats a true result as license
// to stop expanding code without recursing further, unless the failure trie
// has marked code, in which case it expands code anyway but does not record
// it.
func (idx *Index) TryEarlyTerminate(code dfscode.Code, pi *projection.Set) (*ClosedPattern, bool) {
	if len(code) == 0 {
		return nil, false
	}

	key := fingerprint(pi.LastStepEdgeIDs())
	for _, cand := range idx.byFingerprint[key] {
		if !projection.SameGraphs(cand.Projections, pi) {
			continue
		}
		if pi.Len() > cand.Projections.Len() {
			continue
		}
		gid := exemplarGraph(cand.Projections)
		if equivalentInGraph(cand.Projections, pi, gid) {
			return cand, true
		}
	}

	return nil, false
}

// fingerprint returns a deterministic, order-independent string key for a
// set of EdgeIDs, built from each edge's (GraphID, Edge.Index) pair sorted
// ascending. Two calls over sets containing the same EdgeIDs always produce
// the same string, which is what lets Index use a plain Go map (EdgeID sets
// themselves are not comparable).
func fingerprint(edges map[gstore.EdgeID]struct{}) string {
	type pair struct{ gid, idx int }
	pairs := make([]pair, 0, len(edges))
	for id := range edges {
		pairs = append(pairs, pair{id.GraphID, id.Edge.Index})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].gid != pairs[j].gid {
			return pairs[i].gid < pairs[j].gid
		}
		return pairs[i].idx < pairs[j].idx
	})

	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(strconv.Itoa(p.gid))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(p.idx))
		b.WriteByte(';')
	}

	return b.String()
}
