package closure

import (
	"github.com/katalvlaran/cgspan/gstore"
	"github.com/katalvlaran/cgspan/projection"
)

// footprint returns the set of physical EdgeIDs used by chain, i.e. the
// image of one embedding (spec §4.5's "edge-by-edge" comparison operates on
// exactly this set).
func footprint(chain *projection.Node) map[gstore.EdgeID]struct{} {
	out := make(map[gstore.EdgeID]struct{})
	for _, id := range chain.Walk() {
		out[id] = struct{}{}
	}

	return out
}

// isSubset reports whether every element of a is also in b.
func isSubset(a, b map[gstore.EdgeID]struct{}) bool {
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}

	return true
}

// footprintsByGraph groups pi's chain footprints by the transaction graph
// they embed into.
func footprintsByGraph(pi *projection.Set) map[int][]map[gstore.EdgeID]struct{} {
	out := make(map[int][]map[gstore.EdgeID]struct{})
	for _, chain := range pi.Chains {
		gid := chain.GraphID()
		out[gid] = append(out[gid], footprint(chain))
	}

	return out
}

// Equivalent reports whether childPi has equivalent occurrence with parentPi
// (spec §4.5): the same transaction-graph coverage, no more projections than
// parentPi, and every one of childPi's embeddings contained, edge for edge,
// within some embedding of parentPi in the same transaction graph.
//
// Used at closure-recording time to compare a code C against one of its own
// rightmost-path extensions. The mining driver calls it with the extension's
// set as parentPi and C's set as childPi, so it asks whether every embedding
// of C lies within some embedding of the extension — see
// Index.TryEarlyTerminate for the other direction, comparing an in-progress
// code against an already-recorded closed pattern.
func Equivalent(parentPi, childPi *projection.Set) bool {
	if !projection.SameGraphs(parentPi, childPi) {
		return false
	}
	if childPi.Len() > parentPi.Len() {
		return false
	}

	parentFootprints := footprintsByGraph(parentPi)
	for _, chain := range childPi.Chains {
		childFoot := footprint(chain)
		matched := false
		for _, parentFoot := range parentFootprints[chain.GraphID()] {
			if isSubset(childFoot, parentFoot) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// exemplarGraph returns the transaction graph id, among pi's covered graphs,
// in which pi has the fewest chains (spec §4.6: "the transaction graph in
// which the candidate has fewest projections"). Ties break toward the
// smallest graph id for determinism.
func exemplarGraph(pi *projection.Set) int {
	counts := make(map[int]int)
	for _, chain := range pi.Chains {
		counts[chain.GraphID()]++
	}

	best := -1
	bestCount := 0
	for _, gid := range pi.GraphIDs() {
		c := counts[gid]
		if best == -1 || c < bestCount {
			best, bestCount = gid, c
		}
	}

	return best
}

// equivalentInGraph checks Equivalent's containment condition restricted to
// a single transaction graph gid: every childPi chain in gid must be
// contained, edge for edge, within some parentPi chain in gid.
func equivalentInGraph(parentPi, childPi *projection.Set, gid int) bool {
	var parentFoots []map[gstore.EdgeID]struct{}
	for _, chain := range parentPi.Chains {
		if chain.GraphID() == gid {
			parentFoots = append(parentFoots, footprint(chain))
		}
	}

	found := false
	for _, chain := range childPi.Chains {
		if chain.GraphID() != gid {
			continue
		}
		found = true
		matched := false
		childFoot := footprint(chain)
		for _, parentFoot := range parentFoots {
			if isSubset(childFoot, parentFoot) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return found
}
