package projection

import (
	"sort"

	"github.com/katalvlaran/cgspan/gstore"
)

// Set (Π) is an unordered collection of projection chains together with the
// set of transaction-graph ids they cover. Support is len(GraphIDs).
//
// Multiple chains may share tails (structural sharing); Set itself does not
// care, it only ever walks backward along Prev from each chain's last node.
type Set struct {
	Chains   []*Node
	graphIDs map[int]struct{}
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{graphIDs: make(map[int]struct{})}
}

// Add appends chain to the set and records its graph id.
func (s *Set) Add(chain *Node) {
	s.Chains = append(s.Chains, chain)
	s.graphIDs[chain.GraphID()] = struct{}{}
}

// Support returns the number of distinct transaction graphs covered.
func (s *Set) Support() int {
	return len(s.graphIDs)
}

// GraphIDs returns the covered graph ids in ascending order.
func (s *Set) GraphIDs() []int {
	ids := make([]int, 0, len(s.graphIDs))
	for id := range s.graphIDs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// HasGraph reports whether gid is among the covered transaction graphs.
func (s *Set) HasGraph(gid int) bool {
	_, ok := s.graphIDs[gid]
	return ok
}

// SameGraphs reports whether s and o cover exactly the same set of
// transaction graphs (spec §4.5: "cover the same set of transaction
// graphs").
func SameGraphs(s, o *Set) bool {
	if len(s.graphIDs) != len(o.graphIDs) {
		return false
	}
	for id := range s.graphIDs {
		if _, ok := o.graphIDs[id]; !ok {
			return false
		}
	}

	return true
}

// Len returns the number of projection chains (embeddings), which may
// exceed Support when a pattern embeds more than once into the same graph.
func (s *Set) Len() int {
	return len(s.Chains)
}

// EdgeIDsAtStep returns the set of EdgeIDs appearing at code-step index
// across every chain in s. index counts from 0 (Code[0]) and is measured
// from the tail of each chain, i.e. Ancestor(chainDepth-1-index).
//
// Used to build the closure index keys (spec §4.6) when a closed pattern is
// registered.
func (s *Set) EdgeIDsAtStep(index int) map[gstore.EdgeID]struct{} {
	out := make(map[gstore.EdgeID]struct{})
	for _, chain := range s.Chains {
		depth := chain.Depth()
		back := depth - 1 - index
		if back < 0 {
			continue
		}
		if node := chain.Ancestor(back); node != nil {
			out[node.Edge] = struct{}{}
		}
	}

	return out
}

// LastStepEdgeIDs returns the set of EdgeIDs realizing the final code step
// across every chain (spec §4.6: "compute the EID set at C's last step").
func (s *Set) LastStepEdgeIDs() map[gstore.EdgeID]struct{} {
	out := make(map[gstore.EdgeID]struct{})
	for _, chain := range s.Chains {
		out[chain.Edge] = struct{}{}
	}

	return out
}
