package projection

import "github.com/katalvlaran/cgspan/gstore"

// Node (P) is one projection record: (EID, reversed?, previous).
//
// The chain anchored at a Node whose Prev is nil represents the projection
// of Code[0]; walking Prev from any Node yields the projection of every
// earlier code step, oldest last.
type Node struct {
	Edge     gstore.EdgeID
	Reversed bool
	Prev     *Node
}

// GraphID returns the transaction graph this projection embeds into. Every
// node in a chain shares the same GraphID (one chain = one embedding into
// one graph), so reading it off the edge is O(1) regardless of chain depth.
func (n *Node) GraphID() int {
	return n.Edge.GraphID
}

// Walk returns the chain's edges oldest-first: the embedding of the DFS
// code this chain represents, read in code order.
func (n *Node) Walk() []gstore.EdgeID {
	nodes := n.WalkNodes()
	out := make([]gstore.EdgeID, len(nodes))
	for i, p := range nodes {
		out[i] = p.Edge
	}

	return out
}

// WalkNodes returns the chain's own Nodes oldest-first, preserving each
// step's Reversed flag (Walk discards it; callers that need orientation,
// such as the extension engine's embedding reconstruction, use this
// instead).
func (n *Node) WalkNodes() []*Node {
	var depth int
	for p := n; p != nil; p = p.Prev {
		depth++
	}
	out := make([]*Node, depth)
	i := depth - 1
	for p := n; p != nil; p = p.Prev {
		out[i] = p
		i--
	}

	return out
}

// Depth returns the number of edges in the chain (i.e. the length of the
// DFS code this projection realizes).
func (n *Node) Depth() int {
	d := 0
	for p := n; p != nil; p = p.Prev {
		d++
	}

	return d
}

// Ancestor returns the node k steps back along Prev (k=0 returns n itself),
// or nil if the chain is shorter than k. Used by the failure analyzer to
// reconstruct prefix projections (spec §4.7, Case 5).
func (n *Node) Ancestor(k int) *Node {
	p := n
	for i := 0; i < k && p != nil; i++ {
		p = p.Prev
	}

	return p
}

// Arena owns every Node allocated during one mining run. It never frees a
// node explicitly; Go's GC reclaims nodes once nothing (no recorded
// pattern, no live recursion frame) still points at them. Arena keeps a
// cumulative count of the nodes it has allocated (see Allocated); the count
// is never decremented.
type Arena struct {
	allocated int
}

// NewArena returns an empty Arena.
func NewArena() *Arena { return &Arena{} }

// New allocates and returns a new Node extending prev with edge in the
// given direction.
func (a *Arena) New(edge gstore.EdgeID, reversed bool, prev *Node) *Node {
	a.allocated++

	return &Node{Edge: edge, Reversed: reversed, Prev: prev}
}

// Allocated reports how many nodes this arena has ever allocated (a
// monotonically increasing count, not a live count).
func (a *Arena) Allocated() int {
	return a.allocated
}
