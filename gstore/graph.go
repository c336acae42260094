package gstore

import "sort"

// PhysicalEdge is one undirected labeled edge inside a built Graph. Its
// address is its identity: two *PhysicalEdge values compare equal iff they
// are the same edge, which is exactly the identity EdgeID needs.
//
// Index is the edge's position in the graph's stable enumeration table
// (Graph.Edges), assigned once at Build time and never reused.
type PhysicalEdge struct {
	V1, V2 int
	Label  int
	Index  int
}

// EdgeID names one physical edge inside one transaction graph. Equality and
// hashing are by identity (GraphID plus the *PhysicalEdge pointer), matching
// spec §3's "EID ... equality and hashing are by identity".
type EdgeID struct {
	GraphID int
	Edge    *PhysicalEdge
}

// Graph is one immutable, precomputed transaction graph. Build it with
// Build; never mutate the fields afterwards.
//
// Complexity of every accessor below is O(1) or O(deg(v)) as documented on
// the method, per spec §4.1.
type Graph struct {
	gid int

	labels     map[int]int      // vertex id -> label
	neighbors  map[int][]int    // vertex id -> ascending neighbor ids
	edgeOf     map[[2]int]*PhysicalEdge
	labelIndex map[int][]int    // label -> ascending vertex ids
	edges      []*PhysicalEdge // stable enumeration table, Index == position
}

// Build precomputes neighbor lists, label indices, and the edge-enumeration
// table for raw, and returns the resulting immutable Graph. raw is not
// retained or mutated.
func Build(raw *RawGraph) *Graph {
	g := &Graph{
		gid:        raw.GID,
		labels:     make(map[int]int, raw.NumVertices()),
		neighbors:  make(map[int][]int, raw.NumVertices()),
		edgeOf:     make(map[[2]int]*PhysicalEdge, raw.NumEdges()),
		labelIndex: make(map[int][]int),
	}
	for _, id := range raw.VertexIDs() {
		label, _ := raw.Label(id)
		g.labels[id] = label
		g.labelIndex[label] = append(g.labelIndex[label], id)
	}
	for _, re := range raw.Edges() {
		pe := &PhysicalEdge{V1: re.V1, V2: re.V2, Label: re.Label, Index: len(g.edges)}
		g.edges = append(g.edges, pe)
		g.edgeOf[canonicalPair(re.V1, re.V2)] = pe
		g.neighbors[re.V1] = append(g.neighbors[re.V1], re.V2)
		g.neighbors[re.V2] = append(g.neighbors[re.V2], re.V1)
	}
	for v := range g.neighbors {
		sort.Ints(g.neighbors[v])
	}
	for l := range g.labelIndex {
		sort.Ints(g.labelIndex[l])
	}

	return g
}

// GID returns the transaction graph id.
func (g *Graph) GID() int { return g.gid }

// Label returns the label of vertex v and whether v exists in g.
//
// Complexity: O(1).
func (g *Graph) Label(v int) (int, bool) {
	l, ok := g.labels[v]
	return l, ok
}

// Neighbors returns the ascending list of vertices adjacent to v. The slice
// must not be mutated by callers; it is shared by every caller.
//
// Complexity: O(1) (returns the precomputed slice).
func (g *Graph) Neighbors(v int) []int {
	return g.neighbors[v]
}

// EdgeLabel returns the label of the edge between u and v, if one exists.
//
// Complexity: O(1).
func (g *Graph) EdgeLabel(u, v int) (int, bool) {
	pe, ok := g.edgeOf[canonicalPair(u, v)]
	if !ok {
		return 0, false
	}

	return pe.Label, true
}

// IsNeighbor reports whether u and v are adjacent in g.
//
// Complexity: O(1).
func (g *Graph) IsNeighbor(u, v int) bool {
	_, ok := g.edgeOf[canonicalPair(u, v)]
	return ok
}

// EdgeBetween returns the PhysicalEdge between u and v, if one exists.
//
// Complexity: O(1).
func (g *Graph) EdgeBetween(u, v int) (*PhysicalEdge, bool) {
	pe, ok := g.edgeOf[canonicalPair(u, v)]
	return pe, ok
}

// VerticesWithLabel returns the ascending list of vertex ids carrying label.
//
// Complexity: O(1) (returns the precomputed slice).
func (g *Graph) VerticesWithLabel(label int) []int {
	return g.labelIndex[label]
}

// Labels returns the distinct vertex labels present in g, in no particular
// order. Used by one-vertex pattern discovery, which must see every label
// including ones carried only by isolated vertices.
func (g *Graph) Labels() []int {
	out := make([]int, 0, len(g.labelIndex))
	for l := range g.labelIndex {
		out = append(out, l)
	}

	return out
}

// Edges returns the graph's stable edge-enumeration table, ordered by
// PhysicalEdge.Index. Callers must not mutate the returned slice.
func (g *Graph) Edges() []*PhysicalEdge {
	return g.edges
}

// NumVertices reports the vertex count.
func (g *Graph) NumVertices() int { return len(g.labels) }

// NumEdges reports the edge count.
func (g *Graph) NumEdges() int { return len(g.edges) }

// EdgeID wraps pe as this graph's EdgeID, i.e. edgeId(edge) → EID (spec §4.1).
func (g *Graph) EdgeID(pe *PhysicalEdge) EdgeID {
	return EdgeID{GraphID: g.gid, Edge: pe}
}
