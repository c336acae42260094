package gstore

import "sort"

// RawGraph is the mutable representation of one transaction graph between
// parsing (gspanio) and the pruning phase (pruning, miner). It is discarded
// once Build produces the immutable Graph.
//
// Complexity: AddVertex/AddEdge are O(1) amortized; RemoveVertex and
// RemoveEdge are O(V+E) and O(E) respectively.
type RawGraph struct {
	// GID is the transaction graph id from the "t # <gid>" input line.
	GID int

	labels map[int]int    // vertex id -> label
	order  []int          // vertex insertion order, for deterministic iteration
	edges  []RawEdge       // insertion order
	pair   map[[2]int]bool // canonical (min,max) pair -> present, for duplicate detection
}

// RawEdge is one undirected labeled edge as read from the input format.
type RawEdge struct {
	V1, V2 int
	Label  int
}

// NewRawGraph returns an empty RawGraph for the given transaction id.
func NewRawGraph(gid int) *RawGraph {
	return &RawGraph{
		GID:    gid,
		labels: make(map[int]int),
		pair:   make(map[[2]int]bool),
	}
}

// AddVertex records vertex id with the given label.
// Returns ErrDuplicateVertex if id was already added.
func (g *RawGraph) AddVertex(id, label int) error {
	if _, exists := g.labels[id]; exists {
		return ErrDuplicateVertex
	}
	g.labels[id] = label
	g.order = append(g.order, id)

	return nil
}

// AddEdge records an undirected edge between v1 and v2 with the given label.
// Returns ErrUnknownEndpoint if either vertex has not been added, and
// ErrDuplicateEdge if the unordered pair already has an edge.
func (g *RawGraph) AddEdge(v1, v2, label int) error {
	if _, ok := g.labels[v1]; !ok {
		return ErrUnknownEndpoint
	}
	if _, ok := g.labels[v2]; !ok {
		return ErrUnknownEndpoint
	}
	key := canonicalPair(v1, v2)
	if g.pair[key] {
		return ErrDuplicateEdge
	}
	g.pair[key] = true
	g.edges = append(g.edges, RawEdge{V1: v1, V2: v2, Label: label})

	return nil
}

// VertexIDs returns vertex ids in ascending order.
func (g *RawGraph) VertexIDs() []int {
	ids := make([]int, 0, len(g.labels))
	for id := range g.labels {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Label returns the label of vertex id and whether it exists.
func (g *RawGraph) Label(id int) (int, bool) {
	l, ok := g.labels[id]
	return l, ok
}

// Edges returns a copy of the current edge list.
func (g *RawGraph) Edges() []RawEdge {
	out := make([]RawEdge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NumVertices reports the current vertex count.
func (g *RawGraph) NumVertices() int { return len(g.labels) }

// NumEdges reports the current edge count.
func (g *RawGraph) NumEdges() int { return len(g.edges) }

// RemoveVertex deletes vertex id and every edge incident to it. A no-op if
// id is absent. Used by the mining driver to prune infrequent vertex labels.
func (g *RawGraph) RemoveVertex(id int) {
	if _, ok := g.labels[id]; !ok {
		return
	}
	delete(g.labels, id)
	for i, v := range g.order {
		if v == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.V1 == id || e.V2 == id {
			delete(g.pair, canonicalPair(e.V1, e.V2))
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept
}

// RemoveEdge deletes the edge between v1 and v2, if present, and reports
// whether it removed anything.
func (g *RawGraph) RemoveEdge(v1, v2 int) bool {
	key := canonicalPair(v1, v2)
	if !g.pair[key] {
		return false
	}
	delete(g.pair, key)
	kept := g.edges[:0]
	for _, e := range g.edges {
		if canonicalPair(e.V1, e.V2) == key {
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept

	return true
}

func canonicalPair(a, b int) [2]int {
	if a <= b {
		return [2]int{a, b}
	}

	return [2]int{b, a}
}
