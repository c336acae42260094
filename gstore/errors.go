package gstore

import "errors"

// Sentinel errors for gstore operations. Callers should branch on these with
// errors.Is, never on the formatted message.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex id absent
	// from the graph.
	ErrVertexNotFound = errors.New("gstore: vertex not found")

	// ErrDuplicateVertex indicates RawGraph.AddVertex was called twice with
	// the same vertex id.
	ErrDuplicateVertex = errors.New("gstore: duplicate vertex id")

	// ErrDuplicateEdge indicates RawGraph.AddEdge was called for an unordered
	// pair that already has an edge; the data model forbids multi-edges.
	ErrDuplicateEdge = errors.New("gstore: duplicate edge")

	// ErrUnknownEndpoint indicates RawGraph.AddEdge referenced a vertex id
	// that has not been added yet.
	ErrUnknownEndpoint = errors.New("gstore: edge endpoint not declared")

	// ErrGraphNotFound indicates Store.Graph was asked for a gid it does not
	// hold (already pruned away, or never loaded).
	ErrGraphNotFound = errors.New("gstore: graph not found")
)
