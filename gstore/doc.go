// Package gstore holds the transaction-graph store: immutable, labeled,
// undirected graphs with precomputed neighbor indices, label→vertex indices,
// and a stable edge-enumeration table.
//
// A gstore.Graph is built once, from a gstore.RawGraph, after the mining
// driver has finished pruning infrequent labels (see the pruning package).
// Once built it is never mutated again; every query method is read-only and
// safe to call from any number of goroutines, though nothing in this module
// actually calls them concurrently (see the miner package's concurrency
// notes).
//
// Vertex ids are small non-negative integers, opaque beyond their identity;
// no two edges in a RawGraph may share the same unordered endpoint pair.
package gstore
