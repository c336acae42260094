// Package canonical implements the canonicality test (spec §4.4): a code C
// is canonical iff it equals the minimum DFS code of its own abstract
// pattern graph.
//
// The abstract pattern graph is built directly from C's steps and treated
// as a one-graph gstore.Store; the minimum code is then regenerated by
// reusing the extension package's rightmost-path extension engine on that
// store, picking the lexicographically smallest extension at every step —
// exactly the machinery the mining driver already uses, applied to a
// database of one graph.
package canonical
