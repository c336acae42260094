// Package failtrie implements the early-termination-failure analyzer (spec
// §4.7): a prefix trie, keyed by the DFS-code steps leading to each marked
// code, that records when the closure index's exemplar-graph heuristic
// would have wrongly suppressed a closed descendant.
//
// The driver consults the trie before trusting an early-termination hit
// (Trie.Marked walks the code's own prefix, since a failure recorded for an
// ancestor code still applies to every descendant sharing that prefix), and
// calls Analyze after every non-trivial recursive exit to decide whether the
// current code needs to be inserted.
package failtrie
