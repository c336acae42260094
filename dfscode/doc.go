// Package dfscode implements the DFS code: the ordered sequence of extended
// edges that forms a canonical spanning traversal of a connected subgraph.
//
// A Code knows how to compute its own rightmost vertex and rightmost path,
// how two extended edges compare in the lexicographic order gSpan-style
// canonical-form search depends on, and how to compare two whole codes the
// same way. It never reaches into a gstore.Graph or a projection.Set; those
// live one layer up, in extension and canonical.
package dfscode
