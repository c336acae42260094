// Package extension implements the rightmost-path extension engine: given a
// DFS code and its projected set, it enumerates every backward extension
// from the rightmost vertex and every forward extension from a vertex on
// the rightmost path, grouping the resulting embeddings by the extended
// edge they realize.
package extension
