// Package dot writes a closed pattern's DFS code as a Graphviz DOT graph,
// for ad hoc visualization of mining output. It is a small, dependency-free
// text encoder in the manner of gonum's graph/encoding/dot package
// (attribute-map-per-node/edge, deterministic ascending iteration order) —
// not a wrapper around it, since DOT is a plain text format and gonum's
// encoder targets gonum's own graph.Graph interface rather than dfscode.Code.
package dot
