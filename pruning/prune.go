package pruning

import "github.com/katalvlaran/cgspan/gstore"

// Stats accumulates advisory pruning counters for the mining driver's
// reported run statistics.
type Stats struct {
	VerticesPrunedByLabel int
	EdgesPrunedByLabelPair int
	EdgesPrunedByEdgeLabel int
}

// VertexLabels drops every vertex carrying a label whose transaction-graph
// support is below minSup from every graph (spec §4.8 step 2), updating
// stats, and returns the set of vertex labels that survived.
func VertexLabels(graphs []*gstore.RawGraph, minSup int, stats *Stats) map[int]bool {
	support := make(map[int]int)
	for _, g := range graphs {
		seen := make(map[int]bool)
		for _, id := range g.VertexIDs() {
			label, _ := g.Label(id)
			if !seen[label] {
				seen[label] = true
				support[label]++
			}
		}
	}

	frequent := make(map[int]bool, len(support))
	for label, s := range support {
		if s >= minSup {
			frequent[label] = true
		}
	}

	for _, g := range graphs {
		for _, id := range g.VertexIDs() {
			label, _ := g.Label(id)
			if !frequent[label] {
				g.RemoveVertex(id)
				stats.VerticesPrunedByLabel++
			}
		}
	}

	return frequent
}

// Edges drops every edge whose endpoint-label pair or whose own edge label
// has transaction-graph support below minSup (spec §4.8 step 3), updating
// stats additively: an edge failing both thresholds increments both
// counters (spec §8: "the interaction ... is additive").
func Edges(graphs []*gstore.RawGraph, minSup int, stats *Stats) *Matrix {
	m := BuildMatrix(graphs)

	for _, g := range graphs {
		for _, e := range g.Edges() {
			l1, _ := g.Label(e.V1)
			l2, _ := g.Label(e.V2)
			droppedByPair := m.PairSupport(l1, l2) < minSup
			droppedByLabel := m.LabelSupport(e.Label) < minSup
			if !droppedByPair && !droppedByLabel {
				continue
			}
			g.RemoveEdge(e.V1, e.V2)
			if droppedByPair {
				stats.EdgesPrunedByLabelPair++
			}
			if droppedByLabel {
				stats.EdgesPrunedByEdgeLabel++
			}
		}
	}

	return m
}
