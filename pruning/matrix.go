package pruning

import "github.com/katalvlaran/cgspan/gstore"

// labelPair is a canonical (min, max) vertex-label pair, used as a sparse
// triangular matrix key (spec §3 "Pruning matrix").
type labelPair [2]int

func canonicalLabelPair(a, b int) labelPair {
	if a <= b {
		return labelPair{a, b}
	}

	return labelPair{b, a}
}

// Matrix holds transaction-graph support counts: for a label pair, the
// number of distinct graphs containing at least one edge whose endpoints
// carry that pair of labels; for an edge label, the number of distinct
// graphs containing at least one edge carrying that label. Both are counted
// at most once per graph regardless of how many qualifying edges it has.
type Matrix struct {
	pairSupport  map[labelPair]int
	labelSupport map[int]int
}

// BuildMatrix scans graphs once and returns their label-pair and edge-label
// support matrix (spec §4.8 step 3).
func BuildMatrix(graphs []*gstore.RawGraph) *Matrix {
	m := &Matrix{
		pairSupport:  make(map[labelPair]int),
		labelSupport: make(map[int]int),
	}
	for _, g := range graphs {
		seenPairs := make(map[labelPair]bool)
		seenLabels := make(map[int]bool)
		for _, e := range g.Edges() {
			l1, _ := g.Label(e.V1)
			l2, _ := g.Label(e.V2)
			pair := canonicalLabelPair(l1, l2)
			if !seenPairs[pair] {
				seenPairs[pair] = true
				m.pairSupport[pair]++
			}
			if !seenLabels[e.Label] {
				seenLabels[e.Label] = true
				m.labelSupport[e.Label]++
			}
		}
	}

	return m
}

// PairSupport returns the transaction-graph support of the label pair
// (a, b), order-independent.
func (m *Matrix) PairSupport(a, b int) int {
	return m.pairSupport[canonicalLabelPair(a, b)]
}

// LabelSupport returns the transaction-graph support of edge label l.
func (m *Matrix) LabelSupport(l int) int {
	return m.labelSupport[l]
}
