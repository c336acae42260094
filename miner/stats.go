package miner

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/cgspan/pruning"
)

// Stats accumulates the driver's advisory run counters (spec §4.11, §7:
// "Statistics counters ... are advisory and never affect results").
type Stats struct {
	pruning.Stats

	NonCanonicalRejections int
	EarlyTerminationHits   int
	FailureAnalyzerHits    [5]int // indexed by case number - 1; only cases 1 and 4 are ever counted (see recursion.analyzeFailure)
	ClosedPatternsRecorded int
}

// Publish registers gauges for every counter in s against registry and sets
// their current values. Intended to be called once after Run completes;
// registry is typically exposed over HTTP by cmd/cgspan via
// promhttp.Handler().
func (s *Stats) Publish(registry *prometheus.Registry) {
	gauge := func(name, help string, labels prometheus.Labels, value int) {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "cgspan_" + name,
			Help:        help,
			ConstLabels: labels,
		})
		g.Set(float64(value))
		registry.MustRegister(g)
	}

	gauge("vertices_pruned_by_label", "Vertices removed by infrequent vertex-label pruning.", nil, s.VerticesPrunedByLabel)
	gauge("edges_pruned_by_label_pair", "Edges removed by infrequent endpoint-label-pair pruning.", nil, s.EdgesPrunedByLabelPair)
	gauge("edges_pruned_by_edge_label", "Edges removed by infrequent edge-label pruning.", nil, s.EdgesPrunedByEdgeLabel)
	gauge("non_canonical_rejections", "Candidate extensions rejected as non-canonical.", nil, s.NonCanonicalRejections)
	gauge("early_termination_hits", "Subtrees skipped via the closure index early-termination check.", nil, s.EarlyTerminationHits)
	gauge("closed_patterns_recorded", "Closed patterns recorded during the run.", nil, s.ClosedPatternsRecorded)
	for i, n := range s.FailureAnalyzerHits {
		gauge("failure_analyzer_case_hits", "Failure-analyzer hits, by case.", prometheus.Labels{"case": strconv.Itoa(i + 1)}, n)
	}
}
