package miner

import (
	"io"
	"log/slog"
	"math"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/cgspan/closure"
	"github.com/katalvlaran/cgspan/dfscode"
	"github.com/katalvlaran/cgspan/failtrie"
	"github.com/katalvlaran/cgspan/gstore"
	"github.com/katalvlaran/cgspan/projection"
	"github.com/katalvlaran/cgspan/pruning"
)

// Driver holds one mining run's configuration: its parameters, logger,
// metrics registry and test-only switches. Run creates the projection
// arena, closure index, failure trie and Stats for each run.
type Driver struct {
	params   Params
	logger   *slog.Logger
	registry *prometheus.Registry

	// disableEarlyTerm and disableFailureAnalysis bypass the closure
	// safety net entirely; set only via WithEarlyTerminationDisabled /
	// WithFailureAnalysisDisabled, for oracle/differential testing
	// (spec §8), never in production use.
	disableEarlyTerm       bool
	disableFailureAnalysis bool
}

// Run executes the mining pipeline (spec §4.8) over raws: pruning, optional
// one-vertex closed patterns, then the recursive search bounded by
// p.MaxEdges. raws are mutated in place by the pruning passes.
func Run(raws []*gstore.RawGraph, params Params, opts ...Option) ([]*ClosedPattern, *Stats, error) {
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}

	d := &Driver{params: params, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(d)
	}

	stats := &Stats{}
	if params.MaxEdges == 0 || len(raws) == 0 {
		return nil, stats, nil
	}

	minSup := int(math.Ceil(params.MinSupport * float64(len(raws))))
	if minSup < 1 {
		minSup = 1
	}

	pruning.VertexLabels(raws, minSup, &stats.Stats)
	pruning.Edges(raws, minSup, &stats.Stats)
	d.logger.Info("pruning complete",
		slog.Int("verticesPrunedByLabel", stats.VerticesPrunedByLabel),
		slog.Int("edgesPrunedByLabelPair", stats.EdgesPrunedByLabelPair),
		slog.Int("edgesPrunedByEdgeLabel", stats.EdgesPrunedByEdgeLabel),
	)

	graphs := make([]*gstore.Graph, 0, len(raws))
	for _, raw := range raws {
		graphs = append(graphs, gstore.Build(raw))
	}
	store := gstore.NewStore(graphs)

	arena := projection.NewArena()
	trie := failtrie.New()
	index := closure.NewIndex()
	analyzer := failtrie.NewAnalyzer(minSup, store)

	var out []*ClosedPattern
	if params.OutputSingleVertices {
		out = append(out, d.singleVertexPatterns(store, minSup)...)
	}

	rec := &recursion{
		driver:   d,
		store:    store,
		arena:    arena,
		index:    index,
		trie:     trie,
		analyzer: analyzer,
		minSup:   minSup,
		stats:    stats,
		out:      &out,
	}
	rec.dfs(dfscode.Empty(), nil)

	d.logger.Info("mining complete",
		slog.Int("closedPatterns", stats.ClosedPatternsRecorded),
		slog.Int("earlyTerminationHits", stats.EarlyTerminationHits),
	)

	if d.registry != nil {
		stats.Publish(d.registry)
	}

	return out, stats, nil
}
