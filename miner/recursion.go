package miner

import (
	"sort"

	"github.com/katalvlaran/cgspan/canonical"
	"github.com/katalvlaran/cgspan/closure"
	"github.com/katalvlaran/cgspan/dfscode"
	"github.com/katalvlaran/cgspan/extension"
	"github.com/katalvlaran/cgspan/failtrie"
	"github.com/katalvlaran/cgspan/gstore"
	"github.com/katalvlaran/cgspan/projection"
)

// recursion bundles the mutable collaborators threaded through every dfs
// call (spec §4.9's DFS(C, graphIds, Π, failureTrie) pseudocode).
type recursion struct {
	driver   *Driver
	store    *gstore.Store
	arena    *projection.Arena
	index    *closure.Index
	trie     *failtrie.Trie
	analyzer *failtrie.Analyzer
	minSup   int
	stats    *Stats
	out      *[]*ClosedPattern
}

// dfs implements spec §4.9. pi is nil only for the root call (code empty).
func (r *recursion) dfs(code dfscode.Code, pi *projection.Set) {
	// A code already at the MaxEdges cap is not extended further; it is
	// still eligible to be recorded below.
	atCap := r.driver.params.MaxEdges > 0 && len(code) >= r.driver.params.MaxEdges

	etf := false
	if len(code) > 0 && !r.driver.disableEarlyTerm {
		if _, earlyTerm := r.index.TryEarlyTerminate(code, pi); earlyTerm {
			r.stats.EarlyTerminationHits++
			etf = r.trie.Marked(code)
			if !etf {
				return
			}
		}
	}

	exts := map[dfscode.ExtendedEdge]*projection.Set{}
	if !atCap {
		exts = extension.Extend(code, pi, r.store, r.arena)
	}
	keys := make([]dfscode.ExtendedEdge, 0, len(exts))
	for ee := range exts {
		keys = append(keys, ee)
	}
	sort.Slice(keys, func(i, j int) bool { return dfscode.Less(keys[i], keys[j]) })

	anyEquivalent := false
	for _, ee := range keys {
		childPi := exts[ee]
		if childPi.Support() < r.minSup {
			continue
		}
		childCode := code.WithStep(ee)
		if !canonical.IsCanonical(childCode) {
			r.stats.NonCanonicalRejections++
			continue
		}
		if len(code) >= 1 && !anyEquivalent && closure.Equivalent(childPi, pi) {
			anyEquivalent = true
		}
		r.dfs(childCode, childPi)
	}

	if len(code) == 0 {
		return
	}

	if !r.driver.disableFailureAnalysis {
		r.analyzeFailure(code, pi, exts)
	}
	if etf {
		return
	}
	if !anyEquivalent {
		cp := closure.NewClosedPattern(code, pi)
		r.index.Register(cp)
		*r.out = append(*r.out, cp)
		r.stats.ClosedPatternsRecorded++
	}
}

func (r *recursion) analyzeFailure(code dfscode.Code, pi *projection.Set, exts map[dfscode.ExtendedEdge]*projection.Set) {
	if r.analyzer.Analyze(code, pi, exts, r.trie) {
		last := code[len(code)-1]
		// Analyze does not report which case fired: a hit on a code whose
		// last step is backward is counted under case 4, any other hit under
		// case 1.
		switch {
		case last.IsBackward():
			r.stats.FailureAnalyzerHits[3]++
		default:
			r.stats.FailureAnalyzerHits[0]++
		}
	}
}
