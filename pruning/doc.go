// Package pruning implements the mining driver's infrequent-label
// elimination passes (spec §4.8 steps 2–3): dropping vertices carrying an
// infrequent label, then dropping edges whose endpoint label pair or whose
// own edge label is infrequent, each measured as transaction-graph support
// (the number of distinct graphs containing at least one occurrence) against
// minSup.
//
// Edge-label pruning and endpoint-label-pair pruning are independent and
// additive: an edge can be dropped by either rule, and each removal counts
// against the statistic of every rule it fails, so an edge failing both
// rules increments both counters (spec §8, edge case: "the interaction ...
// is additive").
package pruning
