package miner

import "github.com/katalvlaran/cgspan/closure"

// ClosedPattern is the mining result record (spec §3 ¶7). Defined in the
// closure package (which both miner and the closure index need without
// creating an import cycle); aliased here under the name callers expect.
type ClosedPattern = closure.ClosedPattern
