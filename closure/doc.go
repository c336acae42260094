// Package closure implements the closed-pattern record, the closure hash
// index keyed by per-step edge-identity sets, and the occurrence-equivalence
// test that decides whether a code is closed (spec §4.5, §4.6).
//
// Two distinct equivalence checks live here, matching the two places spec.md
// calls for one:
//
//   - Equivalent is the exact test used when a code C finishes recursing:
//     for each of C's own extensions, it checks containment of every
//     embedding's physical-edge footprint within some embedding of the
//     extension, across every transaction graph C covers. This must be
//     exact because it decides whether C is ever reported at all.
//   - Index.TryEarlyTerminate is the cheap heuristic used before expanding
//     a code at all: it checks the same containment, but only within the
//     exemplar graph (the transaction graph where the candidate closed
//     pattern has the fewest projections), per spec §4.6. Because it is a
//     heuristic, it can wrongly suppress a genuinely closed descendant —
//     which is exactly what the failtrie package's five-case analyzer
//     exists to catch.
package closure
