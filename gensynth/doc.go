// Package gensynth builds synthetic transaction graph databases for mining
// benchmarks and test fixtures. Each Topology is a deterministic constructor
// in the style of lvlath's builder package (Cycle, Complete, Star, Path,
// Wheel, RandomSparse), retargeted to emit gstore.RawGraph directly rather
// than the mutable core.Graph the original constructors assumed.
//
// Database repeats one topology across a whole transaction set, which is
// the shape a closed frequent subgraph miner actually exercises: the same
// recurring structure appearing, with incidental variation, across many
// graph ids.
package gensynth
