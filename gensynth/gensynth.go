package gensynth

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cgspan/gstore"
)

// Topology names a deterministic constructor, in the spirit of lvlath's
// builder.Constructor but producing a gstore.RawGraph directly.
type Topology string

const (
	Cycle        Topology = "cycle"
	Complete     Topology = "complete"
	Star         Topology = "star"
	Path         Topology = "path"
	Wheel        Topology = "wheel"
	RandomSparse Topology = "random_sparse"
)

// ErrTooFewVertices reports a vertex count below a topology's minimum.
var ErrTooFewVertices = errors.New("gensynth: too few vertices")

// ErrInvalidProbability reports a RandomSparse probability outside [0,1].
var ErrInvalidProbability = errors.New("gensynth: probability not in [0,1]")

// ErrUnknownTopology reports a Topology value Build does not recognize.
var ErrUnknownTopology = errors.New("gensynth: unknown topology")

const (
	minCycleVertices    = 3
	minStarVertices     = 2
	minPathVertices     = 2
	minWheelVertices    = 4
	minRandSparseVerts  = 1
	hubVertexID         = 0 // Star/Wheel hub, fixed like builder's "Center"
	edgeLabelUniform    = 1 // uniform edge label; mining treats structure, not weight, as the signal
)

// Build constructs one RawGraph with transaction id gid, n vertices, vertex
// labels drawn from [0,labelSpace), per the given topology. rng is consulted
// only by RandomSparse, which substitutes a seed-1 source when rng is nil;
// the other topologies ignore it.
func Build(gid int, top Topology, n, labelSpace int, rng *rand.Rand) (*gstore.RawGraph, error) {
	g := gstore.NewRawGraph(gid)

	switch top {
	case Cycle:
		return g, buildCycle(g, n, labelSpace)
	case Complete:
		return g, buildComplete(g, n, labelSpace)
	case Star:
		return g, buildStar(g, n, labelSpace)
	case Path:
		return g, buildPath(g, n, labelSpace)
	case Wheel:
		return g, buildWheel(g, n, labelSpace)
	case RandomSparse:
		return g, buildRandomSparse(g, n, labelSpace, randomSparseDensity, rng)
	default:
		return nil, fmt.Errorf("%s: %w", top, ErrUnknownTopology)
	}
}

// labelOf derives a vertex's label deterministically from its index, so
// repeated Build calls at the same n and labelSpace produce structurally
// identical (and therefore minable) patterns across a whole Database.
func labelOf(i, labelSpace int) int {
	if labelSpace <= 0 {
		return 0
	}

	return i % labelSpace
}

func buildCycle(g *gstore.RawGraph, n, labelSpace int) error {
	if n < minCycleVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", Cycle, n, minCycleVertices, ErrTooFewVertices)
	}
	for i := 0; i < n; i++ {
		if err := g.AddVertex(i, labelOf(i, labelSpace)); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		if err := g.AddEdge(i, (i+1)%n, edgeLabelUniform); err != nil {
			return err
		}
	}

	return nil
}

func buildComplete(g *gstore.RawGraph, n, labelSpace int) error {
	if n < 1 {
		return fmt.Errorf("%s: n=%d < min=1: %w", Complete, n, ErrTooFewVertices)
	}
	for i := 0; i < n; i++ {
		if err := g.AddVertex(i, labelOf(i, labelSpace)); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(i, j, edgeLabelUniform); err != nil {
				return err
			}
		}
	}

	return nil
}

func buildStar(g *gstore.RawGraph, n, labelSpace int) error {
	if n < minStarVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", Star, n, minStarVertices, ErrTooFewVertices)
	}
	if err := g.AddVertex(hubVertexID, labelOf(hubVertexID, labelSpace)); err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if err := g.AddVertex(i, labelOf(i, labelSpace)); err != nil {
			return err
		}
		if err := g.AddEdge(hubVertexID, i, edgeLabelUniform); err != nil {
			return err
		}
	}

	return nil
}

func buildPath(g *gstore.RawGraph, n, labelSpace int) error {
	if n < minPathVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", Path, n, minPathVertices, ErrTooFewVertices)
	}
	for i := 0; i < n; i++ {
		if err := g.AddVertex(i, labelOf(i, labelSpace)); err != nil {
			return err
		}
	}
	for i := 1; i < n; i++ {
		if err := g.AddEdge(i-1, i, edgeLabelUniform); err != nil {
			return err
		}
	}

	return nil
}

// buildWheel assembles Wn = C(n-1) plus a hub connected to every rim vertex,
// mirroring builder.Wheel's "cycle plus Center" decomposition. The rim cycle
// occupies vertex ids 1..n-1 so the hub can keep the fixed id 0.
func buildWheel(g *gstore.RawGraph, n, labelSpace int) error {
	if n < minWheelVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", Wheel, n, minWheelVertices, ErrTooFewVertices)
	}
	rim := n - 1
	if err := g.AddVertex(hubVertexID, labelOf(hubVertexID, labelSpace)); err != nil {
		return err
	}
	for i := 1; i <= rim; i++ {
		if err := g.AddVertex(i, labelOf(i, labelSpace)); err != nil {
			return err
		}
	}
	for i := 1; i <= rim; i++ {
		next := i + 1
		if i == rim {
			next = 1
		}
		if err := g.AddEdge(i, next, edgeLabelUniform); err != nil {
			return err
		}
	}
	for i := 1; i <= rim; i++ {
		if err := g.AddEdge(hubVertexID, i, edgeLabelUniform); err != nil {
			return err
		}
	}

	return nil
}

const randomSparseDensity = 0.35

// buildRandomSparse samples an Erdos-Renyi-like graph: each unordered pair
// {i,j}, i<j, is included independently with probability p. A nil rng is
// replaced by rand.New(rand.NewSource(1)).
func buildRandomSparse(g *gstore.RawGraph, n, labelSpace int, p float64, rng *rand.Rand) error {
	if n < minRandSparseVerts {
		return fmt.Errorf("%s: n=%d < min=%d: %w", RandomSparse, n, minRandSparseVerts, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return fmt.Errorf("%s: p=%.3f: %w", RandomSparse, p, ErrInvalidProbability)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	for i := 0; i < n; i++ {
		if err := g.AddVertex(i, labelOf(i, labelSpace)); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() > p {
				continue
			}
			if err := g.AddEdge(i, j, edgeLabelUniform); err != nil {
				return err
			}
		}
	}

	return nil
}

// Database builds count transaction graphs of the given topology and size,
// numbered 0..count-1, into a synthetic mining fixture. For every topology
// but RandomSparse, every transaction shares the same topology and label
// assignment, so the topology itself is exactly the closed frequent pattern
// a miner run over the result should recover at minSupport=1.0. RandomSparse
// transactions draw their edges in turn from one rng seeded with seed, so
// they generally differ from one another.
func Database(top Topology, n, count, labelSpace int, seed int64) ([]*gstore.RawGraph, error) {
	rng := rand.New(rand.NewSource(seed))
	out := make([]*gstore.RawGraph, 0, count)
	for gid := 0; gid < count; gid++ {
		g, err := Build(gid, top, n, labelSpace, rng)
		if err != nil {
			return nil, fmt.Errorf("gensynth: transaction %d: %w", gid, err)
		}
		out = append(out, g)
	}

	return out, nil
}
