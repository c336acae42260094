package gensynth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgspan/gensynth"
)

func TestBuild_Cycle(t *testing.T) {
	g, err := gensynth.Build(0, gensynth.Cycle, 5, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumVertices())
	assert.Equal(t, 5, g.NumEdges())
}

func TestBuild_CycleRejectsTooFewVertices(t *testing.T) {
	_, err := gensynth.Build(0, gensynth.Cycle, 2, 1, nil)
	assert.ErrorIs(t, err, gensynth.ErrTooFewVertices)
}

func TestBuild_Complete(t *testing.T) {
	g, err := gensynth.Build(0, gensynth.Complete, 4, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 6, g.NumEdges(), "K4 has C(4,2)=6 edges")
}

func TestBuild_Star(t *testing.T) {
	g, err := gensynth.Build(0, gensynth.Star, 5, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumVertices())
	assert.Equal(t, 4, g.NumEdges(), "a 5-vertex star has 4 spokes")
}

func TestBuild_Wheel(t *testing.T) {
	g, err := gensynth.Build(0, gensynth.Wheel, 5, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumVertices())
	assert.Equal(t, 8, g.NumEdges(), "W5 = C4 (4 rim edges) + 4 spokes")
}

func TestBuild_UnknownTopology(t *testing.T) {
	_, err := gensynth.Build(0, gensynth.Topology("hexagon"), 5, 1, nil)
	assert.ErrorIs(t, err, gensynth.ErrUnknownTopology)
}

func TestDatabase_RepeatsTopologyAcrossTransactions(t *testing.T) {
	graphs, err := gensynth.Database(gensynth.Cycle, 4, 3, 1, 7)
	require.NoError(t, err)
	require.Len(t, graphs, 3)

	for i, g := range graphs {
		assert.Equal(t, i, g.GID)
		assert.Equal(t, 4, g.NumVertices())
		assert.Equal(t, 4, g.NumEdges())
	}
}

func TestDatabase_RandomSparseIsDeterministicForAFixedSeed(t *testing.T) {
	a, err := gensynth.Database(gensynth.RandomSparse, 8, 2, 1, 42)
	require.NoError(t, err)
	b, err := gensynth.Database(gensynth.RandomSparse, 8, 2, 1, 42)
	require.NoError(t, err)

	require.Len(t, a, 2)
	require.Len(t, b, 2)
	for i := range a {
		assert.Equal(t, a[i].NumEdges(), b[i].NumEdges(), "same seed must produce the same edge count")
	}
}
