package dfscode_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgspan/dfscode"
)

// chain builds a simple path 0-1-2-...-n, all forward steps, label everything 1.
func chain(n int) dfscode.Code {
	var c dfscode.Code
	for i := 0; i < n; i++ {
		c = c.WithStep(dfscode.ExtendedEdge{V1: i, V2: i + 1, L1: 1, L2: 1, LE: 1})
	}

	return c
}

func TestCode_WithStep_DoesNotAliasParent(t *testing.T) {
	base := chain(2)
	child := base.WithStep(dfscode.ExtendedEdge{V1: 2, V2: 3, L1: 1, L2: 1, LE: 1})

	require.Len(t, base, 2)
	require.Len(t, child, 3)

	child[0].LE = 99
	assert.Equal(t, 1, base[0].LE, "mutating child must not alias base's backing array")
}

func TestCode_Copy_IsIndependent(t *testing.T) {
	base := chain(3)
	cp := base.Copy()
	cp[0].L1 = 42

	assert.NotEqual(t, base[0].L1, cp[0].L1)
	if diff := cmp.Diff(base, base.Copy()); diff != "" {
		t.Errorf("Copy must preserve steps (-want +got):\n%s", diff)
	}
}

func TestCode_RightMostPath(t *testing.T) {
	// triangle: 0-1, 1-2, backward 2-0
	c := dfscode.Code{
		{V1: 0, V2: 1, L1: 1, L2: 1, LE: 1},
		{V1: 1, V2: 2, L1: 1, L2: 1, LE: 1},
		{V1: 2, V2: 0, L1: 1, L2: 1, LE: 1},
	}
	assert.Equal(t, 2, c.RightMost())
	assert.Equal(t, []int{0, 1, 2}, c.RightMostPath())
	assert.True(t, c.OnRightMostPath(1))
	assert.False(t, c.OnRightMostPath(5))
}

func TestCode_NotPreOfRM(t *testing.T) {
	c := dfscode.Code{
		{V1: 0, V2: 1, L1: 1, L2: 1, LE: 1},
		{V1: 1, V2: 2, L1: 1, L2: 1, LE: 1},
	}
	// RightMost is 2, its parent is 1: a backward edge to 1 restates the tree edge.
	assert.False(t, c.NotPreOfRM(1))
	assert.True(t, c.NotPreOfRM(0))
}

func TestCode_VertexLabelAndNumVertices(t *testing.T) {
	c := dfscode.Code{{V1: 0, V2: 1, L1: 5, L2: 6, LE: 1}}
	l, ok := c.VertexLabel(1)
	require.True(t, ok)
	assert.Equal(t, 6, l)

	_, ok = c.VertexLabel(7)
	assert.False(t, ok)
	assert.Equal(t, 2, c.NumVertices())
	assert.Equal(t, 0, dfscode.Empty().NumVertices())
}

func TestCompare_BackwardSortsBeforeForward(t *testing.T) {
	forward := dfscode.ExtendedEdge{V1: 1, V2: 2, L1: 1, L2: 1, LE: 1}
	backward := dfscode.ExtendedEdge{V1: 2, V2: 0, L1: 1, L2: 1, LE: 1}
	assert.Negative(t, dfscode.Compare(backward, forward))
	assert.True(t, dfscode.Less(backward, forward))
}

func TestCompareCodes_PrefixOrdering(t *testing.T) {
	short := chain(1)
	long := chain(2)
	assert.Negative(t, dfscode.CompareCodes(short, long), "shorter common prefix sorts before longer")
	assert.Zero(t, dfscode.CompareCodes(short, short.Copy()))
}

func TestExtendedEdge_EqualAndDirection(t *testing.T) {
	a := dfscode.ExtendedEdge{V1: 0, V2: 1, L1: 1, L2: 2, LE: 3}
	b := a
	assert.True(t, a.Equal(b))
	assert.True(t, a.IsForward())
	assert.False(t, a.IsBackward())

	b.V1, b.V2 = b.V2, b.V1
	assert.False(t, a.Equal(b))
	assert.True(t, b.IsBackward())
}
