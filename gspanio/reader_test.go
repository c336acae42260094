package gspanio_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgspan/gspanio"
)

func TestReadGraphs_ParsesMultipleBlocks(t *testing.T) {
	input := `t # 0
v 0 1
v 1 2
e 0 1 9

t # 1
v 0 1
`
	graphs, err := gspanio.ReadGraphs(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, graphs, 2)

	assert.Equal(t, 0, graphs[0].GID)
	assert.Equal(t, 2, graphs[0].NumVertices())
	assert.Equal(t, 1, graphs[0].NumEdges())

	assert.Equal(t, 1, graphs[1].GID)
	assert.Equal(t, 1, graphs[1].NumVertices())
}

func TestReadGraphs_RejectsForwardReference(t *testing.T) {
	input := "t # 0\nv 0 1\ne 0 1 9\n"
	_, err := gspanio.ReadGraphs(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, errors.Is(err, gspanio.ErrForwardReference))

	var perr *gspanio.ErrParse
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Line)
}

func TestReadGraphs_RejectsVertexBeforeHeader(t *testing.T) {
	_, err := gspanio.ReadGraphs(strings.NewReader("v 0 1\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, gspanio.ErrMalformedLine))
}

func TestReadGraphs_RejectsUnknownToken(t *testing.T) {
	_, err := gspanio.ReadGraphs(strings.NewReader("t # 0\nq garbage\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, gspanio.ErrUnknownToken))
}

func TestReadGraphs_RejectsDuplicateEdge(t *testing.T) {
	input := "t # 0\nv 0 1\nv 1 1\ne 0 1 9\ne 0 1 9\n"
	_, err := gspanio.ReadGraphs(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, errors.Is(err, gspanio.ErrDuplicateEdge))
}

func TestReadGraphs_SkipsBlankLines(t *testing.T) {
	input := "\n\nt # 0\n\nv 0 1\n\n"
	graphs, err := gspanio.ReadGraphs(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, graphs, 1)
	assert.Equal(t, 1, graphs[0].NumVertices())
}
