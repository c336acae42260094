package failtrie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cgspan/dfscode"
	"github.com/katalvlaran/cgspan/failtrie"
)

func step(v1, v2, l1, l2, le int) dfscode.ExtendedEdge {
	return dfscode.ExtendedEdge{V1: v1, V2: v2, L1: l1, L2: l2, LE: le}
}

func TestTrie_MarkedPropagatesToDescendants(t *testing.T) {
	tr := failtrie.New()
	prefix := dfscode.Code{step(0, 1, 1, 1, 1)}
	tr.Insert(prefix)

	descendant := prefix.WithStep(step(1, 2, 1, 1, 1))
	assert.True(t, tr.Marked(descendant), "a code sharing a marked prefix must itself be marked")
	assert.True(t, tr.Marked(prefix))
}

func TestTrie_UnrelatedCodeNotMarked(t *testing.T) {
	tr := failtrie.New()
	tr.Insert(dfscode.Code{step(0, 1, 1, 1, 1)})

	other := dfscode.Code{step(0, 1, 2, 2, 2)}
	assert.False(t, tr.Marked(other))
}

func TestTrie_EmptyTrieNeverMarks(t *testing.T) {
	tr := failtrie.New()
	assert.False(t, tr.Marked(dfscode.Code{step(0, 1, 1, 1, 1)}))
	assert.False(t, tr.Marked(dfscode.Empty()))
}
