package failtrie

import "github.com/katalvlaran/cgspan/dfscode"

// trieNode is one node of the prefix trie, keyed by the ExtendedEdge taken
// to reach it from its parent.
type trieNode struct {
	children map[dfscode.ExtendedEdge]*trieNode
	marked   bool
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[dfscode.ExtendedEdge]*trieNode)}
}

// Trie is the failure trie (spec §4.7, §3 "failtrie.Trie").
type Trie struct {
	root *trieNode
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{root: newTrieNode()}
}

// Insert marks code as unsafe: every descendant code sharing this prefix
// will find Marked true.
func (t *Trie) Insert(code dfscode.Code) {
	n := t.root
	for _, ee := range code {
		child, ok := n.children[ee]
		if !ok {
			child = newTrieNode()
			n.children[ee] = child
		}
		n = child
	}
	n.marked = true
}

// Marked reports whether code, or any proper prefix of it, was previously
// inserted — i.e. whether early termination on code must be vetoed.
func (t *Trie) Marked(code dfscode.Code) bool {
	n := t.root
	for _, ee := range code {
		child, ok := n.children[ee]
		if !ok {
			return false
		}
		if child.marked {
			return true
		}
		n = child
	}

	return false
}
