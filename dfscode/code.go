package dfscode

// Code (C) is a DFS code: a sequence of ExtendedEdges satisfying the
// invariants in spec §3 ("DFS code"):
//
//   - Code[0] is forward with V1=0, V2=1.
//   - Every forward step's V2 equals max(V2 over prior steps)+1.
//   - Every backward step references only vertices already introduced.
//
// Code is treated as immutable by convention: WithStep always returns a new
// Code backed by a fresh slice, so sibling recursion branches sharing a
// common prefix never alias each other's backing array.
type Code []ExtendedEdge

// Empty is the zero-length code (the root of the search).
func Empty() Code { return nil }

// WithStep returns a new Code equal to c with ee appended.
func (c Code) WithStep(ee ExtendedEdge) Code {
	out := make(Code, len(c)+1)
	copy(out, c)
	out[len(c)] = ee

	return out
}

// Copy returns an independent Code with the same steps (spec §4.2: "copy()
// returns an independent code with the same steps").
func (c Code) Copy() Code {
	out := make(Code, len(c))
	copy(out, c)

	return out
}

// RightMost returns the highest-numbered code vertex, max(v2) over all
// steps. Only meaningful for a non-empty code.
func (c Code) RightMost() int {
	rm := 0
	for _, ee := range c {
		if ee.V2 > rm {
			rm = ee.V2
		}
	}

	return rm
}

// parentOf returns, for every forward step, the parent vertex of its new
// vertex V2 — i.e. parentOf[v2] = v1. Only forward edges contribute.
func (c Code) parentOf() map[int]int {
	parent := make(map[int]int, len(c))
	for _, ee := range c {
		if ee.IsForward() {
			parent[ee.V2] = ee.V1
		}
	}

	return parent
}

// RightMostPath (rightMostPath()) returns the vertices on the unique path
// from vertex 0 to RightMost, following only forward edges, ordered from 0
// to RightMost.
func (c Code) RightMostPath() []int {
	if len(c) == 0 {
		return []int{0}
	}
	parent := c.parentOf()
	rm := c.RightMost()

	var path []int
	for v := rm; ; {
		path = append(path, v)
		if v == 0 {
			break
		}
		p, ok := parent[v]
		if !ok {
			break
		}
		v = p
	}
	// path was built rightMost -> 0; reverse to 0 -> rightMost.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// OnRightMostPath reports whether code-vertex v lies on the rightmost path.
func (c Code) OnRightMostPath(v int) bool {
	for _, p := range c.RightMostPath() {
		if p == v {
			return true
		}
	}

	return false
}

// NotPreOfRM reports that v is not the immediate predecessor (parent) of
// RightMost along the rightmost path — i.e. a backward edge to v would not
// merely restate the last forward step's parent link.
func (c Code) NotPreOfRM(v int) bool {
	rm := c.RightMost()
	parent := c.parentOf()
	p, ok := parent[rm]

	return !ok || p != v
}

// ContainsEdge reports whether the code already has a step connecting
// code-vertices u and v, in either orientation.
func (c Code) ContainsEdge(u, v int) bool {
	for _, ee := range c {
		if (ee.V1 == u && ee.V2 == v) || (ee.V1 == v && ee.V2 == u) {
			return true
		}
	}

	return false
}

// VertexLabel returns the label assigned to code-vertex v by the code
// itself (the L1/L2 fields are redundant across steps referencing the same
// vertex; this returns the first one found), and whether v appears at all.
func (c Code) VertexLabel(v int) (int, bool) {
	for _, ee := range c {
		if ee.V1 == v {
			return ee.L1, true
		}
		if ee.V2 == v {
			return ee.L2, true
		}
	}

	return 0, false
}

// NumVertices returns the number of distinct code-vertices, i.e. RightMost+1
// for a non-empty code, 0 for the empty code.
func (c Code) NumVertices() int {
	if len(c) == 0 {
		return 0
	}

	return c.RightMost() + 1
}

// CompareCodes returns -1, 0, or 1 as c sorts before, the same as, or after
// o: lexicographic over steps using Compare, with a shorter common prefix
// sorting before a longer one.
func CompareCodes(c, o Code) int {
	n := len(c)
	if len(o) < n {
		n = len(o)
	}
	for i := 0; i < n; i++ {
		if cmp := Compare(c[i], o[i]); cmp != 0 {
			return cmp
		}
	}
	switch {
	case len(c) < len(o):
		return -1
	case len(c) > len(o):
		return 1
	default:
		return 0
	}
}
