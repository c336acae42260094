package gspanio

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/cgspan/closure"
	"github.com/katalvlaran/cgspan/dfscode"
	"github.com/katalvlaran/cgspan/gstore"
)

// SingleVertexEdgeLabel is the sentinel edge label a one-vertex closed
// pattern's lone code step carries (spec §6.2: "use edge label sentinel −1
// internally"). Such a pattern's Code holds exactly one ExtendedEdge with
// V1 == V2 == 0 and LE == SingleVertexEdgeLabel; WriteResults recognizes it
// and emits only the "v 0 <L>" line.
const SingleVertexEdgeLabel = -1

// WriteResults writes patterns to w in ascending-support order, in the
// format of spec §6.2. outputGraphIds controls whether each record's "x"
// line is emitted.
func WriteResults(w io.Writer, patterns []*closure.ClosedPattern, outputGraphIds bool) error {
	// Ascending support, then ascending edge count, then DFS-code
	// lexicographic order — a deterministic tie-break so two runs over
	// identical input always produce byte-identical output.
	sorted := make([]*closure.ClosedPattern, len(patterns))
	copy(sorted, patterns)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Support != b.Support {
			return a.Support < b.Support
		}
		if len(a.Code) != len(b.Code) {
			return len(a.Code) < len(b.Code)
		}

		return dfscode.CompareCodes(a.Code, b.Code) < 0
	})

	bw := bufio.NewWriter(w)
	for i, p := range sorted {
		if err := writeRecord(bw, i, p, outputGraphIds); err != nil {
			return fmt.Errorf("gspanio: writing record %d: %w", i, err)
		}
	}

	return bw.Flush()
}

func writeRecord(bw *bufio.Writer, seq int, p *closure.ClosedPattern, outputGraphIds bool) error {
	if _, err := fmt.Fprintf(bw, "t # %d * %d\n", seq, p.Support); err != nil {
		return err
	}

	if isSingleVertex(p.Code) {
		if _, err := fmt.Fprintf(bw, "v 0 %d\n", p.Code[0].L1); err != nil {
			return err
		}
	} else {
		n := p.Code.NumVertices()
		for v := 0; v < n; v++ {
			label, _ := p.Code.VertexLabel(v)
			if _, err := fmt.Fprintf(bw, "v %d %d\n", v, label); err != nil {
				return err
			}
		}
		for _, ee := range p.Code {
			if _, err := fmt.Fprintf(bw, "e %d %d %d\n", ee.V1, ee.V2, ee.LE); err != nil {
				return err
			}
		}
	}

	if outputGraphIds {
		if _, err := bw.WriteString("x"); err != nil {
			return err
		}
		for _, gid := range p.GraphIDs {
			if _, err := fmt.Fprintf(bw, " %d", gid); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.WriteByte('\n')
}

// isSingleVertex reports whether code is the one-vertex sentinel encoding
// described on SingleVertexEdgeLabel.
func isSingleVertex(code dfscode.Code) bool {
	return len(code) == 1 && code[0].V1 == 0 && code[0].V2 == 0 && code[0].LE == SingleVertexEdgeLabel
}

// WriteDatabase writes graphs to w in the input format ReadGraphs accepts
// (spec §6.1), one "t # <gid>" block per transaction in the order given.
// It is the inverse of ReadGraphs and is used to persist synthetic fixtures
// built by gensynth.
func WriteDatabase(w io.Writer, graphs []*gstore.RawGraph) error {
	bw := bufio.NewWriter(w)
	for _, g := range graphs {
		if _, err := fmt.Fprintf(bw, "t # %d\n", g.GID); err != nil {
			return fmt.Errorf("gspanio: writing header for graph %d: %w", g.GID, err)
		}
		for _, id := range g.VertexIDs() {
			label, _ := g.Label(id)
			if _, err := fmt.Fprintf(bw, "v %d %d\n", id, label); err != nil {
				return fmt.Errorf("gspanio: writing vertex %d of graph %d: %w", id, g.GID, err)
			}
		}
		for _, e := range g.Edges() {
			if _, err := fmt.Fprintf(bw, "e %d %d %d\n", e.V1, e.V2, e.Label); err != nil {
				return fmt.Errorf("gspanio: writing edge of graph %d: %w", g.GID, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
