package dot

import (
	"fmt"
	"io"

	"github.com/katalvlaran/cgspan/dfscode"
)

// WritePattern writes code as a DOT "graph" block named name to w: one node
// per code vertex labeled with its integer label, one edge per code step
// labeled with its edge label.
func WritePattern(w io.Writer, name string, code dfscode.Code) error {
	if _, err := fmt.Fprintf(w, "graph %s {\n", name); err != nil {
		return err
	}

	n := code.NumVertices()
	for v := 0; v < n; v++ {
		label, _ := code.VertexLabel(v)
		if _, err := fmt.Fprintf(w, "\tn%d [label=\"%d\"];\n", v, label); err != nil {
			return err
		}
	}
	for _, ee := range code {
		if _, err := fmt.Fprintf(w, "\tn%d -- n%d [label=\"%d\"];\n", ee.V1, ee.V2, ee.LE); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "}\n")

	return err
}
