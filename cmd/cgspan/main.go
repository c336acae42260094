// Command cgspan mines closed frequent connected subgraphs from a
// line-oriented graph database (spec §6.1) and writes the result in the
// format of spec §6.2.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &mineOptions{}

	cmd := &cobra.Command{
		Use:   "cgspan [input]",
		Short: "Mine closed frequent connected subgraphs from a labeled graph database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}

			return runMine(cmd, input, opts)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.minSupport, "min-support", 1.0, "minimum support as a fraction of the database in (0, 1]")
	flags.BoolVar(&opts.singleVertices, "single-vertices", false, "emit one-vertex closed patterns")
	flags.IntVar(&opts.maxEdges, "max-edges", 1<<20, "maximum edges per reported pattern (0 produces no output at all)")
	flags.BoolVar(&opts.graphIDs, "graph-ids", false, "emit the \"x\" graph-id line for each pattern")
	flags.StringVar(&opts.output, "output", "-", "output path, or \"-\" for stdout")
	flags.StringVar(&opts.dotDir, "dot-dir", "", "if set, also write one DOT file per closed pattern into this directory")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics at this address after mining")

	cmd.AddCommand(newGenCmd())

	return cmd
}

// mineOptions holds the resolved CLI flags for the run.
type mineOptions struct {
	minSupport     float64
	singleVertices bool
	maxEdges       int
	graphIDs       bool
	output         string
	dotDir         string
	metricsAddr    string
}
