package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cgspan/gensynth"
	"github.com/katalvlaran/cgspan/gspanio"
)

func newGenCmd() *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a synthetic transaction graph database for mining benchmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.topology, "topology", "cycle",
		"cycle, complete, star, path, wheel, or random_sparse")
	flags.IntVar(&opts.size, "size", 6, "vertices per transaction")
	flags.IntVar(&opts.count, "count", 10, "number of transactions")
	flags.IntVar(&opts.labelSpace, "label-space", 1, "distinct vertex labels (1 means uniformly labeled)")
	flags.Int64Var(&opts.seed, "seed", 1, "RNG seed, consulted only by --topology=random_sparse")
	flags.StringVar(&opts.output, "output", "-", "output path, or \"-\" for stdout")

	return cmd
}

type genOptions struct {
	topology   string
	size       int
	count      int
	labelSpace int
	seed       int64
	output     string
}

func runGen(opts *genOptions) error {
	graphs, err := gensynth.Database(gensynth.Topology(opts.topology), opts.size, opts.count, opts.labelSpace, opts.seed)
	if err != nil {
		return fmt.Errorf("cgspan gen: %w", err)
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return fmt.Errorf("cgspan gen: opening output: %w", err)
	}
	defer out.Close()

	if err := gspanio.WriteDatabase(out, graphs); err != nil {
		return fmt.Errorf("cgspan gen: writing database: %w", err)
	}

	return nil
}
