package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cgspan/dot"
	"github.com/katalvlaran/cgspan/gspanio"
	"github.com/katalvlaran/cgspan/miner"
)

func runMine(cmd *cobra.Command, input string, opts *mineOptions) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	in, err := openInput(input)
	if err != nil {
		return fmt.Errorf("cgspan: opening input: %w", err)
	}
	defer in.Close()

	raws, err := gspanio.ReadGraphs(in)
	if err != nil {
		return fmt.Errorf("cgspan: reading graph db: %w", err)
	}

	params := miner.Params{
		MinSupport:           opts.minSupport,
		OutputSingleVertices: opts.singleVertices,
		MaxEdges:             opts.maxEdges,
		OutputGraphIDs:       opts.graphIDs,
	}

	minerOpts := []miner.Option{miner.WithLogger(logger)}
	var registry *prometheus.Registry
	if opts.metricsAddr != "" {
		registry = prometheus.NewRegistry()
		minerOpts = append(minerOpts, miner.WithMetricsRegistry(registry))
	}

	patterns, _, err := miner.Run(raws, params, minerOpts...)
	if err != nil {
		return fmt.Errorf("cgspan: mining: %w", err)
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return fmt.Errorf("cgspan: opening output: %w", err)
	}
	defer out.Close()

	if err := gspanio.WriteResults(out, patterns, opts.graphIDs); err != nil {
		return fmt.Errorf("cgspan: writing results: %w", err)
	}

	if opts.dotDir != "" {
		if err := writeDotFiles(opts.dotDir, patterns); err != nil {
			return fmt.Errorf("cgspan: writing dot files: %w", err)
		}
	}

	if opts.metricsAddr != "" {
		logger.Info("serving metrics", slog.String("addr", opts.metricsAddr))
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

		return http.ListenAndServe(opts.metricsAddr, mux)
	}

	return nil
}

func openInput(path string) (fileLike, error) {
	if path == "-" {
		return stdinCloser{os.Stdin}, nil
	}

	return os.Open(path)
}

func openOutput(path string) (fileLike, error) {
	if path == "-" {
		return stdoutCloser{os.Stdout}, nil
	}

	return os.Create(path)
}

// fileLike is the subset of *os.File both input and output helpers need;
// stdin/stdout are wrapped so Close is a no-op rather than closing the
// process's standard streams.
type fileLike interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
}

type stdinCloser struct{ *os.File }

func (stdinCloser) Close() error { return nil }

type stdoutCloser struct{ *os.File }

func (stdoutCloser) Close() error { return nil }

func writeDotFiles(dir string, patterns []*miner.ClosedPattern) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i, p := range patterns {
		path := filepath.Join(dir, fmt.Sprintf("pattern-%d.dot", i))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		err = dot.WritePattern(f, fmt.Sprintf("pattern_%d", i), p.Code)
		f.Close()
		if err != nil {
			return err
		}
	}

	return nil
}
