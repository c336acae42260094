package miner

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Driver, following the teacher's functional-options
// convention (core.GraphOption, builder.BuilderOption).
type Option func(*Driver)

// WithLogger overrides the Driver's logger. The default discards everything;
// the mining path never logs inside O(1)/O(deg) primitives, only at phase
// boundaries (pruning summary, closed-pattern count).
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) { d.logger = logger }
}

// WithMetricsRegistry attaches a Prometheus registry that Stats.Publish will
// register its gauges/counters against. Without this option, Stats is
// collected but never exported as metrics.
func WithMetricsRegistry(registry *prometheus.Registry) Option {
	return func(d *Driver) { d.registry = registry }
}

// WithEarlyTerminationDisabled forces the closure index's early-termination
// optimization off for the whole run, regardless of what closure.Index.
// TryEarlyTerminate would otherwise report. Intended for differential
// testing against the failure analyzer's oracle property (spec §8): with
// early termination disabled, every branch runs to completion, so the
// resulting closed-pattern set is the ground truth the analyzer-backstopped
// search must reproduce.
func WithEarlyTerminationDisabled() Option {
	return func(d *Driver) { d.disableEarlyTerm = true }
}

// WithFailureAnalysisDisabled forces the five-case failure analyzer off,
// regardless of what it would otherwise detect. Paired with
// WithEarlyTerminationDisabled for the same oracle property: enabling early
// termination back while failure analysis stays off must reproduce the
// bug the analyzer exists to prevent, which is otherwise untestable.
func WithFailureAnalysisDisabled() Option {
	return func(d *Driver) { d.disableFailureAnalysis = true }
}
