package coclust

import (
	"runtime"

	"github.com/rs/zerolog"
)

// defaultMaxIterations matches the CLI's default iteration cap.
const defaultMaxIterations = 25

// defaultRanks is the simulated world size when the caller does not
// specify one explicitly.
const defaultRanks = 4

// config aggregates every knob Cluster accepts. It is built from
// deterministic defaults and mutated in-order by Option values — single
// source of truth, no hidden globals.
type config struct {
	maxIterations int
	workers       int
	ranks         int
	logger        zerolog.Logger
	onIteration   func(IterationStats)
}

func defaultConfig() config {
	return config{
		maxIterations: defaultMaxIterations,
		workers:       runtime.GOMAXPROCS(0),
		ranks:         defaultRanks,
		logger:        zerolog.Nop(),
		onIteration:   nil,
	}
}

// Option customizes a Cluster run. Option constructors validate and panic
// on meaningless inputs — Cluster itself never panics on bad data, only
// on programmer error surfaced at option-construction time.
type Option func(*config)

// WithMaxIterations caps the number of refinement iterations. Panics if
// n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("coclust: WithMaxIterations(n<=0)")
	}

	return func(c *config) { c.maxIterations = n }
}

// WithWorkers sets the per-rank simulated GPU-thread pool size. Panics if
// n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic("coclust: WithWorkers(n<=0)")
	}

	return func(c *config) { c.workers = n }
}

// WithRanks sets the simulated world size P. Panics if n <= 0.
func WithRanks(n int) Option {
	if n <= 0 {
		panic("coclust: WithRanks(n<=0)")
	}

	return func(c *config) { c.ranks = n }
}

// WithLogger attaches a structured logger; rank-0 per-iteration
// diagnostics are emitted through it.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithOnIteration registers a callback invoked once per iteration with
// that iteration's stats — the hook external wall-clock/progress
// reporting attaches to. Panics on nil.
func WithOnIteration(fn func(IterationStats)) Option {
	if fn == nil {
		panic("coclust: WithOnIteration(nil)")
	}

	return func(c *config) { c.onIteration = fn }
}
