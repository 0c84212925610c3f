// SPDX-License-Identifier: MIT
// Package: percolate/stats
//
// options.go - functional options for Run and New.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs (nil
//     loggers, non-positive worker counts). Run itself never panics.
//   • Determinism is explicit: WithSeed or WithSourceFactory.

package stats

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/percolate/internal/logging"
)

// Option customizes a Run.
type Option func(*config)

// WithSeed makes the run reproducible: trial k draws from a math/rand source
// seeded with seed+k. Ignored when WithSourceFactory is also given.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithSourceFactory supplies the random source for each trial. The factory is
// called once per trial, possibly from several goroutines; each returned
// Source is used by that trial only.
// Panics on nil.
func WithSourceFactory(fn func(trial int) Source) Option {
	if fn == nil {
		panic("stats: WithSourceFactory(nil)")
	}
	return func(c *config) {
		c.newSource = fn
	}
}

// WithWorkers runs up to k trials concurrently.
// Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("stats: WithWorkers requires k >= 1")
	}
	return func(c *config) {
		c.workers = k
	}
}

// WithMaxDraws caps the random draws per trial; a trial that has not
// percolated after k draws fails the run with ErrDrawLimit.
// Panics if k < 1.
func WithMaxDraws(k int) Option {
	if k < 1 {
		panic("stats: WithMaxDraws requires k >= 1")
	}
	return func(c *config) {
		c.maxDraws = k
	}
}

// WithCrossCheck verifies every finished trial against a from-scratch BFS of
// the grid. It costs O(N²) per trial on top of the simulation.
func WithCrossCheck() Option {
	return func(c *config) {
		c.crossCheck = true
	}
}

// WithLogger routes run and trial logs to l.
// Panics on nil; use logging.Noop() to silence.
func WithLogger(l logging.Logger) Option {
	if l == nil {
		panic("stats: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics records trial metrics into col.
// Panics on nil.
func WithMetrics(col *Collector) Option {
	if col == nil {
		panic("stats: WithMetrics(nil)")
	}
	return func(c *config) {
		c.metrics = col
	}
}

// WithTracerProvider overrides the otel global tracer provider.
// Panics on nil.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("stats: WithTracerProvider(nil)")
	}
	return func(c *config) {
		c.tracerProvider = tp
	}
}
