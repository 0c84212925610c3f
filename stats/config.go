// SPDX-License-Identifier: MIT
// Package: percolate/stats
//
// config.go - internal configuration and defaults.
//
// Design:
//   • config is the single source of truth for all driver knobs.
//   • newConfig applies options in order (later overrides earlier), then
//     resolves defaults for anything left unset.
//
// Defaults:
//   • seed        = wall clock (non-deterministic unless WithSeed)
//   • source      = math/rand seeded with seed+trial
//   • workers     = 1 (sequential)
//   • maxDraws    = 0 (unbounded)
//   • crossCheck  = false
//   • logger      = logging.Noop()
//   • metrics     = nil (no Prometheus output)
//   • tracing     = otel global tracer provider

package stats

import (
	"math/rand"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/percolate/internal/logging"
)

// instrumentationName names the tracer used for run and trial spans.
const instrumentationName = "github.com/katalvlaran/percolate/stats"

// confidenceZ is the two-sided 95% standard normal quantile.
const confidenceZ = 1.96

// ctxCheckInterval is how many draws a trial makes between context checks.
const ctxCheckInterval = 4096

// Source yields uniform integers in [0, n). *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// config aggregates all knobs used by Run.
type config struct {
	seed      int64
	seeded    bool
	newSource func(trial int) Source

	workers    int
	maxDraws   int
	crossCheck bool

	logger         logging.Logger
	metrics        *Collector
	tracerProvider trace.TracerProvider
}

// newConfig applies opts and resolves defaults.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.seeded {
		cfg.seed = time.Now().UnixNano()
	}
	if cfg.newSource == nil {
		seed := cfg.seed
		cfg.newSource = func(trial int) Source {
			return rand.New(rand.NewSource(seed + int64(trial)))
		}
	}
	if cfg.workers <= 0 {
		cfg.workers = 1
	}
	if cfg.logger == nil {
		cfg.logger = logging.Noop()
	}
	if cfg.tracerProvider == nil {
		cfg.tracerProvider = otel.GetTracerProvider()
	}

	return cfg
}
