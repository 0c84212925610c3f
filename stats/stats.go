package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolate/internal/logging"
	"github.com/katalvlaran/percolate/percolation"
)

// Stats holds the outcome of a finished Monte Carlo run. It is immutable.
type Stats struct {
	n          int
	thresholds []float64
	seed       int64
	elapsed    time.Duration

	mean, stddev float64
	lo, hi       float64
}

// New runs trials independent experiments on an n×n grid and aggregates
// them. It is Run with context.Background().
func New(n, trials int, opts ...Option) (*Stats, error) {
	return Run(context.Background(), n, trials, opts...)
}

// Run runs trials independent experiments on an n×n grid and aggregates
// them once all have finished.
//
// Validation happens before any trial starts:
//   - n ≤ 0      → percolation.ErrInvalidGridSize
//   - trials ≤ 0 → ErrInvalidTrials
//
// The first failing trial (draw limit, oracle mismatch, cancelled ctx)
// aborts the run and its error is returned.
func Run(ctx context.Context, n, trials int, opts ...Option) (*Stats, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", percolation.ErrInvalidGridSize, n)
	}
	if trials <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}
	cfg := newConfig(opts...)

	tracer := cfg.tracerProvider.Tracer(instrumentationName)
	ctx, span := tracer.Start(ctx, "stats.Run", trace.WithAttributes(
		attribute.Int("grid.size", n),
		attribute.Int("trials.count", trials),
		attribute.Int("workers", cfg.workers),
	))
	defer span.End()

	log := cfg.logger.With(logging.Int("grid_size", n), logging.Int("trials", trials))
	log.Info(ctx, "percolation run started", logging.Int("workers", cfg.workers))

	r := &runner{n: n, cfg: cfg, tracer: tracer, log: log}
	samples := make([]float64, trials)
	start := time.Now()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i := 0; i < trials; i++ {
		i := i
		eg.Go(func() error {
			threshold, err := r.trial(egCtx, i)
			if err != nil {
				return err
			}
			samples[i] = threshold
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error(ctx, "percolation run failed", logging.Err(err))
		return nil, err
	}

	s := &Stats{
		n:          n,
		thresholds: samples,
		seed:       cfg.seed,
		elapsed:    time.Since(start),
	}
	s.aggregate()

	span.SetAttributes(
		attribute.Float64("threshold.mean", s.mean),
		attribute.Float64("threshold.stddev", s.stddev),
	)
	log.Info(ctx, "percolation run finished",
		logging.Float64("mean", s.mean),
		logging.Float64("stddev", s.stddev),
		logging.Duration("elapsed", s.elapsed),
	)

	return s, nil
}

// aggregate fills the derived scalars from s.thresholds.
func (s *Stats) aggregate() {
	t := float64(len(s.thresholds))
	s.mean = stat.Mean(s.thresholds, nil)
	// The n-1 divisor is undefined for a single sample; report no spread.
	if len(s.thresholds) > 1 {
		s.stddev = stat.StdDev(s.thresholds, nil)
	}
	half := confidenceZ * s.stddev / math.Sqrt(t)
	s.lo = s.mean - half
	s.hi = s.mean + half
}

// Mean is the sample mean of the percolation thresholds.
func (s *Stats) Mean() float64 { return s.mean }

// StdDev is the Bessel-corrected sample standard deviation (0 when T == 1).
func (s *Stats) StdDev() float64 { return s.stddev }

// ConfidenceLo is the lower bound of the 95% confidence interval.
func (s *Stats) ConfidenceLo() float64 { return s.lo }

// ConfidenceHi is the upper bound of the 95% confidence interval.
func (s *Stats) ConfidenceHi() float64 { return s.hi }

// GridSize reports N.
func (s *Stats) GridSize() int { return s.n }

// Trials reports T.
func (s *Stats) Trials() int { return len(s.thresholds) }

// Seed reports the base seed of the default source. It carries no meaning
// when WithSourceFactory was used.
func (s *Stats) Seed() int64 { return s.seed }

// Elapsed reports the wall time spent running trials.
func (s *Stats) Elapsed() time.Duration { return s.elapsed }

// Thresholds returns a copy of the per-trial samples, in trial order.
func (s *Stats) Thresholds() []float64 {
	out := make([]float64, len(s.thresholds))
	copy(out, s.thresholds)
	return out
}

// Summary returns the aggregate figures as a plain value.
func (s *Stats) Summary() Summary {
	return Summary{
		GridSize:     s.n,
		Trials:       len(s.thresholds),
		Mean:         s.mean,
		StdDev:       s.stddev,
		ConfidenceLo: s.lo,
		ConfidenceHi: s.hi,
	}
}
