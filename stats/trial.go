package stats

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/percolate/gridgraph"
	"github.com/katalvlaran/percolate/internal/logging"
	"github.com/katalvlaran/percolate/percolation"
)

// runner carries the per-run state shared read-only by every trial.
type runner struct {
	n      int
	cfg    config
	tracer trace.Tracer
	log    logging.Logger
}

// trial runs experiment k and returns its threshold sample.
func (r *runner) trial(ctx context.Context, k int) (float64, error) {
	ctx, span := r.tracer.Start(ctx, "stats.trial", trace.WithAttributes(attribute.Int("trial.index", k)))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	start := time.Now()

	opened, draws, grid, err := r.fill(ctx, k)
	if err != nil {
		r.cfg.metrics.observeFailure()
		span.RecordError(err)
		return 0, err
	}
	if r.cfg.crossCheck {
		if err := crossCheck(grid); err != nil {
			r.cfg.metrics.observeFailure()
			span.RecordError(err)
			return 0, fmt.Errorf("trial %d: %w", k, err)
		}
	}

	sites := r.n * r.n
	threshold := float64(opened) / float64(sites)
	elapsed := time.Since(start)

	r.cfg.metrics.observeTrial(elapsed, threshold, opened)
	span.SetAttributes(
		attribute.Int("trial.opened", opened),
		attribute.Int("trial.draws", draws),
		attribute.Float64("trial.threshold", threshold),
	)
	r.log.Debug(ctx, "trial percolated",
		logging.Int("trial", k),
		logging.Int("opened", opened),
		logging.Int("draws", draws),
		logging.Float64("threshold", threshold),
		logging.Duration("elapsed", elapsed),
	)

	return threshold, nil
}

// fill opens random closed sites of a fresh grid until it percolates.
func (r *runner) fill(ctx context.Context, k int) (opened, draws int, grid *percolation.Grid, err error) {
	grid, err = percolation.New(r.n)
	if err != nil {
		return 0, 0, nil, err
	}
	src := r.cfg.newSource(k)

	for !grid.Percolates() {
		if r.cfg.maxDraws > 0 && draws >= r.cfg.maxDraws {
			return opened, draws, grid, fmt.Errorf("%w: trial %d after %d draws", ErrDrawLimit, k, draws)
		}
		draws++
		if draws%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return opened, draws, grid, err
			}
		}

		row, col := src.Intn(r.n)+1, src.Intn(r.n)+1
		isOpen, err := grid.IsOpen(row, col)
		if err != nil {
			return opened, draws, grid, err
		}
		if isOpen {
			continue
		}
		if err := grid.Open(row, col); err != nil {
			return opened, draws, grid, err
		}
		opened++
	}

	return opened, draws, grid, nil
}

// crossCheck recomputes fullness and percolation of grid by BFS and reports
// the first disagreement with the incremental engine.
func crossCheck(grid *percolation.Grid) error {
	n := grid.Size()
	gg, err := gridgraph.From2D(grid.Snapshot(), gridgraph.Conn4)
	if err != nil {
		return err
	}

	full := gg.FullCells()
	for i, want := range full {
		row, col := i/n+1, i%n+1
		got, err := grid.IsFull(row, col)
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("%w: IsFull(%d,%d)=%v, BFS=%v", ErrOracleMismatch, row, col, got, want)
		}
	}

	_, gap, err := gg.OpenGap()
	if err != nil {
		return err
	}
	if grid.Percolates() != (gap == 0) {
		return fmt.Errorf("%w: Percolates=%v, BFS gap=%d", ErrOracleMismatch, grid.Percolates(), gap)
	}

	return nil
}
