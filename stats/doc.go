// Package stats estimates the site-percolation threshold of an N×N grid by
// Monte Carlo simulation.
//
// What:
//
//   - Each trial builds a fresh percolation.Grid, opens uniformly random
//     closed sites until the grid percolates, and records the fraction of
//     sites opened.
//   - After T trials the package reports the sample mean, the
//     Bessel-corrected standard deviation, and the 95% confidence interval
//     mean ± 1.96·s/√T.
//
// Why:
//
//   - The threshold p* ≈ 0.5927 of the square lattice has no closed form;
//     simulation is the standard way to estimate it.
//
// How:
//
//   - Trials share nothing, so WithWorkers(k) runs up to k of them at once on
//     an errgroup. Trial i only writes sample i; aggregation waits for all.
//   - Trial k draws from a source seeded with seed+k (see WithSeed), so a
//     seeded run yields identical samples for any worker count.
//   - WithCrossCheck re-derives each final grid with the gridgraph BFS and
//     fails the run on any disagreement.
//   - Runs emit an OpenTelemetry span (with one child span per trial),
//     optional Prometheus metrics (see Collector), and structured logs.
//
// Complexity:
//
//   - Each trial costs O(N² log N²) expected draws (coupon-collector tail of
//     rejected already-open sites) at O(α(N²)) per open.
//
// Errors:
//
//   - percolation.ErrInvalidGridSize: N ≤ 0.
//   - ErrInvalidTrials: T ≤ 0.
//   - ErrDrawLimit: a trial exceeded WithMaxDraws.
//   - ErrOracleMismatch: WithCrossCheck found a disagreement.
//   - context.Canceled / context.DeadlineExceeded from Run's context.
//
// A run with T == 1 has no spread to measure; StdDev reports 0 and both
// confidence bounds equal the mean.
package stats
