// Package percolate estimates the site-percolation threshold of square grids:
// an incremental connectivity engine, a Monte Carlo driver on top of it, and
// the plumbing to observe and keep the results.
//
// What is percolation?
//
//	Take an N×N grid of sites, all closed. Open sites one at a time at
//	random. The grid percolates once an orthogonally connected path of open
//	sites links the top row to the bottom row. The fraction of sites open at
//	that moment clusters, for large N, around p* ≈ 0.5927.
//
// Packages:
//
//	unionfind/   - weighted quick-union with path halving over [0, n)
//	percolation/ - the Grid engine: Open / IsOpen / IsFull / Percolates,
//	               backed by two disjoint sets so IsFull never "backwashes"
//	gridgraph/   - BFS over an open/closed snapshot: clusters, full cells,
//	               fewest sites to open before percolation (reference oracle)
//	stats/       - Monte Carlo driver: trials, mean, stddev, 95% interval,
//	               worker pool, Prometheus metrics, OpenTelemetry spans
//	store/       - SQLite persistence of finished runs
//
// Quick ASCII example (N = 3, X = open):
//
//	. . X
//	. . X      percolates: true
//	X . X      (3,1) full: false (it touches the bottom, not the top)
//
// Quick start:
//
//	s, err := stats.New(200, 100, stats.WithSeed(1), stats.WithWorkers(8))
//	if err != nil { ... }
//	fmt.Println(s.Summary())
package percolate
