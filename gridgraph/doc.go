// Package gridgraph treats a 2D grid of open/closed cells as a graph and
// answers connectivity questions by plain breadth-first search.
//
// It is the from-scratch counterpart of package percolation: where the
// percolation engine maintains connectivity incrementally, gridgraph
// recomputes it from a snapshot. That makes it slow but obviously correct,
// which is what a reference oracle needs.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid; cells with value ≥
//     OpenThreshold are open, the rest closed.
//   - ConnectedComponents finds the open clusters.
//   - FullCells marks the open cells reachable from the top row, and
//     Percolates reports whether any of them lies on the bottom row.
//   - ExpandIsland and OpenGap compute the fewest closed cells that must be
//     opened to join two clusters, or to make the grid percolate.
//
// Why:
//
//   - Cross-checking the incremental engine (see stats.WithCrossCheck).
//   - Post-mortem analysis of a trial: how far a grid is from percolating.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8 neighbours).
//   - FullCells/Percolates: O(W×H×d), Memory: O(W×H).
//   - ExpandIsland/OpenGap: O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.OpenThreshold: minimum value considered open.
//   - GridOptions.Conn: Conn4 (the percolation lattice) or Conn8.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between the requested cells.
package gridgraph
