// Package percolation implements an incremental site-percolation engine on an
// N×N grid.
//
// What:
//
//   - Grid starts with every site closed; Open makes a site permanently open.
//   - IsFull reports whether an open site is linked to the top row through
//     open, orthogonally adjacent sites.
//   - Percolates reports whether some open path links the top row to the
//     bottom row.
//
// Coordinates are 1-indexed: rows and columns live in [1, N]. Internally a
// site (i, j) is the linear id (i-1)*N + (j-1).
//
// How:
//
// Two disjoint-set structures share the N² site ids, and each adds one
// virtual element at id N²:
//
//	top    : virtual-top    ∪ sites, virtual-top linked to row 1
//	bottom : virtual-bottom ∪ sites, virtual-bottom linked to row N
//
// Every Open links the new site to its open neighbours in both structures.
// IsFull only asks the top structure. A single structure holding both
// virtual ends would report a site as full as soon as it touched the bottom
// row of a grid that already percolates, even with no open path to the top
// ("backwash"). Keeping the bottom ends in their own structure rules that out.
//
// Percolation is tracked incrementally: after an Open, the engine checks
// whether the new site reaches both virtual ends. Any newly created
// top-to-bottom path must run through that site, so the flag is exact and
// Percolates is O(1).
//
// Complexity:
//
//   - New:        O(N²) time and memory.
//   - Open:       O(α(N²)) amortized.
//   - IsOpen:     O(1).
//   - IsFull:     O(α(N²)) amortized.
//   - Percolates: O(1).
//
// Errors:
//
//   - ErrInvalidGridSize: N ≤ 0 passed to New.
//   - ErrIndexOutOfRange: a row or column outside [1, N]. The grid is left
//     untouched.
//
// Grid is not safe for concurrent use. Independent grids share nothing, so
// separate goroutines may each drive their own.
package percolation
