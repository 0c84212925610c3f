// Package unionfind provides a disjoint-set (union-find) structure over a
// fixed universe of integer elements [0, size).
//
// What:
//
//   - UF tracks a partition of {0, 1, …, size-1} into disjoint components.
//   - Union merges the components of two elements.
//   - Connected reports whether two elements share a component.
//   - Find returns the canonical root of an element's component.
//
// Why:
//
//   - Incremental connectivity: grids and graphs that only ever gain edges
//     (percolation, Kruskal's MST, image labelling) can answer "are these
//     linked?" without re-traversing the structure.
//
// Algorithm:
//
//   - Weighted quick-union: the root of the smaller tree is attached under the
//     root of the larger one, so tree height stays O(log n).
//   - Path halving in Find: every visited node is re-pointed to its
//     grandparent, flattening trees as a side-effect of queries.
//
// Complexity:
//
//   - New:       O(n) time, O(n) memory.
//   - Union:     O(α(n)) amortized.
//   - Connected: O(α(n)) amortized.
//   - Find:      O(α(n)) amortized.
//
// Errors:
//
//   - ErrInvalidSize: size ≤ 0 passed to New.
//   - ErrElementOutOfRange: an element id outside [0, size).
//
// UF is not safe for concurrent use; callers own synchronization.
package unionfind
