package unionfind

import "errors"

// Sentinel errors for unionfind operations.
var (
	// ErrInvalidSize indicates a non-positive universe size.
	ErrInvalidSize = errors.New("unionfind: size must be positive")
	// ErrElementOutOfRange indicates an element id outside [0, size).
	ErrElementOutOfRange = errors.New("unionfind: element out of range")
)

// UF is a weighted quick-union structure with path halving.
//
// parent[i] is the parent of element i (parent[i] == i for roots);
// size[r] is the number of elements in the tree rooted at r and is only
// meaningful for roots. count is the number of disjoint components.
type UF struct {
	parent []int
	size   []int
	count  int
}
