package percolation

import "errors"

// Sentinel errors for percolation operations. Callers branch with errors.Is;
// the returned errors wrap these with the offending value.
var (
	// ErrInvalidGridSize indicates a non-positive grid size.
	ErrInvalidGridSize = errors.New("percolation: grid size must be positive")
	// ErrIndexOutOfRange indicates a row or column outside [1, N].
	ErrIndexOutOfRange = errors.New("percolation: index out of range")
)
