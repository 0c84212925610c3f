// SPDX-License-Identifier: MIT
// Package: percolate/stats
//
// errors.go - sentinel errors for the stats package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Returned errors wrap the sentinel with context via %w.
//   • Invalid grid sizes reuse percolation.ErrInvalidGridSize so callers see
//     one error kind for "bad N" whichever layer rejects it.

package stats

import "errors"

// ErrInvalidTrials indicates a non-positive trial count.
var ErrInvalidTrials = errors.New("stats: trial count must be positive")

// ErrDrawLimit indicates a trial drew more random sites than WithMaxDraws
// allows without percolating.
var ErrDrawLimit = errors.New("stats: trial exceeded draw limit")

// ErrOracleMismatch indicates the incremental engine and the BFS oracle
// disagreed about a finished trial (WithCrossCheck).
var ErrOracleMismatch = errors.New("stats: engine disagrees with BFS oracle")
