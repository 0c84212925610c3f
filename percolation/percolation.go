package percolation

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/percolate/unionfind"
)

// neighborOffsets lists the orthogonal neighbours as (Δrow, Δcol): N, E, S, W.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is an N×N percolation system.
type Grid struct {
	n         int
	open      *bitset.BitSet
	openCount int

	// top links virtual-top (id n*n) to row 1; answers IsFull.
	top *unionfind.UF
	// bottom links virtual-bottom (id n*n) to row n; only feeds the flag.
	bottom *unionfind.UF

	percolates bool
}

// New builds an N×N grid with every site closed.
// Returns ErrInvalidGridSize if n ≤ 0.
// Complexity: O(N²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGridSize, n)
	}

	sites := n * n
	top, err := unionfind.New(sites + 1)
	if err != nil {
		return nil, err
	}
	bottom, err := unionfind.New(sites + 1)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		n:      n,
		open:   bitset.New(uint(sites)),
		top:    top,
		bottom: bottom,
	}

	// Pre-link the virtual ends. For n == 1 the single site gets both.
	virtual := g.virtual()
	for col := 0; col < n; col++ {
		if err := g.top.Union(virtual, g.index(0, col)); err != nil {
			return nil, err
		}
		if err := g.bottom.Union(virtual, g.index(n-1, col)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Size reports N.
func (g *Grid) Size() int {
	return g.n
}

// NumberOfOpenSites reports how many sites have been opened.
func (g *Grid) NumberOfOpenSites() int {
	return g.openCount
}

// Open opens site (row, col) and links it to its open neighbours.
// Opening an already open site is a no-op.
// Returns ErrIndexOutOfRange for coordinates outside [1, N]; the grid is not
// modified in that case.
// Complexity: O(α(N²)) amortized.
func (g *Grid) Open(row, col int) error {
	if err := g.validate(row, col); err != nil {
		return err
	}

	r, c := row-1, col-1
	site := g.index(r, c)
	if g.open.Test(uint(site)) {
		return nil
	}
	g.open.Set(uint(site))
	g.openCount++

	for _, d := range neighborOffsets {
		nr, nc := r+d[0], c+d[1]
		if !g.inBounds(nr, nc) {
			continue
		}
		other := g.index(nr, nc)
		if !g.open.Test(uint(other)) {
			continue
		}
		if err := g.top.Union(site, other); err != nil {
			return err
		}
		if err := g.bottom.Union(site, other); err != nil {
			return err
		}
	}

	if g.percolates {
		return nil
	}
	// Any new top-to-bottom path runs through site.
	toTop, err := g.top.Connected(site, g.virtual())
	if err != nil {
		return err
	}
	if !toTop {
		return nil
	}
	toBottom, err := g.bottom.Connected(site, g.virtual())
	if err != nil {
		return err
	}
	g.percolates = toBottom

	return nil
}

// IsOpen reports whether site (row, col) is open.
// Returns ErrIndexOutOfRange for coordinates outside [1, N].
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}

	return g.open.Test(uint(g.index(row-1, col-1))), nil
}

// IsFull reports whether site (row, col) is linked to the top row through
// open sites. Closed sites are never full: nothing links them to anything.
// Returns ErrIndexOutOfRange for coordinates outside [1, N].
// Complexity: O(α(N²)) amortized.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}

	site := g.index(row-1, col-1)
	// Row-1 sites are pre-linked to virtual-top even while closed.
	if !g.open.Test(uint(site)) {
		return false, nil
	}

	return g.top.Connected(site, g.virtual())
}

// Percolates reports whether the grid has an open top-to-bottom path.
// Complexity: O(1).
func (g *Grid) Percolates() bool {
	return g.percolates
}

// Snapshot returns the open/closed state as a fresh N×N matrix indexed
// [row-1][col-1], with 1 for open and 0 for closed.
// Complexity: O(N²).
func (g *Grid) Snapshot() [][]int {
	out := make([][]int, g.n)
	for r := 0; r < g.n; r++ {
		out[r] = make([]int, g.n)
		for c := 0; c < g.n; c++ {
			if g.open.Test(uint(g.index(r, c))) {
				out[r][c] = 1
			}
		}
	}

	return out
}

// index maps 0-based (r,c) to its row-major site id.
func (g *Grid) index(r, c int) int {
	return r*g.n + c
}

// virtual is the id of the virtual end in both structures.
func (g *Grid) virtual() int {
	return g.n * g.n
}

func (g *Grid) inBounds(r, c int) bool {
	return r >= 0 && r < g.n && c >= 0 && c < g.n
}

func (g *Grid) validate(row, col int) error {
	if row < 1 || row > g.n {
		return fmt.Errorf("%w: row %d not in [1,%d]", ErrIndexOutOfRange, row, g.n)
	}
	if col < 1 || col > g.n {
		return fmt.Errorf("%w: column %d not in [1,%d]", ErrIndexOutOfRange, col, g.n)
	}

	return nil
}
