package gridgraph

// ConnectedComponents finds all open clusters according to gg.Conn.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS order, components ordered by their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsOpen(x, y) || seen[gg.index(x, y)] {
				continue
			}
			comps = append(comps, gg.flood([]int{gg.index(x, y)}, seen))
		}
	}

	return comps
}

// FullCells marks every open cell reachable from an open top-row cell
// (y == 0) through open cells. The result is indexed row-major.
//
// Time:   O(W·H·d).
// Memory: O(W·H).
func (gg *GridGraph) FullCells() []bool {
	seen := make([]bool, gg.Width*gg.Height)
	var sources []int
	for x := 0; x < gg.Width; x++ {
		if gg.IsOpen(x, 0) {
			sources = append(sources, gg.index(x, 0))
		}
	}
	gg.flood(sources, seen)

	return seen
}

// Percolates reports whether some full cell lies on the bottom row.
// Complexity: same as FullCells.
func (gg *GridGraph) Percolates() bool {
	full := gg.FullCells()
	for x := 0; x < gg.Width; x++ {
		if full[gg.index(x, gg.Height-1)] {
			return true
		}
	}

	return false
}

// flood runs a BFS over open cells from sources, marking seen and returning
// the visited cells in order. Sources already seen are skipped.
func (gg *GridGraph) flood(sources []int, seen []bool) []int {
	queue := make([]int, 0, len(sources))
	for _, s := range sources {
		if !seen[s] {
			seen[s] = true
			queue = append(queue, s)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) || !gg.IsOpen(vx, vy) {
				continue
			}
			vi := gg.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return queue
}
