package gridgraph

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// OpenThreshold specifies the minimum cell value considered open.
	OpenThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// OpenThreshold=1 (values ≥1 are open), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		OpenThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the caller's
// input value, so y is the row and x the column.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	OpenThreshold   int
	neighborOffsets [][2]int
}
