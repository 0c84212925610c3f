package gridgraph

import (
	"container/list"
)

// ExpandIsland finds a minimum-conversion path of closed cells that connects
// any cell of component srcComp to any cell of component dstComp, as indexed
// by ConnectedComponents(). Each closed cell on the path costs 1.
// Returns the path of cell indices (row-major), including the start and end
// open cells, and the total conversion cost.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dst := make(map[int]struct{}, len(comps[dstComp]))
	for _, i := range comps[dstComp] {
		dst[i] = struct{}{}
	}
	isTarget := func(i int) bool {
		_, ok := dst[i]
		return ok
	}

	return gg.cheapestPath(comps[srcComp], isTarget)
}

// OpenGap finds the fewest closed cells that must be opened for the grid to
// percolate, together with one such top-to-bottom path (row-major indices).
// A cost of 0 means the grid already percolates.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) OpenGap() (path []int, cost int, err error) {
	top := make([]int, gg.Width)
	for x := range top {
		top[x] = gg.index(x, 0)
	}
	bottom := gg.Height - 1
	isTarget := func(i int) bool {
		_, y := gg.Coordinate(i)
		return y == bottom
	}

	return gg.cheapestPath(top, isTarget)
}

// cheapestPath is a multi-source 0-1 BFS: stepping onto an open cell costs 0,
// onto a closed cell costs 1. Sources pay for themselves if closed. It stops
// at the first target popped, which is optimal for 0-1 BFS.
func (gg *GridGraph) cheapestPath(sources []int, isTarget func(int) bool) ([]int, int, error) {
	n := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// Deque: cost-0 moves at the front, cost-1 moves at the back.
	dq := list.New()
	for _, s := range sources {
		sx, sy := gg.Coordinate(s)
		dist[s] = gg.stepCost(sx, sy)
	}
	for _, s := range sources {
		if dist[s] == 0 {
			dq.PushFront(s)
		} else {
			dq.PushBack(s)
		}
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if isTarget(u) {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := gg.stepCost(vx, vy)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	var path []int
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}

func (gg *GridGraph) stepCost(x, y int) int {
	if gg.IsOpen(x, y) {
		return 0
	}

	return 1
}
