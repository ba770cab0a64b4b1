package gridgraph

import (
	"container/list"
)

// MinimalBreach finds a path from `from` to `to` that crosses the fewest
// blocked cells, and returns it together with that count. A cost of 0 means
// the two cells are already connected.
//
// Behavior:
//  1. Validate both coordinates.
//  2. 0–1 BFS from `from` over 8-neighbors:
//     • Moving into an unblocked cell → cost 0
//     • Moving into a blocked cell    → cost 1
//     A blocked `from` counts as one crossing.
//  3. Stop when `to` is popped.
//  4. Reconstruct path via the prev slice.
//
// The grid is fully connected when obstacles are ignored, so a path always
// exists for valid coordinates.
//
// Complexity: O(W·H·8) time, O(W·H) memory.
func (g *Grid) MinimalBreach(from, to Coordinate) (path []Coordinate, cost int, err error) {
	src, err := g.Index(from)
	if err != nil {
		return nil, 0, err
	}
	dst, err := g.Index(to)
	if err != nil {
		return nil, 0, err
	}

	N := len(g.cells)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, N)
	prev := make([]int, N)
	done := make([]bool, N)
	for i := range dist {
		dist[i] = inf
		prev[i] = NoCell
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dist[src] = g.stepCost(src)
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			break
		}
		for _, v := range g.cells[u].neighbors {
			step := g.stepCost(v)
			nd := dist[u] + step
			if nd < dist[v] {
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

	for at := dst; at != NoCell; at = prev[at] {
		path = append(path, g.cells[at].Coord)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}

// stepCost is the price of entering cell i.
func (g *Grid) stepCost(i int) int {
	if g.cells[i].blocked {
		return 1
	}

	return 0
}
