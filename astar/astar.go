// Package astar implements A* search over a gridgraph.Grid.
//
// Notes on implementation choices:
//
//   - Search state lives in the grid's cell arena, addressed by index, so
//     callers can inspect Visited/Predecessor/OnPath after the run.
//   - We use a “lazy” decrease-key strategy: an improved cell is pushed again
//     and any older, worse entry is skipped when popped because its cell is
//     already visited.
//   - Heap entries carry an insertion sequence so equal f values pop in
//     insertion order, which keeps results deterministic.
package astar

import (
	"container/heap"
	"math"
	"slices"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// FindPath runs A* from the grid's start to its goal.
//
// Steps:
//  1. Apply options; ErrOptionViolation on invalid values.
//  2. g must be non-nil (ErrNilGrid).
//  3. Reset every cell's search state.
//  4. Start and goal must be set (ErrNoTargets).
//  5. Expand cells by ascending f until goal is popped or the open set
//     empties.
//
// A blocked start yields Found == false without expanding anything; a
// blocked goal is never entered and yields Found == false as well.
//
// On success every cell on the returned path has OnPath == true.
//
// Complexity:
//
//   - Time:  O(V log V), V = W×H
//   - Space: O(V)
func FindPath(g *gridgraph.Grid, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}

	// Stale state from a previous run must not leak into this one.
	g.ResetSearch()

	start, goal := g.StartIndex(), g.GoalIndex()
	if start == gridgraph.NoCell || goal == gridgraph.NoCell {
		return Result{}, ErrNoTargets
	}

	r := &runner{
		g:       g,
		options: cfg,
		start:   start,
		goal:    goal,
		goalAt:  g.Coordinate(goal),
		open:    make(openPQ, 0, 64),
	}

	return r.run(), nil
}

// runner holds the mutable state for a single FindPath execution.
type runner struct {
	g        *gridgraph.Grid
	options  Options
	start    int                  // arena index of start
	goal     int                  // arena index of goal
	goalAt   gridgraph.Coordinate // goal coordinate, heuristic target
	open     openPQ               // min-heap on (f, seq)
	seq      uint64               // next insertion sequence
	expanded int                  // cells marked visited
}

// run seeds the open set with start and drives the main loop.
func (r *runner) run() Result {
	notFound := Result{Cost: math.Inf(1)}

	s := r.g.Cell(r.start)
	if s.Blocked() {
		return notFound
	}
	s.G = 0
	s.F = r.options.Heuristic(s.Coord, r.goalAt)

	heap.Init(&r.open)
	r.push(r.start, s.F)

	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(*openItem)
		u := item.idx
		cu := r.g.Cell(u)

		// Skip stale duplicates of already-expanded cells.
		if cu.Visited {
			continue
		}
		if u == r.goal {
			return r.result()
		}

		cu.Visited = true
		r.expanded++
		r.options.OnExpand(cu.Coord)

		r.relax(u)
	}

	notFound.Expanded = r.expanded

	return notFound
}

// relax tries to improve every unvisited, unblocked neighbor of u.
// Assumes u has just been marked visited.
func (r *runner) relax(u int) {
	cu := r.g.Cell(u)
	for _, v := range r.g.Neighbors(u) {
		cv := r.g.Cell(v)
		if cv.Visited || cv.Blocked() {
			continue
		}

		tentative := cu.G + cu.Coord.Distance(cv.Coord)
		// Strictly better only; equal costs keep the first predecessor.
		if tentative >= cv.G {
			continue
		}

		cv.Predecessor = u
		cv.G = tentative
		cv.F = tentative + r.options.Heuristic(cv.Coord, r.goalAt)
		r.push(v, cv.F)
	}
}

// push inserts idx with priority f and the next insertion sequence.
func (r *runner) push(idx int, f float64) {
	heap.Push(&r.open, &openItem{idx: idx, f: f, seq: r.seq})
	r.seq++
}

// result collects the path from the predecessor chain, marks it OnPath and
// reports the goal's accumulated cost.
func (r *runner) result() Result {
	path := slices.Collect(r.g.PathFromGoal())
	slices.Reverse(path)
	for _, c := range path {
		idx, _ := r.g.Index(c)
		r.g.Cell(idx).OnPath = true
	}

	return Result{
		Found:    true,
		Path:     path,
		Cost:     r.g.Cell(r.goal).G,
		Expanded: r.expanded,
	}
}

// openItem is one entry of the open set.
type openItem struct {
	idx int     // arena index
	f   float64 // f at push time
	seq uint64  // insertion order, tie-breaker
}

// openPQ is a min-heap of *openItem ordered by f, then seq.
type openPQ []*openItem

// Len returns the number of items in the heap.
func (pq openPQ) Len() int { return len(pq) }

// Less orders by f ascending, breaking ties by insertion order.
func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *openPQ) Push(x any) { *pq = append(*pq, x.(*openItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *openPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
