// Package gridgraph builds the cell arena and exposes lookup, obstacle
// toggling and target management on it.
//
// Cells are stored row-major: the cell at (x,y) lives at index y*Width + x.
package gridgraph

import (
	"fmt"
	"iter"
)

// New allocates a width×height grid, links every cell to its in-bounds
// 8-directional neighbors and resolves start and goal to owned cells.
// Returns ErrInvalidDimensions if width or height ≤ 0,
// ErrOutOfBounds if start or goal lies outside the grid.
// Complexity: O(W×H) time and memory.
func New(width, height int, start, goal Coordinate) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
		start:  NoCell,
		goal:   NoCell,
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := &g.cells[g.index(x, y)]
			c.Coord = Coordinate{X: x, Y: y}
			c.reset()
		}
	}
	// Second pass: neighbor indices, skipping out-of-bounds directions
	for i := range g.cells {
		c := &g.cells[i]
		c.neighbors = make([]int, 0, len(neighborOffsets))
		for _, d := range neighborOffsets {
			nx, ny := c.Coord.X+d[0], c.Coord.Y+d[1]
			if !g.inBounds(nx, ny) {
				continue
			}
			c.neighbors = append(c.neighbors, g.index(nx, ny))
		}
	}
	if err := g.SetStart(start); err != nil {
		return nil, err
	}
	if err := g.SetGoal(goal); err != nil {
		return nil, err
	}

	return g, nil
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return g.inBounds(c.X, c.Y)
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Index returns the arena index of c, or ErrOutOfBounds.
func (g *Grid) Index(c Coordinate) (int, error) {
	if !g.InBounds(c) {
		return NoCell, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.Width, g.Height)
	}

	return g.index(c.X, c.Y), nil
}

// Coordinate converts a row-major index back to its Coordinate.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{X: idx % g.Width, Y: idx / g.Width}
}

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int { return len(g.cells) }

// Cell returns the cell at arena index idx for in-place search updates.
// It panics if idx is out of range, like a slice access.
func (g *Grid) Cell(idx int) *Cell { return &g.cells[idx] }

// Neighbors returns the arena indices adjacent to idx. The slice is shared
// and must not be modified.
func (g *Grid) Neighbors(idx int) []int { return g.cells[idx].neighbors }

// ToggleBlocked flips the blocked flag of the cell at c. It does not start
// a search; callers re-run their pathfinder afterwards.
// Returns ErrOutOfBounds if c is invalid, leaving the grid unchanged.
func (g *Grid) ToggleBlocked(c Coordinate) error {
	i, err := g.Index(c)
	if err != nil {
		return err
	}
	g.cells[i].blocked = !g.cells[i].blocked

	return nil
}

// SetBlocked sets the blocked flag of the cell at c to blocked.
func (g *Grid) SetBlocked(c Coordinate, blocked bool) error {
	i, err := g.Index(c)
	if err != nil {
		return err
	}
	g.cells[i].blocked = blocked

	return nil
}

// ClearBlocked unblocks every cell.
func (g *Grid) ClearBlocked() {
	for i := range g.cells {
		g.cells[i].blocked = false
	}
}

// CellAt returns a read-only snapshot of the cell at c.
func (g *Grid) CellAt(c Coordinate) (CellView, error) {
	i, err := g.Index(c)
	if err != nil {
		return CellView{}, err
	}
	cell := &g.cells[i]

	return CellView{
		Coord:   cell.Coord,
		Blocked: cell.blocked,
		Visited: cell.Visited,
		OnPath:  cell.OnPath,
	}, nil
}

// SetStart designates the cell at c as the search start.
func (g *Grid) SetStart(c Coordinate) error {
	i, err := g.Index(c)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	g.start = i

	return nil
}

// SetGoal designates the cell at c as the search goal.
func (g *Grid) SetGoal(c Coordinate) error {
	i, err := g.Index(c)
	if err != nil {
		return fmt.Errorf("goal: %w", err)
	}
	g.goal = i

	return nil
}

// ClearTargets unsets both start and goal.
func (g *Grid) ClearTargets() {
	g.start, g.goal = NoCell, NoCell
}

// Start returns the start coordinate and whether one is set.
func (g *Grid) Start() (Coordinate, bool) {
	if g.start == NoCell {
		return Coordinate{}, false
	}

	return g.Coordinate(g.start), true
}

// Goal returns the goal coordinate and whether one is set.
func (g *Grid) Goal() (Coordinate, bool) {
	if g.goal == NoCell {
		return Coordinate{}, false
	}

	return g.Coordinate(g.goal), true
}

// StartIndex returns the arena index of start, or NoCell.
func (g *Grid) StartIndex() int { return g.start }

// GoalIndex returns the arena index of goal, or NoCell.
func (g *Grid) GoalIndex() int { return g.goal }

// ResetSearch returns every cell to the initial search state:
// Visited=false, G=F=+Inf, Predecessor=NoCell, OnPath=false.
// Complexity: O(W×H).
func (g *Grid) ResetSearch() {
	for i := range g.cells {
		g.cells[i].reset()
	}
}

// PathFromGoal lazily walks predecessors from goal back to start.
//
//   - goal == start: yields goal alone.
//   - goal has no predecessor otherwise: yields nothing (no path).
//   - no goal set: yields nothing.
//
// Each call returns a fresh iterator over the current search state.
func (g *Grid) PathFromGoal() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		if g.goal == NoCell {
			return
		}
		if g.cells[g.goal].Predecessor == NoCell && g.goal != g.start {
			return
		}
		for at := g.goal; at != NoCell; at = g.cells[at].Predecessor {
			if !yield(g.cells[at].Coord) {
				return
			}
		}
	}
}
