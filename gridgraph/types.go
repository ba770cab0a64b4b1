// Package gridgraph defines the coordinate, cell and grid types
// shared by the grid and by search algorithms running over it.
package gridgraph

import (
	"fmt"
	"math"
)

// NoCell marks an absent cell index (unset target, no predecessor).
const NoCell = -1

// Coordinate addresses one grid position. It is a comparable value type
// and the sole identity key of a cell.
type Coordinate struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Distance returns the Euclidean distance between c and o.
// Orthogonal neighbors are 1 apart, diagonal neighbors √2.
func (c Coordinate) Distance(o Coordinate) float64 {
	return math.Hypot(float64(c.X-o.X), float64(c.Y-o.Y))
}

// neighborOffsets lists the eight directions in clockwise order from north.
var neighborOffsets = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Cell is one grid position. Coord and the neighbor set are fixed at
// construction; blocked changes only through Grid methods.
//
// The exported fields are search state. They are meaningful only for the
// lifetime of one search run and are cleared by Grid.ResetSearch.
type Cell struct {
	Coord Coordinate

	Visited     bool    // expanded by the current run
	G           float64 // cost from start along the best known path
	F           float64 // G + heuristic estimate to goal
	Predecessor int     // arena index of the previous cell, or NoCell
	OnPath      bool    // part of the final start→goal path

	blocked   bool
	neighbors []int
}

// Blocked reports whether the cell is impassable.
func (c *Cell) Blocked() bool { return c.blocked }

// reset restores the initial search state.
func (c *Cell) reset() {
	c.Visited = false
	c.G = math.Inf(1)
	c.F = math.Inf(1)
	c.Predecessor = NoCell
	c.OnPath = false
}

// CellView is a read-only snapshot of a cell for presentation code.
type CellView struct {
	Coord   Coordinate
	Blocked bool
	Visited bool
	OnPath  bool
}

// Grid is a dense Width×Height arena of cells plus the designated start
// and goal. Cells are never added or removed after New.
type Grid struct {
	Width, Height int

	cells []Cell
	start int
	goal  int
}
