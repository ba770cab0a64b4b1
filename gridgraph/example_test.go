// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ToggleBlocked and ConnectedRegions
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ConnectedRegions builds a 4×3 grid, raises a wall in column 1
// and counts the open regions before and after.
//
//	S # . .
//	. # . .
//	. # . G
func ExampleGrid_ConnectedRegions() {
	g, _ := gridgraph.New(4, 3, gridgraph.Coordinate{X: 0, Y: 0}, gridgraph.Coordinate{X: 3, Y: 2})
	fmt.Println("regions:", len(g.ConnectedRegions()))

	for y := 0; y < 3; y++ {
		_ = g.ToggleBlocked(gridgraph.Coordinate{X: 1, Y: y})
	}
	regions := g.ConnectedRegions()
	fmt.Println("regions:", len(regions))
	for i, r := range regions {
		fmt.Printf("region %d: %d cells\n", i, len(r))
	}

	// Output:
	// regions: 1
	// regions: 2
	// region 0: 3 cells
	// region 1: 6 cells
}

////////////////////////////////////////////////////////////////////////////////
// Example: MinimalBreach
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_MinimalBreach finds the fewest obstacles to clear between
// start and goal when the wall above fully separates them.
func ExampleGrid_MinimalBreach() {
	g, _ := gridgraph.New(4, 3, gridgraph.Coordinate{X: 0, Y: 0}, gridgraph.Coordinate{X: 3, Y: 2})
	for y := 0; y < 3; y++ {
		_ = g.ToggleBlocked(gridgraph.Coordinate{X: 1, Y: y})
	}
	start, _ := g.Start()
	goal, _ := g.Goal()

	_, cost, _ := g.MinimalBreach(start, goal)
	fmt.Println("obstacles to clear:", cost)

	// Output:
	// obstacles to clear: 1
}
