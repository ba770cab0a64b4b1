// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// fromMask builds a grid whose cells marked '#' are blocked.
// Start and goal are placed at the top-left and bottom-right corners.
func fromMask(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := New(len(rows[0]), len(rows), Coordinate{}, Coordinate{X: len(rows[0]) - 1, Y: len(rows) - 1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				g.cells[g.index(x, y)].blocked = true
			}
		}
	}

	return g
}

// TestConnectedRegions_Wall splits a 5×3 grid with a full-height wall.
//
//	. . # . .
//	. . # . .
//	. . # . .
//
// Expected: 2 regions of size 6 each.
func TestConnectedRegions_Wall(t *testing.T) {
	g := fromMask(t,
		"..#..",
		"..#..",
		"..#..",
	)
	regions := g.ConnectedRegions()
	if len(regions) != 2 {
		t.Fatalf("got %d regions; want 2", len(regions))
	}
	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	if want := []int{6, 6}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("region sizes = %v; want %v", sizes, want)
	}
	if regions[0][0] != 0 {
		t.Errorf("first region starts at %d; want 0", regions[0][0])
	}
}

// TestConnectedRegions_DiagonalGap shows that 8-connectivity slips through
// a diagonal gap between two blocked cells.
//
//	. #
//	# .
func TestConnectedRegions_DiagonalGap(t *testing.T) {
	g := fromMask(t,
		".#",
		"#.",
	)
	regions := g.ConnectedRegions()
	if len(regions) != 1 || len(regions[0]) != 2 {
		t.Fatalf("regions = %v; want one region of 2 cells", regions)
	}
}

// TestConnectedRegions_AllBlocked yields no regions.
func TestConnectedRegions_AllBlocked(t *testing.T) {
	g := fromMask(t, "##", "##")
	if regions := g.ConnectedRegions(); len(regions) != 0 {
		t.Errorf("got %d regions; want 0", len(regions))
	}
}

// TestReachable covers same-region, split and blocked endpoints.
func TestReachable(t *testing.T) {
	g := fromMask(t,
		"..#..",
		"..#..",
		"..#..",
	)
	cases := []struct {
		name string
		a, b Coordinate
		want bool
	}{
		{"SameSide", Coordinate{0, 0}, Coordinate{1, 2}, true},
		{"AcrossWall", Coordinate{0, 0}, Coordinate{4, 2}, false},
		{"BlockedEndpoint", Coordinate{2, 1}, Coordinate{2, 1}, false},
		{"Self", Coordinate{3, 1}, Coordinate{3, 1}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := g.Reachable(tc.a, tc.b)
			if err != nil {
				t.Fatalf("Reachable error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Reachable(%v,%v) = %v; want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
	if _, err := g.Reachable(Coordinate{5, 0}, Coordinate{0, 0}); err == nil {
		t.Error("expected out-of-bounds error")
	}
}
