package gridgraph

// ConnectedRegions finds all 8-connected regions of unblocked cells.
// Returns a slice of regions; each region is a slice of arena indices in
// BFS discovery order. Regions are ordered by their first cell in
// row-major order.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) ConnectedRegions() [][]int {
	seen := make([]bool, len(g.cells))
	var regions [][]int

	for i0 := range g.cells {
		if g.cells[i0].blocked || seen[i0] {
			continue
		}
		// BFS to collect region
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.cells[queue[qi]].neighbors {
				if g.cells[v].blocked || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// regionLabels assigns every unblocked cell its region number; blocked
// cells get NoCell.
func (g *Grid) regionLabels() []int {
	labels := make([]int, len(g.cells))
	for i := range labels {
		labels[i] = NoCell
	}
	for r, region := range g.ConnectedRegions() {
		for _, i := range region {
			labels[i] = r
		}
	}

	return labels
}

// Reachable reports whether a and b are unblocked and in the same region,
// i.e. whether any search between them can succeed.
func (g *Grid) Reachable(a, b Coordinate) (bool, error) {
	ia, err := g.Index(a)
	if err != nil {
		return false, err
	}
	ib, err := g.Index(b)
	if err != nil {
		return false, err
	}
	labels := g.regionLabels()

	return labels[ia] != NoCell && labels[ia] == labels[ib], nil
}
