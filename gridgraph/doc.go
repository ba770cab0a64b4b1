// Package gridgraph treats a fixed-size 2D grid of cells as an 8-connected
// graph that a pathfinder can search and a presentation layer can edit.
//
// What:
//
//   - Grid owns a flat arena of Cells indexed row-major by (x,y).
//   - Each Cell carries its Coordinate, a blocked flag and the per-run
//     search state (Visited, G, F, Predecessor, OnPath).
//   - Neighbors (N, NE, E, SE, S, SW, W, NW) are computed once at
//     construction and stored as arena indices, never as pointers.
//   - Start and goal are designated cells; either may be unset.
//
// Why:
//
//   - Interactive maps: toggle obstacles, re-run a search, redraw.
//   - Index-based adjacency avoids cyclic ownership between cells while
//     keeping O(1) lookup by coordinate.
//
// Complexity:
//
//   - New:               O(W×H), Memory: O(W×H).
//   - ToggleBlocked:     O(1).
//   - CellAt:            O(1).
//   - PathFromGoal:      O(path length), lazy.
//   - ConnectedRegions:  O(W×H×8), Memory: O(W×H).
//   - MinimalBreach:     O(W×H×8), Memory: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrOutOfBounds: a coordinate lies outside [0,W)×[0,H).
//
// Concurrency:
//
//	A Grid has no internal locking. ToggleBlocked, the target setters and
//	any search that writes cell state (astar.FindPath) must not run
//	concurrently on the same Grid; synchronize externally.
package gridgraph
