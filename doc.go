// Package gridpath computes shortest paths across a 2D grid whose obstacles
// can be toggled at runtime, re-running the search after every change.
//
// 🚀 What is gridpath?
//
//	A small, pure-Go toolkit with a clear split between model, algorithm
//	and presentation:
//		• gridgraph: coordinates, the cell arena, 8-way adjacency,
//		  obstacle toggles, targets, open regions and minimal breaches
//		• astar: A* search with a Euclidean heuristic and lazy decrease-key
//		• viewer: a tcell front-end that draws the grid and edits it
//		• cmd/gridpath: the terminal program
//
// ✨ Design
//
//   - Cells live in a flat arena; neighbors and predecessors are indices.
//   - Every search starts from a clean slate: stale state never leaks.
//   - “No path” is a normal result, not an error.
//   - Single-threaded: a Grid has no locks, callers serialize access.
//
// Quick ASCII example (S start, G goal, # obstacle, * path):
//
//	S * . .
//	# # * .
//	. . . G
//
//	go run github.com/katalvlaran/gridpath/cmd/gridpath
package gridpath
