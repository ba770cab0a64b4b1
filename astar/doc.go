// Package astar finds shortest paths between the start and goal cells of a
// gridgraph.Grid using A* search with a Euclidean heuristic.
//
// Overview:
//
//   - FindPath resets the grid's search state, then expands cells in order of
//     f = g + h, where g is the accumulated Euclidean step cost from start and
//     h is the straight-line distance to goal.
//   - Orthogonal steps cost 1 and diagonal steps √2. The Euclidean heuristic
//     is admissible and consistent for these costs, so the returned path is
//     optimal.
//   - The search leaves every cell annotated: Visited for expanded cells,
//     Predecessor for the best known arrival, OnPath for the final route.
//     Presentation code reads this through Grid.CellAt.
//
// When to use:
//
//   - Interactive grids where obstacles change between runs. Each call is a
//     full re-search from scratch; nothing is carried across runs.
//
// Key features:
//
//   - Functional options: WithHeuristic swaps the estimate (Zero turns the
//     search into Dijkstra), WithOnExpand observes each expanded cell.
//   - Deterministic: equal f values are expanded in insertion order.
//   - “No path” is a normal Result with Found == false, never an error.
//
// Performance and complexity:
//
//   - Time:  O(V log V) with V = W×H; each cell has at most 8 neighbors, so
//     E ≤ 8V.
//   - Each cell is expanded at most once (Visited guard).
//   - Each improvement pushes one heap entry (lazy decrease-key).
//   - Space: O(V) heap entries in the worst case; cell state lives in the grid.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:         FindPath was given a nil grid.
//   - ErrNoTargets:       start or goal is unset on the grid.
//   - ErrOptionViolation: an option was given an invalid value.
//
// Thread safety:
//
//   - FindPath writes cell state on the grid without locking. Do not run it
//     concurrently with another FindPath, ToggleBlocked or target change on
//     the same grid.
package astar
