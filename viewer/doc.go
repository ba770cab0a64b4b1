// Package viewer is an interactive terminal front-end for a gridgraph.Grid.
//
// It draws the grid on a tcell.Screen, toggles obstacles on mouse clicks or
// keys, moves start and goal, and re-runs astar.FindPath after every change.
// The viewer only calls the core's public API; it never writes search state.
//
// Controls:
//
//	left click / drag   toggle or paint obstacles
//	arrows              move the cursor
//	space, enter        toggle the cell under the cursor
//	s, g                place start / goal at the cursor
//	x                   clear start and goal
//	c                   clear all obstacles
//	q, esc, ctrl-c      quit
package viewer
