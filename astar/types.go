// Package astar defines result, heuristic and option types for FindPath.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNoTargets indicates that the grid has no start or no goal.
	ErrNoTargets = errors.New("astar: start or goal not set")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Heuristic estimates the remaining cost from one cell to another.
// It must never overestimate and must be consistent with the Euclidean
// step costs, or the returned path may not be optimal.
type Heuristic func(from, to gridgraph.Coordinate) float64

// Euclidean is the straight-line distance; the default heuristic.
func Euclidean(from, to gridgraph.Coordinate) float64 {
	return from.Distance(to)
}

// Zero always estimates 0, which reduces A* to Dijkstra's algorithm.
func Zero(_, _ gridgraph.Coordinate) float64 { return 0 }

// Result is the outcome of one FindPath run.
//   - Found: whether goal was reached.
//   - Path: coordinates from start to goal inclusive; nil if not found.
//   - Cost: sum of step costs along Path; +Inf if not found.
//   - Expanded: number of cells marked visited.
type Result struct {
	Found    bool
	Path     []gridgraph.Coordinate
	Cost     float64
	Expanded int
}

// Option configures FindPath via functional arguments.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// Heuristic estimates cost to goal. Default: Euclidean.
	Heuristic Heuristic

	// OnExpand is called each time a cell is marked visited.
	OnExpand func(c gridgraph.Coordinate)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the Euclidean heuristic and a no-op
// OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Heuristic: Euclidean,
		OnExpand:  func(gridgraph.Coordinate) {},
	}
}

// WithHeuristic replaces the Euclidean estimate. A nil heuristic is
// rejected with ErrOptionViolation when FindPath runs.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithOnExpand registers a callback run when a cell is expanded.
func WithOnExpand(fn func(c gridgraph.Coordinate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
