package viewer

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Viewer renders one grid and applies user edits to it.
// It is not safe for concurrent use; Run drives it from a single goroutine.
type Viewer struct {
	screen tcell.Screen
	grid   *gridgraph.Grid
	logger *log.Logger

	cursor gridgraph.Coordinate

	// last search outcome
	result  astar.Result
	err     error
	regions int
	breach  int // obstacles to clear when no path exists, -1 otherwise

	// mouse painting
	painting  bool
	paintTo   bool
	lastPaint gridgraph.Coordinate
}

// New creates a viewer for g on screen. A nil logger discards output.
func New(screen tcell.Screen, g *gridgraph.Grid, logger *log.Logger) *Viewer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Viewer{
		screen: screen,
		grid:   g,
		logger: logger,
		breach: -1,
	}
}

// Refresh re-runs the search, recomputes the status figures and redraws.
// The search error, if any, is returned and also shown in the status line.
func (v *Viewer) Refresh() error {
	v.result, v.err = astar.FindPath(v.grid)
	v.regions = len(v.grid.ConnectedRegions())
	v.breach = -1

	switch {
	case v.err != nil:
		v.logger.Printf("search: %v", v.err)
	case v.result.Found:
		v.logger.Printf("path found: %d cells, cost %.3f, expanded %d",
			len(v.result.Path), v.result.Cost, v.result.Expanded)
	default:
		start, _ := v.grid.Start()
		goal, _ := v.grid.Goal()
		if _, n, err := v.grid.MinimalBreach(start, goal); err == nil {
			v.breach = n
		}
		v.logger.Printf("no path: expanded %d, %d obstacles to clear", v.result.Expanded, v.breach)
	}
	v.Draw()

	return v.err
}

// Draw paints the grid and the status line, then shows the screen.
func (v *Viewer) Draw() {
	v.screen.Clear()
	for y := 0; y < v.grid.Height; y++ {
		for x := 0; x < v.grid.Width; x++ {
			c := gridgraph.Coordinate{X: x, Y: y}
			st, r := v.cellStyle(c)
			if c == v.cursor {
				st = st.Reverse(true)
			}
			for i := 0; i < cellWidth; i++ {
				v.screen.SetContent(x*cellWidth+i, y, r, nil, st)
			}
		}
	}

	text, st := v.statusText()
	v.drawText(0, v.grid.Height+1, text, st)
	v.screen.Show()
}

// cellStyle returns the style and fill rune for the cell at c. Precedence:
// start, goal, path, blocked, visited, open.
func (v *Viewer) cellStyle(c gridgraph.Coordinate) (tcell.Style, rune) {
	if s, ok := v.grid.Start(); ok && s == c {
		return styleStart, ' '
	}
	if g, ok := v.grid.Goal(); ok && g == c {
		return styleGoal, ' '
	}
	cell, err := v.grid.CellAt(c)
	switch {
	case err != nil:
		return tcell.StyleDefault, ' '
	case cell.OnPath:
		return stylePath, ' '
	case cell.Blocked:
		return styleBlocked, blockedRune
	case cell.Visited:
		return styleVisited, ' '
	default:
		return styleOpen, ' '
	}
}

// statusText summarises the last search.
func (v *Viewer) statusText() (string, tcell.Style) {
	switch {
	case errors.Is(v.err, astar.ErrNoTargets):
		return "set start (s) and goal (g)", styleWarn
	case v.err != nil:
		return v.err.Error(), styleWarn
	case v.result.Found:
		return fmt.Sprintf("cost %.2f  steps %d  expanded %d  regions %d",
			v.result.Cost, len(v.result.Path)-1, v.result.Expanded, v.regions), styleStatus
	case v.breach >= 0:
		return fmt.Sprintf("no path  expanded %d  regions %d  clear %d obstacle(s) to connect",
			v.result.Expanded, v.regions, v.breach), styleWarn
	default:
		return "no path", styleWarn
	}
}

func (v *Viewer) drawText(x, y int, text string, st tcell.Style) {
	for _, r := range text {
		v.screen.SetContent(x, y, r, nil, st)
		x++
	}
}
