package viewer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Run enables the mouse, performs the first search and processes events
// until the user quits or the screen is finalized.
func (v *Viewer) Run() error {
	v.screen.EnableMouse()
	_ = v.Refresh()

	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if v.HandleEvent(ev) {
			return nil
		}
	}
}

// HandleEvent applies one terminal event and reports whether to quit.
func (v *Viewer) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		v.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		v.screen.Sync()
		v.Draw()
	}

	return false
}

// handleKey maps keys to cursor moves and grid edits.
func (v *Viewer) handleKey(key tcell.Key, r rune) (quit bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.moveCursor(0, -1)
	case tcell.KeyDown:
		v.moveCursor(0, 1)
	case tcell.KeyLeft:
		v.moveCursor(-1, 0)
	case tcell.KeyRight:
		v.moveCursor(1, 0)
	case tcell.KeyEnter:
		v.edit("toggle", func() error { return v.grid.ToggleBlocked(v.cursor) })
	case tcell.KeyRune:
		switch r {
		case 'q':
			return true
		case ' ':
			v.edit("toggle", func() error { return v.grid.ToggleBlocked(v.cursor) })
		case 's':
			v.edit("start", func() error { return v.grid.SetStart(v.cursor) })
		case 'g':
			v.edit("goal", func() error { return v.grid.SetGoal(v.cursor) })
		case 'x':
			v.edit("clear targets", func() error { v.grid.ClearTargets(); return nil })
		case 'c':
			v.edit("clear obstacles", func() error { v.grid.ClearBlocked(); return nil })
		}
	}

	return false
}

// moveCursor shifts the cursor, clamped to the grid, and redraws.
func (v *Viewer) moveCursor(dx, dy int) {
	next := gridgraph.Coordinate{X: v.cursor.X + dx, Y: v.cursor.Y + dy}
	if !v.grid.InBounds(next) {
		return
	}
	v.cursor = next
	v.Draw()
}

// handleMouse toggles the cell under a fresh left press and paints the same
// value over cells dragged across while the button stays down.
func (v *Viewer) handleMouse(x, y int, buttons tcell.ButtonMask) {
	if buttons&tcell.Button1 == 0 {
		v.painting = false
		return
	}
	c := gridgraph.Coordinate{X: x / cellWidth, Y: y}
	if x < 0 || !v.grid.InBounds(c) {
		v.logger.Printf("click outside grid at %d,%d", x, y)
		return
	}
	v.cursor = c

	if !v.painting {
		view, _ := v.grid.CellAt(c)
		v.painting, v.paintTo, v.lastPaint = true, !view.Blocked, c
		v.edit("toggle", func() error { return v.grid.ToggleBlocked(c) })
		return
	}
	if c == v.lastPaint {
		return
	}
	v.lastPaint = c
	v.edit("paint", func() error { return v.grid.SetBlocked(c, v.paintTo) })
}

// edit applies a grid mutation, logs rejections, and re-runs the search.
// A rejected mutation leaves the grid unchanged and skips the search.
func (v *Viewer) edit(what string, apply func() error) {
	if err := apply(); err != nil {
		v.logger.Printf("%s at %v rejected: %v", what, v.cursor, err)
		return
	}
	_ = v.Refresh()
}
