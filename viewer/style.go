package viewer

import (
	"github.com/gdamore/tcell/v2"
)

// cellWidth is the number of terminal columns used per grid cell, which
// keeps cells roughly square.
const cellWidth = 2

// Palette, one entry per cell kind.
var (
	styleOpen    = tcell.StyleDefault.Background(tcell.ColorGray)
	styleBlocked = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorDarkGray)
	styleVisited = tcell.StyleDefault.Background(tcell.ColorMediumTurquoise)
	stylePath    = tcell.StyleDefault.Background(tcell.ColorFuchsia)
	styleStart   = tcell.StyleDefault.Background(tcell.ColorGreen)
	styleGoal    = tcell.StyleDefault.Background(tcell.ColorRed)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleWarn    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// blockedRune fills obstacle cells so they stay visible on dark terminals.
const blockedRune = '▒'
