// Command gridpath is an interactive A* playground in the terminal.
//
// Usage:
//
//	gridpath [-width 32] [-height 32] [-start 0,0] [-goal 31,31] [-log file]
//
// Click cells to toggle obstacles; the shortest path is recomputed after
// every change. See package viewer for the key bindings.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/viewer"
)

// coordFlag parses "x,y" into a gridgraph.Coordinate.
type coordFlag struct {
	c gridgraph.Coordinate
}

func (f *coordFlag) String() string { return fmt.Sprintf("%d,%d", f.c.X, f.c.Y) }

func (f *coordFlag) Set(s string) error {
	c, err := parseCoordinate(s)
	if err != nil {
		return err
	}
	f.c = c

	return nil
}

// parseCoordinate accepts "x,y" with optional spaces.
func parseCoordinate(s string) (gridgraph.Coordinate, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Coordinate{}, fmt.Errorf("coordinate %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridgraph.Coordinate{}, fmt.Errorf("coordinate %q: x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridgraph.Coordinate{}, fmt.Errorf("coordinate %q: y: %w", s, err)
	}

	return gridgraph.Coordinate{X: x, Y: y}, nil
}

// config holds the parsed command line.
type config struct {
	width, height int
	start, goal   gridgraph.Coordinate
	logPath       string
}

// parseFlags reads args (without the program name) into a config.
func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	width := fs.Int("width", 32, "grid width in cells")
	height := fs.Int("height", 32, "grid height in cells")
	start := &coordFlag{}
	goal := &coordFlag{c: gridgraph.Coordinate{X: 31, Y: 31}}
	fs.Var(start, "start", "start cell as x,y")
	fs.Var(goal, "goal", "goal cell as x,y")
	logPath := fs.String("log", "", "write a debug log to this file")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	return config{
		width:   *width,
		height:  *height,
		start:   start.c,
		goal:    goal.c,
		logPath: *logPath,
	}, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	var out io.Writer = io.Discard
	if cfg.logPath != "" {
		f, err := os.OpenFile(cfg.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "gridpath: ", log.LstdFlags)

	g, err := gridgraph.New(cfg.width, cfg.height, cfg.start, cfg.goal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridpath: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "gridpath crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	logger.Printf("grid %dx%d start %v goal %v", cfg.width, cfg.height, cfg.start, cfg.goal)
	runErr := viewer.New(screen, g, logger).Run()
	screen.Fini()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "gridpath: %v\n", runErr)
		os.Exit(1)
	}
}
