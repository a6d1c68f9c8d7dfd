// Package maze provides validated access to the wall layout of a grid maze.
//
// The Topology type is the interface handed to maze generation and editing
// routines. Every mutation is bounds and direction checked; bad input is
// reported through a Reporter and otherwise ignored, so a generator probing
// the edges of the maze cannot take the session down.
package maze

import (
	"fmt"

	"chosenoffset.com/mazesim/internal/logger"
)

// RandomSource produces uniformly distributed values in [0, 1).
// *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Reporter receives human-readable diagnostics for rejected operations.
type Reporter interface {
	Report(err error)
}

// LogReporter sends diagnostics to the application logger.
type LogReporter struct{}

// Report logs err as a warning.
func (LogReporter) Report(err error) {
	logger.Log.WithError(err).Warn("maze operation rejected")
}

// Topology is a non-owning, bounds-checked view of a Grid.
type Topology struct {
	grid     *Grid
	random   RandomSource
	reporter Reporter
}

// NewTopology wraps grid. A nil reporter falls back to LogReporter.
func NewTopology(grid *Grid, random RandomSource, reporter Reporter) *Topology {
	if reporter == nil {
		reporter = LogReporter{}
	}
	return &Topology{
		grid:     grid,
		random:   random,
		reporter: reporter,
	}
}

// Width returns the number of columns of the underlying grid.
func (t *Topology) Width() int {
	return t.grid.Width()
}

// Height returns the number of rows of the underlying grid, 0 for an empty maze.
func (t *Topology) Height() int {
	return t.grid.Height()
}

// Random forwards to the injected random source.
func (t *Topology) Random() float64 {
	return t.random.Float64()
}

// SetWall sets a single wall flag. Invalid coordinates or direction codes are
// reported and leave the maze untouched.
func (t *Topology) SetWall(x, y int, code byte, exists bool) {
	if err := t.TrySetWall(x, y, code, exists); err != nil {
		t.reporter.Report(err)
	}
}

// TrySetWall is SetWall for callers that want the failure back instead of a report.
func (t *Topology) TrySetWall(x, y int, code byte, exists bool) error {
	cell, err := t.cell(x, y)
	if err != nil {
		return err
	}
	d, err := ParseDirection(code)
	if err != nil {
		return err
	}
	cell.Walls[d] = exists
	return nil
}

// HasWall reports whether the wall on side d of cell (x, y) is present.
func (t *Topology) HasWall(x, y int, d Direction) (bool, error) {
	if !d.Valid() {
		return false, fmt.Errorf("direction %d is not a valid direction: %w", int(d), ErrInvalidInput)
	}
	cell, err := t.cell(x, y)
	if err != nil {
		return false, err
	}
	return cell.Walls[d], nil
}

func (t *Topology) cell(x, y int) (*Cell, error) {
	cell, ok := t.grid.Cell(x, y)
	if !ok {
		return nil, fmt.Errorf("the maze width and height values are %d and %d, there is no cell at position (%d, %d): %w",
			t.Width(), t.Height(), x, y, ErrInvalidInput)
	}
	return cell, nil
}
