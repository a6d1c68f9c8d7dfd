// Package mazegen carves mazes into a maze.Topology. It only touches the
// maze through the topology's checked setters and draws all randomness from
// Topology.Random, so a seeded source reproduces the same maze.
package mazegen

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/mazesim/internal/logger"
	"chosenoffset.com/mazesim/internal/world/maze"
)

// Options controls generation.
type Options struct {
	// Braiding: 0.0 (perfect maze, a tree) to 1.0 (no dead ends).
	// Each dead end is opened into a neighbour with this probability.
	Braiding float64 `mapstructure:"braiding" yaml:"braiding"`

	// OpenCenter clears the walls inside the central 2x2 goal area.
	OpenCenter bool `mapstructure:"open_center" yaml:"open_center"`

	// Start is the cell the backtracker starts from.
	StartX int `mapstructure:"start_x" yaml:"start_x"`
	StartY int `mapstructure:"start_y" yaml:"start_y"`
}

type point struct {
	x, y int
}

// Generate closes every wall of t and carves a maze with a randomized
// depth-first backtracker.
func Generate(t *maze.Topology, opts Options) error {
	width, height := t.Width(), t.Height()
	if width == 0 || height == 0 {
		return fmt.Errorf("cannot generate an empty %dx%d maze: %w", width, height, maze.ErrInvalidInput)
	}
	start := point{opts.StartX, opts.StartY}
	if start.x < 0 || start.x >= width || start.y < 0 || start.y >= height {
		return fmt.Errorf("start cell (%d, %d) is outside the %dx%d maze: %w",
			start.x, start.y, width, height, maze.ErrInvalidInput)
	}

	// Step 1: every wall up.
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			for _, d := range maze.Directions {
				t.SetWall(x, y, d.Code(), true)
			}
		}
	}

	// Step 2: carve a spanning tree.
	recursiveBacktracker(t, start)

	// Step 3: optional loops and goal area.
	removed := 0
	if opts.Braiding > 0 {
		removed = braid(t, opts.Braiding)
	}
	if opts.OpenCenter {
		openCenter(t)
	}

	logger.Log.WithFields(logrus.Fields{
		"width":       width,
		"height":      height,
		"dead_ends":   len(deadEnds(t)),
		"braided":     removed,
		"open_center": opts.OpenCenter,
	}).Debug("maze generated")
	return nil
}

func recursiveBacktracker(t *maze.Topology, start point) {
	visited := make([]bool, t.Width()*t.Height())
	visit := func(p point) { visited[p.y*t.Width()+p.x] = true }
	seen := func(p point) bool { return visited[p.y*t.Width()+p.x] }

	stack := []point{start}
	visit(start)

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var options []maze.Direction
		for _, d := range maze.Directions {
			next, ok := neighbour(t, current, d)
			if ok && !seen(next) {
				options = append(options, d)
			}
		}

		if len(options) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := options[pick(t, len(options))]
		next, _ := neighbour(t, current, d)
		openPassage(t, current, d)
		visit(next)
		stack = append(stack, next)
	}
}

// braid opens dead ends with the given probability and returns how many it opened.
func braid(t *maze.Topology, probability float64) int {
	opened := 0
	for _, p := range deadEnds(t) {
		// An earlier opening may already have fixed this one.
		if countWalls(t, p) != 3 {
			continue
		}
		if t.Random() >= probability {
			continue
		}

		// Prefer knocking through into another dead end.
		var candidates, deadEndNeighbours []maze.Direction
		for _, d := range maze.Directions {
			wall, _ := t.HasWall(p.x, p.y, d)
			next, ok := neighbour(t, p, d)
			if !wall || !ok {
				continue
			}
			candidates = append(candidates, d)
			if countWalls(t, next) == 3 {
				deadEndNeighbours = append(deadEndNeighbours, d)
			}
		}
		if len(deadEndNeighbours) > 0 {
			candidates = deadEndNeighbours
		}
		if len(candidates) == 0 {
			continue
		}

		openPassage(t, p, candidates[pick(t, len(candidates))])
		opened++
	}
	return opened
}

// openCenter removes the interior walls of the central 2x2 block. Mazes
// with an odd side use the block just south-west of the middle.
func openCenter(t *maze.Topology) {
	if t.Width() < 2 || t.Height() < 2 {
		return
	}
	x0 := (t.Width() - 1) / 2
	y0 := (t.Height() - 1) / 2

	openPassage(t, point{x0, y0}, maze.East)
	openPassage(t, point{x0, y0 + 1}, maze.East)
	openPassage(t, point{x0, y0}, maze.North)
	openPassage(t, point{x0 + 1, y0}, maze.North)
}

// openPassage removes the wall on side d of p and the matching wall of the
// neighbour, keeping the shared wall consistent.
func openPassage(t *maze.Topology, p point, d maze.Direction) {
	t.SetWall(p.x, p.y, d.Code(), false)
	if next, ok := neighbour(t, p, d); ok {
		t.SetWall(next.x, next.y, d.Opposite().Code(), false)
	}
}

func neighbour(t *maze.Topology, p point, d maze.Direction) (point, bool) {
	dx, dy := d.Offset()
	next := point{p.x + dx, p.y + dy}
	return next, next.x >= 0 && next.x < t.Width() && next.y >= 0 && next.y < t.Height()
}

func countWalls(t *maze.Topology, p point) int {
	n := 0
	for _, d := range maze.Directions {
		if wall, err := t.HasWall(p.x, p.y, d); err == nil && wall {
			n++
		}
	}
	return n
}

func deadEnds(t *maze.Topology) []point {
	var out []point
	for y := 0; y < t.Height(); y++ {
		for x := 0; x < t.Width(); x++ {
			if countWalls(t, point{x, y}) == 3 {
				out = append(out, point{x, y})
			}
		}
	}
	return out
}

// pick returns an index in [0, n).
func pick(t *maze.Topology, n int) int {
	i := int(t.Random() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
