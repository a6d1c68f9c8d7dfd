// Package mazeview turns a maze topology and an agent pose into triangles
// and draws them through the render interfaces, using the matrices from the
// transform package to go from meters to screen pixels.
package mazeview

import (
	"math"

	"chosenoffset.com/mazesim/internal/core/units"
	"chosenoffset.com/mazesim/internal/world/maze"
)

// Geometry is the physical construction of the maze.
type Geometry struct {
	WallLength float64 `mapstructure:"wall_length" yaml:"wall_length"` // meters between two posts
	WallWidth  float64 `mapstructure:"wall_width" yaml:"wall_width"`   // meters, also the post size
}

// Pitch is the distance between the centres of two neighbouring posts.
func (g Geometry) Pitch() float64 {
	return g.WallLength + g.WallWidth
}

// PhysicalSize is the outer extent of a maze of the given dimensions, from
// the outside edge of the bottom-left post to the outside edge of the
// top-right post.
func (g Geometry) PhysicalSize(width, height int) units.Size {
	return units.Size{
		Width:  float64(width)*g.Pitch() + g.WallWidth,
		Height: float64(height)*g.Pitch() + g.WallWidth,
	}
}

// CellCenter returns the physical centre of cell (x, y).
func (g Geometry) CellCenter(x, y int) units.Coordinate {
	return units.Coordinate{
		X: (float64(x) + 0.5) * g.Pitch(),
		Y: (float64(y) + 0.5) * g.Pitch(),
	}
}

// Quad is four corners in physical space, counter-clockwise.
type Quad [4]units.Coordinate

func rect(minX, minY, maxX, maxY float64) Quad {
	return Quad{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
}

// Posts returns one square per corner post. Physical (0, 0) is the centre
// of the bottom-left post.
func Posts(t *maze.Topology, g Geometry) []Quad {
	half := 0.5 * g.WallWidth
	quads := make([]Quad, 0, (t.Width()+1)*(t.Height()+1))
	for i := 0; i <= t.Width(); i++ {
		for j := 0; j <= t.Height(); j++ {
			cx, cy := float64(i)*g.Pitch(), float64(j)*g.Pitch()
			quads = append(quads, rect(cx-half, cy-half, cx+half, cy+half))
		}
	}
	return quads
}

// Walls returns one quad per wall segment between two posts. A segment is
// drawn when either of the cells sharing it has its flag set.
func Walls(t *maze.Topology, g Geometry) []Quad {
	var quads []Quad
	half := 0.5 * g.WallWidth
	pitch := g.Pitch()

	horizontal := func(x, y int) Quad {
		return rect(float64(x)*pitch+half, float64(y)*pitch-half, float64(x+1)*pitch-half, float64(y)*pitch+half)
	}
	vertical := func(x, y int) Quad {
		return rect(float64(x)*pitch-half, float64(y)*pitch+half, float64(x)*pitch+half, float64(y+1)*pitch-half)
	}
	has := func(x, y int, d maze.Direction) bool {
		w, err := t.HasWall(x, y, d)
		return err == nil && w
	}

	for x := 0; x < t.Width(); x++ {
		for y := 0; y < t.Height(); y++ {
			if has(x, y, maze.North) || has(x, y+1, maze.South) {
				quads = append(quads, horizontal(x, y+1))
			}
			if has(x, y, maze.East) || has(x+1, y, maze.West) {
				quads = append(quads, vertical(x+1, y))
			}
			if y == 0 && has(x, y, maze.South) {
				quads = append(quads, horizontal(x, 0))
			}
			if x == 0 && has(x, y, maze.West) {
				quads = append(quads, vertical(0, y))
			}
		}
	}
	return quads
}

// AgentTriangle returns a triangle of the given length centred on the pose
// and pointing along its heading.
func AgentTriangle(pose units.Pose, length float64) [3]units.Coordinate {
	cos, sin := math.Cos(pose.Heading.Radians()), math.Sin(pose.Heading.Radians())
	at := func(forward, left float64) units.Coordinate {
		return units.Coordinate{
			X: pose.Position.X + forward*cos - left*sin,
			Y: pose.Position.Y + forward*sin + left*cos,
		}
	}
	return [3]units.Coordinate{
		at(0.5*length, 0),
		at(-0.5*length, 0.35*length),
		at(-0.5*length, -0.35*length),
	}
}
