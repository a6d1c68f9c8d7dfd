// Package units holds the physical and pixel-space value types shared by the
// maze topology, the viewport transforms and the renderer.
package units

import "math"

// Coordinate is a point in physical space, measured in meters.
type Coordinate struct {
	X, Y float64
}

// Sub returns the vector from o to c.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y}
}

// Add returns c translated by o.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

// Angle is a heading in radians, counter-clockwise from the positive x axis (east).
type Angle float64

// Degrees builds an Angle from degrees.
func Degrees(d float64) Angle {
	return Angle(d * math.Pi / 180.0)
}

// Radians returns the raw radian value.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 180.0 / math.Pi
}

// RadiansZeroTo2Pi returns the angle normalized into [0, 2π).
func (a Angle) RadiansZeroTo2Pi() float64 {
	r := math.Mod(float64(a), 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r
}

// Pose is the placement of the agent: where it is and which way it faces.
type Pose struct {
	Position Coordinate
	Heading  Angle
}

// Size is a physical extent in meters.
type Size struct {
	Width, Height float64
}

// PixelPoint is a position in pixel space. The origin is the bottom-left
// corner of the window.
type PixelPoint struct {
	X, Y int
}

// PixelSize is a width/height pair in pixels.
type PixelSize struct {
	Width, Height int
}

// Positive reports whether both dimensions are strictly positive.
func (s PixelSize) Positive() bool {
	return s.Width > 0 && s.Height > 0
}

// Viewport is a rectangle in pixel space.
type Viewport struct {
	Position PixelPoint
	Size     PixelSize
}
