package transform

import (
	"errors"
	"fmt"
	"math"

	"chosenoffset.com/mazesim/internal/core/units"
)

// ErrDegenerateGeometry is returned when a size or density that the
// transforms divide by is not strictly positive.
var ErrDegenerateGeometry = errors.New("degenerate viewport geometry")

// NDC is a point in normalized device coordinates.
type NDC struct {
	X, Y float64
}

// PixelToNDC maps a pixel-space point to normalized device coordinates.
// Pixel (0, 0) is the bottom-left corner of the window and maps to (-1, -1);
// (W, H) maps to (1, 1). Every other conversion in this package goes through
// this function.
func PixelToNDC(x, y float64, window units.PixelSize) NDC {
	return NDC{
		X: 2*x/float64(window.Width) - 1,
		Y: 2*y/float64(window.Height) - 1,
	}
}

// ndcScaling returns the NDC units per meter on each axis for a given pixel
// density.
func ndcScaling(pixelsPerMeter float64, maze units.Size, window units.PixelSize) (float64, float64) {
	pixelWidth := pixelsPerMeter * maze.Width
	pixelHeight := pixelsPerMeter * maze.Height

	origin := PixelToNDC(0, 0, window)
	extent := PixelToNDC(pixelWidth, pixelHeight, window)

	return (extent.X - origin.X) / maze.Width, (extent.Y - origin.Y) / maze.Height
}

// FullMapParams describes one frame of the full map.
type FullMapParams struct {
	WallWidth float64 // meters
	Maze      units.Size
	Viewport  units.Viewport
	Window    units.PixelSize
}

// FullMap returns the matrix that fits the whole maze, uniformly scaled and
// centred, inside the full map viewport.
func FullMap(p FullMapParams) (Matrix, error) {
	if err := checkGeometry(p.Maze, p.Viewport.Size, p.Window); err != nil {
		return Matrix{}, err
	}

	// Step 1: physical (0, 0) is the centre of the bottom-left corner post.
	// Shift by half a wall so that (0, 0) is the outer corner of that post,
	// which is where the visible maze starts.
	initialOffset := Translation(0.5*p.WallWidth, 0.5*p.WallWidth)

	// Step 2: a single pixels-per-meter value for both axes, picked so the
	// maze fits the viewport in both directions.
	pixelsPerMeter := math.Min(
		float64(p.Viewport.Size.Width)/p.Maze.Width,
		float64(p.Viewport.Size.Height)/p.Maze.Height,
	)
	horizontalScaling, verticalScaling := ndcScaling(pixelsPerMeter, p.Maze, p.Window)
	scaling := Scaling(horizontalScaling, verticalScaling)

	// Step 3: centre the maze footprint within the viewport.
	pixelWidth := pixelsPerMeter * p.Maze.Width
	pixelHeight := pixelsPerMeter * p.Maze.Height
	lowerLeftX := float64(p.Viewport.Position.X) + 0.5*(float64(p.Viewport.Size.Width)-pixelWidth)
	lowerLeftY := float64(p.Viewport.Position.Y) + 0.5*(float64(p.Viewport.Size.Height)-pixelHeight)
	lowerLeft := PixelToNDC(lowerLeftX, lowerLeftY, p.Window)
	translation := Translation(lowerLeft.X, lowerLeft.Y)

	return Multiply(translation, Multiply(scaling, initialOffset)), nil
}

// ZoomedMapParams describes one frame of the zoomed map.
type ZoomedMapParams struct {
	Maze                 units.Size
	Viewport             units.Viewport
	Window               units.PixelSize
	ScreenPixelsPerMeter float64
	ZoomScale            float64
	RotateWithAgent      bool
	InitialPosition      units.Coordinate
	Current              units.Pose
}

// headingOffset turns the agent's heading into a screen rotation so that
// its forward direction points up.
var headingOffset = units.Degrees(90)

// ZoomedMap returns the matrix for the viewport that follows the agent. The
// agent's current position always lands on the viewport centre; when
// RotateWithAgent is set the maze also turns so the agent faces up.
func ZoomedMap(p ZoomedMapParams) (Matrix, error) {
	if err := checkGeometry(p.Maze, p.Viewport.Size, p.Window); err != nil {
		return Matrix{}, err
	}
	pixelsPerMeter := p.ScreenPixelsPerMeter * p.ZoomScale
	if !(pixelsPerMeter > 0) {
		return Matrix{}, fmt.Errorf("pixel density %g (%g px/m at zoom %g): %w",
			pixelsPerMeter, p.ScreenPixelsPerMeter, p.ZoomScale, ErrDegenerateGeometry)
	}

	// Step 1: scaling. No auto-fit here, the zoomed map may show only part
	// of the maze.
	horizontalScaling, verticalScaling := ndcScaling(pixelsPerMeter, p.Maze, p.Window)
	scaling := Scaling(horizontalScaling, verticalScaling)

	// Step 2: translation. The static part puts the initial agent position
	// in the viewport centre; the dynamic part moves the maze opposite to
	// the agent's displacement since then.
	centerX := float64(p.Viewport.Position.X) + 0.5*float64(p.Viewport.Size.Width)
	centerY := float64(p.Viewport.Position.Y) + 0.5*float64(p.Viewport.Size.Height)
	staticTranslation := PixelToNDC(
		centerX-p.InitialPosition.X*pixelsPerMeter,
		centerY-p.InitialPosition.Y*pixelsPerMeter,
		p.Window,
	)

	delta := p.Current.Position.Sub(p.InitialPosition)
	dynamicTranslation := PixelToNDC(delta.X*pixelsPerMeter, delta.Y*pixelsPerMeter, p.Window)

	origin := PixelToNDC(0, 0, p.Window)
	translation := Translation(
		staticTranslation.X-dynamicTranslation.X+origin.X,
		staticTranslation.Y-dynamicTranslation.Y+origin.Y,
	)

	camera := Multiply(translation, scaling)
	if !p.RotateWithAgent {
		return camera, nil
	}

	// Step 3: rotation about the viewport centre. NDC scaling differs per
	// axis, so the rotation is done in unscaled space:
	// move centre to origin, unscale, rotate, rescale, move back.
	theta := (p.Current.Heading - headingOffset).RadiansZeroTo2Pi()
	cos, sin := math.Cos(theta), math.Sin(theta)
	rotation := Matrix{
		float32(cos), float32(sin), 0, 0,
		float32(-sin), float32(cos), 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	inverseScaling := Scaling(1/horizontalScaling, 1/verticalScaling)

	center := PixelToNDC(centerX, centerY, p.Window)
	fromOrigin := Translation(center.X, center.Y)
	toOrigin := Translation(-center.X, -center.Y)

	return Compose(fromOrigin, scaling, rotation, inverseScaling, toOrigin, camera), nil
}

func checkGeometry(maze units.Size, viewport, window units.PixelSize) error {
	if !window.Positive() {
		return fmt.Errorf("window size %dx%d: %w", window.Width, window.Height, ErrDegenerateGeometry)
	}
	if !viewport.Positive() {
		return fmt.Errorf("viewport size %dx%d: %w", viewport.Width, viewport.Height, ErrDegenerateGeometry)
	}
	if !(maze.Width > 0 && maze.Height > 0) {
		return fmt.Errorf("maze size %gx%g m: %w", maze.Width, maze.Height, ErrDegenerateGeometry)
	}
	return nil
}
