// Package render defines the backend-neutral drawing, input and game loop
// interfaces used by the simulator. The ebiten subpackage implements them.
package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrQuit is returned from Game.Update to stop the loop cleanly.
var ErrQuit = errors.New("quit requested")

// Renderer creates images and draws text. It abstracts the underlying
// graphics engine so the maze views never import it directly.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color)
	MeasureText(text string) (width, height int)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Sub-image extraction. Drawing into a sub-image is clipped to r but uses
	// the coordinates of the parent image.
	SubImage(r image.Rectangle) Image

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// Drawing operations
	DrawTriangles(vertices []Vertex, indices []uint16, img Image, opts *DrawTrianglesOptions)

	// Resource management
	Dispose()
}

// DrawTrianglesOptions contains options for drawing triangles.
type DrawTrianglesOptions struct {
	AntiAlias bool
}

// Vertex represents a vertex for triangle rendering. Dst coordinates are
// screen pixels with the origin at the top-left corner.
type Vertex struct {
	DstX   float32
	DstY   float32
	SrcX   float32
	SrcY   float32
	ColorR float32
	ColorG float32
	ColorB float32
	ColorA float32
}

// InputManager handles input from the user.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the simulator controls
const (
	KeyW Key = iota // Drive forward
	KeyA            // Turn left
	KeyS            // Drive backward
	KeyD            // Turn right
	KeyR            // Toggle zoomed map rotation
	KeyUp           // Zoom in
	KeyDown         // Zoom out
	KeySpace        // Reset agent
	KeyEscape
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the simulation. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the engine that manages the game loop and window.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame runs the loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
