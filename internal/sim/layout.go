package sim

import "chosenoffset.com/mazesim/internal/core/units"

// Layout is the placement of both maps for one frame, in bottom-left origin
// pixel space.
type Layout struct {
	Window units.PixelSize
	Full   units.Viewport
	Zoomed units.Viewport
}

// ComputeLayout splits the window into two side-by-side maps below a header
// strip. Sizes can come out zero or negative for tiny windows; the
// transforms reject those and the frame is skipped.
func ComputeLayout(window units.PixelSize, border, header int) Layout {
	height := window.Height - header - 2*border
	fullWidth := (window.Width - 3*border) / 2
	zoomedWidth := window.Width - 3*border - fullWidth

	return Layout{
		Window: window,
		Full: units.Viewport{
			Position: units.PixelPoint{X: border, Y: border},
			Size:     units.PixelSize{Width: fullWidth, Height: height},
		},
		Zoomed: units.Viewport{
			Position: units.PixelPoint{X: 2*border + fullWidth, Y: border},
			Size:     units.PixelSize{Width: zoomedWidth, Height: height},
		},
	}
}
