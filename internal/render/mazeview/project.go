package mazeview

import (
	"image"
	"image/color"

	"chosenoffset.com/mazesim/internal/core/units"
	"chosenoffset.com/mazesim/internal/render"
	"chosenoffset.com/mazesim/internal/render/transform"
)

// maxQuadsPerBatch keeps vertex indices within uint16.
const maxQuadsPerBatch = 65536 / 4

// ToScreen maps a normalized device coordinate to a screen pixel with the
// origin at the top-left corner, which is what the render backend expects.
func ToScreen(ndc transform.NDC, window units.PixelSize) (float32, float32) {
	x := (ndc.X + 1) / 2 * float64(window.Width)
	y := (1 - ndc.Y) / 2 * float64(window.Height)
	return float32(x), float32(y)
}

// ScreenRect converts a bottom-left origin viewport to an image rectangle.
func ScreenRect(v units.Viewport, window units.PixelSize) image.Rectangle {
	return image.Rect(
		v.Position.X,
		window.Height-(v.Position.Y+v.Size.Height),
		v.Position.X+v.Size.Width,
		window.Height-v.Position.Y,
	)
}

func vertex(m transform.Matrix, p units.Coordinate, window units.PixelSize, clr color.Color) render.Vertex {
	x, y := m.Apply(p.X, p.Y)
	sx, sy := ToScreen(transform.NDC{X: x, Y: y}, window)
	r, g, b, a := clr.RGBA()
	return render.Vertex{
		DstX:   sx,
		DstY:   sy,
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(r) / 0xffff,
		ColorG: float32(g) / 0xffff,
		ColorB: float32(b) / 0xffff,
		ColorA: float32(a) / 0xffff,
	}
}

// ProjectQuads transforms physical quads into screen vertices and the
// indices of two triangles per quad. It panics if the batch does not fit
// uint16 indices; callers split larger sets.
func ProjectQuads(m transform.Matrix, quads []Quad, window units.PixelSize, clr color.Color) ([]render.Vertex, []uint16) {
	if len(quads) > maxQuadsPerBatch {
		panic("mazeview: too many quads for one batch")
	}
	vertices := make([]render.Vertex, 0, 4*len(quads))
	indices := make([]uint16, 0, 6*len(quads))
	for i, q := range quads {
		base := uint16(4 * i)
		for _, p := range q {
			vertices = append(vertices, vertex(m, p, window, clr))
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}

// ProjectTriangle transforms a single physical triangle.
func ProjectTriangle(m transform.Matrix, tri [3]units.Coordinate, window units.PixelSize, clr color.Color) ([]render.Vertex, []uint16) {
	vertices := make([]render.Vertex, 0, 3)
	for _, p := range tri {
		vertices = append(vertices, vertex(m, p, window, clr))
	}
	return vertices, []uint16{0, 1, 2}
}
