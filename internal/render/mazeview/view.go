package mazeview

import (
	"image"
	"image/color"

	"chosenoffset.com/mazesim/internal/core/units"
	"chosenoffset.com/mazesim/internal/render"
	"chosenoffset.com/mazesim/internal/render/transform"
	"chosenoffset.com/mazesim/internal/world/maze"
)

// Palette holds the colours used by a View.
type Palette struct {
	Background color.RGBA
	Wall       color.RGBA
	Post       color.RGBA
	Agent      color.RGBA
}

// DefaultPalette is dark floor, red walls, light posts and a yellow agent.
var DefaultPalette = Palette{
	Background: color.RGBA{12, 12, 20, 255},
	Wall:       color.RGBA{200, 40, 40, 255},
	Post:       color.RGBA{230, 230, 230, 255},
	Agent:      color.RGBA{255, 255, 100, 255},
}

// View draws one maze into any number of viewports.
type View struct {
	topology *maze.Topology
	geometry Geometry
	palette  Palette
	white    render.Image
}

// NewView builds a View. The renderer is used once to create the solid
// source image the triangles are textured with.
func NewView(r render.Renderer, t *maze.Topology, g Geometry, p Palette) *View {
	// Sample from the middle pixel of a 3x3 image so edge filtering never
	// picks up transparent texels.
	base := r.NewImage(3, 3)
	base.Fill(color.White)
	return &View{
		topology: t,
		geometry: g,
		palette:  p,
		white:    base.SubImage(image.Rect(1, 1, 2, 2)),
	}
}

// PhysicalSize is the size to hand to the viewport transforms.
func (v *View) PhysicalSize() units.Size {
	return v.geometry.PhysicalSize(v.topology.Width(), v.topology.Height())
}

// Draw renders the maze and the agent into viewport of dst using m.
// Anything the matrix puts outside the viewport is clipped.
func (v *View) Draw(dst render.Image, m transform.Matrix, viewport units.Viewport, window units.PixelSize, agent units.Pose) {
	target := dst.SubImage(ScreenRect(viewport, window))
	target.Fill(v.palette.Background)

	opts := &render.DrawTrianglesOptions{AntiAlias: true}
	v.drawQuads(target, m, Walls(v.topology, v.geometry), window, v.palette.Wall, opts)
	v.drawQuads(target, m, Posts(v.topology, v.geometry), window, v.palette.Post, opts)

	tri := AgentTriangle(agent, 0.6*v.geometry.WallLength)
	vertices, indices := ProjectTriangle(m, tri, window, v.palette.Agent)
	target.DrawTriangles(vertices, indices, v.white, opts)
}

func (v *View) drawQuads(dst render.Image, m transform.Matrix, quads []Quad, window units.PixelSize, clr color.Color, opts *render.DrawTrianglesOptions) {
	for start := 0; start < len(quads); start += maxQuadsPerBatch {
		end := start + maxQuadsPerBatch
		if end > len(quads) {
			end = len(quads)
		}
		vertices, indices := ProjectQuads(m, quads[start:end], window, clr)
		dst.DrawTriangles(vertices, indices, v.white, opts)
	}
}
