package sim

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/mazesim/internal/config"
	"chosenoffset.com/mazesim/internal/core/units"
	"chosenoffset.com/mazesim/internal/render"
	"chosenoffset.com/mazesim/internal/world/maze"
	"chosenoffset.com/mazesim/internal/world/mazegen"
)

type fakeInput struct {
	pressed     map[render.Key]bool
	justPressed map[render.Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{pressed: map[render.Key]bool{}, justPressed: map[render.Key]bool{}}
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool     { return f.pressed[k] }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool { return f.justPressed[k] }

type fakeImage struct {
	rect   image.Rectangle
	draws  *int
	filled *int
}

func (f *fakeImage) Bounds() image.Rectangle { return f.rect }
func (f *fakeImage) Size() (int, int)        { return f.rect.Dx(), f.rect.Dy() }
func (f *fakeImage) SubImage(r image.Rectangle) render.Image {
	sub := *f
	sub.rect = r
	return &sub
}
func (f *fakeImage) Fill(color.Color) { *f.filled++ }
func (f *fakeImage) Clear()           {}
func (f *fakeImage) Dispose()         {}
func (f *fakeImage) DrawTriangles([]render.Vertex, []uint16, render.Image, *render.DrawTrianglesOptions) {
	*f.draws++
}

func newFakeImage(w, h int) *fakeImage {
	return &fakeImage{rect: image.Rect(0, 0, w, h), draws: new(int), filled: new(int)}
}

type fakeRenderer struct {
	texts []string
}

func (r *fakeRenderer) NewImage(w, h int) render.Image { return newFakeImage(w, h) }
func (r *fakeRenderer) DrawText(_ render.Image, s string, _, _ int, _ color.Color) {
	r.texts = append(r.texts, s)
}
func (r *fakeRenderer) MeasureText(s string) (int, int) { return len(s), 1 }

func newSession(t *testing.T, cfg *config.Config) (*Session, *fakeInput, *fakeRenderer) {
	t.Helper()
	topo := maze.NewTopology(maze.NewGrid(cfg.Maze.Width, cfg.Maze.Height), rand.New(rand.NewSource(3)), nil)
	require.NoError(t, mazegen.Generate(topo, cfg.Generate))
	input := newFakeInput()
	r := &fakeRenderer{}
	return NewSession(cfg, topo, r, input), input, r
}

func TestComputeLayout(t *testing.T) {
	l := ComputeLayout(units.PixelSize{Width: 1280, Height: 720}, 10, 24)

	assert.Equal(t, units.PixelPoint{X: 10, Y: 10}, l.Full.Position)
	assert.Equal(t, units.PixelSize{Width: 625, Height: 676}, l.Full.Size)
	assert.Equal(t, units.PixelPoint{X: 645, Y: 10}, l.Zoomed.Position)
	assert.Equal(t, units.PixelSize{Width: 625, Height: 676}, l.Zoomed.Size)

	// Right edge of the zoomed map leaves exactly one border.
	assert.Equal(t, 1280-10, l.Zoomed.Position.X+l.Zoomed.Size.Width)
}

func TestComputeLayoutTinyWindow(t *testing.T) {
	l := ComputeLayout(units.PixelSize{Width: 20, Height: 30}, 10, 24)
	assert.False(t, l.Full.Size.Positive())
	assert.False(t, l.Zoomed.Size.Positive())
}

func TestAgentDrive(t *testing.T) {
	start := units.Pose{Position: units.Coordinate{X: 1, Y: 1}, Heading: units.Degrees(90)}
	a := NewAgent(start, units.Coordinate{}, units.Coordinate{X: 2, Y: 2}, 0.5, units.Degrees(180))

	a.Drive(1, 1, 0)
	assert.InDelta(t, 1.0, a.Pose().Position.X, 1e-9)
	assert.InDelta(t, 1.5, a.Pose().Position.Y, 1e-9)

	// Clamped at the top edge.
	a.Drive(10, 1, 0)
	assert.InDelta(t, 2.0, a.Pose().Position.Y, 1e-9)

	// Half a second of left turn at 180 deg/s faces west.
	a.Drive(0.5, 0, 1)
	assert.InDelta(t, 180, a.Pose().Heading.Degrees(), 1e-9)

	assert.Equal(t, start, a.InitialPose())
	a.Reset()
	assert.Equal(t, start, a.Pose())
}

func TestAgentHeadingNormalized(t *testing.T) {
	a := NewAgent(units.Pose{}, units.Coordinate{}, units.Coordinate{X: 1, Y: 1}, 1, units.Degrees(90))
	a.Drive(1, 0, -1)
	assert.InDelta(t, 270, a.Pose().Heading.Degrees(), 1e-9)
}

func TestSessionUpdateControls(t *testing.T) {
	cfg := config.DefaultConfig()
	s, input, _ := newSession(t, cfg)

	input.pressed[render.KeyUp] = true
	require.NoError(t, s.Update())
	assert.InDelta(t, cfg.Zoomed.Scale*cfg.Zoomed.ScaleStep, s.ZoomScale(), 1e-12)

	input.pressed[render.KeyUp] = false
	input.pressed[render.KeyDown] = true
	for i := 0; i < 1000; i++ {
		require.NoError(t, s.Update())
	}
	assert.Equal(t, cfg.Zoomed.MinScale, s.ZoomScale())
	input.pressed[render.KeyDown] = false

	input.justPressed[render.KeyR] = true
	require.NoError(t, s.Update())
	assert.True(t, s.Rotating())
	input.justPressed[render.KeyR] = false

	before := s.Agent().Pose()
	input.pressed[render.KeyW] = true
	require.NoError(t, s.Update())
	after := s.Agent().Pose()
	assert.InDelta(t, before.Position.Y+cfg.Agent.Speed*TickSeconds, after.Position.Y, 1e-9)
	input.pressed[render.KeyW] = false

	input.justPressed[render.KeySpace] = true
	require.NoError(t, s.Update())
	assert.Equal(t, s.Agent().InitialPose(), s.Agent().Pose())
	input.justPressed[render.KeySpace] = false

	input.justPressed[render.KeyEscape] = true
	assert.ErrorIs(t, s.Update(), render.ErrQuit)
}

func TestSessionMatricesCenterAgent(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Zoomed.RotateWithAgent = true
	s, input, _ := newSession(t, cfg)

	input.pressed[render.KeyW] = true
	input.pressed[render.KeyA] = true
	for i := 0; i < 30; i++ {
		require.NoError(t, s.Update())
	}

	layout := ComputeLayout(units.PixelSize{Width: 1280, Height: 720}, 10, 24)
	_, zoomed, err := s.Matrices(layout)
	require.NoError(t, err)

	pos := s.Agent().Pose().Position
	x, y := zoomed.Apply(pos.X, pos.Y)
	cx := float64(layout.Zoomed.Position.X) + 0.5*float64(layout.Zoomed.Size.Width)
	cy := float64(layout.Zoomed.Position.Y) + 0.5*float64(layout.Zoomed.Size.Height)
	assert.InDelta(t, 2*cx/1280-1, x, 1e-5)
	assert.InDelta(t, 2*cy/720-1, y, 1e-5)

	// The zoomed map's forward direction points up.
	h := s.Agent().Pose().Heading.Radians()
	fx, fy := zoomed.Apply(pos.X+0.01*math.Cos(h), pos.Y+0.01*math.Sin(h))
	assert.InDelta(t, x, fx, 1e-5)
	assert.Greater(t, fy, y)
}

func TestSessionDraw(t *testing.T) {
	cfg := config.DefaultConfig()
	s, _, r := newSession(t, cfg)
	w, h := s.Layout(cfg.Window.Width, cfg.Window.Height)
	assert.Equal(t, cfg.Window.Width, w)
	assert.Equal(t, cfg.Window.Height, h)

	screen := newFakeImage(w, h)
	s.Draw(screen)

	// Each map: walls, posts, agent.
	assert.Equal(t, 6, *screen.draws)
	require.Len(t, r.texts, 1)
	assert.Contains(t, r.texts[0], "zoom 0.25")
}

func TestSessionDrawSkipsDegenerateWindow(t *testing.T) {
	cfg := config.DefaultConfig()
	s, _, r := newSession(t, cfg)
	s.Layout(30, 30)

	screen := newFakeImage(30, 30)
	s.Draw(screen)

	assert.Equal(t, 0, *screen.draws)
	assert.Empty(t, r.texts)
	assert.Equal(t, 1, *screen.filled)
}
