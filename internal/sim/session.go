// Package sim runs the simulator frame loop: it drives the agent from
// input, lays out the two maps and draws them with per-frame matrices.
package sim

import (
	"fmt"
	"image/color"
	"math"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/mazesim/internal/config"
	"chosenoffset.com/mazesim/internal/core/units"
	"chosenoffset.com/mazesim/internal/logger"
	"chosenoffset.com/mazesim/internal/render"
	"chosenoffset.com/mazesim/internal/render/mazeview"
	"chosenoffset.com/mazesim/internal/render/transform"
	"chosenoffset.com/mazesim/internal/world/maze"
)

// TickSeconds is the simulated time per Update call.
const TickSeconds = 1.0 / 60.0

// headerHeight is the strip above the maps that holds the status line.
const headerHeight = 24

// Session implements render.Game for one maze and one agent.
type Session struct {
	cfg      *config.Config
	topology *maze.Topology
	view     *mazeview.View
	agent    *Agent
	renderer render.Renderer
	input    render.InputManager

	window    units.PixelSize
	zoomScale float64
	rotate    bool

	// lastErr suppresses repeated logging of the same skipped-frame reason.
	lastErr string
}

// NewSession wires a session together. The topology is expected to be
// populated already.
func NewSession(cfg *config.Config, t *maze.Topology, r render.Renderer, input render.InputManager) *Session {
	g := cfg.Geometry
	pitch := g.Pitch()
	start := units.Pose{
		Position: g.CellCenter(cfg.Agent.StartX, cfg.Agent.StartY),
		Heading:  units.Degrees(cfg.Agent.HeadingDegs),
	}
	agent := NewAgent(
		start,
		units.Coordinate{},
		units.Coordinate{X: float64(t.Width()) * pitch, Y: float64(t.Height()) * pitch},
		cfg.Agent.Speed,
		units.Degrees(cfg.Agent.TurnRate),
	)

	return &Session{
		cfg:       cfg,
		topology:  t,
		view:      mazeview.NewView(r, t, g, mazeview.DefaultPalette),
		agent:     agent,
		renderer:  r,
		input:     input,
		window:    units.PixelSize{Width: cfg.Window.Width, Height: cfg.Window.Height},
		zoomScale: cfg.Zoomed.Scale,
		rotate:    cfg.Zoomed.RotateWithAgent,
	}
}

// Agent exposes the agent for inspection.
func (s *Session) Agent() *Agent {
	return s.agent
}

// ZoomScale returns the current zoomed map scale.
func (s *Session) ZoomScale() float64 {
	return s.zoomScale
}

// Rotating reports whether the zoomed map turns with the agent.
func (s *Session) Rotating() bool {
	return s.rotate
}

// Update applies one tick of input.
func (s *Session) Update() error {
	if s.input.IsKeyJustPressed(render.KeyEscape) {
		logger.Log.Info("quit requested")
		return render.ErrQuit
	}

	if s.input.IsKeyJustPressed(render.KeyR) {
		s.rotate = !s.rotate
		logger.Log.WithField("rotate", s.rotate).Info("zoomed map rotation toggled")
	}
	if s.input.IsKeyPressed(render.KeyUp) {
		s.zoomScale = math.Min(s.cfg.Zoomed.MaxScale, s.zoomScale*s.cfg.Zoomed.ScaleStep)
	}
	if s.input.IsKeyPressed(render.KeyDown) {
		s.zoomScale = math.Max(s.cfg.Zoomed.MinScale, s.zoomScale/s.cfg.Zoomed.ScaleStep)
	}
	if s.input.IsKeyJustPressed(render.KeySpace) {
		s.agent.Reset()
	}

	throttle, steer := 0.0, 0.0
	if s.input.IsKeyPressed(render.KeyW) {
		throttle++
	}
	if s.input.IsKeyPressed(render.KeyS) {
		throttle--
	}
	if s.input.IsKeyPressed(render.KeyA) {
		steer++
	}
	if s.input.IsKeyPressed(render.KeyD) {
		steer--
	}
	if throttle != 0 || steer != 0 {
		s.agent.Drive(TickSeconds, throttle, steer)
	}
	return nil
}

// Matrices computes both viewport matrices for the current frame.
func (s *Session) Matrices(layout Layout) (full, zoomed transform.Matrix, err error) {
	size := s.view.PhysicalSize()

	full, err = transform.FullMap(transform.FullMapParams{
		WallWidth: s.cfg.Geometry.WallWidth,
		Maze:      size,
		Viewport:  layout.Full,
		Window:    layout.Window,
	})
	if err != nil {
		return full, zoomed, fmt.Errorf("full map: %w", err)
	}

	zoomed, err = transform.ZoomedMap(transform.ZoomedMapParams{
		Maze:                 size,
		Viewport:             layout.Zoomed,
		Window:               layout.Window,
		ScreenPixelsPerMeter: s.cfg.Zoomed.ScreenPixelsPerMeter,
		ZoomScale:            s.zoomScale,
		RotateWithAgent:      s.rotate,
		InitialPosition:      s.agent.InitialPose().Position,
		Current:              s.agent.Pose(),
	})
	if err != nil {
		return full, zoomed, fmt.Errorf("zoomed map: %w", err)
	}
	return full, zoomed, nil
}

// Draw renders both maps and the status line.
func (s *Session) Draw(screen render.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	layout := ComputeLayout(s.window, s.cfg.Window.Border, headerHeight)
	full, zoomed, err := s.Matrices(layout)
	if err != nil {
		if err.Error() != s.lastErr {
			logger.Log.WithError(err).WithFields(logrus.Fields{
				"window_width":  s.window.Width,
				"window_height": s.window.Height,
			}).Debug("frame skipped")
			s.lastErr = err.Error()
		}
		return
	}
	s.lastErr = ""

	pose := s.agent.Pose()
	s.view.Draw(screen, full, layout.Full, layout.Window, pose)
	s.view.Draw(screen, zoomed, layout.Zoomed, layout.Window, pose)

	status := fmt.Sprintf("x %.3f m  y %.3f m  heading %.0f deg  zoom %.2f  rotate %v",
		pose.Position.X, pose.Position.Y, pose.Heading.Degrees(), s.zoomScale, s.rotate)
	s.renderer.DrawText(screen, status, s.cfg.Window.Border, 4, color.White)
}

// Layout tracks the window size; the logical screen is the window itself.
func (s *Session) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != s.window.Width || outsideHeight != s.window.Height {
		s.window = units.PixelSize{Width: outsideWidth, Height: outsideHeight}
		logger.Log.WithFields(logrus.Fields{
			"width":  outsideWidth,
			"height": outsideHeight,
		}).Debug("window resized")
	}
	return outsideWidth, outsideHeight
}
