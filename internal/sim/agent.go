package sim

import (
	"math"

	"chosenoffset.com/mazesim/internal/core/units"
)

// Agent is a manually driven pose source. It stands in for the external
// solver: whatever moves the agent only has to produce a Pose per tick.
type Agent struct {
	initial units.Pose
	current units.Pose

	// Bounds the centre of the agent may occupy, in meters.
	min, max units.Coordinate

	speed    float64 // meters per second
	turnRate float64 // radians per second
}

// NewAgent places an agent at start. Positions are clamped to [min, max].
func NewAgent(start units.Pose, min, max units.Coordinate, speed float64, turnRate units.Angle) *Agent {
	return &Agent{
		initial:  start,
		current:  start,
		min:      min,
		max:      max,
		speed:    speed,
		turnRate: turnRate.Radians(),
	}
}

// Pose returns the current pose.
func (a *Agent) Pose() units.Pose {
	return a.current
}

// InitialPose returns the pose the agent started from.
func (a *Agent) InitialPose() units.Pose {
	return a.initial
}

// Drive advances the agent by dt seconds. throttle and steer are in
// [-1, 1]: positive throttle drives forward, positive steer turns left.
func (a *Agent) Drive(dt, throttle, steer float64) {
	heading := a.current.Heading.Radians() + steer*a.turnRate*dt
	distance := throttle * a.speed * dt

	pos := units.Coordinate{
		X: a.current.Position.X + distance*math.Cos(heading),
		Y: a.current.Position.Y + distance*math.Sin(heading),
	}
	pos.X = math.Max(a.min.X, math.Min(a.max.X, pos.X))
	pos.Y = math.Max(a.min.Y, math.Min(a.max.Y, pos.Y))

	a.current = units.Pose{Position: pos, Heading: units.Angle(units.Angle(heading).RadiansZeroTo2Pi())}
}

// Reset puts the agent back at its initial pose.
func (a *Agent) Reset() {
	a.current = a.initial
}
