package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegreesRoundTrip(t *testing.T) {
	assert.InDelta(t, math.Pi/2, Degrees(90).Radians(), 1e-12)
	assert.InDelta(t, -45, Degrees(-45).Degrees(), 1e-12)
}

func TestRadiansZeroTo2Pi(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-4 * math.Pi, 0},
	}
	for _, c := range cases {
		got := Angle(c.in).RadiansZeroTo2Pi()
		assert.InDelta(t, c.want, got, 1e-9, "angle %g", c.in)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 2*math.Pi)
	}
}

func TestCoordinateArithmetic(t *testing.T) {
	a := Coordinate{X: 1.5, Y: -2}
	b := Coordinate{X: 0.5, Y: 1}
	assert.Equal(t, Coordinate{X: 1, Y: -3}, a.Sub(b))
	assert.Equal(t, Coordinate{X: 2, Y: -1}, a.Add(b))
}

func TestPixelSizePositive(t *testing.T) {
	assert.True(t, PixelSize{Width: 1, Height: 1}.Positive())
	assert.False(t, PixelSize{Width: 0, Height: 10}.Positive())
	assert.False(t, PixelSize{Width: 10, Height: -1}.Positive())
}
