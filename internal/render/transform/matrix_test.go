package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleMatrix() Matrix {
	return Matrix{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
}

func TestMultiplyIdentity(t *testing.T) {
	m := sampleMatrix()
	assert.Equal(t, m, Multiply(Identity, m))
	assert.Equal(t, m, Multiply(m, Identity))

	tr := Translation(0.5, -2)
	assert.Equal(t, tr, Multiply(Identity, tr))
	assert.Equal(t, tr, Multiply(tr, Identity))
}

func TestMultiplyRowByColumn(t *testing.T) {
	left := sampleMatrix()
	right := Matrix{
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 4, 0,
		1, 1, 1, 1,
	}
	want := Matrix{
		2 + 4, 6 + 4, 12 + 4, 4,
		10 + 8, 18 + 8, 28 + 8, 8,
		18 + 12, 30 + 12, 44 + 12, 12,
		26 + 16, 42 + 16, 60 + 16, 16,
	}
	assert.Equal(t, want, Multiply(left, right))
}

func TestMultiplyOrderRightFirst(t *testing.T) {
	// Scale then translate: (1, 1) -> (2, 2) -> (12, 2).
	m := Multiply(Translation(10, 0), Scaling(2, 2))
	x, y := m.Apply(1, 1)
	assert.InDelta(t, 12.0, x, 1e-9)
	assert.InDelta(t, 2.0, y, 1e-9)

	// Reversed order scales the translation too.
	m = Multiply(Scaling(2, 2), Translation(10, 0))
	x, _ = m.Apply(1, 1)
	assert.InDelta(t, 22.0, x, 1e-9)
}

func TestCompose(t *testing.T) {
	a, b, c := Translation(1, 2), Scaling(3, 4), Translation(-5, 6)
	assert.Equal(t, Multiply(a, Multiply(b, c)), Compose(a, b, c))
	assert.Equal(t, Identity, Compose())
}

func TestFlatBuffers(t *testing.T) {
	m := sampleMatrix()
	assert.Equal(t, m.Slice(), Multiply4x4(Identity.Slice(), m.Slice()))
	assert.Equal(t, m, FromSlice(m.Slice()))
}

func TestFlatBuffersWrongLengthPanics(t *testing.T) {
	assert.Panics(t, func() { Multiply4x4(make([]float32, 15), Identity.Slice()) })
	assert.Panics(t, func() { Multiply4x4(Identity.Slice(), make([]float32, 17)) })
	assert.Panics(t, func() { FromSlice(nil) })
}
