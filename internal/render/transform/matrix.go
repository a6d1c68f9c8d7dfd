// Package transform computes the matrices that map physical maze
// coordinates (meters) to normalized device coordinates for the full map
// and the zoomed map viewports.
package transform

import "fmt"

// Matrix is a 4x4 transform stored row major. It is a value type: every
// operation returns a new Matrix.
type Matrix [16]float32

// Identity is the identity transform.
var Identity = Matrix{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// FromSlice copies a flat 16-element buffer into a Matrix. Any other length
// is a bug in the caller and panics.
func FromSlice(v []float32) Matrix {
	if len(v) != 16 {
		panic(fmt.Sprintf("transform: matrix buffer has %d elements, want 16", len(v)))
	}
	var m Matrix
	copy(m[:], v)
	return m
}

// Slice returns the 16 values in row-major order, as consumed by a shader uniform.
func (m Matrix) Slice() []float32 {
	out := make([]float32, 16)
	copy(out, m[:])
	return out
}

// Multiply returns left x right. Applied to a column vector, right acts first.
func Multiply(left, right Matrix) Matrix {
	var result Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			value := 0.0
			for k := 0; k < 4; k++ {
				value += float64(left[4*i+k]) * float64(right[4*k+j])
			}
			result[4*i+j] = float32(value)
		}
	}
	return result
}

// Multiply4x4 multiplies two flat row-major buffers. Both must hold exactly
// 16 elements; anything else panics.
func Multiply4x4(left, right []float32) []float32 {
	return Multiply(FromSlice(left), FromSlice(right)).Slice()
}

// Compose multiplies the matrices left to right, so the last one is applied
// to a vector first.
func Compose(ms ...Matrix) Matrix {
	result := Identity
	for _, m := range ms {
		result = Multiply(result, m)
	}
	return result
}

// Apply transforms the point (x, y, 0, 1) and returns its x and y.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	tx := float64(m[0])*x + float64(m[1])*y + float64(m[3])
	ty := float64(m[4])*x + float64(m[5])*y + float64(m[7])
	return tx, ty
}

// Translation returns a matrix translating by (tx, ty).
func Translation(tx, ty float64) Matrix {
	return Matrix{
		1, 0, 0, float32(tx),
		0, 1, 0, float32(ty),
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scaling returns a matrix scaling x by sx and y by sy.
func Scaling(sx, sy float64) Matrix {
	return Matrix{
		float32(sx), 0, 0, 0,
		0, float32(sy), 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
