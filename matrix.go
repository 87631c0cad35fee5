package vg

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Matrix is a 3x3 transformation in row form:
//
//	| sx   shx  tx |
//	| shy  sy   ty |
//	| w0   w1   w2 |
//
// This represents the transformation:
//
//	x' = sx*x + shx*y + tx
//	y' = shy*x + sy*y + ty
//
// The engine stores matrices column-major; see Wire.
type Matrix [3][3]float32

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Translate creates a translation matrix.
func Translate(tx, ty float32) Matrix {
	return Matrix{
		{1, 0, tx},
		{0, 1, ty},
		{0, 0, 1},
	}
}

// Scale creates a scaling matrix.
func Scale(sx, sy float32) Matrix {
	return Matrix{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, 1},
	}
}

// Rotate creates a rotation matrix. The angle is in degrees, as in the
// engine's own rotate call.
func Rotate(degrees float32) Matrix {
	sin, cos := math.Sincos(float64(degrees) * math.Pi / 180)
	s, c := float32(sin), float32(cos)
	return Matrix{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Shear creates a shear matrix.
func Shear(shx, shy float32) Matrix {
	return Matrix{
		{1, shx, 0},
		{shy, 1, 0},
		{0, 0, 1},
	}
}

// Multiply returns m * other.
func (m Matrix) Multiply(other Matrix) Matrix {
	var out Matrix
	for i := range 3 {
		for j := range 3 {
			out[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j] + m[i][2]*other[2][j]
		}
	}
	return out
}

// TransformPoint applies the transformation to a point, including the
// projective divide.
func (m Matrix) TransformPoint(p f32.Vec2) f32.Vec2 {
	x := m[0][0]*p[0] + m[0][1]*p[1] + m[0][2]
	y := m[1][0]*p[0] + m[1][1]*p[1] + m[1][2]
	w := m[2][0]*p[0] + m[2][1]*p[1] + m[2][2]
	if w != 0 && w != 1 {
		x, y = x/w, y/w
	}
	return f32.Vec2{x, y}
}

// IsAffine reports whether the last row is (0, 0, 1).
func (m Matrix) IsAffine() bool {
	return m[2] == [3]float32{0, 0, 1}
}

// IsIdentity reports whether m is the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// Wire returns the engine's column-major form of m.
func (m Matrix) Wire() *f32.Mat3 {
	cols := make([][]float32, 3)
	for j := range 3 {
		cols[j] = []float32{m[0][j], m[1][j], m[2][j]}
	}
	flat, _ := Flatten(cols, 3)

	var w f32.Mat3
	copy(w[:], flat)
	return &w
}

// MatrixFromWire converts the engine's column-major form to a Matrix.
func MatrixFromWire(w *f32.Mat3) Matrix {
	cols, _ := Unflatten(w[:], 3, true)

	var m Matrix
	for j, col := range cols {
		for i, v := range col {
			m[i][j] = v
		}
	}
	return m
}
