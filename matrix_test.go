package vg

import (
	"math"
	"testing"

	"golang.org/x/image/math/f32"
)

func TestMatrixWireColumnMajor(t *testing.T) {
	m := Matrix{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	want := f32.Mat3{1, 4, 7, 2, 5, 8, 3, 6, 9}
	if got := *m.Wire(); got != want {
		t.Errorf("Wire() = %v, want %v", got, want)
	}
	if back := MatrixFromWire(m.Wire()); back != m {
		t.Errorf("MatrixFromWire(Wire()) = %v, want %v", back, m)
	}
}

func TestMatrixWireTranslation(t *testing.T) {
	w := Translate(10, 20).Wire()
	// Translation sits in the third column: elements 6 and 7.
	if w[6] != 10 || w[7] != 20 {
		t.Errorf("Translate(10, 20).Wire() = %v, want tx=10 ty=20 at [6] [7]", *w)
	}
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   f32.Vec2
		want f32.Vec2
	}{
		{"identity", Identity(), f32.Vec2{3, 4}, f32.Vec2{3, 4}},
		{"translate", Translate(10, -5), f32.Vec2{1, 1}, f32.Vec2{11, -4}},
		{"scale", Scale(2, 3), f32.Vec2{1, 1}, f32.Vec2{2, 3}},
		{"rotate 90", Rotate(90), f32.Vec2{1, 0}, f32.Vec2{0, 1}},
		{"shear", Shear(1, 0), f32.Vec2{0, 2}, f32.Vec2{2, 2}},
		{"scale then translate", Translate(1, 1).Multiply(Scale(2, 2)), f32.Vec2{1, 1}, f32.Vec2{3, 3}},
		{"projective", Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 2}}, f32.Vec2{4, 6}, f32.Vec2{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if math.Abs(float64(got[0]-tt.want[0])) > 1e-5 || math.Abs(float64(got[1]-tt.want[1])) > 1e-5 {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixPredicates(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("Translate(1, 0).IsIdentity() = true")
	}
	if !Rotate(30).IsAffine() {
		t.Error("Rotate(30).IsAffine() = false")
	}
	if (Matrix{{1, 0, 0}, {0, 1, 0}, {0.5, 0, 1}}).IsAffine() {
		t.Error("projective matrix reported affine")
	}
}
