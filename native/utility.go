//go:build (darwin || freebsd || linux || netbsd) && !android

package native

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/vg"
)

type vguAPI struct {
	line         func(path uint32, x0, y0, x1, y1 float32) int32
	polygon      func(path uint32, points []float32, count int32, closed bool) int32
	rect         func(path uint32, x, y, width, height float32) int32
	roundRect    func(path uint32, x, y, width, height, arcWidth, arcHeight float32) int32
	ellipse      func(path uint32, cx, cy, width, height float32) int32
	arc          func(path uint32, x, y, width, height, startAngle, angleExtent float32, arcType int32) int32
	quadToSquare func(sx0, sy0, sx1, sy1, sx2, sy2, sx3, sy3 float32, m *f32.Mat3) int32
	squareToQuad func(dx0, dy0, dx1, dy1, dx2, dy2, dx3, dy3 float32, m *f32.Mat3) int32
}

func (a *vguAPI) symbols() []symbol {
	return []symbol{
		{"vguLine", &a.line},
		{"vguPolygon", &a.polygon},
		{"vguRect", &a.rect},
		{"vguRoundRect", &a.roundRect},
		{"vguEllipse", &a.ellipse},
		{"vguArc", &a.arc},
		{"vguComputeWarpQuadToSquare", &a.quadToSquare},
		{"vguComputeWarpSquareToQuad", &a.squareToQuad},
	}
}

// Utility is the VGU library bound alongside an Engine.
type Utility struct {
	fn vguAPI
}

func (u *Utility) Line(path vg.Handle, x0, y0, x1, y1 float32) vg.UtilityCode {
	return vg.UtilityCode(u.fn.line(uint32(path), x0, y0, x1, y1))
}

// Polygon takes interleaved x, y coordinates.
func (u *Utility) Polygon(path vg.Handle, points []float32, closed bool) vg.UtilityCode {
	return vg.UtilityCode(u.fn.polygon(uint32(path), points, int32(len(points)/2), closed))
}

func (u *Utility) Rect(path vg.Handle, x, y, width, height float32) vg.UtilityCode {
	return vg.UtilityCode(u.fn.rect(uint32(path), x, y, width, height))
}

func (u *Utility) RoundRect(path vg.Handle, x, y, width, height, arcWidth, arcHeight float32) vg.UtilityCode {
	return vg.UtilityCode(u.fn.roundRect(uint32(path), x, y, width, height, arcWidth, arcHeight))
}

func (u *Utility) Ellipse(path vg.Handle, cx, cy, width, height float32) vg.UtilityCode {
	return vg.UtilityCode(u.fn.ellipse(uint32(path), cx, cy, width, height))
}

func (u *Utility) Arc(path vg.Handle, x, y, width, height, startAngle, angleExtent float32, arcType vg.ArcType) vg.UtilityCode {
	return vg.UtilityCode(u.fn.arc(uint32(path), x, y, width, height, startAngle, angleExtent, int32(arcType)))
}

func (u *Utility) ComputeWarpQuadToSquare(src vg.Quad, m *f32.Mat3) vg.UtilityCode {
	return vg.UtilityCode(u.fn.quadToSquare(
		src[0][0], src[0][1], src[1][0], src[1][1],
		src[2][0], src[2][1], src[3][0], src[3][1], m))
}

func (u *Utility) ComputeWarpSquareToQuad(dst vg.Quad, m *f32.Mat3) vg.UtilityCode {
	return vg.UtilityCode(u.fn.squareToQuad(
		dst[0][0], dst[0][1], dst[1][0], dst[1][1],
		dst[2][0], dst[2][1], dst[3][0], dst[3][1], m))
}

// ComputeWarpQuadToQuad composes the two unit-square warps. The native
// entry point takes more arguments than can be passed through dlsym calls.
func (u *Utility) ComputeWarpQuadToQuad(dst, src vg.Quad, m *f32.Mat3) vg.UtilityCode {
	var toSquare, toQuad f32.Mat3
	if code := u.ComputeWarpQuadToSquare(src, &toSquare); code != vg.UtilityNoError {
		return code
	}
	if code := u.ComputeWarpSquareToQuad(dst, &toQuad); code != vg.UtilityNoError {
		return code
	}
	*m = *vg.MatrixFromWire(&toQuad).Multiply(vg.MatrixFromWire(&toSquare)).Wire()
	return vg.UtilityNoError
}

var _ vg.Utility = (*Utility)(nil)
