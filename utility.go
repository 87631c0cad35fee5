package vg

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Shape helpers of the utility library. Each appends segments to p
// directly, so p must not be inside a Queue scope.

func (c *Context) utility(p *Path, op string) (Utility, Handle, error) {
	if c.u == nil {
		return nil, InvalidHandle, ErrNoUtility
	}
	h, err := p.direct(op)
	if err != nil {
		return nil, InvalidHandle, err
	}
	return c.u, h, nil
}

// Line appends a line segment from (x0, y0) to (x1, y1).
func (c *Context) Line(p *Path, x0, y0, x1, y1 float32) error {
	u, h, err := c.utility(p, "line")
	if err != nil {
		return err
	}
	return callUtility("line", func() UtilityCode { return u.Line(h, x0, y0, x1, y1) })
}

// Polygon appends a polyline through points, closed when closed is set.
func (c *Context) Polygon(p *Path, points []f32.Vec2, closed bool) error {
	u, h, err := c.utility(p, "polygon")
	if err != nil {
		return err
	}
	pts := make([][]float32, len(points))
	for i := range points {
		pts[i] = points[i][:]
	}
	flat, err := Flatten(pts, 2)
	if err != nil {
		return err
	}
	return callUtility("polygon", func() UtilityCode { return u.Polygon(h, flat, closed) })
}

// Rect appends an axis aligned rectangle.
func (c *Context) Rect(p *Path, x, y, width, height float32) error {
	u, h, err := c.utility(p, "rect")
	if err != nil {
		return err
	}
	return callUtility("rect", func() UtilityCode { return u.Rect(h, x, y, width, height) })
}

// RoundRect appends a rectangle with elliptical corners.
func (c *Context) RoundRect(p *Path, x, y, width, height, arcWidth, arcHeight float32) error {
	u, h, err := c.utility(p, "round rect")
	if err != nil {
		return err
	}
	return callUtility("round rect", func() UtilityCode {
		return u.RoundRect(h, x, y, width, height, arcWidth, arcHeight)
	})
}

// Ellipse appends an ellipse centered at (cx, cy).
func (c *Context) Ellipse(p *Path, cx, cy, width, height float32) error {
	u, h, err := c.utility(p, "ellipse")
	if err != nil {
		return err
	}
	return callUtility("ellipse", func() UtilityCode { return u.Ellipse(h, cx, cy, width, height) })
}

// Arc appends an elliptical arc. Angles are in degrees.
func (c *Context) Arc(p *Path, x, y, width, height, startAngle, angleExtent float32, arcType ArcType) error {
	if arcType < ArcOpen || arcType > ArcPie {
		return fmt.Errorf("%w: arc type 0x%04X", ErrShape, int32(arcType))
	}
	u, h, err := c.utility(p, "arc")
	if err != nil {
		return err
	}
	return callUtility("arc", func() UtilityCode {
		return u.Arc(h, x, y, width, height, startAngle, angleExtent, arcType)
	})
}

// WarpQuadToSquare computes the projective matrix that maps src onto the
// unit square.
func (c *Context) WarpQuadToSquare(src Quad) (Matrix, error) {
	return c.warp("warp quad to square", func(u Utility, m *f32.Mat3) UtilityCode {
		return u.ComputeWarpQuadToSquare(src, m)
	})
}

// WarpSquareToQuad computes the projective matrix that maps the unit
// square onto dst.
func (c *Context) WarpSquareToQuad(dst Quad) (Matrix, error) {
	return c.warp("warp square to quad", func(u Utility, m *f32.Mat3) UtilityCode {
		return u.ComputeWarpSquareToQuad(dst, m)
	})
}

// WarpQuadToQuad computes the projective matrix that maps src onto dst.
func (c *Context) WarpQuadToQuad(dst, src Quad) (Matrix, error) {
	return c.warp("warp quad to quad", func(u Utility, m *f32.Mat3) UtilityCode {
		return u.ComputeWarpQuadToQuad(dst, src, m)
	})
}

func (c *Context) warp(op string, fn func(Utility, *f32.Mat3) UtilityCode) (Matrix, error) {
	if c.u == nil {
		return Matrix{}, ErrNoUtility
	}
	var w f32.Mat3
	if err := callUtility(op, func() UtilityCode { return fn(c.u, &w) }); err != nil {
		return Matrix{}, err
	}
	return MatrixFromWire(&w), nil
}
