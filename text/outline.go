package text

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/vg"
)

// OutlinePoint is a point in a glyph outline, in pixels with y pointing up.
type OutlinePoint struct {
	X, Y float32
}

// OutlineOp is the type of an outline segment.
type OutlineOp uint8

const (
	// OutlineOpMoveTo starts a new contour.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// OutlineSegment is one segment of a glyph outline.
type OutlineSegment struct {
	Op OutlineOp

	// Points holds the control points followed by the target point.
	// MoveTo and LineTo use one point, QuadTo two and CubicTo three.
	Points [3]OutlinePoint
}

// Outline is the vector outline of a glyph at one size.
type Outline struct {
	GID      GlyphID
	Segments []OutlineSegment
	Advance  float32
}

// IsEmpty reports whether the outline has no segments, as for a space.
func (o *Outline) IsEmpty() bool {
	return len(o.Segments) == 0
}

// Outline extracts the outline of gid at size pixels per em.
func (f *Font) Outline(gid GlyphID, size float64) (*Outline, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	segments, err := f.outlines.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), ppem(size), nil)
	if err != nil {
		return nil, fmt.Errorf("text: load glyph %d: %w", gid, err)
	}
	advance, err := f.advance(gid, size)
	if err != nil {
		return nil, err
	}

	o := &Outline{
		GID:      gid,
		Segments: make([]OutlineSegment, 0, len(segments)),
		Advance:  advance,
	}
	for _, seg := range segments {
		var out OutlineSegment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = OutlineOpMoveTo
			out.Points[0] = toOutlinePoint(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			out.Op = OutlineOpLineTo
			out.Points[0] = toOutlinePoint(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			out.Op = OutlineOpQuadTo
			out.Points[0] = toOutlinePoint(seg.Args[0])
			out.Points[1] = toOutlinePoint(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			out.Op = OutlineOpCubicTo
			out.Points[0] = toOutlinePoint(seg.Args[0])
			out.Points[1] = toOutlinePoint(seg.Args[1])
			out.Points[2] = toOutlinePoint(seg.Args[2])
		}
		o.Segments = append(o.Segments, out)
	}
	return o, nil
}

// toOutlinePoint converts from sfnt's y-down space.
func toOutlinePoint(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{X: fixedToFloat(p.X), Y: -fixedToFloat(p.Y)}
}

// AppendTo adds the outline to p. Each contour is closed.
func (o *Outline) AppendTo(p *vg.Path) error {
	open := false
	for _, seg := range o.Segments {
		pt := seg.Points
		var err error
		switch seg.Op {
		case OutlineOpMoveTo:
			if open {
				if err := p.ClosePath(); err != nil {
					return err
				}
			}
			err = p.MoveTo(float64(pt[0].X), float64(pt[0].Y))
			open = true
		case OutlineOpLineTo:
			err = p.LineTo(float64(pt[0].X), float64(pt[0].Y))
		case OutlineOpQuadTo:
			err = p.QuadTo(float64(pt[0].X), float64(pt[0].Y), float64(pt[1].X), float64(pt[1].Y))
		case OutlineOpCubicTo:
			err = p.CubicTo(float64(pt[0].X), float64(pt[0].Y), float64(pt[1].X), float64(pt[1].Y),
				float64(pt[2].X), float64(pt[2].Y))
		}
		if err != nil {
			return err
		}
	}
	if open {
		return p.ClosePath()
	}
	return nil
}
