package vg

import (
	"fmt"
	"math"
)

// SegmentType is a path command. The order is fixed by the engine: the
// opcode of a segment is 2*type, plus one for relative coordinates.
type SegmentType uint8

const (
	SegmentClose SegmentType = iota
	SegmentMove
	SegmentLine
	SegmentHLine
	SegmentVLine
	SegmentQuad
	SegmentCubic
	SegmentSmoothQuad
	SegmentSmoothCubic
	SegmentSmallCCWArc
	SegmentSmallCWArc
	SegmentLargeCCWArc
	SegmentLargeCWArc

	numSegmentTypes
)

var segmentInfo = [numSegmentTypes]struct {
	name  string
	arity int
}{
	SegmentClose:       {"close", 0},
	SegmentMove:        {"move", 2},
	SegmentLine:        {"line", 2},
	SegmentHLine:       {"hline", 1},
	SegmentVLine:       {"vline", 1},
	SegmentQuad:        {"quad", 4},
	SegmentCubic:       {"cubic", 6},
	SegmentSmoothQuad:  {"smooth-quad", 2},
	SegmentSmoothCubic: {"smooth-cubic", 4},
	SegmentSmallCCWArc: {"small-ccw-arc", 5},
	SegmentSmallCWArc:  {"small-cw-arc", 5},
	SegmentLargeCCWArc: {"large-ccw-arc", 5},
	SegmentLargeCWArc:  {"large-cw-arc", 5},
}

func (t SegmentType) valid() bool { return t < numSegmentTypes }

// Arity returns the number of coordinates a segment of type t carries,
// or -1 for an unknown type.
func (t SegmentType) Arity() int {
	if !t.valid() {
		return -1
	}
	return segmentInfo[t].arity
}

func (t SegmentType) String() string {
	if !t.valid() {
		return fmt.Sprintf("SegmentType(%d)", t)
	}
	return segmentInfo[t].name
}

// IsArc reports whether t is one of the four elliptical arc types.
func (t SegmentType) IsArc() bool {
	return t >= SegmentSmallCCWArc && t <= SegmentLargeCWArc
}

// Opcode returns the engine command byte of a segment.
func Opcode(t SegmentType, absolute bool) uint8 {
	op := uint8(t) * 2
	if !absolute {
		op++
	}
	return op
}

// ArcKind selects one of the four arcs through two points.
type ArcKind uint8

const (
	SmallCCW ArcKind = iota
	SmallCW
	LargeCCW
	LargeCW
)

// Segment returns the segment type of the arc kind.
func (k ArcKind) Segment() SegmentType {
	return SegmentSmallCCWArc + SegmentType(k)
}

// Segment is one encoded path command.
type Segment struct {
	Type     SegmentType
	Absolute bool
	Coords   []float64
}

// Opcode returns the engine command byte of s.
func (s Segment) Opcode() uint8 { return Opcode(s.Type, s.Absolute) }

// EncodeSegment validates coords against the arity of t.
func EncodeSegment(t SegmentType, absolute bool, coords ...float64) (Segment, error) {
	if !t.valid() {
		return Segment{}, fmt.Errorf("%w: unknown segment type %d", ErrShape, t)
	}
	if want := t.Arity(); len(coords) != want {
		return Segment{}, fmt.Errorf("%w: %v segment takes %d coordinates, got %d", ErrShape, t, want, len(coords))
	}
	for i, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Segment{}, fmt.Errorf("%w: %v coordinate %d is %v", ErrCoordinateRange, t, i, c)
		}
	}
	return Segment{Type: t, Absolute: absolute, Coords: coords}, nil
}

// NormalizeRadii turns an arc radius argument into (rh, rv). One value is
// used for both radii.
func NormalizeRadii(r ...float64) (rh, rv float64, err error) {
	switch len(r) {
	case 1:
		return r[0], r[0], nil
	case 2:
		return r[0], r[1], nil
	default:
		return 0, 0, fmt.Errorf("%w: arc takes 1 or 2 radii, got %d", ErrShape, len(r))
	}
}

// encodeArc builds the arc payload in engine order: rh, rv, rotation, x, y.
func encodeArc(kind ArcKind, absolute bool, rotation, x, y float64, radii ...float64) (Segment, error) {
	if kind > LargeCW {
		return Segment{}, fmt.Errorf("%w: unknown arc kind %d", ErrShape, kind)
	}
	rh, rv, err := NormalizeRadii(radii...)
	if err != nil {
		return Segment{}, err
	}
	return EncodeSegment(kind.Segment(), absolute, rh, rv, rotation, x, y)
}
