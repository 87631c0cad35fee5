package vg

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

// Path is an owned engine path object.
//
// Segment methods dispatch one append call each, unless the path is inside
// a Queue scope, in which case they are staged and sent in one call when
// the scope ends.
type Path struct {
	ctx *Context
	own *owner

	datatype PathDatatype

	queuing bool
	ops     []byte
	data    []byte
}

// NewPath creates a path. Defaults: standard format, float coordinates,
// scale 1, bias 0, no capacity hints, every capability.
func NewPath(ctx *Context, opts ...PathOption) (*Path, error) {
	o := defaultPathOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.datatype < PathDatatypeS8 || o.datatype > PathDatatypeF {
		return nil, fmt.Errorf("%w: path datatype %d", ErrShape, o.datatype)
	}

	e := ctx.e
	h, err := callValue(e, "create path", func() Handle {
		return e.CreatePath(o.format, o.datatype, o.scale, o.bias, o.segmentHint, o.coordHint, o.capabilities.Int())
	})
	if err != nil {
		return nil, err
	}
	return &Path{
		ctx:      ctx,
		own:      newOwner(ctx, h, "path", Engine.DestroyPath),
		datatype: o.datatype,
	}, nil
}

// Handle returns the engine handle, or InvalidHandle after Destroy.
func (p *Path) Handle() Handle { return handleOf(p.own) }

// Destroy releases the path. Pending queued segments are dropped.
// Calling Destroy again does nothing.
func (p *Path) Destroy() error {
	p.ops, p.data = nil, nil
	return p.own.destroy()
}

// Datatype returns the coordinate storage type the path was created with.
func (p *Path) Datatype() PathDatatype { return p.datatype }

// direct returns the handle for calls that edit the path outside the
// segment methods. Those are refused while queuing so staged segments
// keep their order.
func (p *Path) direct(op string) (Handle, error) {
	h, err := p.own.handle()
	if err != nil {
		return InvalidHandle, err
	}
	if p.queuing {
		return InvalidHandle, fmt.Errorf("%w: %s", ErrQueueActive, op)
	}
	return h, nil
}

// Append adds a segment of any type.
func (p *Path) Append(t SegmentType, absolute bool, coords ...float64) error {
	s, err := EncodeSegment(t, absolute, coords...)
	if err != nil {
		return err
	}
	return p.add(s)
}

// add validates s against the path and dispatches or stages it.
func (p *Path) add(s Segment) error {
	h, err := p.own.handle()
	if err != nil {
		return err
	}
	data, err := encodeCoords(nil, p.datatype, s.Coords)
	if err != nil {
		return fmt.Errorf("%v segment: %w", s.Type, err)
	}

	if p.queuing {
		p.ops = append(p.ops, s.Opcode())
		p.data = append(p.data, data...)
		return nil
	}
	e := p.ctx.e
	return call(e, "append path data", func() { e.AppendPathData(h, []byte{s.Opcode()}, data) })
}

// Queue stages every segment added while fn runs and appends them in one
// call when fn returns, fails or panics. Segments staged before a failure
// are still appended; an append error is joined with the error of fn.
// Queue scopes do not nest.
func (p *Path) Queue(fn func() error) (err error) {
	if _, err := p.own.handle(); err != nil {
		return err
	}
	if p.queuing {
		return ErrQueueActive
	}

	p.queuing = true
	p.ops, p.data = nil, nil
	defer func() {
		p.queuing = false
		if ferr := p.flush(); ferr != nil {
			err = errors.Join(err, ferr)
		}
	}()
	return fn()
}

// flush sends the staged segments and clears the buffers.
func (p *Path) flush() error {
	ops, data := p.ops, p.data
	p.ops, p.data = nil, nil
	if len(ops) == 0 {
		return nil
	}

	h, err := p.own.handle()
	if err != nil {
		return err
	}
	Logger().Debug("vg: flushing queued segments", "segments", len(ops), "bytes", len(data))
	e := p.ctx.e
	return call(e, "append path data", func() { e.AppendPathData(h, ops, data) })
}

// Pending returns the number of staged segments.
func (p *Path) Pending() int { return len(p.ops) }

func (p *Path) ClosePath() error {
	return p.Append(SegmentClose, true)
}

func (p *Path) MoveTo(x, y float64) error {
	return p.Append(SegmentMove, true, x, y)
}

func (p *Path) MoveToRel(dx, dy float64) error {
	return p.Append(SegmentMove, false, dx, dy)
}

func (p *Path) LineTo(x, y float64) error {
	return p.Append(SegmentLine, true, x, y)
}

func (p *Path) LineToRel(dx, dy float64) error {
	return p.Append(SegmentLine, false, dx, dy)
}

func (p *Path) HLineTo(x float64) error {
	return p.Append(SegmentHLine, true, x)
}

func (p *Path) HLineToRel(dx float64) error {
	return p.Append(SegmentHLine, false, dx)
}

func (p *Path) VLineTo(y float64) error {
	return p.Append(SegmentVLine, true, y)
}

func (p *Path) VLineToRel(dy float64) error {
	return p.Append(SegmentVLine, false, dy)
}

// QuadTo adds a quadratic Bezier with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x, y float64) error {
	return p.Append(SegmentQuad, true, x1, y1, x, y)
}

func (p *Path) QuadToRel(dx1, dy1, dx, dy float64) error {
	return p.Append(SegmentQuad, false, dx1, dy1, dx, dy)
}

// CubicTo adds a cubic Bezier with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x, y float64) error {
	return p.Append(SegmentCubic, true, x1, y1, x2, y2, x, y)
}

func (p *Path) CubicToRel(dx1, dy1, dx2, dy2, dx, dy float64) error {
	return p.Append(SegmentCubic, false, dx1, dy1, dx2, dy2, dx, dy)
}

// SmoothQuadTo adds a quadratic Bezier whose control point reflects the
// previous one.
func (p *Path) SmoothQuadTo(x, y float64) error {
	return p.Append(SegmentSmoothQuad, true, x, y)
}

func (p *Path) SmoothQuadToRel(dx, dy float64) error {
	return p.Append(SegmentSmoothQuad, false, dx, dy)
}

// SmoothCubicTo adds a cubic Bezier whose first control point reflects the
// previous one.
func (p *Path) SmoothCubicTo(x2, y2, x, y float64) error {
	return p.Append(SegmentSmoothCubic, true, x2, y2, x, y)
}

func (p *Path) SmoothCubicToRel(dx2, dy2, dx, dy float64) error {
	return p.Append(SegmentSmoothCubic, false, dx2, dy2, dx, dy)
}

// ArcTo adds an elliptical arc to (x, y). radii is one radius used for
// both axes, or the horizontal and vertical radii. rotation is in degrees.
func (p *Path) ArcTo(kind ArcKind, rotation, x, y float64, radii ...float64) error {
	s, err := encodeArc(kind, true, rotation, x, y, radii...)
	if err != nil {
		return err
	}
	return p.add(s)
}

func (p *Path) ArcToRel(kind ArcKind, rotation, dx, dy float64, radii ...float64) error {
	s, err := encodeArc(kind, false, rotation, dx, dy, radii...)
	if err != nil {
		return err
	}
	return p.add(s)
}

// Clear removes every segment and sets the capabilities to caps.
func (p *Path) Clear(caps BitMask) error {
	h, err := p.direct("clear path")
	if err != nil {
		return err
	}
	e := p.ctx.e
	return call(e, "clear path", func() { e.ClearPath(h, caps.Int()) })
}

// Capabilities returns the enabled capabilities, named by
// PathCapabilityNames.
func (p *Path) Capabilities() (BitMask, error) {
	h, err := p.own.handle()
	if err != nil {
		return BitMask{}, err
	}
	e := p.ctx.e
	v, err := callValue(e, "get path capabilities", func() uint32 { return e.GetPathCapabilities(h) })
	if err != nil {
		return BitMask{}, err
	}
	return PathCapabilityNames.FromInt(v), nil
}

// RemoveCapabilities disables caps. Capabilities cannot be re-enabled.
func (p *Path) RemoveCapabilities(caps BitMask) error {
	h, err := p.own.handle()
	if err != nil {
		return err
	}
	e := p.ctx.e
	return call(e, "remove path capabilities", func() { e.RemovePathCapabilities(h, caps.Int()) })
}

// AppendPath appends the segments of src.
func (p *Path) AppendPath(src *Path) error {
	h, err := p.direct("append path")
	if err != nil {
		return err
	}
	sh, err := src.own.handle()
	if err != nil {
		return err
	}
	e := p.ctx.e
	return call(e, "append path", func() { e.AppendPath(h, sh) })
}

// ModifyCoords replaces the coordinates of numSegments segments starting
// at startIndex. coords must match the arity of those segments.
func (p *Path) ModifyCoords(startIndex, numSegments int, coords ...float64) error {
	h, err := p.direct("modify path coords")
	if err != nil {
		return err
	}
	data, err := encodeCoords(nil, p.datatype, coords)
	if err != nil {
		return err
	}
	e := p.ctx.e
	return call(e, "modify path coords", func() {
		e.ModifyPathCoords(h, int32(startIndex), int32(numSegments), data)
	})
}

// TransformFrom appends src transformed by the current path matrix.
func (p *Path) TransformFrom(src *Path) error {
	h, err := p.direct("transform path")
	if err != nil {
		return err
	}
	sh, err := src.own.handle()
	if err != nil {
		return err
	}
	e := p.ctx.e
	return call(e, "transform path", func() { e.TransformPath(h, sh) })
}

// Interpolate appends the interpolation of start and end at amount. It
// reports false when the two paths are not compatible.
func (p *Path) Interpolate(start, end *Path, amount float32) (bool, error) {
	h, err := p.direct("interpolate path")
	if err != nil {
		return false, err
	}
	sh, err := start.own.handle()
	if err != nil {
		return false, err
	}
	eh, err := end.own.handle()
	if err != nil {
		return false, err
	}
	e := p.ctx.e
	return callValue(e, "interpolate path", func() bool { return e.InterpolatePath(h, sh, eh, amount) })
}

// Length returns the length of numSegments segments from startSegment.
func (p *Path) Length(startSegment, numSegments int) (float32, error) {
	h, err := p.own.handle()
	if err != nil {
		return 0, err
	}
	e := p.ctx.e
	return callValue(e, "path length", func() float32 {
		return e.PathLength(h, int32(startSegment), int32(numSegments))
	})
}

// PointAlong returns the point at distance along a range of segments and
// the unit tangent there.
func (p *Path) PointAlong(startSegment, numSegments int, distance float32) (point, tangent f32.Vec2, err error) {
	h, err := p.own.handle()
	if err != nil {
		return point, tangent, err
	}
	e := p.ctx.e
	err = call(e, "point along path", func() {
		point[0], point[1], tangent[0], tangent[1] = e.PointAlongPath(h, int32(startSegment), int32(numSegments), distance)
	})
	if err != nil {
		return f32.Vec2{}, f32.Vec2{}, err
	}
	return point, tangent, nil
}

// Bounds is an axis aligned box.
type Bounds struct {
	X, Y, Width, Height float32
}

// Bounds returns the bounding box of the path in user coordinates.
func (p *Path) Bounds() (Bounds, error) {
	return p.bounds("path bounds", Engine.PathBounds)
}

// TransformedBounds returns the bounding box after the path matrix.
func (p *Path) TransformedBounds() (Bounds, error) {
	return p.bounds("path transformed bounds", Engine.PathTransformedBounds)
}

func (p *Path) bounds(op string, fn func(Engine, Handle) (float32, float32, float32, float32)) (Bounds, error) {
	h, err := p.own.handle()
	if err != nil {
		return Bounds{}, err
	}
	var b Bounds
	e := p.ctx.e
	if err := call(e, op, func() { b.X, b.Y, b.Width, b.Height = fn(e, h) }); err != nil {
		return Bounds{}, err
	}
	return b, nil
}

// Draw fills and/or strokes the path with the current paints.
func (p *Path) Draw(modes PaintMode) error {
	h, err := p.own.handle()
	if err != nil {
		return err
	}
	e := p.ctx.e
	return call(e, "draw path", func() { e.DrawPath(h, modes.Int()) })
}

// Params returns generic access to the path parameters.
func (p *Path) Params() (*Params, error) {
	h, err := p.own.handle()
	if err != nil {
		return nil, err
	}
	return newObjectParams(PathParams, p.ctx.e, h), nil
}

func (p *Path) Format() (PathFormat, error) {
	return pathParam(p, getEnum[PathFormat], PathParamFormat)
}

func (p *Path) Scale() (float32, error) {
	return pathParam(p, getFloat, PathParamScale)
}

func (p *Path) Bias() (float32, error) {
	return pathParam(p, getFloat, PathParamBias)
}

func (p *Path) NumSegments() (int, error) {
	return pathParam(p, getInt, PathParamNumSegments)
}

func (p *Path) NumCoords() (int, error) {
	return pathParam(p, getInt, PathParamNumCoords)
}

func pathParam[T any](p *Path, get func(*Params, ParamID) (T, error), id ParamID) (T, error) {
	params, err := p.Params()
	if err != nil {
		var zero T
		return zero, err
	}
	return get(params, id)
}

// encodeCoords appends coords to dst in the storage type dt, in native
// byte order.
func encodeCoords(dst []byte, dt PathDatatype, coords []float64) ([]byte, error) {
	for i, c := range coords {
		if math.IsNaN(c) {
			return nil, fmt.Errorf("coordinate %d: %w: NaN", i, ErrCoordinateRange)
		}
		switch dt {
		case PathDatatypeS8:
			v, err := roundCoord(c, math.MinInt8, math.MaxInt8)
			if err != nil {
				return nil, fmt.Errorf("coordinate %d: %w", i, err)
			}
			dst = append(dst, byte(int8(v)))
		case PathDatatypeS16:
			v, err := roundCoord(c, math.MinInt16, math.MaxInt16)
			if err != nil {
				return nil, fmt.Errorf("coordinate %d: %w", i, err)
			}
			dst = binary.NativeEndian.AppendUint16(dst, uint16(int16(v)))
		case PathDatatypeS32:
			v, err := roundCoord(c, math.MinInt32, math.MaxInt32)
			if err != nil {
				return nil, fmt.Errorf("coordinate %d: %w", i, err)
			}
			dst = binary.NativeEndian.AppendUint32(dst, uint32(int32(v)))
		case PathDatatypeF:
			if math.Abs(c) > math.MaxFloat32 {
				return nil, fmt.Errorf("coordinate %d: %w: %g", i, ErrCoordinateRange, c)
			}
			dst = binary.NativeEndian.AppendUint32(dst, math.Float32bits(float32(c)))
		default:
			return nil, fmt.Errorf("%w: path datatype %d", ErrShape, dt)
		}
	}
	return dst, nil
}

func roundCoord(c float64, lo, hi int64) (int64, error) {
	r := math.Round(c)
	if r < float64(lo) || r > float64(hi) {
		return 0, fmt.Errorf("%w: %g not in [%d, %d]", ErrCoordinateRange, c, lo, hi)
	}
	return int64(r), nil
}
