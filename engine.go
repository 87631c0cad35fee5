package vg

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/image/math/f32"
)

// Engine is the flat call surface of an OpenVG 1.1 implementation.
//
// Methods mirror the native entry points one to one and carry only
// primitive arguments. Errors are not returned: the engine leaves the code
// of the most recent failure in its trap register, read by GetError.
// Slices passed to getters are filled in place.
type Engine interface {
	GetError() ErrorCode
	Flush()
	Finish()

	Seti(id ParamID, v int32)
	Setf(id ParamID, v float32)
	Setiv(id ParamID, v []int32)
	Setfv(id ParamID, v []float32)
	Geti(id ParamID) int32
	Getf(id ParamID) float32
	GetVectorSize(id ParamID) int32
	Getiv(id ParamID, out []int32)
	Getfv(id ParamID, out []float32)

	SetParameteri(h Handle, id ParamID, v int32)
	SetParameterf(h Handle, id ParamID, v float32)
	SetParameteriv(h Handle, id ParamID, v []int32)
	SetParameterfv(h Handle, id ParamID, v []float32)
	GetParameteri(h Handle, id ParamID) int32
	GetParameterf(h Handle, id ParamID) float32
	GetParameterVectorSize(h Handle, id ParamID) int32
	GetParameteriv(h Handle, id ParamID, out []int32)
	GetParameterfv(h Handle, id ParamID, out []float32)

	// Matrices travel in the engine's column-major order.
	LoadIdentity()
	LoadMatrix(m *f32.Mat3)
	GetMatrix(m *f32.Mat3)
	MultMatrix(m *f32.Mat3)
	Translate(tx, ty float32)
	Scale(sx, sy float32)
	Shear(shx, shy float32)
	Rotate(angle float32)

	Mask(mask Handle, op MaskOperation, x, y, width, height int32)
	RenderToMask(path Handle, modes uint32, op MaskOperation)
	CreateMaskLayer(width, height int32) Handle
	DestroyMaskLayer(layer Handle)
	FillMaskLayer(layer Handle, x, y, width, height int32, value float32)
	CopyMask(layer Handle, dx, dy, sx, sy, width, height int32)
	Clear(x, y, width, height int32)

	CreatePath(format PathFormat, datatype PathDatatype, scale, bias float32,
		segmentCapacityHint, coordCapacityHint int32, capabilities uint32) Handle
	ClearPath(path Handle, capabilities uint32)
	DestroyPath(path Handle)
	RemovePathCapabilities(path Handle, capabilities uint32)
	GetPathCapabilities(path Handle) uint32
	AppendPath(dst, src Handle)
	// AppendPathData appends one segment per opcode byte. data holds the
	// coordinates encoded in the path datatype.
	AppendPathData(dst Handle, segments []byte, data []byte)
	ModifyPathCoords(dst Handle, startIndex, numSegments int32, data []byte)
	TransformPath(dst, src Handle)
	InterpolatePath(dst, start, end Handle, amount float32) bool
	PathLength(path Handle, startSegment, numSegments int32) float32
	PointAlongPath(path Handle, startSegment, numSegments int32, distance float32) (x, y, tx, ty float32)
	PathBounds(path Handle) (minX, minY, width, height float32)
	PathTransformedBounds(path Handle) (minX, minY, width, height float32)
	DrawPath(path Handle, modes uint32)

	CreatePaint() Handle
	DestroyPaint(paint Handle)
	SetPaint(paint Handle, modes uint32)
	GetPaint(mode uint32) Handle
	SetColor(paint Handle, rgba uint32)
	GetColor(paint Handle) uint32
	PaintPattern(paint, pattern Handle)

	CreateImage(format ImageFormat, width, height int32, quality uint32) Handle
	DestroyImage(image Handle)
	ClearImage(image Handle, x, y, width, height int32)
	ImageSubData(image Handle, data []byte, stride int32, format ImageFormat, x, y, width, height int32)
	GetImageSubData(image Handle, data []byte, stride int32, format ImageFormat, x, y, width, height int32)
	ChildImage(parent Handle, x, y, width, height int32) Handle
	GetParent(image Handle) Handle
	CopyImage(dst Handle, dx, dy int32, src Handle, sx, sy, width, height int32, dither bool)
	DrawImage(image Handle)

	CreateFont(glyphCapacityHint int32) Handle
	DestroyFont(font Handle)
	SetGlyphToPath(font Handle, index uint32, path Handle, hinted bool, origin, escapement f32.Vec2)
	SetGlyphToImage(font Handle, index uint32, image Handle, origin, escapement f32.Vec2)
	ClearGlyph(font Handle, index uint32)
	DrawGlyph(font Handle, index uint32, modes uint32, autoHinting bool)
	DrawGlyphs(font Handle, indices []uint32, adjustX, adjustY []float32, modes uint32, autoHinting bool)

	GetString(name StringID) string
}

// Quad is four corner points in drawing order.
type Quad [4]f32.Vec2

// Utility is the flat call surface of the VGU library. Each call returns
// its error code directly.
type Utility interface {
	Line(path Handle, x0, y0, x1, y1 float32) UtilityCode
	Polygon(path Handle, points []float32, closed bool) UtilityCode
	Rect(path Handle, x, y, width, height float32) UtilityCode
	RoundRect(path Handle, x, y, width, height, arcWidth, arcHeight float32) UtilityCode
	Ellipse(path Handle, cx, cy, width, height float32) UtilityCode
	Arc(path Handle, x, y, width, height, startAngle, angleExtent float32, arcType ArcType) UtilityCode
	ComputeWarpQuadToSquare(src Quad, m *f32.Mat3) UtilityCode
	ComputeWarpSquareToQuad(dst Quad, m *f32.Mat3) UtilityCode
	ComputeWarpQuadToQuad(dst, src Quad, m *f32.Mat3) UtilityCode
}

// EngineFactory opens an engine.
type EngineFactory func() (Engine, error)

// ErrEngineNotRegistered is returned by OpenEngine for an unknown name.
var ErrEngineNotRegistered = errors.New("vg: engine not registered")

var (
	enginesMu sync.RWMutex
	engines   = make(map[string]EngineFactory)
)

// RegisterEngine registers an engine factory under name.
// This is typically called from init() functions in engine packages.
// A factory registered under an existing name replaces it.
func RegisterEngine(name string, factory EngineFactory) {
	enginesMu.Lock()
	defer enginesMu.Unlock()
	engines[name] = factory
}

// UnregisterEngine removes an engine from the registry.
// This is useful for testing.
func UnregisterEngine(name string) {
	enginesMu.Lock()
	defer enginesMu.Unlock()
	delete(engines, name)
}

// Engines returns the registered engine names in sorted order.
func Engines() []string {
	enginesMu.RLock()
	defer enginesMu.RUnlock()

	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// OpenEngine opens the engine registered under name.
func OpenEngine(name string) (Engine, error) {
	enginesMu.RLock()
	factory, ok := engines[name]
	enginesMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEngineNotRegistered, name)
	}
	e, err := factory()
	if err != nil {
		return nil, fmt.Errorf("vg: open engine %q: %w", name, err)
	}
	if e == nil {
		return nil, fmt.Errorf("vg: open engine %q: %w", name, ErrNilEngine)
	}
	Logger().Info("vg: engine opened", "name", name)
	return e, nil
}
