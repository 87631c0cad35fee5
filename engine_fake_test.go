package vg

import (
	"slices"

	"golang.org/x/image/math/f32"
)

// paramKey addresses one parameter; h is InvalidHandle for the context.
type paramKey struct {
	h  Handle
	id ParamID
}

type appendCall struct {
	h    Handle
	ops  []byte
	data []byte
}

// fakeEngine records every call and keeps parameter state in maps. A code
// in fail is left in the trap register whenever the named method runs.
type fakeEngine struct {
	calls []string
	fail  map[string]ErrorCode
	err   ErrorCode

	ints   map[paramKey]int32
	floats map[paramKey]float32
	ivs    map[paramKey][]int32
	fvs    map[paramKey][]float32

	next      Handle
	destroyed []Handle
	appends   []appendCall
	modified  []appendCall
	matrix    f32.Mat3
	paints    map[uint32]Handle
	colors    map[Handle]uint32
	parents   map[Handle]Handle
	pixels    map[Handle][]byte
	glyphs    map[uint32]Handle
	drawn     []uint32
	adjustX   []float32
	strings   map[StringID]string

	utilFail map[string]UtilityCode
	polygon  []float32
	warp     f32.Mat3
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		fail:     make(map[string]ErrorCode),
		ints:     make(map[paramKey]int32),
		floats:   make(map[paramKey]float32),
		ivs:      make(map[paramKey][]int32),
		fvs:      make(map[paramKey][]float32),
		next:     100,
		paints:   make(map[uint32]Handle),
		colors:   make(map[Handle]uint32),
		parents:  make(map[Handle]Handle),
		pixels:   make(map[Handle][]byte),
		glyphs:   make(map[uint32]Handle),
		strings:  make(map[StringID]string),
		utilFail: make(map[string]UtilityCode),
	}
}

func (e *fakeEngine) rec(name string) {
	e.calls = append(e.calls, name)
	if code, ok := e.fail[name]; ok && e.err == NoError {
		e.err = code
	}
}

func (e *fakeEngine) count(name string) int {
	n := 0
	for _, c := range e.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (e *fakeEngine) newHandle() Handle {
	e.next++
	return e.next
}

func (e *fakeEngine) GetError() ErrorCode {
	err := e.err
	e.err = NoError
	return err
}

func (e *fakeEngine) Flush()  { e.rec("Flush") }
func (e *fakeEngine) Finish() { e.rec("Finish") }

func (e *fakeEngine) Seti(id ParamID, v int32) {
	e.rec("Seti")
	e.ints[paramKey{id: id}] = v
}

func (e *fakeEngine) Setf(id ParamID, v float32) {
	e.rec("Setf")
	e.floats[paramKey{id: id}] = v
}

func (e *fakeEngine) Setiv(id ParamID, v []int32) {
	e.rec("Setiv")
	e.ivs[paramKey{id: id}] = slices.Clone(v)
}

func (e *fakeEngine) Setfv(id ParamID, v []float32) {
	e.rec("Setfv")
	e.fvs[paramKey{id: id}] = slices.Clone(v)
}

func (e *fakeEngine) Geti(id ParamID) int32 {
	e.rec("Geti")
	return e.ints[paramKey{id: id}]
}

func (e *fakeEngine) Getf(id ParamID) float32 {
	e.rec("Getf")
	return e.floats[paramKey{id: id}]
}

func (e *fakeEngine) GetVectorSize(id ParamID) int32 {
	e.rec("GetVectorSize")
	return e.vectorSize(paramKey{id: id})
}

func (e *fakeEngine) vectorSize(k paramKey) int32 {
	if v, ok := e.fvs[k]; ok {
		return int32(len(v))
	}
	return int32(len(e.ivs[k]))
}

func (e *fakeEngine) Getiv(id ParamID, out []int32) {
	e.rec("Getiv")
	copy(out, e.ivs[paramKey{id: id}])
}

func (e *fakeEngine) Getfv(id ParamID, out []float32) {
	e.rec("Getfv")
	copy(out, e.fvs[paramKey{id: id}])
}

func (e *fakeEngine) SetParameteri(h Handle, id ParamID, v int32) {
	e.rec("SetParameteri")
	e.ints[paramKey{h, id}] = v
}

func (e *fakeEngine) SetParameterf(h Handle, id ParamID, v float32) {
	e.rec("SetParameterf")
	e.floats[paramKey{h, id}] = v
}

func (e *fakeEngine) SetParameteriv(h Handle, id ParamID, v []int32) {
	e.rec("SetParameteriv")
	e.ivs[paramKey{h, id}] = slices.Clone(v)
}

func (e *fakeEngine) SetParameterfv(h Handle, id ParamID, v []float32) {
	e.rec("SetParameterfv")
	e.fvs[paramKey{h, id}] = slices.Clone(v)
}

func (e *fakeEngine) GetParameteri(h Handle, id ParamID) int32 {
	e.rec("GetParameteri")
	return e.ints[paramKey{h, id}]
}

func (e *fakeEngine) GetParameterf(h Handle, id ParamID) float32 {
	e.rec("GetParameterf")
	return e.floats[paramKey{h, id}]
}

func (e *fakeEngine) GetParameterVectorSize(h Handle, id ParamID) int32 {
	e.rec("GetParameterVectorSize")
	return e.vectorSize(paramKey{h, id})
}

func (e *fakeEngine) GetParameteriv(h Handle, id ParamID, out []int32) {
	e.rec("GetParameteriv")
	copy(out, e.ivs[paramKey{h, id}])
}

func (e *fakeEngine) GetParameterfv(h Handle, id ParamID, out []float32) {
	e.rec("GetParameterfv")
	copy(out, e.fvs[paramKey{h, id}])
}

func (e *fakeEngine) LoadIdentity() {
	e.rec("LoadIdentity")
	e.matrix = *Identity().Wire()
}

func (e *fakeEngine) LoadMatrix(m *f32.Mat3) {
	e.rec("LoadMatrix")
	e.matrix = *m
}

func (e *fakeEngine) GetMatrix(m *f32.Mat3) {
	e.rec("GetMatrix")
	*m = e.matrix
}

func (e *fakeEngine) MultMatrix(m *f32.Mat3) {
	e.rec("MultMatrix")
	cur := MatrixFromWire(&e.matrix)
	e.matrix = *cur.Multiply(MatrixFromWire(m)).Wire()
}

func (e *fakeEngine) Translate(tx, ty float32) { e.MultMatrix(Translate(tx, ty).Wire()) }
func (e *fakeEngine) Scale(sx, sy float32)     { e.MultMatrix(Scale(sx, sy).Wire()) }
func (e *fakeEngine) Shear(shx, shy float32)   { e.MultMatrix(Shear(shx, shy).Wire()) }
func (e *fakeEngine) Rotate(angle float32)     { e.MultMatrix(Rotate(angle).Wire()) }

func (e *fakeEngine) Mask(Handle, MaskOperation, int32, int32, int32, int32) { e.rec("Mask") }
func (e *fakeEngine) RenderToMask(Handle, uint32, MaskOperation)            { e.rec("RenderToMask") }

func (e *fakeEngine) CreateMaskLayer(int32, int32) Handle {
	e.rec("CreateMaskLayer")
	return e.newHandle()
}

func (e *fakeEngine) DestroyMaskLayer(h Handle) {
	e.rec("DestroyMaskLayer")
	e.destroyed = append(e.destroyed, h)
}

func (e *fakeEngine) FillMaskLayer(Handle, int32, int32, int32, int32, float32) {
	e.rec("FillMaskLayer")
}

func (e *fakeEngine) CopyMask(Handle, int32, int32, int32, int32, int32, int32) {
	e.rec("CopyMask")
}

func (e *fakeEngine) Clear(int32, int32, int32, int32) { e.rec("Clear") }

func (e *fakeEngine) CreatePath(format PathFormat, datatype PathDatatype, scale, bias float32,
	segmentCapacityHint, coordCapacityHint int32, capabilities uint32,
) Handle {
	e.rec("CreatePath")
	h := e.newHandle()
	e.ints[paramKey{h, PathParamFormat}] = int32(format)
	e.ints[paramKey{h, PathParamDatatype}] = int32(datatype)
	e.floats[paramKey{h, PathParamScale}] = scale
	e.floats[paramKey{h, PathParamBias}] = bias
	e.ints[paramKey{h, -1}] = int32(capabilities)
	return h
}

func (e *fakeEngine) ClearPath(h Handle, capabilities uint32) {
	e.rec("ClearPath")
	e.ints[paramKey{h, PathParamNumSegments}] = 0
	e.ints[paramKey{h, -1}] = int32(capabilities)
}

func (e *fakeEngine) DestroyPath(h Handle) {
	e.rec("DestroyPath")
	e.destroyed = append(e.destroyed, h)
}

func (e *fakeEngine) RemovePathCapabilities(h Handle, capabilities uint32) {
	e.rec("RemovePathCapabilities")
	e.ints[paramKey{h, -1}] &^= int32(capabilities)
}

func (e *fakeEngine) GetPathCapabilities(h Handle) uint32 {
	e.rec("GetPathCapabilities")
	return uint32(e.ints[paramKey{h, -1}])
}

func (e *fakeEngine) AppendPath(Handle, Handle) { e.rec("AppendPath") }

func (e *fakeEngine) AppendPathData(dst Handle, segments []byte, data []byte) {
	e.rec("AppendPathData")
	e.appends = append(e.appends, appendCall{dst, slices.Clone(segments), slices.Clone(data)})
	e.ints[paramKey{dst, PathParamNumSegments}] += int32(len(segments))
}

func (e *fakeEngine) ModifyPathCoords(dst Handle, startIndex, numSegments int32, data []byte) {
	e.rec("ModifyPathCoords")
	e.modified = append(e.modified, appendCall{dst, []byte{byte(startIndex), byte(numSegments)}, slices.Clone(data)})
}

func (e *fakeEngine) TransformPath(Handle, Handle) { e.rec("TransformPath") }

func (e *fakeEngine) InterpolatePath(Handle, Handle, Handle, float32) bool {
	e.rec("InterpolatePath")
	return true
}

func (e *fakeEngine) PathLength(Handle, int32, int32) float32 {
	e.rec("PathLength")
	return 42
}

func (e *fakeEngine) PointAlongPath(Handle, int32, int32, float32) (x, y, tx, ty float32) {
	e.rec("PointAlongPath")
	return 1, 2, 0, 1
}

func (e *fakeEngine) PathBounds(Handle) (minX, minY, width, height float32) {
	e.rec("PathBounds")
	return 0, 0, 10, 20
}

func (e *fakeEngine) PathTransformedBounds(Handle) (minX, minY, width, height float32) {
	e.rec("PathTransformedBounds")
	return 5, 5, 10, 20
}

func (e *fakeEngine) DrawPath(Handle, uint32) { e.rec("DrawPath") }

func (e *fakeEngine) CreatePaint() Handle {
	e.rec("CreatePaint")
	return e.newHandle()
}

func (e *fakeEngine) DestroyPaint(h Handle) {
	e.rec("DestroyPaint")
	e.destroyed = append(e.destroyed, h)
}

func (e *fakeEngine) SetPaint(h Handle, modes uint32) {
	e.rec("SetPaint")
	for _, m := range []uint32{1, 2} {
		if modes&m != 0 {
			e.paints[m] = h
		}
	}
}

func (e *fakeEngine) GetPaint(mode uint32) Handle {
	e.rec("GetPaint")
	return e.paints[mode]
}

func (e *fakeEngine) SetColor(h Handle, rgba uint32) {
	e.rec("SetColor")
	e.colors[h] = rgba
}

func (e *fakeEngine) GetColor(h Handle) uint32 {
	e.rec("GetColor")
	return e.colors[h]
}

func (e *fakeEngine) PaintPattern(Handle, Handle) { e.rec("PaintPattern") }

func (e *fakeEngine) CreateImage(format ImageFormat, width, height int32, quality uint32) Handle {
	e.rec("CreateImage")
	h := e.newHandle()
	e.ints[paramKey{h, ImageParamFormat}] = int32(format)
	e.ints[paramKey{h, ImageParamWidth}] = width
	e.ints[paramKey{h, ImageParamHeight}] = height
	e.pixels[h] = make([]byte, 4*width*height)
	return h
}

func (e *fakeEngine) DestroyImage(h Handle) {
	e.rec("DestroyImage")
	e.destroyed = append(e.destroyed, h)
}

func (e *fakeEngine) ClearImage(Handle, int32, int32, int32, int32) { e.rec("ClearImage") }

// ImageSubData stores tightly packed rows of four byte pixels.
func (e *fakeEngine) ImageSubData(h Handle, data []byte, stride int32, _ ImageFormat, x, y, width, height int32) {
	e.rec("ImageSubData")
	w := e.ints[paramKey{h, ImageParamWidth}]
	for row := range height {
		dst := e.pixels[h][4*((y+row)*w+x):]
		copy(dst[:4*width], data[row*stride:])
	}
}

func (e *fakeEngine) GetImageSubData(h Handle, data []byte, stride int32, _ ImageFormat, x, y, width, height int32) {
	e.rec("GetImageSubData")
	w := e.ints[paramKey{h, ImageParamWidth}]
	for row := range height {
		src := e.pixels[h][4*((y+row)*w+x):]
		copy(data[row*stride:], src[:4*width])
	}
}

func (e *fakeEngine) ChildImage(parent Handle, _, _, width, height int32) Handle {
	e.rec("ChildImage")
	h := e.newHandle()
	e.parents[h] = parent
	e.ints[paramKey{h, ImageParamWidth}] = width
	e.ints[paramKey{h, ImageParamHeight}] = height
	return h
}

func (e *fakeEngine) GetParent(h Handle) Handle {
	e.rec("GetParent")
	if p, ok := e.parents[h]; ok {
		return p
	}
	return h
}

func (e *fakeEngine) CopyImage(Handle, int32, int32, Handle, int32, int32, int32, int32, bool) {
	e.rec("CopyImage")
}

func (e *fakeEngine) DrawImage(Handle) { e.rec("DrawImage") }

func (e *fakeEngine) CreateFont(int32) Handle {
	e.rec("CreateFont")
	return e.newHandle()
}

func (e *fakeEngine) DestroyFont(h Handle) {
	e.rec("DestroyFont")
	e.destroyed = append(e.destroyed, h)
}

func (e *fakeEngine) SetGlyphToPath(font Handle, index uint32, path Handle, _ bool, _, _ f32.Vec2) {
	e.rec("SetGlyphToPath")
	e.glyphs[index] = path
	e.ints[paramKey{font, FontParamNumGlyphs}] = int32(len(e.glyphs))
}

func (e *fakeEngine) SetGlyphToImage(font Handle, index uint32, image Handle, _, _ f32.Vec2) {
	e.rec("SetGlyphToImage")
	e.glyphs[index] = image
	e.ints[paramKey{font, FontParamNumGlyphs}] = int32(len(e.glyphs))
}

func (e *fakeEngine) ClearGlyph(font Handle, index uint32) {
	e.rec("ClearGlyph")
	delete(e.glyphs, index)
	e.ints[paramKey{font, FontParamNumGlyphs}] = int32(len(e.glyphs))
}

func (e *fakeEngine) DrawGlyph(_ Handle, index uint32, _ uint32, _ bool) {
	e.rec("DrawGlyph")
	e.drawn = append(e.drawn, index)
}

func (e *fakeEngine) DrawGlyphs(_ Handle, indices []uint32, adjustX, _ []float32, _ uint32, _ bool) {
	e.rec("DrawGlyphs")
	e.drawn = append(e.drawn, indices...)
	e.adjustX = slices.Clone(adjustX)
}

func (e *fakeEngine) GetString(name StringID) string {
	e.rec("GetString")
	return e.strings[name]
}

func (e *fakeEngine) util(name string) UtilityCode {
	e.calls = append(e.calls, name)
	return e.utilFail[name]
}

func (e *fakeEngine) Line(Handle, float32, float32, float32, float32) UtilityCode {
	return e.util("vguLine")
}

func (e *fakeEngine) Polygon(_ Handle, points []float32, _ bool) UtilityCode {
	e.polygon = slices.Clone(points)
	return e.util("vguPolygon")
}

func (e *fakeEngine) Rect(Handle, float32, float32, float32, float32) UtilityCode {
	return e.util("vguRect")
}

func (e *fakeEngine) RoundRect(Handle, float32, float32, float32, float32, float32, float32) UtilityCode {
	return e.util("vguRoundRect")
}

func (e *fakeEngine) Ellipse(Handle, float32, float32, float32, float32) UtilityCode {
	return e.util("vguEllipse")
}

func (e *fakeEngine) Arc(Handle, float32, float32, float32, float32, float32, float32, ArcType) UtilityCode {
	return e.util("vguArc")
}

func (e *fakeEngine) ComputeWarpQuadToSquare(_ Quad, m *f32.Mat3) UtilityCode {
	*m = e.warp
	return e.util("vguComputeWarpQuadToSquare")
}

func (e *fakeEngine) ComputeWarpSquareToQuad(_ Quad, m *f32.Mat3) UtilityCode {
	*m = e.warp
	return e.util("vguComputeWarpSquareToQuad")
}

func (e *fakeEngine) ComputeWarpQuadToQuad(_, _ Quad, m *f32.Mat3) UtilityCode {
	*m = e.warp
	return e.util("vguComputeWarpQuadToQuad")
}

var (
	_ Engine  = (*fakeEngine)(nil)
	_ Utility = (*fakeEngine)(nil)
)

// newTestContext returns a context over a fresh fake engine.
func newTestContext(t interface{ Fatalf(string, ...any) }) (*Context, *fakeEngine) {
	e := newFakeEngine()
	ctx, err := NewContext(e)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	return ctx, e
}
