//go:build (darwin || freebsd || linux || netbsd) && !android

package native

import (
	"errors"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/vg"
)

// api holds the bound OpenVG entry points. Handles and bitfields are
// VGuint, enums and VGboolean results are 32-bit integers.
type api struct {
	getError func() uint32
	flush    func()
	finish   func()

	seti          func(id int32, v int32)
	setf          func(id int32, v float32)
	setiv         func(id int32, count int32, v []int32)
	setfv         func(id int32, count int32, v []float32)
	geti          func(id int32) int32
	getf          func(id int32) float32
	getVectorSize func(id int32) int32
	getiv         func(id int32, count int32, out []int32)
	getfv         func(id int32, count int32, out []float32)

	setParameteri          func(h uint32, id int32, v int32)
	setParameterf          func(h uint32, id int32, v float32)
	setParameteriv         func(h uint32, id int32, count int32, v []int32)
	setParameterfv         func(h uint32, id int32, count int32, v []float32)
	getParameteri          func(h uint32, id int32) int32
	getParameterf          func(h uint32, id int32) float32
	getParameterVectorSize func(h uint32, id int32) int32
	getParameteriv         func(h uint32, id int32, count int32, out []int32)
	getParameterfv         func(h uint32, id int32, count int32, out []float32)

	loadIdentity func()
	loadMatrix   func(m *f32.Mat3)
	getMatrix    func(m *f32.Mat3)
	multMatrix   func(m *f32.Mat3)
	translate    func(tx, ty float32)
	scale        func(sx, sy float32)
	shear        func(shx, shy float32)
	rotate       func(angle float32)

	mask             func(mask uint32, op int32, x, y, width, height int32)
	renderToMask     func(path uint32, modes uint32, op int32)
	createMaskLayer  func(width, height int32) uint32
	destroyMaskLayer func(layer uint32)
	fillMaskLayer    func(layer uint32, x, y, width, height int32, value float32)
	copyMask         func(layer uint32, dx, dy, sx, sy, width, height int32)
	clear            func(x, y, width, height int32)

	createPath             func(format, datatype int32, scale, bias float32, segHint, coordHint int32, caps uint32) uint32
	clearPath              func(path uint32, caps uint32)
	destroyPath            func(path uint32)
	removePathCapabilities func(path uint32, caps uint32)
	getPathCapabilities    func(path uint32) uint32
	appendPath             func(dst, src uint32)
	appendPathData         func(dst uint32, numSegments int32, segments []byte, data []byte)
	modifyPathCoords       func(dst uint32, start, num int32, data []byte)
	transformPath          func(dst, src uint32)
	interpolatePath        func(dst, start, end uint32, amount float32) int32
	pathLength             func(path uint32, start, num int32) float32
	pointAlongPath         func(path uint32, start, num int32, distance float32, x, y, tx, ty *float32)
	pathBounds             func(path uint32, minX, minY, width, height *float32)
	pathTransformedBounds  func(path uint32, minX, minY, width, height *float32)
	drawPath               func(path uint32, modes uint32)

	createPaint  func() uint32
	destroyPaint func(paint uint32)
	setPaint     func(paint uint32, modes uint32)
	getPaint     func(mode uint32) uint32
	setColor     func(paint uint32, rgba uint32)
	getColor     func(paint uint32) uint32
	paintPattern func(paint, pattern uint32)

	createImage     func(format, width, height int32, quality uint32) uint32
	destroyImage    func(image uint32)
	clearImage      func(image uint32, x, y, width, height int32)
	imageSubData    func(image uint32, data []byte, stride, format, x, y, width, height int32)
	getImageSubData func(image uint32, data []byte, stride, format, x, y, width, height int32)
	childImage      func(parent uint32, x, y, width, height int32) uint32
	getParent       func(image uint32) uint32
	copyImage       func(dst uint32, dx, dy int32, src uint32, sx, sy, width, height int32, dither bool)
	drawImage       func(image uint32)

	createFont      func(hint int32) uint32
	destroyFont     func(font uint32)
	setGlyphToPath  func(font, index, path uint32, hinted bool, origin, escapement *f32.Vec2)
	setGlyphToImage func(font, index, image uint32, origin, escapement *f32.Vec2)
	clearGlyph      func(font, index uint32)
	drawGlyph       func(font, index, modes uint32, autoHinting bool)
	drawGlyphs      func(font uint32, count int32, indices []uint32, adjustX, adjustY []float32, modes uint32, autoHinting bool)

	getString func(name int32) string
}

func (a *api) symbols() []symbol {
	return []symbol{
		{"vgGetError", &a.getError},
		{"vgFlush", &a.flush},
		{"vgFinish", &a.finish},

		{"vgSeti", &a.seti},
		{"vgSetf", &a.setf},
		{"vgSetiv", &a.setiv},
		{"vgSetfv", &a.setfv},
		{"vgGeti", &a.geti},
		{"vgGetf", &a.getf},
		{"vgGetVectorSize", &a.getVectorSize},
		{"vgGetiv", &a.getiv},
		{"vgGetfv", &a.getfv},

		{"vgSetParameteri", &a.setParameteri},
		{"vgSetParameterf", &a.setParameterf},
		{"vgSetParameteriv", &a.setParameteriv},
		{"vgSetParameterfv", &a.setParameterfv},
		{"vgGetParameteri", &a.getParameteri},
		{"vgGetParameterf", &a.getParameterf},
		{"vgGetParameterVectorSize", &a.getParameterVectorSize},
		{"vgGetParameteriv", &a.getParameteriv},
		{"vgGetParameterfv", &a.getParameterfv},

		{"vgLoadIdentity", &a.loadIdentity},
		{"vgLoadMatrix", &a.loadMatrix},
		{"vgGetMatrix", &a.getMatrix},
		{"vgMultMatrix", &a.multMatrix},
		{"vgTranslate", &a.translate},
		{"vgScale", &a.scale},
		{"vgShear", &a.shear},
		{"vgRotate", &a.rotate},

		{"vgMask", &a.mask},
		{"vgRenderToMask", &a.renderToMask},
		{"vgCreateMaskLayer", &a.createMaskLayer},
		{"vgDestroyMaskLayer", &a.destroyMaskLayer},
		{"vgFillMaskLayer", &a.fillMaskLayer},
		{"vgCopyMask", &a.copyMask},
		{"vgClear", &a.clear},

		{"vgCreatePath", &a.createPath},
		{"vgClearPath", &a.clearPath},
		{"vgDestroyPath", &a.destroyPath},
		{"vgRemovePathCapabilities", &a.removePathCapabilities},
		{"vgGetPathCapabilities", &a.getPathCapabilities},
		{"vgAppendPath", &a.appendPath},
		{"vgAppendPathData", &a.appendPathData},
		{"vgModifyPathCoords", &a.modifyPathCoords},
		{"vgTransformPath", &a.transformPath},
		{"vgInterpolatePath", &a.interpolatePath},
		{"vgPathLength", &a.pathLength},
		{"vgPointAlongPath", &a.pointAlongPath},
		{"vgPathBounds", &a.pathBounds},
		{"vgPathTransformedBounds", &a.pathTransformedBounds},
		{"vgDrawPath", &a.drawPath},

		{"vgCreatePaint", &a.createPaint},
		{"vgDestroyPaint", &a.destroyPaint},
		{"vgSetPaint", &a.setPaint},
		{"vgGetPaint", &a.getPaint},
		{"vgSetColor", &a.setColor},
		{"vgGetColor", &a.getColor},
		{"vgPaintPattern", &a.paintPattern},

		{"vgCreateImage", &a.createImage},
		{"vgDestroyImage", &a.destroyImage},
		{"vgClearImage", &a.clearImage},
		{"vgImageSubData", &a.imageSubData},
		{"vgGetImageSubData", &a.getImageSubData},
		{"vgChildImage", &a.childImage},
		{"vgGetParent", &a.getParent},
		{"vgCopyImage", &a.copyImage},
		{"vgDrawImage", &a.drawImage},

		{"vgCreateFont", &a.createFont},
		{"vgDestroyFont", &a.destroyFont},
		{"vgSetGlyphToPath", &a.setGlyphToPath},
		{"vgSetGlyphToImage", &a.setGlyphToImage},
		{"vgClearGlyph", &a.clearGlyph},
		{"vgDrawGlyph", &a.drawGlyph},
		{"vgDrawGlyphs", &a.drawGlyphs},

		{"vgGetString", &a.getString},
	}
}

// Engine is an OpenVG library loaded with dlopen.
type Engine struct {
	fn  api
	lib *library

	u       *Utility
	utilLib *library
}

// Open loads the OpenVG library and binds every entry point.
func Open(opts ...Option) (*Engine, error) {
	o := resolveOptions(opts)

	lib, err := openLibrary(o.libraryNames())
	if err != nil {
		return nil, err
	}
	e := &Engine{lib: lib}
	if err := lib.bind(e.fn.symbols()); err != nil {
		_ = lib.close()
		return nil, err
	}

	if !o.noUtility {
		if err := e.loadUtility(o); err != nil {
			_ = e.Close()
			return nil, err
		}
	}
	return e, nil
}

// loadUtility binds VGU from a separate library when one loads, otherwise
// from the main library. A main library without VGU is not an error
// unless a utility library was named explicitly.
func (e *Engine) loadUtility(o options) error {
	src := e.lib
	if lib, err := openLibrary(o.utilityNames()); err == nil {
		e.utilLib, src = lib, lib
	} else if o.utilityLibrary != "" {
		return err
	}

	if !src.has("vguLine") {
		vg.Logger().Info("native: no utility library", "library", src.name)
		return nil
	}
	u := &Utility{}
	if err := src.bind(u.fn.symbols()); err != nil {
		return err
	}
	e.u = u
	return nil
}

// Utility returns the bound VGU entry points, or nil when none were found.
func (e *Engine) Utility() *Utility { return e.u }

// Library returns the name the main library was loaded from, or the empty
// string after Close.
func (e *Engine) Library() string {
	if e.lib == nil {
		return ""
	}
	return e.lib.name
}

// Close unloads the libraries. The engine must not be used afterwards.
func (e *Engine) Close() error {
	if e.lib == nil {
		return ErrClosed
	}
	err := errors.Join(e.utilLib.close(), e.lib.close())
	e.lib, e.utilLib, e.u = nil, nil, nil
	return err
}

func (e *Engine) GetError() vg.ErrorCode { return vg.ErrorCode(e.fn.getError()) }
func (e *Engine) Flush()                 { e.fn.flush() }
func (e *Engine) Finish()                { e.fn.finish() }

func (e *Engine) Seti(id vg.ParamID, v int32)    { e.fn.seti(int32(id), v) }
func (e *Engine) Setf(id vg.ParamID, v float32)  { e.fn.setf(int32(id), v) }
func (e *Engine) Setiv(id vg.ParamID, v []int32) { e.fn.setiv(int32(id), int32(len(v)), v) }
func (e *Engine) Setfv(id vg.ParamID, v []float32) {
	e.fn.setfv(int32(id), int32(len(v)), v)
}
func (e *Engine) Geti(id vg.ParamID) int32          { return e.fn.geti(int32(id)) }
func (e *Engine) Getf(id vg.ParamID) float32        { return e.fn.getf(int32(id)) }
func (e *Engine) GetVectorSize(id vg.ParamID) int32 { return e.fn.getVectorSize(int32(id)) }
func (e *Engine) Getiv(id vg.ParamID, out []int32) {
	e.fn.getiv(int32(id), int32(len(out)), out)
}
func (e *Engine) Getfv(id vg.ParamID, out []float32) {
	e.fn.getfv(int32(id), int32(len(out)), out)
}

func (e *Engine) SetParameteri(h vg.Handle, id vg.ParamID, v int32) {
	e.fn.setParameteri(uint32(h), int32(id), v)
}

func (e *Engine) SetParameterf(h vg.Handle, id vg.ParamID, v float32) {
	e.fn.setParameterf(uint32(h), int32(id), v)
}

func (e *Engine) SetParameteriv(h vg.Handle, id vg.ParamID, v []int32) {
	e.fn.setParameteriv(uint32(h), int32(id), int32(len(v)), v)
}

func (e *Engine) SetParameterfv(h vg.Handle, id vg.ParamID, v []float32) {
	e.fn.setParameterfv(uint32(h), int32(id), int32(len(v)), v)
}

func (e *Engine) GetParameteri(h vg.Handle, id vg.ParamID) int32 {
	return e.fn.getParameteri(uint32(h), int32(id))
}

func (e *Engine) GetParameterf(h vg.Handle, id vg.ParamID) float32 {
	return e.fn.getParameterf(uint32(h), int32(id))
}

func (e *Engine) GetParameterVectorSize(h vg.Handle, id vg.ParamID) int32 {
	return e.fn.getParameterVectorSize(uint32(h), int32(id))
}

func (e *Engine) GetParameteriv(h vg.Handle, id vg.ParamID, out []int32) {
	e.fn.getParameteriv(uint32(h), int32(id), int32(len(out)), out)
}

func (e *Engine) GetParameterfv(h vg.Handle, id vg.ParamID, out []float32) {
	e.fn.getParameterfv(uint32(h), int32(id), int32(len(out)), out)
}

func (e *Engine) LoadIdentity()                { e.fn.loadIdentity() }
func (e *Engine) LoadMatrix(m *f32.Mat3)       { e.fn.loadMatrix(m) }
func (e *Engine) GetMatrix(m *f32.Mat3)        { e.fn.getMatrix(m) }
func (e *Engine) MultMatrix(m *f32.Mat3)       { e.fn.multMatrix(m) }
func (e *Engine) Translate(tx, ty float32)     { e.fn.translate(tx, ty) }
func (e *Engine) Scale(sx, sy float32)         { e.fn.scale(sx, sy) }
func (e *Engine) Shear(shx, shy float32)       { e.fn.shear(shx, shy) }
func (e *Engine) Rotate(angle float32)         { e.fn.rotate(angle) }
func (e *Engine) Clear(x, y, w, h int32)       { e.fn.clear(x, y, w, h) }
func (e *Engine) DestroyMaskLayer(l vg.Handle) { e.fn.destroyMaskLayer(uint32(l)) }

func (e *Engine) Mask(mask vg.Handle, op vg.MaskOperation, x, y, width, height int32) {
	e.fn.mask(uint32(mask), int32(op), x, y, width, height)
}

func (e *Engine) RenderToMask(path vg.Handle, modes uint32, op vg.MaskOperation) {
	e.fn.renderToMask(uint32(path), modes, int32(op))
}

func (e *Engine) CreateMaskLayer(width, height int32) vg.Handle {
	return vg.Handle(e.fn.createMaskLayer(width, height))
}

func (e *Engine) FillMaskLayer(layer vg.Handle, x, y, width, height int32, value float32) {
	e.fn.fillMaskLayer(uint32(layer), x, y, width, height, value)
}

func (e *Engine) CopyMask(layer vg.Handle, dx, dy, sx, sy, width, height int32) {
	e.fn.copyMask(uint32(layer), dx, dy, sx, sy, width, height)
}

func (e *Engine) CreatePath(format vg.PathFormat, datatype vg.PathDatatype, scale, bias float32,
	segmentCapacityHint, coordCapacityHint int32, capabilities uint32,
) vg.Handle {
	return vg.Handle(e.fn.createPath(int32(format), int32(datatype), scale, bias,
		segmentCapacityHint, coordCapacityHint, capabilities))
}

func (e *Engine) ClearPath(path vg.Handle, capabilities uint32) {
	e.fn.clearPath(uint32(path), capabilities)
}

func (e *Engine) DestroyPath(path vg.Handle) { e.fn.destroyPath(uint32(path)) }

func (e *Engine) RemovePathCapabilities(path vg.Handle, capabilities uint32) {
	e.fn.removePathCapabilities(uint32(path), capabilities)
}

func (e *Engine) GetPathCapabilities(path vg.Handle) uint32 {
	return e.fn.getPathCapabilities(uint32(path))
}

func (e *Engine) AppendPath(dst, src vg.Handle) { e.fn.appendPath(uint32(dst), uint32(src)) }

func (e *Engine) AppendPathData(dst vg.Handle, segments []byte, data []byte) {
	e.fn.appendPathData(uint32(dst), int32(len(segments)), segments, data)
}

func (e *Engine) ModifyPathCoords(dst vg.Handle, startIndex, numSegments int32, data []byte) {
	e.fn.modifyPathCoords(uint32(dst), startIndex, numSegments, data)
}

func (e *Engine) TransformPath(dst, src vg.Handle) { e.fn.transformPath(uint32(dst), uint32(src)) }

func (e *Engine) InterpolatePath(dst, start, end vg.Handle, amount float32) bool {
	return e.fn.interpolatePath(uint32(dst), uint32(start), uint32(end), amount) != 0
}

func (e *Engine) PathLength(path vg.Handle, startSegment, numSegments int32) float32 {
	return e.fn.pathLength(uint32(path), startSegment, numSegments)
}

func (e *Engine) PointAlongPath(path vg.Handle, startSegment, numSegments int32, distance float32) (x, y, tx, ty float32) {
	e.fn.pointAlongPath(uint32(path), startSegment, numSegments, distance, &x, &y, &tx, &ty)
	return x, y, tx, ty
}

func (e *Engine) PathBounds(path vg.Handle) (minX, minY, width, height float32) {
	e.fn.pathBounds(uint32(path), &minX, &minY, &width, &height)
	return minX, minY, width, height
}

func (e *Engine) PathTransformedBounds(path vg.Handle) (minX, minY, width, height float32) {
	e.fn.pathTransformedBounds(uint32(path), &minX, &minY, &width, &height)
	return minX, minY, width, height
}

func (e *Engine) DrawPath(path vg.Handle, modes uint32) { e.fn.drawPath(uint32(path), modes) }

func (e *Engine) CreatePaint() vg.Handle                 { return vg.Handle(e.fn.createPaint()) }
func (e *Engine) DestroyPaint(paint vg.Handle)           { e.fn.destroyPaint(uint32(paint)) }
func (e *Engine) SetPaint(paint vg.Handle, modes uint32) { e.fn.setPaint(uint32(paint), modes) }
func (e *Engine) GetPaint(mode uint32) vg.Handle         { return vg.Handle(e.fn.getPaint(mode)) }
func (e *Engine) SetColor(paint vg.Handle, rgba uint32)  { e.fn.setColor(uint32(paint), rgba) }
func (e *Engine) GetColor(paint vg.Handle) uint32        { return e.fn.getColor(uint32(paint)) }
func (e *Engine) PaintPattern(paint, pattern vg.Handle)  { e.fn.paintPattern(uint32(paint), uint32(pattern)) }

func (e *Engine) CreateImage(format vg.ImageFormat, width, height int32, quality uint32) vg.Handle {
	return vg.Handle(e.fn.createImage(int32(format), width, height, quality))
}

func (e *Engine) DestroyImage(image vg.Handle) { e.fn.destroyImage(uint32(image)) }

func (e *Engine) ClearImage(image vg.Handle, x, y, width, height int32) {
	e.fn.clearImage(uint32(image), x, y, width, height)
}

func (e *Engine) ImageSubData(image vg.Handle, data []byte, stride int32, format vg.ImageFormat, x, y, width, height int32) {
	e.fn.imageSubData(uint32(image), data, stride, int32(format), x, y, width, height)
}

func (e *Engine) GetImageSubData(image vg.Handle, data []byte, stride int32, format vg.ImageFormat, x, y, width, height int32) {
	e.fn.getImageSubData(uint32(image), data, stride, int32(format), x, y, width, height)
}

func (e *Engine) ChildImage(parent vg.Handle, x, y, width, height int32) vg.Handle {
	return vg.Handle(e.fn.childImage(uint32(parent), x, y, width, height))
}

func (e *Engine) GetParent(image vg.Handle) vg.Handle {
	return vg.Handle(e.fn.getParent(uint32(image)))
}

func (e *Engine) CopyImage(dst vg.Handle, dx, dy int32, src vg.Handle, sx, sy, width, height int32, dither bool) {
	e.fn.copyImage(uint32(dst), dx, dy, uint32(src), sx, sy, width, height, dither)
}

func (e *Engine) DrawImage(image vg.Handle) { e.fn.drawImage(uint32(image)) }

func (e *Engine) CreateFont(glyphCapacityHint int32) vg.Handle {
	return vg.Handle(e.fn.createFont(glyphCapacityHint))
}

func (e *Engine) DestroyFont(font vg.Handle) { e.fn.destroyFont(uint32(font)) }

func (e *Engine) SetGlyphToPath(font vg.Handle, index uint32, path vg.Handle, hinted bool, origin, escapement f32.Vec2) {
	e.fn.setGlyphToPath(uint32(font), index, uint32(path), hinted, &origin, &escapement)
}

func (e *Engine) SetGlyphToImage(font vg.Handle, index uint32, image vg.Handle, origin, escapement f32.Vec2) {
	e.fn.setGlyphToImage(uint32(font), index, uint32(image), &origin, &escapement)
}

func (e *Engine) ClearGlyph(font vg.Handle, index uint32) { e.fn.clearGlyph(uint32(font), index) }

func (e *Engine) DrawGlyph(font vg.Handle, index uint32, modes uint32, autoHinting bool) {
	e.fn.drawGlyph(uint32(font), index, modes, autoHinting)
}

func (e *Engine) DrawGlyphs(font vg.Handle, indices []uint32, adjustX, adjustY []float32, modes uint32, autoHinting bool) {
	e.fn.drawGlyphs(uint32(font), int32(len(indices)), indices, adjustX, adjustY, modes, autoHinting)
}

func (e *Engine) GetString(name vg.StringID) string { return e.fn.getString(int32(name)) }

var _ vg.Engine = (*Engine)(nil)
