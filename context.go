package vg

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/f32"
)

// Context is typed access to one OpenVG rendering context.
//
// A Context does not own the engine; creating and making current the
// underlying EGL context is left to the caller. All methods are
// synchronous and a Context must not be used from more than one goroutine
// at a time.
type Context struct {
	e      Engine
	u      Utility
	params *Params

	// owned indexes the live handles created through this context.
	owned map[Handle]*owner
}

// NewContext wraps an engine. When no utility implementation is given and
// the engine implements Utility, the engine is used for both.
func NewContext(e Engine, opts ...ContextOption) (*Context, error) {
	if e == nil {
		return nil, ErrNilEngine
	}

	var o contextOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.utility == nil {
		if u, ok := e.(Utility); ok {
			o.utility = u
		}
	}

	c := &Context{e: e, u: o.utility, params: newContextParams(e), owned: make(map[Handle]*owner)}
	for _, p := range o.initial {
		if err := c.params.Set(p.id, p.v); err != nil {
			return nil, fmt.Errorf("vg: new context: %w", err)
		}
	}
	return c, nil
}

// Engine returns the engine the context calls.
func (c *Context) Engine() Engine { return c.e }

// Params returns generic access to the context parameters.
func (c *Context) Params() *Params { return c.params }

// Flush asks the engine to complete drawing in finite time.
func (c *Context) Flush() error {
	Logger().Debug("vg: flush")
	return call(c.e, "flush", c.e.Flush)
}

// Finish blocks until the engine has completed all drawing.
func (c *Context) Finish() error {
	Logger().Debug("vg: finish")
	return call(c.e, "finish", c.e.Finish)
}

// Clear fills a surface rectangle with the clear color, honoring
// scissoring.
func (c *Context) Clear(x, y, width, height int) error {
	return call(c.e, "clear", func() {
		c.e.Clear(int32(x), int32(y), int32(width), int32(height))
	})
}

// Info describes the engine implementation.
type Info struct {
	Vendor     string
	Renderer   string
	Version    string
	Extensions []string
}

// Info reads the engine information strings.
func (c *Context) Info() (Info, error) {
	var info Info
	for _, s := range []struct {
		id  StringID
		dst *string
	}{
		{StringVendor, &info.Vendor},
		{StringRenderer, &info.Renderer},
		{StringVersion, &info.Version},
	} {
		v, err := callValue(c.e, "get string", func() string { return c.e.GetString(s.id) })
		if err != nil {
			return Info{}, err
		}
		*s.dst = v
	}

	ext, err := callValue(c.e, "get string", func() string { return c.e.GetString(StringExtensions) })
	if err != nil {
		return Info{}, err
	}
	info.Extensions = strings.Fields(ext)
	return info, nil
}

// SetPaint makes p the current paint for modes. A nil p, including a nil
// *Paint, restores the engine's default paint.
func (c *Context) SetPaint(p PaintSource, modes PaintMode) error {
	h, err := paintHandle(p)
	if err != nil {
		return err
	}
	return call(c.e, "set paint", func() { c.e.SetPaint(h, modes.Int()) })
}

// CurrentPaint returns the paint set for a single mode, Fill or Stroke.
// The result is borrowed: it has no Destroy method. A nil result means the
// default paint is in effect.
func (c *Context) CurrentPaint(mode PaintMode) (*PaintRef, error) {
	if mode.Int() != Fill.Int() && mode.Int() != Stroke.Int() {
		return nil, fmt.Errorf("%w: current paint of mode %q", ErrShape, mode.String())
	}
	h, err := callValue(c.e, "get paint", func() Handle { return c.e.GetPaint(mode.Int()) })
	if err != nil || h == InvalidHandle {
		return nil, err
	}
	return &PaintRef{paintView{ctx: c, ref: c.borrow(h)}}, nil
}

// Mode settings

func (c *Context) MatrixMode() (MatrixMode, error) {
	return getEnum[MatrixMode](c.params, ParamMatrixMode)
}

func (c *Context) SetMatrixMode(m MatrixMode) error {
	return setEnum(c.params, ParamMatrixMode, m)
}

func (c *Context) FillRule() (FillRule, error) {
	return getEnum[FillRule](c.params, ParamFillRule)
}

func (c *Context) SetFillRule(r FillRule) error {
	return setEnum(c.params, ParamFillRule, r)
}

func (c *Context) ImageQuality() (ImageQuality, error) {
	return getEnum[ImageQuality](c.params, ParamImageQuality)
}

func (c *Context) SetImageQuality(q ImageQuality) error {
	return setEnum(c.params, ParamImageQuality, q)
}

func (c *Context) RenderingQuality() (RenderingQuality, error) {
	return getEnum[RenderingQuality](c.params, ParamRenderingQuality)
}

func (c *Context) SetRenderingQuality(q RenderingQuality) error {
	return setEnum(c.params, ParamRenderingQuality, q)
}

func (c *Context) BlendMode() (BlendMode, error) {
	return getEnum[BlendMode](c.params, ParamBlendMode)
}

func (c *Context) SetBlendMode(m BlendMode) error {
	return setEnum(c.params, ParamBlendMode, m)
}

func (c *Context) ImageMode() (ImageMode, error) {
	return getEnum[ImageMode](c.params, ParamImageMode)
}

func (c *Context) SetImageMode(m ImageMode) error {
	return setEnum(c.params, ParamImageMode, m)
}

// Scissoring and color transformation

// ScissorRect is one scissor rectangle in surface pixels.
type ScissorRect struct {
	X, Y, Width, Height int32
}

// ScissorRects returns the current scissor rectangles.
func (c *Context) ScissorRects() ([]ScissorRect, error) {
	v, err := getAs[IntTuples](c.params, ParamScissorRects)
	if err != nil {
		return nil, err
	}
	rects := make([]ScissorRect, len(v))
	for i, t := range v {
		rects[i] = ScissorRect{X: t[0], Y: t[1], Width: t[2], Height: t[3]}
	}
	return rects, nil
}

// SetScissorRects replaces the scissor rectangles.
func (c *Context) SetScissorRects(rects ...ScissorRect) error {
	v := make(IntTuples, len(rects))
	for i, r := range rects {
		v[i] = []int32{r.X, r.Y, r.Width, r.Height}
	}
	return c.params.Set(ParamScissorRects, v)
}

func (c *Context) ColorTransform() (bool, error) {
	return getBool(c.params, ParamColorTransform)
}

func (c *Context) SetColorTransform(on bool) error {
	return c.params.Set(ParamColorTransform, Bool(on))
}

// ColorTransformValues returns the scale and bias of the color
// transformation as (Sr, Sg, Sb, Sa, Br, Bg, Bb, Ba).
func (c *Context) ColorTransformValues() ([8]float32, error) {
	var out [8]float32
	v, err := getFloats(c.params, ParamColorTransformVals)
	copy(out[:], v)
	return out, err
}

func (c *Context) SetColorTransformValues(v [8]float32) error {
	return c.params.Set(ParamColorTransformVals, FloatVector(v[:]))
}

// Stroke parameters

func (c *Context) StrokeLineWidth() (float32, error) {
	return getFloat(c.params, ParamStrokeLineWidth)
}

func (c *Context) SetStrokeLineWidth(w float32) error {
	return c.params.Set(ParamStrokeLineWidth, Float(w))
}

func (c *Context) StrokeCapStyle() (CapStyle, error) {
	return getEnum[CapStyle](c.params, ParamStrokeCapStyle)
}

func (c *Context) SetStrokeCapStyle(s CapStyle) error {
	return setEnum(c.params, ParamStrokeCapStyle, s)
}

func (c *Context) StrokeJoinStyle() (JoinStyle, error) {
	return getEnum[JoinStyle](c.params, ParamStrokeJoinStyle)
}

func (c *Context) SetStrokeJoinStyle(s JoinStyle) error {
	return setEnum(c.params, ParamStrokeJoinStyle, s)
}

func (c *Context) StrokeMiterLimit() (float32, error) {
	return getFloat(c.params, ParamStrokeMiterLimit)
}

func (c *Context) SetStrokeMiterLimit(limit float32) error {
	return c.params.Set(ParamStrokeMiterLimit, Float(limit))
}

// StrokeDashPattern returns the dash pattern; empty means solid.
func (c *Context) StrokeDashPattern() ([]float32, error) {
	return getFloats(c.params, ParamStrokeDashPattern)
}

// SetStrokeDashPattern sets alternating dash and gap lengths. No
// arguments disable dashing.
func (c *Context) SetStrokeDashPattern(pattern ...float32) error {
	return c.params.Set(ParamStrokeDashPattern, FloatVector(pattern))
}

func (c *Context) StrokeDashPhase() (float32, error) {
	return getFloat(c.params, ParamStrokeDashPhase)
}

func (c *Context) SetStrokeDashPhase(phase float32) error {
	return c.params.Set(ParamStrokeDashPhase, Float(phase))
}

func (c *Context) StrokeDashPhaseReset() (bool, error) {
	return getBool(c.params, ParamStrokeDashPhaseReset)
}

func (c *Context) SetStrokeDashPhaseReset(on bool) error {
	return c.params.Set(ParamStrokeDashPhaseReset, Bool(on))
}

// Fill colors

func (c *Context) TileFillColor() (Color, error) {
	return getColor(c.params, ParamTileFillColor)
}

func (c *Context) SetTileFillColor(col Color) error {
	return c.params.Set(ParamTileFillColor, FloatVector(col[:]))
}

func (c *Context) ClearColor() (Color, error) {
	return getColor(c.params, ParamClearColor)
}

func (c *Context) SetClearColor(col Color) error {
	return c.params.Set(ParamClearColor, FloatVector(col[:]))
}

func (c *Context) GlyphOrigin() (f32.Vec2, error) {
	v, err := getFloats(c.params, ParamGlyphOrigin)
	if err != nil {
		return f32.Vec2{}, err
	}
	return f32.Vec2{v[0], v[1]}, nil
}

func (c *Context) SetGlyphOrigin(origin f32.Vec2) error {
	return c.params.Set(ParamGlyphOrigin, FloatVector(origin[:]))
}

// Masking and scissoring switches

func (c *Context) Masking() (bool, error) {
	return getBool(c.params, ParamMasking)
}

func (c *Context) SetMasking(on bool) error {
	return c.params.Set(ParamMasking, Bool(on))
}

func (c *Context) Scissoring() (bool, error) {
	return getBool(c.params, ParamScissoring)
}

func (c *Context) SetScissoring(on bool) error {
	return c.params.Set(ParamScissoring, Bool(on))
}

// Pixel layout

func (c *Context) PixelLayout() (PixelLayout, error) {
	return getEnum[PixelLayout](c.params, ParamPixelLayout)
}

func (c *Context) SetPixelLayout(l PixelLayout) error {
	return setEnum(c.params, ParamPixelLayout, l)
}

// ScreenLayout returns the sub-pixel geometry of the display. It cannot
// be set.
func (c *Context) ScreenLayout() (PixelLayout, error) {
	return getEnum[PixelLayout](c.params, ParamScreenLayout)
}

// Image filters

func (c *Context) FilterFormatLinear() (bool, error) {
	return getBool(c.params, ParamFilterFormatLinear)
}

func (c *Context) SetFilterFormatLinear(on bool) error {
	return c.params.Set(ParamFilterFormatLinear, Bool(on))
}

func (c *Context) FilterFormatPremultiplied() (bool, error) {
	return getBool(c.params, ParamFilterFormatPremultiplied)
}

func (c *Context) SetFilterFormatPremultiplied(on bool) error {
	return c.params.Set(ParamFilterFormatPremultiplied, Bool(on))
}

// FilterChannelMask returns the channels written by image filters, named
// by ChannelNames.
func (c *Context) FilterChannelMask() (BitMask, error) {
	return getAs[BitMask](c.params, ParamFilterChannelMask)
}

func (c *Context) SetFilterChannelMask(m BitMask) error {
	return c.params.Set(ParamFilterChannelMask, m)
}

// Limits holds the implementation limits of the engine.
type Limits struct {
	ScissorRects         int
	DashCount            int
	KernelSize           int
	SeparableKernelSize  int
	ColorRampStops       int
	ImageWidth           int
	ImageHeight          int
	ImagePixels          int
	ImageBytes           int
	Float                float32
	GaussianStdDeviation float32
}

// Limits reads every implementation limit.
func (c *Context) Limits() (Limits, error) {
	var l Limits
	for _, f := range []struct {
		id  ParamID
		dst *int
	}{
		{ParamMaxScissorRects, &l.ScissorRects},
		{ParamMaxDashCount, &l.DashCount},
		{ParamMaxKernelSize, &l.KernelSize},
		{ParamMaxSeparableKernelSize, &l.SeparableKernelSize},
		{ParamMaxColorRampStops, &l.ColorRampStops},
		{ParamMaxImageWidth, &l.ImageWidth},
		{ParamMaxImageHeight, &l.ImageHeight},
		{ParamMaxImagePixels, &l.ImagePixels},
		{ParamMaxImageBytes, &l.ImageBytes},
	} {
		v, err := getInt(c.params, f.id)
		if err != nil {
			return Limits{}, err
		}
		*f.dst = v
	}

	var err error
	if l.Float, err = getFloat(c.params, ParamMaxFloat); err != nil {
		return Limits{}, err
	}
	if l.GaussianStdDeviation, err = getFloat(c.params, ParamMaxGaussianStdDeviation); err != nil {
		return Limits{}, err
	}
	return l, nil
}
