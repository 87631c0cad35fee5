package vg

// PaintSource is a paint that can be made current: a *Paint or a
// *PaintRef.
type PaintSource interface {
	Object
	paint() *paintView
}

// paintView is the accessor set shared by owned and borrowed paints.
type paintView struct {
	ctx *Context
	ref handleRef
}

func (v *paintView) paint() *paintView { return v }

// Handle returns the engine handle, or InvalidHandle after Destroy.
func (v *paintView) Handle() Handle { return handleOf(v.ref) }

// Params returns generic access to the paint parameters.
func (v *paintView) Params() (*Params, error) {
	h, err := v.ref.handle()
	if err != nil {
		return nil, err
	}
	return newObjectParams(PaintParams, v.ctx.e, h), nil
}

func (v *paintView) set(id ParamID, val Value) error {
	p, err := v.Params()
	if err != nil {
		return err
	}
	return p.Set(id, val)
}

func paintParam[T any](v *paintView, get func(*Params, ParamID) (T, error), id ParamID) (T, error) {
	p, err := v.Params()
	if err != nil {
		var zero T
		return zero, err
	}
	return get(p, id)
}

func (v *paintView) Type() (PaintType, error) {
	return paintParam(v, getEnum[PaintType], PaintParamType)
}

func (v *paintView) SetType(t PaintType) error {
	return v.set(PaintParamType, Enum(t))
}

// Color returns the solid color parameter.
func (v *paintView) Color() (Color, error) {
	return paintParam(v, getColor, PaintParamColor)
}

// SetColor sets the solid color parameter.
func (v *paintView) SetColor(c Color) error {
	return v.set(PaintParamColor, FloatVector(c[:]))
}

// ColorRGBA reads the solid color through the packed 8-bit form.
func (v *paintView) ColorRGBA() (Color, error) {
	h, err := v.ref.handle()
	if err != nil {
		return Color{}, err
	}
	e := v.ctx.e
	packed, err := callValue(e, "get color", func() uint32 { return e.GetColor(h) })
	if err != nil {
		return Color{}, err
	}
	return ColorFromPacked(packed), nil
}

// SetColorRGBA sets the solid color through the packed 8-bit form.
func (v *paintView) SetColorRGBA(c Color) error {
	h, err := v.ref.handle()
	if err != nil {
		return err
	}
	e := v.ctx.e
	return call(e, "set color", func() { e.SetColor(h, c.Packed()) })
}

func (v *paintView) ColorRampSpreadMode() (SpreadMode, error) {
	return paintParam(v, getEnum[SpreadMode], PaintParamColorRampSpreadMode)
}

func (v *paintView) SetColorRampSpreadMode(m SpreadMode) error {
	return v.set(PaintParamColorRampSpreadMode, Enum(m))
}

// ColorStop is a color at a position along a gradient.
type ColorStop struct {
	Offset float32 // Position in gradient, 0.0 to 1.0
	Color  Color   // Color at this position
}

// ColorRampStops returns the gradient stops.
func (v *paintView) ColorRampStops() ([]ColorStop, error) {
	t, err := paintParam(v, getAs[FloatTuples], PaintParamColorRampStops)
	if err != nil {
		return nil, err
	}
	stops := make([]ColorStop, len(t))
	for i, s := range t {
		stops[i] = ColorStop{Offset: s[0], Color: Color{s[1], s[2], s[3], s[4]}}
	}
	return stops, nil
}

// SetColorRampStops replaces the gradient stops.
func (v *paintView) SetColorRampStops(stops ...ColorStop) error {
	t := make(FloatTuples, len(stops))
	for i, s := range stops {
		t[i] = []float32{s.Offset, s.Color[0], s.Color[1], s.Color[2], s.Color[3]}
	}
	return v.set(PaintParamColorRampStops, t)
}

// LinearGradient is the gradient line from (X0, Y0) to (X1, Y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float32
}

func (v *paintView) LinearGradient() (LinearGradient, error) {
	f, err := paintParam(v, getFloats, PaintParamLinearGradient)
	if err != nil {
		return LinearGradient{}, err
	}
	return LinearGradient{X0: f[0], Y0: f[1], X1: f[2], Y1: f[3]}, nil
}

func (v *paintView) SetLinearGradient(g LinearGradient) error {
	return v.set(PaintParamLinearGradient, FloatVector{g.X0, g.Y0, g.X1, g.Y1})
}

// RadialGradient is a gradient circle centered at (CX, CY) with focal
// point (FX, FY).
type RadialGradient struct {
	CX, CY, FX, FY, R float32
}

func (v *paintView) RadialGradient() (RadialGradient, error) {
	f, err := paintParam(v, getFloats, PaintParamRadialGradient)
	if err != nil {
		return RadialGradient{}, err
	}
	return RadialGradient{CX: f[0], CY: f[1], FX: f[2], FY: f[3], R: f[4]}, nil
}

func (v *paintView) SetRadialGradient(g RadialGradient) error {
	return v.set(PaintParamRadialGradient, FloatVector{g.CX, g.CY, g.FX, g.FY, g.R})
}

func (v *paintView) PatternTilingMode() (TilingMode, error) {
	return paintParam(v, getEnum[TilingMode], PaintParamPatternTilingMode)
}

func (v *paintView) SetPatternTilingMode(m TilingMode) error {
	return v.set(PaintParamPatternTilingMode, Enum(m))
}

func (v *paintView) ColorRampPremultiplied() (bool, error) {
	return paintParam(v, getBool, PaintParamColorRampPremultiplied)
}

func (v *paintView) SetColorRampPremultiplied(on bool) error {
	return v.set(PaintParamColorRampPremultiplied, Bool(on))
}

// SetPattern uses img as the pattern of the paint. A nil img removes the
// pattern.
func (v *paintView) SetPattern(img ImageSource) error {
	h, err := v.ref.handle()
	if err != nil {
		return err
	}
	ih, err := imageHandle(img)
	if err != nil {
		return err
	}
	e := v.ctx.e
	return call(e, "paint pattern", func() { e.PaintPattern(h, ih) })
}

// SetFill makes this the current fill paint.
func (v *paintView) SetFill() error {
	return v.ctx.SetPaint(v, Fill)
}

// SetStroke makes this the current stroke paint.
func (v *paintView) SetStroke() error {
	return v.ctx.SetPaint(v, Stroke)
}

// Paint is an owned engine paint object.
type Paint struct {
	paintView
	own *owner
}

// NewPaint creates a paint.
func NewPaint(ctx *Context) (*Paint, error) {
	e := ctx.e
	h, err := callValue(e, "create paint", e.CreatePaint)
	if err != nil {
		return nil, err
	}
	own := newOwner(ctx, h, "paint", Engine.DestroyPaint)
	return &Paint{paintView: paintView{ctx: ctx, ref: own}, own: own}, nil
}

// Destroy releases the paint. Calling Destroy again does nothing.
func (p *Paint) Destroy() error { return p.own.destroy() }

func (p *Paint) paint() *paintView {
	if p == nil {
		return nil
	}
	return &p.paintView
}

// PaintRef is a paint observed through Context.CurrentPaint. It is not
// owned and cannot be destroyed.
type PaintRef struct {
	paintView
}

func (r *PaintRef) paint() *paintView {
	if r == nil {
		return nil
	}
	return &r.paintView
}

// paintHandle resolves the paint behind p. A nil p, typed or not, stands
// for the default paint.
func paintHandle(p PaintSource) (Handle, error) {
	if p == nil {
		return InvalidHandle, nil
	}
	v := p.paint()
	if v == nil {
		return InvalidHandle, nil
	}
	return v.ref.handle()
}
