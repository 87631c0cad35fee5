package vg

// MaskSource is a coverage source for mask operations: an image, an image
// reference or a mask layer.
type MaskSource interface {
	Object
	maskHandle() (Handle, error)
}

// MaskLayer is an owned engine mask layer.
type MaskLayer struct {
	ctx *Context
	own *owner
}

// NewMaskLayer creates a mask layer of the given size.
func NewMaskLayer(ctx *Context, width, height int) (*MaskLayer, error) {
	e := ctx.e
	h, err := callValue(e, "create mask layer", func() Handle {
		return e.CreateMaskLayer(int32(width), int32(height))
	})
	if err != nil {
		return nil, err
	}
	return &MaskLayer{ctx: ctx, own: newOwner(ctx, h, "mask layer", Engine.DestroyMaskLayer)}, nil
}

// Handle returns the engine handle, or InvalidHandle after Destroy.
func (l *MaskLayer) Handle() Handle { return handleOf(l.own) }

func (l *MaskLayer) maskHandle() (Handle, error) {
	if l == nil {
		return InvalidHandle, nil
	}
	return l.own.handle()
}

// Destroy releases the layer. Calling Destroy again does nothing.
func (l *MaskLayer) Destroy() error { return l.own.destroy() }

// Fill sets a rectangle of the layer to value, in [0, 1].
func (l *MaskLayer) Fill(x, y, width, height int, value float32) error {
	h, err := l.own.handle()
	if err != nil {
		return err
	}
	e := l.ctx.e
	return call(e, "fill mask layer", func() {
		e.FillMaskLayer(h, int32(x), int32(y), int32(width), int32(height), value)
	})
}

// Copy copies a rectangle of the drawing surface mask at (sx, sy) into the
// layer at (dx, dy).
func (l *MaskLayer) Copy(dx, dy, sx, sy, width, height int) error {
	h, err := l.own.handle()
	if err != nil {
		return err
	}
	e := l.ctx.e
	return call(e, "copy mask", func() {
		e.CopyMask(h, int32(dx), int32(dy), int32(sx), int32(sy), int32(width), int32(height))
	})
}

func (c *Context) mask(src MaskSource, op MaskOperation, x, y, width, height int) error {
	h := InvalidHandle
	if src != nil {
		var err error
		if h, err = src.maskHandle(); err != nil {
			return err
		}
	}
	return call(c.e, "mask", func() {
		c.e.Mask(h, op, int32(x), int32(y), int32(width), int32(height))
	})
}

// ClearMask sets a rectangle of the surface mask to zero coverage.
func (c *Context) ClearMask(x, y, width, height int) error {
	return c.mask(nil, MaskClear, x, y, width, height)
}

// FillMask sets a rectangle of the surface mask to full coverage.
func (c *Context) FillMask(x, y, width, height int) error {
	return c.mask(nil, MaskFill, x, y, width, height)
}

// SetMask replaces a rectangle of the surface mask with src.
func (c *Context) SetMask(src MaskSource, x, y, width, height int) error {
	return c.mask(src, MaskSet, x, y, width, height)
}

// UnionMask combines src into the surface mask with union.
func (c *Context) UnionMask(src MaskSource, x, y, width, height int) error {
	return c.mask(src, MaskUnion, x, y, width, height)
}

// IntersectMask combines src into the surface mask with intersection.
func (c *Context) IntersectMask(src MaskSource, x, y, width, height int) error {
	return c.mask(src, MaskIntersect, x, y, width, height)
}

// SubtractMask removes the coverage of src from the surface mask.
func (c *Context) SubtractMask(src MaskSource, x, y, width, height int) error {
	return c.mask(src, MaskSubtract, x, y, width, height)
}

// RenderToMask combines the coverage of p, drawn with modes, into the
// surface mask.
func (c *Context) RenderToMask(p *Path, modes PaintMode, op MaskOperation) error {
	h, err := p.own.handle()
	if err != nil {
		return err
	}
	return call(c.e, "render to mask", func() { c.e.RenderToMask(h, modes.Int(), op) })
}
