package vg

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Font is an owned engine font object: a table of glyphs indexed by
// application-chosen ids.
type Font struct {
	ctx *Context
	own *owner
}

// NewFont creates a font. glyphCapacity is a hint of the number of glyphs
// to be defined; zero means unknown.
func NewFont(ctx *Context, glyphCapacity int) (*Font, error) {
	e := ctx.e
	h, err := callValue(e, "create font", func() Handle { return e.CreateFont(int32(glyphCapacity)) })
	if err != nil {
		return nil, err
	}
	return &Font{ctx: ctx, own: newOwner(ctx, h, "font", Engine.DestroyFont)}, nil
}

// Handle returns the engine handle, or InvalidHandle after Destroy.
func (f *Font) Handle() Handle { return handleOf(f.own) }

// Destroy releases the font. Calling Destroy again does nothing.
func (f *Font) Destroy() error { return f.own.destroy() }

// Params returns generic access to the font parameters.
func (f *Font) Params() (*Params, error) {
	h, err := f.own.handle()
	if err != nil {
		return nil, err
	}
	return newObjectParams(FontParams, f.ctx.e, h), nil
}

// NumGlyphs returns the number of glyphs defined.
func (f *Font) NumGlyphs() (int, error) {
	p, err := f.Params()
	if err != nil {
		return 0, err
	}
	return getInt(p, FontParamNumGlyphs)
}

// Glyph places a glyph: Origin is the point of the glyph aligned with the
// current glyph origin, Escapement the advance applied after drawing.
type Glyph struct {
	Origin     f32.Vec2
	Escapement f32.Vec2
}

// SetGlyphPath defines glyph index from a path. A nil path defines an
// empty glyph that only advances.
func (f *Font) SetGlyphPath(index uint32, path *Path, hinted bool, g Glyph) error {
	h, err := f.own.handle()
	if err != nil {
		return err
	}
	ph := InvalidHandle
	if path != nil {
		if ph, err = path.direct("set glyph to path"); err != nil {
			return err
		}
	}
	e := f.ctx.e
	return call(e, "set glyph to path", func() {
		e.SetGlyphToPath(h, index, ph, hinted, g.Origin, g.Escapement)
	})
}

// SetGlyphImage defines glyph index from an image. A nil img defines an
// empty glyph.
func (f *Font) SetGlyphImage(index uint32, img ImageSource, g Glyph) error {
	h, err := f.own.handle()
	if err != nil {
		return err
	}
	ih, err := imageHandle(img)
	if err != nil {
		return err
	}
	e := f.ctx.e
	return call(e, "set glyph to image", func() {
		e.SetGlyphToImage(h, index, ih, g.Origin, g.Escapement)
	})
}

// ClearGlyph removes glyph index.
func (f *Font) ClearGlyph(index uint32) error {
	h, err := f.own.handle()
	if err != nil {
		return err
	}
	e := f.ctx.e
	return call(e, "clear glyph", func() { e.ClearGlyph(h, index) })
}

// DrawGlyph draws one glyph at the current glyph origin and advances it.
func (f *Font) DrawGlyph(index uint32, modes PaintMode, autoHinting bool) error {
	h, err := f.own.handle()
	if err != nil {
		return err
	}
	e := f.ctx.e
	return call(e, "draw glyph", func() { e.DrawGlyph(h, index, modes.Int(), autoHinting) })
}

// DrawGlyphs draws a run of glyphs. adjustX and adjustY are added to the
// escapement of each glyph; each is nil or as long as indices.
func (f *Font) DrawGlyphs(indices []uint32, adjustX, adjustY []float32, modes PaintMode, autoHinting bool) error {
	h, err := f.own.handle()
	if err != nil {
		return err
	}
	if adjustX != nil && len(adjustX) != len(indices) {
		return fmt.Errorf("%w: %d x adjustments for %d glyphs", ErrShape, len(adjustX), len(indices))
	}
	if adjustY != nil && len(adjustY) != len(indices) {
		return fmt.Errorf("%w: %d y adjustments for %d glyphs", ErrShape, len(adjustY), len(indices))
	}
	if len(indices) == 0 {
		return nil
	}
	e := f.ctx.e
	return call(e, "draw glyphs", func() {
		e.DrawGlyphs(h, indices, adjustX, adjustY, modes.Int(), autoHinting)
	})
}
