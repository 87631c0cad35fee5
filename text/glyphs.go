package text

import (
	"errors"
	"fmt"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/vg"
)

// LoadGlyphs defines in dst the glyph of every rune in runes, at size
// pixels per em. Each glyph is registered under its glyph ID with its
// advance as escapement. Repeated runes are loaded once.
func LoadGlyphs(ctx *vg.Context, dst *vg.Font, f *Font, size float64, runes string) error {
	seen := make(map[GlyphID]bool)
	for _, r := range runes {
		gid, err := f.GlyphIndex(r)
		if err != nil {
			return err
		}
		if seen[gid] {
			continue
		}
		seen[gid] = true

		if err := loadGlyph(ctx, dst, f, gid, size); err != nil {
			return fmt.Errorf("text: glyph %q: %w", r, err)
		}
	}
	vg.Logger().Debug("text: glyphs loaded", "font", f.Name(), "glyphs", len(seen), "size", size)
	return nil
}

func loadGlyph(ctx *vg.Context, dst *vg.Font, f *Font, gid GlyphID, size float64) (err error) {
	o, err := f.Outline(gid, size)
	if err != nil {
		return err
	}
	g := vg.Glyph{Escapement: f32.Vec2{o.Advance, 0}}
	if o.IsEmpty() {
		return dst.SetGlyphPath(uint32(gid), nil, false, g)
	}

	p, err := vg.NewPath(ctx)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, p.Destroy())
	}()

	if err := p.Queue(func() error { return o.AppendTo(p) }); err != nil {
		return err
	}
	return dst.SetGlyphPath(uint32(gid), p, false, g)
}
