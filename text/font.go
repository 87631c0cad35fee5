package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GlyphID is a glyph index in a font.
type GlyphID uint32

// Font is a parsed TrueType or OpenType font. The same data backs outline
// extraction and shaping.
//
// Font is safe for concurrent use.
type Font struct {
	data []byte
	name string

	outlines *sfnt.Font
	shaping  *font.Font

	mu  sync.Mutex
	buf sfnt.Buffer
}

// NewFont parses font data. The data is copied.
func NewFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	data = bytes.Clone(data)

	outlines, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}

	f := &Font{data: data, outlines: outlines, shaping: face.Font}
	if name, err := outlines.Name(&f.buf, sfnt.NameIDFull); err == nil {
		f.name = name
	}
	return f, nil
}

// NewFontFromFile loads a font from a file path.
func NewFontFromFile(path string) (*Font, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFont(data)
}

// Name returns the full font name, or the empty string when the font has
// none.
func (f *Font) Name() string { return f.name }

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int { return f.outlines.NumGlyphs() }

// GlyphIndex returns the glyph for r.
func (f *Font) GlyphIndex(r rune) (GlyphID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	gid, err := f.outlines.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0, fmt.Errorf("text: glyph index %q: %w", r, err)
	}
	if gid == 0 {
		return 0, fmt.Errorf("%w: %q", ErrMissingGlyph, r)
	}
	return GlyphID(gid), nil
}

// Advance returns the unhinted horizontal advance of gid at size pixels
// per em.
func (f *Font) Advance(gid GlyphID, size float64) (float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.advance(gid, size)
}

func (f *Font) advance(gid GlyphID, size float64) (float32, error) {
	adv, err := f.outlines.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), ppem(size), 0)
	if err != nil {
		return 0, fmt.Errorf("text: advance of glyph %d: %w", gid, err)
	}
	return fixedToFloat(adv), nil
}

func ppem(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
