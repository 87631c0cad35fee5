package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/norm"
)

// Glyph is one shaped glyph. Offsets and advances are in pixels.
type Glyph struct {
	ID GlyphID

	// Cluster is the index of the first rune, in the normalized text, that
	// produced the glyph.
	Cluster int

	// Advance is the shaped advance and Nominal the font's own advance
	// for the glyph, which LoadGlyphs registers as its escapement.
	Advance float32
	Nominal float32

	XOffset, YOffset float32
}

// Shaper positions glyphs with kerning, ligatures and complex script
// rules. The zero value is ready to use. Shaper is safe for concurrent use.
type Shaper struct {
	mu sync.Mutex
	hb shaping.HarfbuzzShaper
}

// Shape normalizes s to NFC and shapes it left to right at size pixels
// per em. Empty text yields no glyphs.
func (s *Shaper) Shape(text string, f *Font, size float64) []Glyph {
	runes := []rune(norm.NFC.String(text))
	if len(runes) == 0 {
		return nil
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f.shaping),
		Size:      ppem(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	s.mu.Lock()
	out := s.hb.Shape(input)
	s.mu.Unlock()

	glyphs := make([]Glyph, len(out.Glyphs))
	for i, g := range out.Glyphs {
		gid := GlyphID(g.GlyphID)
		nominal, err := f.Advance(gid, size)
		if err != nil {
			nominal = fixedToFloat(g.Advance)
		}
		glyphs[i] = Glyph{
			ID:      gid,
			Cluster: g.TextIndex(),
			Advance: fixedToFloat(g.Advance),
			Nominal: nominal,
			XOffset: fixedToFloat(g.XOffset),
			YOffset: fixedToFloat(g.YOffset),
		}
	}
	return glyphs
}

// detectScript returns the script of the first non-space rune. Mixed
// script text should be split into runs before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
