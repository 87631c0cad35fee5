package text

import "github.com/gogpu/vg"

// Adjustments returns the glyph indices of a run and the per-glyph
// escapement adjustments that move each glyph origin from its nominal
// position to the shaped one. The offset of the first glyph is relative
// to the current glyph origin and cannot be expressed, so it is dropped.
func Adjustments(glyphs []Glyph) (indices []uint32, adjustX, adjustY []float32) {
	indices = make([]uint32, len(glyphs))
	adjustX = make([]float32, len(glyphs))
	adjustY = make([]float32, len(glyphs))
	for i, g := range glyphs {
		indices[i] = uint32(g.ID)
		adjustX[i] = g.Advance - g.Nominal
		if i+1 < len(glyphs) {
			next := glyphs[i+1]
			adjustX[i] += next.XOffset - g.XOffset
			adjustY[i] = next.YOffset - g.YOffset
		}
	}
	return indices, adjustX, adjustY
}

// Draw draws a shaped run from the current glyph origin. The glyphs must
// have been loaded into dst with LoadGlyphs at the size they were shaped
// at.
func Draw(dst *vg.Font, glyphs []Glyph, modes vg.PaintMode) error {
	if len(glyphs) == 0 {
		return nil
	}
	indices, adjustX, adjustY := Adjustments(glyphs)
	return dst.DrawGlyphs(indices, adjustX, adjustY, modes, false)
}
