// Package text loads font outlines into OpenVG fonts and shapes strings
// into glyph runs drawn with vg.Font.DrawGlyphs.
//
// Glyphs are registered under their glyph ID, so shaped output indexes the
// engine font directly:
//
//	f, err := text.NewFont(goregular.TTF)
//	dst, err := vg.NewFont(ctx, 0)
//	err = text.LoadGlyphs(ctx, dst, f, 24, "Hello")
//
//	var s text.Shaper
//	err = text.Draw(dst, s.Shape("Hello", f, 24), vg.Fill)
//
// Outlines are parsed with golang.org/x/image/font/sfnt and shaping uses
// the HarfBuzz port in github.com/go-text/typesetting.
package text
