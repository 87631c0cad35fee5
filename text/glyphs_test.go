package text

import (
	"errors"
	"testing"

	"github.com/gogpu/vg"
)

func TestLoadGlyphs(t *testing.T) {
	f := loadGoRegular(t)
	ctx, dst, e := newTestFont(t)

	if err := LoadGlyphs(ctx, dst, f, 24, "AA "); err != nil {
		t.Fatalf("LoadGlyphs() = %v", err)
	}

	a, _ := f.GlyphIndex('A')
	space, _ := f.GlyphIndex(' ')
	if len(e.glyphs) != 2 {
		t.Fatalf("defined %d glyphs, want 2", len(e.glyphs))
	}
	if e.paths != 1 {
		t.Errorf("created %d paths, want 1 for the repeated letter", e.paths)
	}

	ga := e.glyphs[uint32(a)]
	if ga.path == vg.InvalidHandle {
		t.Error("'A' has no path")
	}
	adv, _ := f.Advance(a, 24)
	if ga.escapement[0] != adv || ga.escapement[1] != 0 {
		t.Errorf("'A' escapement = %v, want (%v, 0)", ga.escapement, adv)
	}
	if calls := e.appends[ga.path]; len(calls) != 1 || calls[0][0] != 2 {
		t.Errorf("'A' path appends = %v, want one queued call starting with MOVE_TO", calls)
	}
	if len(e.destroyed) != 1 || e.destroyed[0] != ga.path {
		t.Errorf("destroyed = %v, want the temporary path %d", e.destroyed, ga.path)
	}

	if gs := e.glyphs[uint32(space)]; gs.path != vg.InvalidHandle || gs.escapement[0] <= 0 {
		t.Errorf("space = %+v, want no path and a positive escapement", gs)
	}
}

func TestLoadGlyphsMissing(t *testing.T) {
	f := loadGoRegular(t)
	ctx, dst, e := newTestFont(t)

	err := LoadGlyphs(ctx, dst, f, 24, "A\U0001F600")
	if !errors.Is(err, ErrMissingGlyph) {
		t.Fatalf("LoadGlyphs() = %v, want ErrMissingGlyph", err)
	}
	if len(e.glyphs) != 1 {
		t.Errorf("defined %d glyphs, want the one before the missing rune", len(e.glyphs))
	}
}
