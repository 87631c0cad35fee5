package text

import (
	"testing"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/vg"
)

// glyphEngine records the calls text makes. Engine methods it does not
// override panic through the nil embedded interface.
type glyphEngine struct {
	vg.Engine

	next      vg.Handle
	paths     int
	destroyed []vg.Handle
	appends   map[vg.Handle][][]byte
	glyphs    map[uint32]glyphDef

	drawn            []uint32
	adjustX, adjustY []float32
}

type glyphDef struct {
	path       vg.Handle
	escapement f32.Vec2
}

func newGlyphEngine() *glyphEngine {
	return &glyphEngine{
		next:    100,
		appends: make(map[vg.Handle][][]byte),
		glyphs:  make(map[uint32]glyphDef),
	}
}

func (e *glyphEngine) GetError() vg.ErrorCode { return vg.NoError }

func (e *glyphEngine) CreatePath(vg.PathFormat, vg.PathDatatype, float32, float32, int32, int32, uint32) vg.Handle {
	e.next++
	e.paths++
	return e.next
}

func (e *glyphEngine) DestroyPath(h vg.Handle) { e.destroyed = append(e.destroyed, h) }

func (e *glyphEngine) AppendPathData(h vg.Handle, segments []byte, _ []byte) {
	e.appends[h] = append(e.appends[h], append([]byte(nil), segments...))
}

func (e *glyphEngine) CreateFont(int32) vg.Handle {
	e.next++
	return e.next
}

func (e *glyphEngine) SetGlyphToPath(_ vg.Handle, index uint32, path vg.Handle, _ bool, _, escapement f32.Vec2) {
	e.glyphs[index] = glyphDef{path: path, escapement: escapement}
}

func (e *glyphEngine) DrawGlyphs(_ vg.Handle, indices []uint32, adjustX, adjustY []float32, _ uint32, _ bool) {
	e.drawn = append([]uint32(nil), indices...)
	e.adjustX = append([]float32(nil), adjustX...)
	e.adjustY = append([]float32(nil), adjustY...)
}

func newTestFont(t *testing.T) (*vg.Context, *vg.Font, *glyphEngine) {
	t.Helper()
	e := newGlyphEngine()
	ctx, err := vg.NewContext(e)
	if err != nil {
		t.Fatal(err)
	}
	dst, err := vg.NewFont(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	return ctx, dst, e
}
