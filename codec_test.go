package vg

import (
	"errors"
	"slices"
	"testing"
)

func TestParamsScalarRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		id   ParamID
		v    Value
		call string
	}{
		{"enum", ParamFillRule, Enum(NonZero), "Seti"},
		{"float", ParamStrokeLineWidth, Float(3), "Setf"},
		{"bool", ParamMasking, Bool(true), "Seti"},
		{"bitmask", ParamFilterChannelMask, ChannelNames.FromInt(0b1001), "Seti"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, e := newTestContext(t)
			p := ctx.Params()

			if err := p.Set(tt.id, tt.v); err != nil {
				t.Fatalf("Set() = %v", err)
			}
			if e.count(tt.call) != 1 {
				t.Errorf("%s calls = %d, want 1", tt.call, e.count(tt.call))
			}
			got, err := p.Get(tt.id)
			if err != nil {
				t.Fatalf("Get() = %v", err)
			}
			if !Equal(got, tt.v) {
				t.Errorf("Get() = %v, want %v", got, tt.v)
			}
		})
	}
}

func TestParamsBitMaskCarriesNames(t *testing.T) {
	ctx, _ := newTestContext(t)
	m, err := NewBitMask(ChannelNames, nil, map[string]bool{"RED": true})
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.SetFilterChannelMask(m); err != nil {
		t.Fatal(err)
	}
	got, err := ctx.FilterChannelMask()
	if err != nil {
		t.Fatal(err)
	}
	if on, err := got.Get("RED"); err != nil || !on {
		t.Errorf("Get(RED) = %v, %v", on, err)
	}
}

func TestParamsFlattened(t *testing.T) {
	ctx, e := newTestContext(t)
	p := ctx.Params()

	rects := IntTuples{{0, 0, 10, 10}, {5, 5, 20, 20}}
	if err := p.Set(ParamScissorRects, rects); err != nil {
		t.Fatal(err)
	}
	if got := e.ivs[paramKey{id: ParamScissorRects}]; !slices.Equal(got, []int32{0, 0, 10, 10, 5, 5, 20, 20}) {
		t.Errorf("engine received %v", got)
	}

	got, err := p.Get(ParamScissorRects)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(got, rects) {
		t.Errorf("Get() = %v, want %v", got, rects)
	}
	if e.count("GetVectorSize") != 1 {
		t.Errorf("GetVectorSize calls = %d, want 1", e.count("GetVectorSize"))
	}
}

func TestParamsFlattenedPartialTupleFromEngine(t *testing.T) {
	ctx, e := newTestContext(t)
	e.ivs[paramKey{id: ParamScissorRects}] = []int32{1, 2, 3, 4, 5, 6}

	v, err := ctx.Params().Get(ParamScissorRects)
	if !errors.Is(err, ErrShape) || v != nil {
		t.Errorf("Get() = %v, %v; want nil, ErrShape", v, err)
	}
}

func TestParamsDynamicVector(t *testing.T) {
	ctx, _ := newTestContext(t)
	if err := ctx.SetStrokeDashPattern(4, 2, 1); err != nil {
		t.Fatal(err)
	}
	got, err := ctx.StrokeDashPattern()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []float32{4, 2, 1}) {
		t.Errorf("StrokeDashPattern() = %v", got)
	}
}

// TestParamsLocalErrors checks that rejected values never reach the engine.
func TestParamsLocalErrors(t *testing.T) {
	tests := []struct {
		name string
		id   ParamID
		v    Value
		want error
	}{
		{"unknown", 0x7777, Int(1), ErrUnknownParam},
		{"read only", ParamMaxScissorRects, Int(4), ErrReadOnly},
		{"kind mismatch", ParamStrokeLineWidth, Int(1), ErrKindMismatch},
		{"nil value", ParamFillRule, nil, ErrKindMismatch},
		{"fixed size", ParamClearColor, FloatVector{1, 1, 1}, ErrShape},
		{"tuple width", ParamScissorRects, IntTuples{{1, 2, 3}}, ErrShape},
		{"tuple element", ParamScissorRects, FloatTuples{{1, 2, 3, 4}}, ErrKindMismatch},
		{"foreign bit registry", ParamFilterChannelMask, PathCapabilityNames.All(), ErrShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, e := newTestContext(t)
			err := ctx.Params().Set(tt.id, tt.v)
			if !errors.Is(err, tt.want) {
				t.Errorf("Set() = %v, want %v", err, tt.want)
			}
			if len(e.calls) != 0 {
				t.Errorf("engine calls = %v, want none", e.calls)
			}
		})
	}
}

func TestParamsEngineError(t *testing.T) {
	ctx, e := newTestContext(t)
	e.fail["Geti"] = IllegalArgumentError

	v, err := ctx.Params().Get(ParamFillRule)
	if !errors.Is(err, ErrIllegalArgument) || v != nil {
		t.Errorf("Get() = %v, %v; want nil, ErrIllegalArgument", v, err)
	}
}

func TestObjectParamsUseHandle(t *testing.T) {
	ctx, e := newTestContext(t)
	paint, err := NewPaint(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := paint.SetType(PaintLinearGradient); err != nil {
		t.Fatal(err)
	}
	if got := e.ints[paramKey{paint.Handle(), PaintParamType}]; got != int32(PaintLinearGradient) {
		t.Errorf("paint type = 0x%X, want 0x%X", got, int32(PaintLinearGradient))
	}
	if _, ok := e.ints[paramKey{id: PaintParamType}]; ok {
		t.Error("paint parameter written to the context")
	}
}

func TestTableLookup(t *testing.T) {
	d, err := ContextParams.LookupName("stroke_miter_limit")
	if err != nil {
		t.Fatal(err)
	}
	if d.ID != ParamStrokeMiterLimit || !Equal(d.Default, Float(4)) {
		t.Errorf("descriptor = %+v", d)
	}
	if _, err := ContextParams.Lookup(0x1FFF); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("Lookup() = %v, want ErrUnknownParam", err)
	}
	if ContextParams.Describe(0x1FFF) != "" {
		t.Error("Describe of an unknown id is not empty")
	}
	def, err := PaintParams.Default(PaintParamColor)
	if err != nil || !Equal(def, FloatVector{0, 0, 0, 1}) {
		t.Errorf("Default(color) = %v, %v", def, err)
	}
}

func TestTableExtend(t *testing.T) {
	tbl := NewTable(ObjectPaint)
	d := Descriptor{ID: 0x1A80, Name: "vendor_blur", Kind: KindFloatVector, Shape: Fixed(2)}
	if err := tbl.Extend(d); err != nil {
		t.Fatal(err)
	}
	if tbl.Describe(0x1A80) != "An extension parameter" {
		t.Errorf("Describe() = %q", tbl.Describe(0x1A80))
	}
	if err := tbl.Extend(d); !errors.Is(err, ErrDuplicateParam) {
		t.Errorf("second Extend() = %v, want ErrDuplicateParam", err)
	}
	bad := Descriptor{ID: 0x1A81, Kind: KindFlattened, Elem: KindInt}
	if err := tbl.Extend(bad); !errors.Is(err, ErrShape) {
		t.Errorf("Extend(no tuple width) = %v, want ErrShape", err)
	}
}

func TestTablesCoverEveryObject(t *testing.T) {
	for _, k := range []ObjectKind{ObjectContext, ObjectPath, ObjectPaint, ObjectImage, ObjectFont} {
		tbl, ok := TableFor(k)
		if !ok || tbl.Kind() != k {
			t.Errorf("TableFor(%v) = %v, %v", k, tbl, ok)
			continue
		}
		for _, d := range tbl.Descriptors() {
			if d.Default != nil && d.Default.Kind() != d.Kind {
				t.Errorf("%v %s: default kind %v, declared %v", k, d.Name, d.Default.Kind(), d.Kind)
			}
		}
	}
}
