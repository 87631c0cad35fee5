package vg

import "fmt"

// target issues the native parameter calls of one object: the context
// (vgSet*/vgGet*) or a handle (vgSetParameter*/vgGetParameter*).
type target interface {
	seti(id ParamID, v int32)
	setf(id ParamID, v float32)
	setiv(id ParamID, v []int32)
	setfv(id ParamID, v []float32)
	geti(id ParamID) int32
	getf(id ParamID) float32
	vectorSize(id ParamID) int32
	getiv(id ParamID, out []int32)
	getfv(id ParamID, out []float32)
}

type contextTarget struct{ e Engine }

func (t contextTarget) seti(id ParamID, v int32)        { t.e.Seti(id, v) }
func (t contextTarget) setf(id ParamID, v float32)      { t.e.Setf(id, v) }
func (t contextTarget) setiv(id ParamID, v []int32)     { t.e.Setiv(id, v) }
func (t contextTarget) setfv(id ParamID, v []float32)   { t.e.Setfv(id, v) }
func (t contextTarget) geti(id ParamID) int32           { return t.e.Geti(id) }
func (t contextTarget) getf(id ParamID) float32         { return t.e.Getf(id) }
func (t contextTarget) vectorSize(id ParamID) int32     { return t.e.GetVectorSize(id) }
func (t contextTarget) getiv(id ParamID, out []int32)   { t.e.Getiv(id, out) }
func (t contextTarget) getfv(id ParamID, out []float32) { t.e.Getfv(id, out) }

type objectTarget struct {
	e Engine
	h Handle
}

func (t objectTarget) seti(id ParamID, v int32)      { t.e.SetParameteri(t.h, id, v) }
func (t objectTarget) setf(id ParamID, v float32)    { t.e.SetParameterf(t.h, id, v) }
func (t objectTarget) setiv(id ParamID, v []int32)   { t.e.SetParameteriv(t.h, id, v) }
func (t objectTarget) setfv(id ParamID, v []float32) { t.e.SetParameterfv(t.h, id, v) }
func (t objectTarget) geti(id ParamID) int32         { return t.e.GetParameteri(t.h, id) }
func (t objectTarget) getf(id ParamID) float32       { return t.e.GetParameterf(t.h, id) }
func (t objectTarget) vectorSize(id ParamID) int32 {
	return t.e.GetParameterVectorSize(t.h, id)
}
func (t objectTarget) getiv(id ParamID, out []int32)   { t.e.GetParameteriv(t.h, id, out) }
func (t objectTarget) getfv(id ParamID, out []float32) { t.e.GetParameterfv(t.h, id, out) }

// Params is typed access to the parameters of one engine object.
type Params struct {
	table *Table
	e     Engine
	t     target
}

func newContextParams(e Engine) *Params {
	return &Params{table: ContextParams, e: e, t: contextTarget{e: e}}
}

func newObjectParams(table *Table, e Engine, h Handle) *Params {
	return &Params{table: table, e: e, t: objectTarget{e: e, h: h}}
}

// Table returns the descriptor table the accessor reads.
func (p *Params) Table() *Table { return p.table }

// Get reads a parameter.
func (p *Params) Get(id ParamID) (Value, error) {
	d, err := p.table.Lookup(id)
	if err != nil {
		return nil, err
	}
	op := "get " + d.Name

	if !d.Kind.vector() {
		return p.getScalar(op, d)
	}

	n := d.Shape.Size
	if d.Shape.Dynamic {
		size, err := callValue(p.e, op, func() int32 { return p.t.vectorSize(id) })
		if err != nil {
			return nil, err
		}
		n = int(size)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %s: engine reported %d elements", ErrShape, d.Name, n)
	}

	switch d.family() {
	case familyFloatVector:
		buf := make([]float32, n)
		if err := call(p.e, op, func() { p.t.getfv(id, buf) }); err != nil {
			return nil, err
		}
		if d.Kind == KindFlattened {
			tuples, err := Unflatten(buf, d.Shape.Inner, true)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", d.Name, err)
			}
			return FloatTuples(tuples), nil
		}
		return FloatVector(buf), nil
	default:
		buf := make([]int32, n)
		if err := call(p.e, op, func() { p.t.getiv(id, buf) }); err != nil {
			return nil, err
		}
		if d.Kind == KindFlattened {
			tuples, err := Unflatten(buf, d.Shape.Inner, true)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", d.Name, err)
			}
			return IntTuples(tuples), nil
		}
		return IntVector(buf), nil
	}
}

func (p *Params) getScalar(op string, d *Descriptor) (Value, error) {
	if d.family() == familyFloat {
		v, err := callValue(p.e, op, func() float32 { return p.t.getf(d.ID) })
		if err != nil {
			return nil, err
		}
		return Float(v), nil
	}

	v, err := callValue(p.e, op, func() int32 { return p.t.geti(d.ID) })
	if err != nil {
		return nil, err
	}
	switch d.Kind {
	case KindBool:
		return Bool(v != 0), nil
	case KindEnum:
		return Enum(v), nil
	case KindBitMask:
		return d.Bits.FromInt(uint32(v)), nil
	default:
		return Int(v), nil
	}
}

// Set writes a parameter. Kind, shape and writability are checked before
// the engine is called.
func (p *Params) Set(id ParamID, v Value) error {
	d, err := p.table.Lookup(id)
	if err != nil {
		return err
	}
	if d.ReadOnly {
		return fmt.Errorf("%w: %s", ErrReadOnly, d.Name)
	}
	if v == nil || v.Kind() != d.Kind {
		return fmt.Errorf("%w: %s is %v, got %T", ErrKindMismatch, d.Name, d.Kind, v)
	}
	op := "set " + d.Name

	switch v := v.(type) {
	case Int:
		return call(p.e, op, func() { p.t.seti(id, int32(v)) })
	case Enum:
		return call(p.e, op, func() { p.t.seti(id, int32(v)) })
	case Bool:
		return call(p.e, op, func() { p.t.seti(id, boolInt(bool(v))) })
	case BitMask:
		if err := checkBits(d, v); err != nil {
			return err
		}
		return call(p.e, op, func() { p.t.seti(id, int32(v.Int())) })
	case Float:
		return call(p.e, op, func() { p.t.setf(id, float32(v)) })
	case IntVector:
		if err := checkSize(d, len(v)); err != nil {
			return err
		}
		return call(p.e, op, func() { p.t.setiv(id, v) })
	case FloatVector:
		if err := checkSize(d, len(v)); err != nil {
			return err
		}
		return call(p.e, op, func() { p.t.setfv(id, v) })
	case IntTuples:
		if d.Elem != KindInt {
			return fmt.Errorf("%w: %s holds %v tuples", ErrKindMismatch, d.Name, d.Elem)
		}
		flat, err := Flatten(v, d.Shape.Inner)
		if err != nil {
			return fmt.Errorf("%s: %w", d.Name, err)
		}
		return call(p.e, op, func() { p.t.setiv(id, flat) })
	case FloatTuples:
		if d.Elem != KindFloat {
			return fmt.Errorf("%w: %s holds %v tuples", ErrKindMismatch, d.Name, d.Elem)
		}
		flat, err := Flatten(v, d.Shape.Inner)
		if err != nil {
			return fmt.Errorf("%s: %w", d.Name, err)
		}
		return call(p.e, op, func() { p.t.setfv(id, flat) })
	default:
		return fmt.Errorf("%w: %s: unsupported value %T", ErrKindMismatch, d.Name, v)
	}
}

// checkBits rejects masks built on another registry or holding bits
// beyond the parameter's declared width.
func checkBits(d *Descriptor, v BitMask) error {
	if d.Bits == nil {
		return nil
	}
	if v.Names() != nil && v.Names() != d.Bits {
		return fmt.Errorf("%w: %s takes a mask of its own %d-bit registry", ErrShape, d.Name, d.Bits.Width())
	}
	if extra := v.Int() &^ d.Bits.mask(); extra != 0 {
		return fmt.Errorf("%w: %s has undeclared bits 0x%X", ErrShape, d.Name, extra)
	}
	return nil
}

func checkSize(d *Descriptor, n int) error {
	if !d.Shape.Dynamic && n != d.Shape.Size {
		return fmt.Errorf("%w: %s takes %d elements, got %d", ErrShape, d.Name, d.Shape.Size, n)
	}
	return nil
}

// getAs reads a parameter and asserts its concrete value type.
func getAs[V Value](p *Params, id ParamID) (V, error) {
	var zero V
	v, err := p.Get(id)
	if err != nil {
		return zero, err
	}
	out, ok := v.(V)
	if !ok {
		return zero, fmt.Errorf("%w: parameter 0x%04X holds %T", ErrKindMismatch, id, v)
	}
	return out, nil
}

func getEnum[E ~int32](p *Params, id ParamID) (E, error) {
	v, err := getAs[Enum](p, id)
	return E(v), err
}

func setEnum[E ~int32](p *Params, id ParamID, v E) error {
	return p.Set(id, Enum(v))
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func getInt(p *Params, id ParamID) (int, error) {
	v, err := getAs[Int](p, id)
	return int(v), err
}

func getFloat(p *Params, id ParamID) (float32, error) {
	v, err := getAs[Float](p, id)
	return float32(v), err
}

func getBool(p *Params, id ParamID) (bool, error) {
	v, err := getAs[Bool](p, id)
	return bool(v), err
}

func getFloats(p *Params, id ParamID) ([]float32, error) {
	v, err := getAs[FloatVector](p, id)
	return []float32(v), err
}

// getColor reads a four element float vector parameter.
func getColor(p *Params, id ParamID) (Color, error) {
	v, err := getFloats(p, id)
	if err != nil {
		return Color{}, err
	}
	var c Color
	copy(c[:], v)
	return c, nil
}
