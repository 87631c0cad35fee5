package vg

import (
	"fmt"
	"slices"
)

// ParamID identifies one piece of engine state on an object kind.
type ParamID int32

// ObjectKind is the kind of engine object a parameter table describes.
type ObjectKind uint8

const (
	ObjectContext ObjectKind = iota
	ObjectPath
	ObjectPaint
	ObjectImage
	ObjectFont
)

var objectKindNames = [...]string{
	ObjectContext: "context",
	ObjectPath:    "path",
	ObjectPaint:   "paint",
	ObjectImage:   "image",
	ObjectFont:    "font",
}

func (k ObjectKind) String() string {
	if int(k) < len(objectKindNames) {
		return objectKindNames[k]
	}
	return fmt.Sprintf("ObjectKind(%d)", k)
}

// ValueKind is the declared type of a parameter value.
type ValueKind uint8

const (
	KindInt ValueKind = iota
	KindFloat
	KindBool
	KindEnum
	KindIntVector
	KindFloatVector
	KindFlattened
	KindBitMask
)

var valueKindNames = [...]string{
	KindInt:         "int",
	KindFloat:       "float",
	KindBool:        "bool",
	KindEnum:        "enum",
	KindIntVector:   "int-vector",
	KindFloatVector: "float-vector",
	KindFlattened:   "flattened",
	KindBitMask:     "bitmask",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return fmt.Sprintf("ValueKind(%d)", k)
}

// vector reports whether values of this kind travel through the vector
// entry points.
func (k ValueKind) vector() bool {
	return k == KindIntVector || k == KindFloatVector || k == KindFlattened
}

// Shape is the size rule of a vector parameter.
type Shape struct {
	// Size is the element count when known statically.
	Size int

	// Dynamic means the engine is asked for the size at call time.
	Dynamic bool

	// Inner is the tuple width of a flattened parameter.
	Inner int
}

// Scalar is the shape of single-valued parameters.
func Scalar() Shape { return Shape{Size: 1} }

// Fixed is a vector of exactly n elements.
func Fixed(n int) Shape { return Shape{Size: n} }

// Dynamic is a vector whose size is queried from the engine.
func Dynamic() Shape { return Shape{Dynamic: true} }

// FlattenedOf is a dynamically sized sequence of inner-wide tuples.
func FlattenedOf(inner int) Shape { return Shape{Dynamic: true, Inner: inner} }

// family is the native entry-point family of a parameter.
type family uint8

const (
	familyInt family = iota
	familyFloat
	familyIntVector
	familyFloatVector
)

// Descriptor describes one parameter and its access rules.
type Descriptor struct {
	ID          ParamID
	Name        string
	Description string
	Kind        ValueKind

	// Elem is the element kind of a flattened parameter, KindInt or
	// KindFloat.
	Elem ValueKind

	Shape   Shape
	Default Value

	// Bits is the registry for KindBitMask parameters.
	Bits *BitNames

	ReadOnly bool
}

// family picks the entry points from the declared kind alone.
func (d *Descriptor) family() family {
	switch d.Kind {
	case KindFloat:
		return familyFloat
	case KindIntVector:
		return familyIntVector
	case KindFloatVector:
		return familyFloatVector
	case KindFlattened:
		if d.Elem == KindFloat {
			return familyFloatVector
		}
		return familyIntVector
	default:
		return familyInt
	}
}

func (d *Descriptor) validate() error {
	switch {
	case d.Kind > KindBitMask:
		return fmt.Errorf("vg: parameter 0x%04X: unsupported value kind %v", d.ID, d.Kind)
	case d.Kind == KindBitMask && d.Bits == nil:
		return fmt.Errorf("vg: parameter 0x%04X: bitmask without bit names", d.ID)
	case d.Kind == KindFlattened && d.Shape.Inner <= 0:
		return fmt.Errorf("%w: parameter 0x%04X: flattened without tuple width", ErrShape, d.ID)
	case d.Kind == KindFlattened && d.Elem != KindInt && d.Elem != KindFloat:
		return fmt.Errorf("vg: parameter 0x%04X: flattened element kind %v", d.ID, d.Elem)
	case d.Kind.vector() && !d.Shape.Dynamic && d.Shape.Size <= 0:
		return fmt.Errorf("%w: parameter 0x%04X: vector without size", ErrShape, d.ID)
	}
	return nil
}

// Table holds the descriptors of one object kind. Tables are built once at
// package initialization and only grow through Extend, which must be
// serialized by the caller.
type Table struct {
	kind  ObjectKind
	byID  map[ParamID]*Descriptor
	order []ParamID
}

// NewTable builds a table. It panics on an invalid or duplicate
// descriptor, since tables are static declarations.
func NewTable(kind ObjectKind, descs ...Descriptor) *Table {
	t := &Table{kind: kind, byID: make(map[ParamID]*Descriptor, len(descs))}
	for _, d := range descs {
		if err := t.add(d); err != nil {
			panic(err)
		}
	}
	return t
}

// Kind returns the object kind the table describes.
func (t *Table) Kind() ObjectKind { return t.kind }

func (t *Table) add(d Descriptor) error {
	if err := d.validate(); err != nil {
		return err
	}
	if _, ok := t.byID[d.ID]; ok {
		return fmt.Errorf("%w: %v parameter 0x%04X", ErrDuplicateParam, t.kind, d.ID)
	}
	t.byID[d.ID] = &d
	t.order = append(t.order, d.ID)
	return nil
}

// Extend registers a vendor-specific parameter.
func (t *Table) Extend(d Descriptor) error {
	if d.Description == "" {
		d.Description = "An extension parameter"
	}
	if err := t.add(d); err != nil {
		return err
	}
	Logger().Info("vg: parameter registered",
		"object", t.kind.String(), "id", int32(d.ID), "name", d.Name, "kind", d.Kind.String())
	return nil
}

// Lookup returns the descriptor for id.
func (t *Table) Lookup(id ParamID) (*Descriptor, error) {
	d, ok := t.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v parameter 0x%04X", ErrUnknownParam, t.kind, id)
	}
	return d, nil
}

// LookupName finds a descriptor by its name.
func (t *Table) LookupName(name string) (*Descriptor, error) {
	for _, id := range t.order {
		if d := t.byID[id]; d.Name == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %v parameter %q", ErrUnknownParam, t.kind, name)
}

// Descriptors lists the table in declaration order.
func (t *Table) Descriptors() []*Descriptor {
	out := make([]*Descriptor, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.byID[id])
	}
	return out
}

// Default returns the declared default of a parameter.
func (t *Table) Default(id ParamID) (Value, error) {
	d, err := t.Lookup(id)
	if err != nil {
		return nil, err
	}
	return d.Default, nil
}

// Describe returns the description of id, or "" when id is unknown.
func (t *Table) Describe(id ParamID) string {
	if d, ok := t.byID[id]; ok {
		return d.Description
	}
	return ""
}

// Has reports whether id is declared.
func (t *Table) Has(id ParamID) bool {
	_, ok := t.byID[id]
	return ok
}

// Value is a parameter value. The concrete types form a closed set:
// Int, Float, Bool, Enum, IntVector, FloatVector, IntTuples, FloatTuples
// and BitMask.
type Value interface {
	Kind() ValueKind
}

type (
	// Int is a scalar integer value.
	Int int32

	// Float is a scalar floating point value.
	Float float32

	// Bool is a boolean value, stored as a nonzero integer.
	Bool bool

	// Enum is an enumerated integer value.
	Enum int32

	// IntVector is an integer vector value.
	IntVector []int32

	// FloatVector is a floating point vector value.
	FloatVector []float32

	// IntTuples is a flattened sequence of integer tuples.
	IntTuples [][]int32

	// FloatTuples is a flattened sequence of floating point tuples.
	FloatTuples [][]float32
)

func (Int) Kind() ValueKind         { return KindInt }
func (Float) Kind() ValueKind       { return KindFloat }
func (Bool) Kind() ValueKind        { return KindBool }
func (Enum) Kind() ValueKind        { return KindEnum }
func (IntVector) Kind() ValueKind   { return KindIntVector }
func (FloatVector) Kind() ValueKind { return KindFloatVector }
func (IntTuples) Kind() ValueKind   { return KindFlattened }
func (FloatTuples) Kind() ValueKind { return KindFlattened }

// Equal reports whether two values hold the same data.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case IntVector:
		b, ok := b.(IntVector)
		return ok && slices.Equal(a, b)
	case FloatVector:
		b, ok := b.(FloatVector)
		return ok && slices.Equal(a, b)
	case IntTuples:
		b, ok := b.(IntTuples)
		return ok && slices.EqualFunc(a, b, slices.Equal[[]int32])
	case FloatTuples:
		b, ok := b.(FloatTuples)
		return ok && slices.EqualFunc(a, b, slices.Equal[[]float32])
	case BitMask:
		b, ok := b.(BitMask)
		return ok && a.Equal(b)
	default:
		return a == b
	}
}
