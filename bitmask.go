package vg

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// MaxBits is the widest bit mask the engine accepts (VGbitfield).
const MaxBits = 32

// AllFlag is the reserved flag name that sets every named bit.
const AllFlag = "ALL"

// BitNames is a registry of bit names, least significant bit first.
// Anonymous positions hold the empty string.
//
// Registries are shared, read-mostly values. Extend must be serialized by
// the caller if used from more than one goroutine.
type BitNames struct {
	names      []string
	extensions []string
	version    uint64
}

// NewBitNames declares a registry. It panics on more than MaxBits names,
// since declarations are static.
func NewBitNames(names ...string) *BitNames {
	if len(names) > MaxBits {
		panic(fmt.Sprintf("vg: %d bit names exceed the %d-bit limit", len(names), MaxBits))
	}
	return &BitNames{names: slices.Clone(names)}
}

// Width returns the number of declared bit positions.
func (r *BitNames) Width() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}

// Version is incremented by every successful Extend.
func (r *BitNames) Version() uint64 {
	if r == nil {
		return 0
	}
	return r.version
}

// Name returns the name of bit, or "" for anonymous or undeclared bits.
func (r *BitNames) Name(bit int) string {
	if r == nil || bit < 0 || bit >= len(r.names) {
		return ""
	}
	return r.names[bit]
}

// Index returns the position of a named bit.
func (r *BitNames) Index(name string) (int, bool) {
	if r == nil || name == "" {
		return 0, false
	}
	i := slices.Index(r.names, name)
	return i, i >= 0
}

// Extensions lists the names registered through Extend, in order.
func (r *BitNames) Extensions() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.extensions)
}

// Extend assigns name to bit. A bit that already carries a different name
// is only renamed when override is set. Extending past the current width
// grows the registry and leaves the skipped positions anonymous.
func (r *BitNames) Extend(bit int, name string, override bool) error {
	if bit < 0 || bit >= MaxBits {
		return fmt.Errorf("%w: bit %d outside the %d-bit mask", ErrShape, bit, MaxBits)
	}
	if name == "" || name == AllFlag {
		return fmt.Errorf("%w: %q cannot name a bit", ErrUnknownBit, name)
	}
	if i, ok := r.Index(name); ok && i != bit {
		return fmt.Errorf("%w: %q already names bit %d", ErrBitRenamed, name, i)
	}

	if bit < len(r.names) {
		if cur := r.names[bit]; cur != "" && cur != name && !override {
			return fmt.Errorf("%w: bit %d is %q (use override to rename)", ErrBitRenamed, bit, cur)
		}
	} else {
		r.names = append(r.names, make([]string, bit-len(r.names)+1)...)
	}

	r.names[bit] = name
	r.extensions = append(r.extensions, name)
	r.version++
	Logger().Info("vg: bit name registered", "bit", bit, "name", name, "version", r.version)
	return nil
}

// mask covers every declared position, named or not.
func (r *BitNames) mask() uint32 {
	return uint32(uint64(1)<<r.Width() - 1)
}

// namedMask covers every named position.
func (r *BitNames) namedMask() uint32 {
	var m uint32
	for i := 0; i < r.Width(); i++ {
		if r.names[i] != "" {
			m |= 1 << i
		}
	}
	return m
}

// FromInt interprets m against the registry. Bits beyond the declared
// width are dropped.
func (r *BitNames) FromInt(m uint32) BitMask {
	return BitMask{value: m & r.mask(), names: r}
}

// All returns a mask with every named bit set.
func (r *BitNames) All() BitMask {
	return BitMask{value: r.namedMask(), names: r}
}

// BitMask is an integer interpreted as a set of named flags. The registry
// travels with the value so masks stay readable after the registry grows.
//
// Two masks are equal when their integer values are; names are not
// compared. Use Equal rather than ==.
type BitMask struct {
	value uint32
	names *BitNames
}

// NewBitMask ORs masks together, keeps the bits within the declared width
// and then applies named overrides from flags. A true AllFlag entry sets
// every named bit and every other argument is ignored.
func NewBitMask(names *BitNames, masks []uint32, flags map[string]bool) (BitMask, error) {
	if all, ok := flags[AllFlag]; ok {
		if all {
			return names.All(), nil
		}
		return BitMask{names: names}, nil
	}

	var v uint32
	for _, m := range masks {
		v |= m
	}
	bm := names.FromInt(v)

	for _, name := range slices.Sorted(maps.Keys(flags)) {
		var err error
		if bm, err = bm.Set(name, flags[name]); err != nil {
			return BitMask{}, err
		}
	}
	return bm, nil
}

// Kind implements Value.
func (BitMask) Kind() ValueKind { return KindBitMask }

// Int returns the sum of 2^i over the set positions.
func (m BitMask) Int() uint32 { return m.value }

// Names returns the registry the mask was built against.
func (m BitMask) Names() *BitNames { return m.names }

// Bit reports whether position i is set.
func (m BitMask) Bit(i int) bool {
	if i < 0 || i >= MaxBits {
		return false
	}
	return m.value&(1<<i) != 0
}

// Get reports the value of a named bit.
func (m BitMask) Get(name string) (bool, error) {
	i, ok := m.names.Index(name)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownBit, name)
	}
	return m.Bit(i), nil
}

// Set returns a copy of m with the named bit set or cleared.
func (m BitMask) Set(name string, on bool) (BitMask, error) {
	i, ok := m.names.Index(name)
	if !ok {
		return m, fmt.Errorf("%w: %q", ErrUnknownBit, name)
	}
	if on {
		m.value |= 1 << i
	} else {
		m.value &^= 1 << i
	}
	return m, nil
}

// Flags lists the names of the set bits, least significant first.
// Anonymous set bits are skipped.
func (m BitMask) Flags() []string {
	var out []string
	for i := 0; i < m.names.Width(); i++ {
		if name := m.names.Name(i); name != "" && m.Bit(i) {
			out = append(out, name)
		}
	}
	return out
}

// Equal compares integer values only.
func (m BitMask) Equal(o BitMask) bool { return m.value == o.value }

func (m BitMask) String() string {
	return strings.Join(m.Flags(), ",")
}
