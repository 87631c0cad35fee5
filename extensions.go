package vg

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// BitRegistries are the bit name registries reachable from extension
// manifests.
var BitRegistries = map[string]*BitNames{
	"path_capability": PathCapabilityNames,
	"paint_mode":      PaintModeNames,
	"image_quality":   ImageQualityNames,
	"channel":         ChannelNames,
}

// manifest is the YAML form of vendor extensions:
//
//	bits:
//	  - registry: path_capability
//	    bit: 12
//	    name: VENDOR_CAP
//	parameters:
//	  - object: paint
//	    id: 0x1A10
//	    name: vendor_blur
//	    kind: float-vector
//	    size: 2
//	    default: [0, 0]
type manifest struct {
	Bits       []bitEntry   `yaml:"bits"`
	Parameters []paramEntry `yaml:"parameters"`
}

type bitEntry struct {
	Registry string `yaml:"registry"`
	Bit      int    `yaml:"bit"`
	Name     string `yaml:"name"`
	Override bool   `yaml:"override"`
}

type paramEntry struct {
	Object      string    `yaml:"object"`
	ID          int32     `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Kind        string    `yaml:"kind"`
	Elem        string    `yaml:"elem"`
	Size        int       `yaml:"size"`
	Dynamic     bool      `yaml:"dynamic"`
	Inner       int       `yaml:"inner"`
	Bits        string    `yaml:"bits"`
	ReadOnly    bool      `yaml:"read_only"`
	Default     yaml.Node `yaml:"default"`
}

// LoadExtensions reads a YAML manifest and registers its bit names and
// parameters, in that order. Entries before a failing one stay registered.
// Like the other registry mutations, it must not run concurrently with
// parameter access.
func LoadExtensions(r io.Reader) error {
	var m manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("vg: decode extensions: %w", err)
	}

	for _, b := range m.Bits {
		names, ok := BitRegistries[b.Registry]
		if !ok {
			return fmt.Errorf("vg: extensions: unknown bit registry %q", b.Registry)
		}
		if err := names.Extend(b.Bit, b.Name, b.Override); err != nil {
			return fmt.Errorf("vg: extensions: %s bit %d: %w", b.Registry, b.Bit, err)
		}
	}

	for _, p := range m.Parameters {
		t, d, err := p.descriptor()
		if err != nil {
			return fmt.Errorf("vg: extensions: parameter %q: %w", p.Name, err)
		}
		if err := t.Extend(d); err != nil {
			return fmt.Errorf("vg: extensions: %w", err)
		}
	}
	return nil
}

func (p *paramEntry) descriptor() (*Table, Descriptor, error) {
	kind, ok := parseObjectKind(p.Object)
	if !ok {
		return nil, Descriptor{}, fmt.Errorf("unknown object %q", p.Object)
	}
	t, _ := TableFor(kind)

	vk, ok := parseValueKind(p.Kind)
	if !ok {
		return nil, Descriptor{}, fmt.Errorf("unknown kind %q", p.Kind)
	}

	d := Descriptor{
		ID:          ParamID(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Kind:        vk,
		ReadOnly:    p.ReadOnly,
	}
	switch {
	case vk == KindFlattened:
		d.Shape = FlattenedOf(p.Inner)
	case vk.vector() && p.Dynamic:
		d.Shape = Dynamic()
	case vk.vector():
		d.Shape = Fixed(p.Size)
	default:
		d.Shape = Scalar()
	}
	if p.Elem != "" {
		if d.Elem, ok = parseValueKind(p.Elem); !ok {
			return nil, Descriptor{}, fmt.Errorf("unknown element kind %q", p.Elem)
		}
	}
	if p.Bits != "" {
		if d.Bits, ok = BitRegistries[p.Bits]; !ok {
			return nil, Descriptor{}, fmt.Errorf("unknown bit registry %q", p.Bits)
		}
	}

	if !p.Default.IsZero() {
		v, err := decodeValue(&p.Default, d)
		if err != nil {
			return nil, Descriptor{}, fmt.Errorf("default: %w", err)
		}
		d.Default = v
	}
	return t, d, nil
}

// decodeValue decodes a YAML node as a value of the descriptor's kind.
func decodeValue(n *yaml.Node, d Descriptor) (Value, error) {
	switch d.Kind {
	case KindInt:
		var v int32
		err := n.Decode(&v)
		return Int(v), err
	case KindFloat:
		var v float32
		err := n.Decode(&v)
		return Float(v), err
	case KindBool:
		var v bool
		err := n.Decode(&v)
		return Bool(v), err
	case KindEnum:
		var v int32
		err := n.Decode(&v)
		return Enum(v), err
	case KindIntVector:
		var v []int32
		err := n.Decode(&v)
		return IntVector(v), err
	case KindFloatVector:
		var v []float32
		err := n.Decode(&v)
		return FloatVector(v), err
	case KindFlattened:
		if d.Elem == KindFloat {
			var v [][]float32
			err := n.Decode(&v)
			return FloatTuples(v), err
		}
		var v [][]int32
		err := n.Decode(&v)
		return IntTuples(v), err
	case KindBitMask:
		if d.Bits == nil {
			return nil, fmt.Errorf("bitmask without bit names")
		}
		var flags []string
		if err := n.Decode(&flags); err != nil {
			return nil, err
		}
		set := make(map[string]bool, len(flags))
		for _, f := range flags {
			set[f] = true
		}
		return NewBitMask(d.Bits, nil, set)
	default:
		return nil, fmt.Errorf("unsupported kind %v", d.Kind)
	}
}

func parseObjectKind(s string) (ObjectKind, bool) {
	i := slices.Index(objectKindNames[:], s)
	return ObjectKind(i), i >= 0
}

func parseValueKind(s string) (ValueKind, bool) {
	i := slices.Index(valueKindNames[:], s)
	return ValueKind(i), i >= 0
}
