package ply

import (
	"encoding/binary"
	"math"
)

// ScalarType identifies one of the eight numeric encodings a PLY property
// may declare. Each type carries its on-disk byte width and decodes from
// little-endian bytes.
type ScalarType uint8

const (
	Int8 ScalarType = iota
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
	Float64
)

// scalarTypeNames maps header type tokens onto the fixed scalar table.
// Classic PLY names and the sized aliases used by splat exporters both
// resolve to the same eight types.
var scalarTypeNames = map[string]ScalarType{
	"char":    Int8,
	"int8":    Int8,
	"uchar":   Uint8,
	"uint8":   Uint8,
	"short":   Int16,
	"int16":   Int16,
	"ushort":  Uint16,
	"uint16":  Uint16,
	"int":     Int32,
	"int32":   Int32,
	"uint":    Uint32,
	"uint32":  Uint32,
	"float":   Float32,
	"float32": Float32,
	"double":  Float64,
	"float64": Float64,
}

// ParseScalarType resolves a header type token. The second return value
// is false for tokens outside the fixed table.
func ParseScalarType(name string) (ScalarType, bool) {
	t, ok := scalarTypeNames[name]
	return t, ok
}

var scalarWidths = [...]int{1, 1, 2, 2, 4, 4, 4, 8}

// Size returns the number of bytes one value of this type occupies.
func (t ScalarType) Size() int {
	return scalarWidths[t]
}

// String returns the canonical PLY name of the type.
func (t ScalarType) String() string {
	switch t {
	case Int8:
		return "char"
	case Uint8:
		return "uchar"
	case Int16:
		return "short"
	case Uint16:
		return "ushort"
	case Int32:
		return "int"
	case Uint32:
		return "uint"
	case Float32:
		return "float"
	case Float64:
		return "double"
	}
	return "unknown"
}

// Property is one typed column of an element. Its backing store is
// allocated during header parsing iff the caller's filter accepted the
// property name; a filtered-out property still consumes its bytes during
// decode but stores nothing.
type Property struct {
	Name string
	Type ScalarType

	width int
	data  any
	write func(row int, raw []byte)
}

// newProperty builds a property declaration, allocating a backing store
// sized to count and binding the decode operation once when retain is
// set. The store is never reallocated afterwards.
func newProperty(name string, t ScalarType, count int, retain bool) *Property {
	p := &Property{Name: name, Type: t, width: t.Size()}
	if !retain {
		return p
	}
	switch t {
	case Int8:
		s := make([]int8, count)
		p.data = s
		p.write = func(row int, raw []byte) { s[row] = int8(raw[0]) }
	case Uint8:
		s := make([]uint8, count)
		p.data = s
		p.write = func(row int, raw []byte) { s[row] = raw[0] }
	case Int16:
		s := make([]int16, count)
		p.data = s
		p.write = func(row int, raw []byte) { s[row] = int16(binary.LittleEndian.Uint16(raw)) }
	case Uint16:
		s := make([]uint16, count)
		p.data = s
		p.write = func(row int, raw []byte) { s[row] = binary.LittleEndian.Uint16(raw) }
	case Int32:
		s := make([]int32, count)
		p.data = s
		p.write = func(row int, raw []byte) { s[row] = int32(binary.LittleEndian.Uint32(raw)) }
	case Uint32:
		s := make([]uint32, count)
		p.data = s
		p.write = func(row int, raw []byte) { s[row] = binary.LittleEndian.Uint32(raw) }
	case Float32:
		s := make([]float32, count)
		p.data = s
		p.write = func(row int, raw []byte) { s[row] = math.Float32frombits(binary.LittleEndian.Uint32(raw)) }
	case Float64:
		s := make([]float64, count)
		p.data = s
		p.write = func(row int, raw []byte) { s[row] = math.Float64frombits(binary.LittleEndian.Uint64(raw)) }
	}
	return p
}

// Retained reports whether the property has a backing store.
func (p *Property) Retained() bool {
	return p.data != nil
}

// Int8s returns the decoded column of a char property, or nil when the
// property was filtered out or declares a different type. The same
// contract applies to the other typed accessors below.
func (p *Property) Int8s() []int8 {
	s, _ := p.data.([]int8)
	return s
}

func (p *Property) Uint8s() []uint8 {
	s, _ := p.data.([]uint8)
	return s
}

func (p *Property) Int16s() []int16 {
	s, _ := p.data.([]int16)
	return s
}

func (p *Property) Uint16s() []uint16 {
	s, _ := p.data.([]uint16)
	return s
}

func (p *Property) Int32s() []int32 {
	s, _ := p.data.([]int32)
	return s
}

func (p *Property) Uint32s() []uint32 {
	s, _ := p.data.([]uint32)
	return s
}

func (p *Property) Float32s() []float32 {
	s, _ := p.data.([]float32)
	return s
}

func (p *Property) Float64s() []float64 {
	s, _ := p.data.([]float64)
	return s
}
