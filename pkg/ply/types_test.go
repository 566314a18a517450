package ply

import "testing"

func TestParseScalarType(t *testing.T) {
	testCases := []struct {
		name string
		want ScalarType
	}{
		{"char", Int8},
		{"int8", Int8},
		{"uchar", Uint8},
		{"uint8", Uint8},
		{"short", Int16},
		{"int16", Int16},
		{"ushort", Uint16},
		{"uint16", Uint16},
		{"int", Int32},
		{"int32", Int32},
		{"uint", Uint32},
		{"uint32", Uint32},
		{"float", Float32},
		{"float32", Float32},
		{"double", Float64},
		{"float64", Float64},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseScalarType(tc.name)
			if !ok {
				t.Fatalf("ParseScalarType(%q) not recognized", tc.name)
			}
			if got != tc.want {
				t.Errorf("ParseScalarType(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}

	for _, bad := range []string{"longdouble", "list", "float16", "", "FLOAT"} {
		if _, ok := ParseScalarType(bad); ok {
			t.Errorf("ParseScalarType(%q) unexpectedly recognized", bad)
		}
	}
}

func TestScalarType_Size(t *testing.T) {
	sizes := map[ScalarType]int{
		Int8:    1,
		Uint8:   1,
		Int16:   2,
		Uint16:  2,
		Int32:   4,
		Uint32:  4,
		Float32: 4,
		Float64: 8,
	}
	for st, want := range sizes {
		if got := st.Size(); got != want {
			t.Errorf("%s.Size() = %d, want %d", st, got, want)
		}
	}
}

// TestProperty_DecodeBitPatterns checks that each scalar type decodes a
// known little-endian bit pattern to its documented value.
func TestProperty_DecodeBitPatterns(t *testing.T) {
	t.Run("float 00 00 80 3F is 1.0", func(t *testing.T) {
		p := newProperty("x", Float32, 1, true)
		p.write(0, []byte{0x00, 0x00, 0x80, 0x3F})
		if got := p.Float32s()[0]; got != 1.0 {
			t.Errorf("got %v, want 1.0", got)
		}
	})

	t.Run("ushort FF FF is 65535", func(t *testing.T) {
		p := newProperty("v", Uint16, 1, true)
		p.write(0, []byte{0xFF, 0xFF})
		if got := p.Uint16s()[0]; got != 65535 {
			t.Errorf("got %v, want 65535", got)
		}
	})

	t.Run("short FF FF is -1", func(t *testing.T) {
		p := newProperty("v", Int16, 1, true)
		p.write(0, []byte{0xFF, 0xFF})
		if got := p.Int16s()[0]; got != -1 {
			t.Errorf("got %v, want -1", got)
		}
	})

	t.Run("char 80 is -128", func(t *testing.T) {
		p := newProperty("v", Int8, 1, true)
		p.write(0, []byte{0x80})
		if got := p.Int8s()[0]; got != -128 {
			t.Errorf("got %v, want -128", got)
		}
	})

	t.Run("uchar FF is 255", func(t *testing.T) {
		p := newProperty("v", Uint8, 1, true)
		p.write(0, []byte{0xFF})
		if got := p.Uint8s()[0]; got != 255 {
			t.Errorf("got %v, want 255", got)
		}
	})

	t.Run("int FF FF FF FF is -1", func(t *testing.T) {
		p := newProperty("v", Int32, 1, true)
		p.write(0, []byte{0xFF, 0xFF, 0xFF, 0xFF})
		if got := p.Int32s()[0]; got != -1 {
			t.Errorf("got %v, want -1", got)
		}
	})

	t.Run("uint FF FF FF FF is 4294967295", func(t *testing.T) {
		p := newProperty("v", Uint32, 1, true)
		p.write(0, []byte{0xFF, 0xFF, 0xFF, 0xFF})
		if got := p.Uint32s()[0]; got != 4294967295 {
			t.Errorf("got %v, want 4294967295", got)
		}
	})

	t.Run("double 00..F0 3F is 1.0", func(t *testing.T) {
		p := newProperty("v", Float64, 1, true)
		p.write(0, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF0, 0x3F})
		if got := p.Float64s()[0]; got != 1.0 {
			t.Errorf("got %v, want 1.0", got)
		}
	})
}

func TestProperty_FilteredOut(t *testing.T) {
	p := newProperty("x", Float32, 4, false)
	if p.Retained() {
		t.Error("filtered-out property reports Retained")
	}
	if p.Float32s() != nil {
		t.Error("filtered-out property returned a backing store")
	}
	if p.write != nil {
		t.Error("filtered-out property has a write op")
	}
}

func TestProperty_WrongTypeAccessor(t *testing.T) {
	p := newProperty("x", Float32, 2, true)
	if p.Int32s() != nil {
		t.Error("Int32s on a float property should be nil")
	}
	if got := len(p.Float32s()); got != 2 {
		t.Errorf("backing store length = %d, want 2", got)
	}
}
