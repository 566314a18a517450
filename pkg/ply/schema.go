package ply

// Element is a named fixed-size table of rows declared by the header.
// Count and the property list never change after header parsing; the
// property order is the on-disk column order.
type Element struct {
	Name       string
	Count      int
	Properties []*Property
}

// Property returns the named property, or nil when the element does not
// declare it.
func (e *Element) Property(name string) *Property {
	for _, p := range e.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// RowSize returns the on-disk byte width of one row.
func (e *Element) RowSize() int {
	size := 0
	for _, p := range e.Properties {
		size += p.width
	}
	return size
}

// Schema is the parser's terminal output: the declared elements in
// header order with their decoded columns filled in.
type Schema struct {
	Elements []*Element
}

// Element returns the named element, or nil.
func (s *Schema) Element(name string) *Element {
	for _, e := range s.Elements {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// DataSize returns the total payload size in bytes declared by the
// schema, counting filtered-out properties as well.
func (s *Schema) DataSize() int64 {
	var total int64
	for _, e := range s.Elements {
		total += int64(e.Count) * int64(e.RowSize())
	}
	return total
}
