package ply

import (
	"strconv"
	"strings"
)

// Filter decides whether a named property gets a backing store. A nil
// filter keeps every property.
type Filter func(name string) bool

const (
	magic            = "ply\n"
	headerTerminator = "\nend_header\n"

	formatLittleEndian = "binary_little_endian"
	commentPrefix      = "comment "
)

// parseHeader converts the directive lines between the magic marker and
// the header terminator into a Schema, allocating backing stores for the
// properties the filter accepts. Lines are recognized purely by leading
// keyword; anything unknown is fatal.
func parseHeader(text string, filter Filter) (*Schema, error) {
	schema := &Schema{}
	var current *Element
	for _, line := range strings.Split(text, "\n") {
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "format":
			// Only the encoding token is validated; the version
			// token is accepted as-is.
			if len(fields) < 2 || fields[1] != formatLittleEndian {
				return nil, structuralf("unsupported format %q: only %s is supported",
					strings.TrimPrefix(line, "format "), formatLittleEndian)
			}
		case "element":
			if len(fields) < 3 {
				return nil, structuralf("malformed element declaration %q", line)
			}
			count, err := strconv.Atoi(fields[2])
			if err != nil || count < 0 {
				return nil, structuralf("invalid element count %q", fields[2])
			}
			current = &Element{Name: fields[1], Count: count}
			schema.Elements = append(schema.Elements, current)
		case "property":
			if len(fields) < 3 {
				return nil, structuralf("malformed property declaration %q", line)
			}
			if current == nil {
				return nil, structuralf("property %q declared before any element", fields[2])
			}
			t, ok := ParseScalarType(fields[1])
			if !ok {
				return nil, structuralf("unrecognized property type %q", fields[1])
			}
			name := fields[2]
			retain := filter == nil || filter(name)
			current.Properties = append(current.Properties, newProperty(name, t, current.Count, retain))
		default:
			return nil, structuralf("unrecognized header directive %q", fields[0])
		}
	}
	return schema, nil
}
