// Package splat assembles renderable Gaussian-splat point clouds from
// parsed PLY schemas and serializes them for storage.
package splat

import (
	"fmt"

	"github.com/skallerud/splatvault/pkg/ply"
)

// Property names of the standard 3D Gaussian Splatting layout inside the
// vertex element.
var (
	positionProps = []string{"x", "y", "z"}
	rotationProps = []string{"rot_0", "rot_1", "rot_2", "rot_3"}
	scaleProps    = []string{"scale_0", "scale_1", "scale_2"}
	colorProps    = []string{"f_dc_0", "f_dc_1", "f_dc_2"}
	opacityProp   = "opacity"
)

// Cloud holds the per-splat attributes assembled from a parsed schema.
// Positions are always present; the other columns are nil when the
// source file does not carry them. Slices are interleaved per splat:
// Positions is xyz-triples, Rotations wxyz-quadruples, and so on.
type Cloud struct {
	Count     int
	Positions []float32
	Rotations []float32
	Scales    []float32
	Colors    []float32
	Opacities []float32
}

// PropertyFilter returns a ply.Filter accepting only the properties a
// Cloud needs, so the parser skips high-order spherical-harmonic rest
// coefficients and normals without allocating for them.
func PropertyFilter() ply.Filter {
	wanted := make(map[string]struct{})
	for _, group := range [][]string{positionProps, rotationProps, scaleProps, colorProps, {opacityProp}} {
		for _, name := range group {
			wanted[name] = struct{}{}
		}
	}
	return func(name string) bool {
		_, ok := wanted[name]
		return ok
	}
}

// FromSchema assembles a splat cloud from a parsed schema. The vertex
// element and its position columns are required; rotation, scale, color
// and opacity columns are taken when present and retained.
func FromSchema(schema *ply.Schema) (*Cloud, error) {
	vertex := schema.Element("vertex")
	if vertex == nil {
		return nil, fmt.Errorf("schema has no vertex element")
	}

	cloud := &Cloud{Count: vertex.Count}

	positions, err := gather(vertex, positionProps)
	if err != nil {
		return nil, err
	}
	if positions == nil {
		return nil, fmt.Errorf("vertex element is missing position properties")
	}
	cloud.Positions = positions

	if cloud.Rotations, err = gather(vertex, rotationProps); err != nil {
		return nil, err
	}
	if cloud.Scales, err = gather(vertex, scaleProps); err != nil {
		return nil, err
	}
	if cloud.Colors, err = gather(vertex, colorProps); err != nil {
		return nil, err
	}
	if cloud.Opacities, err = gather(vertex, []string{opacityProp}); err != nil {
		return nil, err
	}

	return cloud, nil
}

// gather interleaves the named float columns row by row. It returns nil
// (no error) when any of the columns is absent or was filtered out, and
// fails only when a column exists with a non-float type.
func gather(vertex *ply.Element, names []string) ([]float32, error) {
	cols := make([][]float32, len(names))
	for i, name := range names {
		p := vertex.Property(name)
		if p == nil || !p.Retained() {
			return nil, nil
		}
		if p.Type != ply.Float32 {
			return nil, fmt.Errorf("property %q has type %s, want float", name, p.Type)
		}
		cols[i] = p.Float32s()
	}

	out := make([]float32, 0, len(names)*vertex.Count)
	for row := 0; row < vertex.Count; row++ {
		for _, col := range cols {
			out = append(out, col[row])
		}
	}
	return out, nil
}

// Bounds returns the axis-aligned bounding box of the cloud's positions.
func (c *Cloud) Bounds() (min, max [3]float32) {
	if c.Count == 0 {
		return min, max
	}
	for axis := 0; axis < 3; axis++ {
		min[axis] = c.Positions[axis]
		max[axis] = c.Positions[axis]
	}
	for i := 1; i < c.Count; i++ {
		for axis := 0; axis < 3; axis++ {
			v := c.Positions[3*i+axis]
			if v < min[axis] {
				min[axis] = v
			}
			if v > max[axis] {
				max[axis] = v
			}
		}
	}
	return min, max
}
