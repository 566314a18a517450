package ply

import "context"

// decodeBody drives the cursor through every element, row, and property
// in declared order, writing retained values in place. Residency is
// ensured per property, never speculatively, so decoding is correct even
// when the stream delivers one byte per chunk. Filtered-out properties
// consume their bytes without storing.
func decodeBody(ctx context.Context, cur *cursor, schema *Schema) error {
	for _, element := range schema.Elements {
		for row := 0; row < element.Count; row++ {
			for _, property := range element.Properties {
				if err := cur.ensure(ctx, property.width); err != nil {
					return err
				}
				raw := cur.take(property.width)
				if property.write != nil {
					property.write(row, raw)
				}
			}
		}
	}
	return nil
}
