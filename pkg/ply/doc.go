// Package ply implements a streaming parser for the binary
// little-endian PLY format used to encode Gaussian-splat scene data.
//
// # File Format
//
// A PLY file opens with the four-byte magic marker "ply\n", followed by
// an ASCII header and a binary payload:
//
//	ply\n
//	format binary_little_endian 1.0\n
//	element vertex 2\n
//	property float x\n
//	property float y\n
//	\nend_header\n
//	<binary payload>
//
// The header declares one or more elements, each with a fixed row count
// and an ordered list of typed properties. The payload that follows the
// "\nend_header\n" terminator holds the property values in row-major
// order, element by element, each value occupying exactly its declared
// type's byte width, little-endian. Lines starting "comment " are
// ignored. Only binary little-endian payloads are supported; ASCII and
// big-endian PLY files are rejected.
//
// # Streaming
//
// The parser pulls bytes on demand from a ChunkSource and never needs
// the whole file resident. Chunk boundaries are unpredictable and may
// split the magic marker, the header terminator, or a single scalar's
// byte representation; the parser re-splices its buffer across refills
// until enough bytes are resident, so a stream delivering one byte per
// chunk decodes identically to one delivering the file whole. A new
// chunk is requested only once the previous bytes are exhausted, never
// prefetched.
//
// # Filtering
//
// A caller-supplied Filter selects which properties are materialized.
// Rejected properties still consume their declared bytes during decode
// but no backing array is ever allocated for them. This keeps memory
// proportional to the columns the caller actually wants.
//
// # Error Handling
//
// All failures are unrecoverable for the current parse: every later
// offset depends on every earlier byte decoding exactly right, so there
// is no skip-and-continue and no partial schema. StructuralError covers
// malformed headers; TruncationError covers streams that end early.
// Errors surface synchronously to the Parse caller; nothing is retried
// internally.
//
// # Usage
//
//	parser := ply.NewParser(ply.ParserConfig{})
//	schema, err := parser.Parse(ctx, ply.NewReaderSource(f, 0))
//	if err != nil {
//	    return err
//	}
//	xs := schema.Element("vertex").Property("x").Float32s()
//
// Parser instances are stateless between calls; independent concurrent
// parses share nothing. A Schema and its backing stores are owned by a
// single parse while decoding and are immutable once returned.
package ply
