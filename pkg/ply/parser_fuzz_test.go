//go:build fuzz
// +build fuzz

package ply

import (
	"context"
	"math/rand"
	"reflect"
	"testing"
)

// FuzzParse_ChunkingDeterminism re-chunks the same file at fuzzer-chosen
// boundaries and requires bit-identical decoded columns every time.
func FuzzParse_ChunkingDeterminism(f *testing.F) {
	file := vertexPairFile()

	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(1234567))

	reference, err := NewParser(ParserConfig{}).Parse(context.Background(), NewChunkSource(file))
	if err != nil {
		f.Fatalf("reference parse failed: %v", err)
	}

	f.Fuzz(func(t *testing.T, seed int64) {
		rng := rand.New(rand.NewSource(seed))
		schema, err := NewParser(ParserConfig{}).Parse(context.Background(), randomChunked(file, rng))
		if err != nil {
			t.Fatalf("Parse failed under seed %d: %v", seed, err)
		}
		assertSchemasEqual(t, reference, schema)
	})
}

// FuzzParse_NeverPanics feeds arbitrary bytes through arbitrary chunking
// and only requires that the parser returns rather than panicking.
func FuzzParse_NeverPanics(f *testing.F) {
	f.Add([]byte("ply\n"), 1)
	f.Add(vertexPairFile(), 3)
	f.Add([]byte("ply\nformat binary_little_endian 1.0\n\nend_header\n"), 7)
	f.Add([]byte{0x00, 0xFF, 0x00}, 1)

	f.Fuzz(func(t *testing.T, data []byte, chunkSize int) {
		if chunkSize <= 0 || len(data) > 1<<16 {
			t.Skip()
		}
		schema, err := NewParser(ParserConfig{}).Parse(context.Background(), chunked(data, chunkSize))
		if err == nil && schema == nil {
			t.Error("nil schema with nil error")
		}
		if err != nil && schema != nil {
			t.Error("schema returned alongside an error")
		}
		// Whatever the outcome, re-chunking must not change it.
		schema2, err2 := NewParser(ParserConfig{}).Parse(context.Background(), chunked(data, 1))
		if (err == nil) != (err2 == nil) {
			t.Errorf("chunking changed the outcome: %v vs %v", err, err2)
		}
		if schema != nil && schema2 != nil && !reflect.DeepEqual(schemaShape(schema), schemaShape(schema2)) {
			t.Error("chunking changed the schema shape")
		}
	})
}

func schemaShape(s *Schema) []string {
	var shape []string
	for _, e := range s.Elements {
		for _, p := range e.Properties {
			shape = append(shape, e.Name+"/"+p.Name+"/"+p.Type.String())
		}
	}
	return shape
}
