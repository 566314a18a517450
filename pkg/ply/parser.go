package ply

import (
	"bytes"
	"context"
	"io"
)

// DefaultMaxHeaderBytes caps how much data the parser accumulates while
// looking for the header terminator before declaring the stream broken.
const DefaultMaxHeaderBytes = 1 << 20

// ParserConfig holds configuration for a parse.
type ParserConfig struct {
	// Filter selects which properties get backing stores. nil keeps
	// every property.
	Filter Filter
	// MaxHeaderBytes bounds header accumulation (0 means
	// DefaultMaxHeaderBytes).
	MaxHeaderBytes int
}

// Parser decodes binary little-endian PLY streams. Each Parse call runs
// one complete parse; a failed parse is not restartable.
type Parser struct {
	config ParserConfig
}

// NewParser creates a parser with the given configuration.
func NewParser(config ParserConfig) *Parser {
	if config.MaxHeaderBytes <= 0 {
		config.MaxHeaderBytes = DefaultMaxHeaderBytes
	}
	return &Parser{config: config}
}

// Parse runs a single parse to completion against src: accumulate chunks
// until the magic marker is confirmed and the header terminator is
// located, parse the header into a schema, then decode the payload into
// the schema's backing stores. Any structural or truncation failure
// aborts the whole operation and no partial schema is returned.
func (p *Parser) Parse(ctx context.Context, src ChunkSource) (*Schema, error) {
	var buf []byte
	eof := false
	for {
		if len(buf) >= len(magic) {
			if !bytes.HasPrefix(buf, []byte(magic)) {
				return nil, &StructuralError{Message: "invalid header: missing ply magic marker"}
			}
			// Search from the magic's trailing newline so a header
			// with no directives still terminates.
			if i := bytes.Index(buf[len(magic)-1:], []byte(headerTerminator)); i >= 0 {
				return p.decode(ctx, src, buf, i+len(magic)-1, eof)
			}
		}
		if eof {
			return nil, &TruncationError{Message: "stream ended before header complete"}
		}
		if len(buf) > p.config.MaxHeaderBytes {
			return nil, structuralf("no end_header within %d bytes", p.config.MaxHeaderBytes)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		chunk, err := src.NextChunk(ctx)
		if err == io.EOF {
			eof = true
			continue
		}
		if err != nil {
			return nil, err
		}
		buf = concat(buf, chunk)
	}
}

// decode parses the header ending at terminator index end and drives the
// payload decode, seeding the cursor with whatever bytes beyond the
// terminator are already resident.
func (p *Parser) decode(ctx context.Context, src ChunkSource, buf []byte, end int, eof bool) (*Schema, error) {
	var text string
	if end > len(magic) {
		text = string(buf[len(magic):end])
	}
	schema, err := parseHeader(text, p.config.Filter)
	if err != nil {
		return nil, err
	}
	cur := &cursor{src: src, buf: buf[end+len(headerTerminator):], eof: eof}
	if err := decodeBody(ctx, cur, schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// concat returns a fresh buffer holding a followed by b, with no
// aliasing of either input.
func concat(a, b []byte) []byte {
	merged := make([]byte, 0, len(a)+len(b))
	merged = append(merged, a...)
	return append(merged, b...)
}
