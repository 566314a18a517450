package ply

import (
	"context"
	"io"
)

// ChunkSource supplies the raw bytes of a PLY stream one chunk at a
// time. Each call returns the next chunk, or io.EOF once the stream is
// finished; the parser never calls NextChunk again after io.EOF has been
// reported. Chunk boundaries carry no meaning: a chunk may end in the
// middle of the magic marker, the header terminator, or a single scalar.
type ChunkSource interface {
	NextChunk(ctx context.Context) ([]byte, error)
}

// DefaultChunkSize is the read size NewReaderSource uses when the caller
// passes a non-positive chunk size.
const DefaultChunkSize = 256 * 1024

type readerSource struct {
	r    io.Reader
	size int
}

// NewReaderSource adapts an io.Reader (file, HTTP body) into a
// ChunkSource delivering chunks of at most chunkSize bytes.
func NewReaderSource(r io.Reader, chunkSize int) ChunkSource {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &readerSource{r: r, size: chunkSize}
}

func (s *readerSource) NextChunk(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	buf := make([]byte, s.size)
	n, err := s.r.Read(buf)
	if n > 0 {
		return buf[:n], nil
	}
	if err == nil {
		err = io.EOF
	}
	return nil, err
}

type sliceSource struct {
	chunks [][]byte
}

// NewChunkSource returns a ChunkSource replaying the given chunks in
// order. Mostly useful in tests, where chunk boundaries are the point.
func NewChunkSource(chunks ...[]byte) ChunkSource {
	return &sliceSource{chunks: chunks}
}

func (s *sliceSource) NextChunk(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(s.chunks) == 0 {
		return nil, io.EOF
	}
	chunk := s.chunks[0]
	s.chunks = s.chunks[1:]
	return chunk, nil
}

// cursor owns the unconsumed byte buffer during a parse. A refill drops
// the already-consumed prefix and appends one whole new chunk; the
// remaining byte count never goes negative and reads only advance
// forward.
type cursor struct {
	src      ChunkSource
	buf      []byte
	off      int
	eof      bool
	consumed int64
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.off
}

// ensure pulls chunks until at least n unconsumed bytes are resident.
// A stream that finishes first is fatal; a single scalar may take more
// than one refill when chunks are small.
func (c *cursor) ensure(ctx context.Context, n int) error {
	for c.remaining() < n {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.eof {
			return &TruncationError{Message: "stream ended before data complete"}
		}
		chunk, err := c.src.NextChunk(ctx)
		if err == io.EOF {
			c.eof = true
			continue
		}
		if err != nil {
			return err
		}
		merged := make([]byte, 0, c.remaining()+len(chunk))
		merged = append(merged, c.buf[c.off:]...)
		merged = append(merged, chunk...)
		c.buf = merged
		c.off = 0
	}
	return nil
}

// take returns the next n resident bytes and advances the cursor. The
// caller must have ensured n bytes first.
func (c *cursor) take(n int) []byte {
	raw := c.buf[c.off : c.off+n]
	c.off += n
	c.consumed += int64(n)
	return raw
}
