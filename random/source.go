package random

import (
	"encoding/binary"
	rand "math/rand/v2"
)

var (
	_ rand.Source = (*Source32)(nil)
	_ rand.Source = (*Source64)(nil)
)

// Source32 adapts a 32-bit generator to rand.Source.
type Source32 struct {
	g Generator[uint32]
}

// NewSource32 wraps g so it can drive a *rand.Rand.
func NewSource32(g Generator[uint32]) *Source32 {
	return &Source32{g: g}
}

// Uint64 combines two consecutive outputs, the first one in the high half.
func (s *Source32) Uint64() uint64 {
	hi := uint64(s.g.Rand())
	lo := uint64(s.g.Rand())
	return hi<<32 | lo
}

// Source64 adapts a 64-bit generator to rand.Source.
type Source64 struct {
	g Generator[uint64]
}

// NewSource64 wraps g so it can drive a *rand.Rand.
func NewSource64(g Generator[uint64]) *Source64 {
	return &Source64{g: g}
}

// Uint64 returns the next output of the wrapped generator.
func (s *Source64) Uint64() uint64 {
	return s.g.Rand()
}

// Reader exposes the raw output of a generator as a byte stream: each
// output word is written little-endian at its native width. Partial words
// are carried over between reads, so the stream does not depend on how it
// is chunked.
type Reader[W Word] struct {
	g    Generator[W]
	buf  [8]byte
	off  int
	size int
}

// NewReader returns a Reader over g.
func NewReader[W Word](g Generator[W]) *Reader[W] {
	return &Reader[W]{g: g}
}

// Read fills p completely. It never returns an error.
func (r *Reader[W]) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if r.off == r.size {
			r.next()
		}
		c := copy(p[n:], r.buf[r.off:r.size])
		r.off += c
		n += c
	}
	return n, nil
}

func (r *Reader[W]) next() {
	switch v := any(r.g.Rand()).(type) {
	case uint32:
		binary.LittleEndian.PutUint32(r.buf[:4], v)
		r.size = 4
	case uint64:
		binary.LittleEndian.PutUint64(r.buf[:8], v)
		r.size = 8
	}
	r.off = 0
}
