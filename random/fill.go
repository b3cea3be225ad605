package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
)

// Fill writes len(buf) bytes from the operating system's secure random
// source. If that source fails, buf is filled from a RandWELL seeded by
// src instead.
func Fill(buf []byte, src EntropySource) {
	fill(crand.Reader, buf, src)
}

func fill(r io.Reader, buf []byte, src EntropySource) {
	if _, err := io.ReadFull(r, buf); err == nil {
		return
	}

	w := NewRandWELL(src.Seed32())
	words := len(buf) / 4
	for i := 0; i < words; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:], w.Rand())
	}
	for i := words * 4; i < len(buf); i++ {
		buf[i] = byte(w.Rand())
	}
}
