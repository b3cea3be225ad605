package random

import (
	"io"
	rand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource32(t *testing.T) {
	src := NewSource32(NewXoshiro128Plus(0x1234))
	assert.Equal(t, uint64(0xD4C24180_47618D6C), src.Uint64())
	assert.Equal(t, uint64(0x31E50195_649076F6), src.Uint64())
}

func TestSource64(t *testing.T) {
	src := NewSource64(NewXoroshiro128Plus(0x1234))
	assert.Equal(t, uint64(0x8D7CBA948B1AA4B9), src.Uint64())
}

func TestSourceDrivesRand(t *testing.T) {
	r1 := rand.New(NewSource64(NewXoroshiro512Plus(11)))
	r2 := rand.New(NewSource64(NewXoroshiro512Plus(11)))
	for i := 0; i < 100; i++ {
		assert.Equal(t, r1.IntN(1000), r2.IntN(1000))
	}

	r3 := rand.New(NewSource32(NewRandWELL(11)))
	for i := 0; i < 1000; i++ {
		f := r3.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestReader32(t *testing.T) {
	r := NewReader(NewXoshiro128Plus(0x1234))
	buf := make([]byte, 10)
	n, err := io.ReadFull(r, buf)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, []byte{
		0x80, 0x41, 0xC2, 0xD4,
		0x6C, 0x8D, 0x61, 0x47,
		0x95, 0x01,
	}, buf)
}

func TestReader64(t *testing.T) {
	r := NewReader(NewXoroshiro128Plus(0x1234))
	buf := make([]byte, 8)
	_, err := io.ReadFull(r, buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xB9, 0xA4, 0x1A, 0x8B, 0x94, 0xBA, 0x7C, 0x8D}, buf)
}

func TestReaderChunkingIndependent(t *testing.T) {
	whole := make([]byte, 64)
	_, err := io.ReadFull(NewReader(NewRandWELL(5)), whole)
	require.NoError(t, err)

	r := NewReader(NewRandWELL(5))
	var pieces []byte
	for _, size := range []int{1, 3, 5, 7, 11, 13, 24} {
		p := make([]byte, size)
		_, err := r.Read(p)
		require.NoError(t, err)
		pieces = append(pieces, p...)
	}
	assert.Equal(t, whole, pieces)
}
