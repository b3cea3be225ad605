package dump

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/prng/internal/registry"
	"github.com/lox/prng/random"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, name string) registry.Engine {
	t.Helper()
	e, err := registry.New(name, 0x1234)
	require.NoError(t, err)
	return e
}

func TestWriteMatchesReader(t *testing.T) {
	tests := []struct {
		engine string
		ref    io.Reader
	}{
		{"xoshiro128+", random.NewReader(random.NewXoshiro128Plus(0x1234))},
		{"well512", random.NewReader(random.NewRandWELL(0x1234))},
		{"xoroshiro256+", random.NewReader(random.NewXoroshiro256Plus(0x1234))},
	}

	for _, tt := range tests {
		t.Run(tt.engine, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := Write(context.Background(), &buf, newEngine(t, tt.engine), Options{Size: 1001, ChunkSize: 64})
			require.NoError(t, err)
			assert.Equal(t, int64(1001), n)

			want := make([]byte, 1001)
			_, err = io.ReadFull(tt.ref, want)
			require.NoError(t, err)
			assert.Equal(t, want, buf.Bytes())
		})
	}
}

func TestWriteFirstBytes(t *testing.T) {
	var buf bytes.Buffer
	_, err := Write(context.Background(), &buf, newEngine(t, "xoshiro128+"), Options{Size: 8})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0x41, 0xC2, 0xD4, 0x6C, 0x8D, 0x61, 0x47}, buf.Bytes())
}

func TestCodecsRoundTrip(t *testing.T) {
	for _, codec := range Codecs() {
		t.Run(string(codec), func(t *testing.T) {
			var compressed bytes.Buffer
			_, err := Write(context.Background(), &compressed, newEngine(t, "xoroshiro128+"), Options{Size: 10000, Codec: codec, ChunkSize: 1000})
			require.NoError(t, err)

			dec, err := NewDecoder(&compressed, codec)
			require.NoError(t, err)
			defer dec.Close()

			got, err := io.ReadAll(dec)
			require.NoError(t, err)

			var plain bytes.Buffer
			_, err = Write(context.Background(), &plain, newEngine(t, "xoroshiro128+"), Options{Size: 10000})
			require.NoError(t, err)
			assert.Equal(t, plain.Bytes(), got)
		})
	}
}

func TestUnknownCodec(t *testing.T) {
	_, err := NewEncoder(io.Discard, "brotli")
	assert.ErrorIs(t, err, ErrUnknownCodec)
	_, err = NewDecoder(bytes.NewReader(nil), "brotli")
	assert.ErrorIs(t, err, ErrUnknownCodec)
	_, err = ParseCodec("brotli")
	assert.ErrorIs(t, err, ErrUnknownCodec)

	c, err := ParseCodec("zstd")
	require.NoError(t, err)
	assert.Equal(t, CodecZstd, c)
	assert.Equal(t, ".zst", c.Extension())
}

func TestWriteProgress(t *testing.T) {
	var calls []int64
	_, err := Write(context.Background(), io.Discard, newEngine(t, "well512"), Options{
		Size:      100,
		ChunkSize: 40,
		Progress: func(written, total int64) {
			assert.Equal(t, int64(100), total)
			calls = append(calls, written)
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{40, 80, 100}, calls)
}

func TestWriteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := Write(ctx, io.Discard, newEngine(t, "well512"), Options{Size: 1 << 20})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(0), n)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "xoshiro.bin")
	err := WriteFile(context.Background(), path, newEngine(t, "xoshiro128+"), Options{Size: 4096}, zerolog.Nop())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, data, 4096)
	assert.Equal(t, []byte{0x80, 0x41, 0xC2, 0xD4}, data[:4])
}

func TestWriteFileCancelledLeavesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WriteFile(ctx, filepath.Join(dir, "out.bin"), newEngine(t, "xoshiro128+"), Options{Size: 4096}, zerolog.Nop())
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		hasError bool
	}{
		{"4096", 4096, false},
		{"64KiB", 64 << 10, false},
		{"2GB", 2 * 1000 * 1000 * 1000, false},
		{"2GiB", 2 << 30, false},
		{"10MB", 10 * 1000 * 1000, false},
		{"1 MiB", 1 << 20, false},
		{"1.5KiB", 1536, false},
		{"12B", 12, false},
		{"-1", 0, true},
		{"lots", 0, true},
		{"9000000000GiB", 0, true},
		{"8EiB", 0, true},
		{"20EiB", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
