// Package dump writes the raw output of a generator as a byte stream, for
// feeding external statistical test suites.
//
// Each output word is written little-endian at the engine's native width.
// If the requested size is not a multiple of the width, the final word is
// truncated to its low bytes.
package dump

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lox/prng/internal/fileutil"
	"github.com/lox/prng/internal/registry"
	"github.com/rs/zerolog"
)

// DefaultChunkSize is the number of raw bytes generated per write.
const DefaultChunkSize = 1 << 20

// Options controls a dump.
type Options struct {
	Size      int64 // raw bytes to generate, before compression
	Codec     Codec
	ChunkSize int
	// Progress, if set, is called after every chunk with the number of raw
	// bytes written so far.
	Progress func(written, total int64)
}

// Write streams opts.Size bytes of e's output to w. It returns the number
// of raw bytes generated.
func Write(ctx context.Context, w io.Writer, e registry.Engine, opts Options) (int64, error) {
	if opts.Size < 0 {
		return 0, fmt.Errorf("invalid size %d", opts.Size)
	}

	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	// whole words per chunk, so only the last chunk can end mid-word
	chunkSize -= chunkSize % 8
	if chunkSize == 0 {
		chunkSize = 8
	}

	enc, err := NewEncoder(w, opts.Codec)
	if err != nil {
		return 0, err
	}

	buf := make([]byte, chunkSize)
	var written int64
	for written < opts.Size {
		if err := ctx.Err(); err != nil {
			enc.Close()
			return written, err
		}

		n := int64(len(buf))
		if remaining := opts.Size - written; remaining < n {
			n = remaining
		}
		chunk := buf[:n]
		fillWords(chunk, e)

		if _, err := enc.Write(chunk); err != nil {
			enc.Close()
			return written, fmt.Errorf("failed to write stream: %w", err)
		}
		written += n

		if opts.Progress != nil {
			opts.Progress(written, opts.Size)
		}
	}

	if err := enc.Close(); err != nil {
		return written, fmt.Errorf("failed to flush %s encoder: %w", opts.Codec, err)
	}
	return written, nil
}

// WriteFile dumps to path. The file only appears once the whole stream has
// been written; a cancelled or failed dump leaves nothing behind.
func WriteFile(ctx context.Context, path string, e registry.Engine, opts Options, logger zerolog.Logger) error {
	f, err := fileutil.CreateAtomic(path, 0644)
	if err != nil {
		return err
	}
	defer f.Abort()

	logger.Debug().
		Str("engine", e.Name()).
		Str("path", path).
		Str("codec", string(opts.Codec)).
		Int64("size", opts.Size).
		Msg("Writing stream")

	start := time.Now()
	n, err := Write(ctx, f, e, opts)
	if err != nil {
		return err
	}

	if err := f.Commit(); err != nil {
		return err
	}

	var stored int64
	if info, err := os.Stat(path); err == nil {
		stored = info.Size()
	}

	logger.Info().
		Str("engine", e.Name()).
		Str("path", path).
		Int64("bytes", n).
		Int64("stored", stored).
		Dur("elapsed", time.Since(start)).
		Msg("Stream written")
	return nil
}

func fillWords(buf []byte, e registry.Engine) {
	step := e.Width() / 8
	var word [8]byte
	for off := 0; off < len(buf); off += step {
		binary.LittleEndian.PutUint64(word[:], e.Rand())
		copy(buf[off:], word[:step])
	}
}
