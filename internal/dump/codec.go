package dump

import (
	"errors"
	"fmt"
	"io"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec names the compression applied to a dumped stream.
type Codec string

const (
	CodecNone   Codec = "none"
	CodecSnappy Codec = "snappy"
	CodecLZ4    Codec = "lz4"
	CodecZstd   Codec = "zstd"
)

// ErrUnknownCodec is returned for codec names that are not supported.
var ErrUnknownCodec = errors.New("unknown codec")

// Codecs lists the supported codecs.
func Codecs() []Codec {
	return []Codec{CodecNone, CodecSnappy, CodecLZ4, CodecZstd}
}

// ParseCodec returns the codec named s.
func ParseCodec(s string) (Codec, error) {
	for _, c := range Codecs() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCodec, s)
}

// Extension returns the conventional file suffix for c.
func (c Codec) Extension() string {
	switch c {
	case CodecSnappy:
		return ".sz"
	case CodecLZ4:
		return ".lz4"
	case CodecZstd:
		return ".zst"
	default:
		return ""
	}
}

// NewEncoder wraps w so that everything written is compressed with c.
// Closing the encoder flushes it but leaves w open.
func NewEncoder(w io.Writer, c Codec) (io.WriteCloser, error) {
	switch c {
	case CodecNone, "":
		return nopCloser{w}, nil
	case CodecSnappy:
		return snappy.NewBufferedWriter(w), nil
	case CodecLZ4:
		return lz4.NewWriter(w), nil
	case CodecZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		return enc, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, c)
	}
}

// NewDecoder is the reading counterpart of NewEncoder.
func NewDecoder(r io.Reader, c Codec) (io.ReadCloser, error) {
	switch c {
	case CodecNone, "":
		return io.NopCloser(r), nil
	case CodecSnappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	case CodecLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case CodecZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		return zstdReadCloser{dec}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, c)
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}
