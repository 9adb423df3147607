package byteview

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/vvka-141/graphver/pkg/graphver"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// DecodeOptions controls how OpenDecoded treats compressed input.
type DecodeOptions struct {
	// Mode is one of graphver.DecompressAuto, DecompressNone, DecompressGzip
	// or DecompressZstd. Empty means auto.
	Mode string

	// MaxBytes caps the inflated size. Zero means graphver.DefaultMaxDecodedBytes.
	MaxBytes int64
}

// Detect sniffs the compression format from the leading magic bytes.
// Returns graphver.DecompressNone for anything it does not recognize.
func Detect(b []byte) string {
	switch {
	case bytes.HasPrefix(b, gzipMagic):
		return graphver.DecompressGzip
	case bytes.HasPrefix(b, zstdMagic):
		return graphver.DecompressZstd
	}
	return graphver.DecompressNone
}

// OpenDecoded opens path and, when it is compressed, replaces the mapping
// with an in-memory view of the inflated bytes.
// Errors wrap graphver.ErrIO.
func OpenDecoded(path string, opts DecodeOptions) (*View, error) {
	v, err := Open(path)
	if err != nil {
		return nil, err
	}

	mode := opts.Mode
	if mode == "" || mode == graphver.DecompressAuto {
		mode = Detect(v.Bytes())
	}
	if mode == graphver.DecompressNone {
		return v, nil
	}
	defer v.Close()

	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = graphver.DefaultMaxDecodedBytes
	}

	data, err := inflate(v.Bytes(), mode, maxBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: decompress %s (%s): %w", graphver.ErrIO, path, mode, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s is empty after decompression", graphver.ErrIO, path)
	}
	return New(data), nil
}

func inflate(src []byte, mode string, maxBytes int64) ([]byte, error) {
	var r io.Reader
	switch mode {
	case graphver.DecompressGzip:
		zr, err := gzip.NewReader(bytes.NewReader(src))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	case graphver.DecompressZstd:
		zr, err := zstd.NewReader(bytes.NewReader(src), zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	default:
		return nil, fmt.Errorf("unknown decompression mode %q", mode)
	}

	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("inflated size exceeds %d bytes", maxBytes)
	}
	return data, nil
}
