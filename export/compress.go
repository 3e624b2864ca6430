// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression identifies the encoding of a dump file.
type Compression int

const (
	// Plain is uncompressed text.
	Plain Compression = iota
	// Gzip is selected by a ".gz" suffix.
	Gzip
	// Zstd is selected by a ".zst" suffix.
	Zstd
)

// String implements fmt.Stringer.
func (c Compression) String() string {
	switch c {
	case Plain:
		return "plain"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	}
	return fmt.Sprintf("Compression(%d)", int(c))
}

// CompressionFor picks the encoding from the file extension, case-insensitively.
func CompressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return Gzip
	case ".zst":
		return Zstd
	}
	return Plain
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// zstdReadCloser adapts Decoder.Close, which returns nothing.
type zstdReadCloser struct{ *zstd.Decoder }

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// compressorFor wraps w; closing the result flushes the encoder but never closes w.
func compressorFor(path string, w io.Writer) (io.WriteCloser, error) {
	switch CompressionFor(path) {
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("export: zstd encoder: %w", err)
		}
		return enc, nil
	}
	return nopWriteCloser{w}, nil
}

// decompressorFor wraps r; closing the result never closes r.
func decompressorFor(path string, r io.Reader) (io.ReadCloser, error) {
	switch CompressionFor(path) {
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("export: gzip reader: %w", err)
		}
		return zr, nil
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("export: zstd decoder: %w", err)
		}
		return zstdReadCloser{dec}, nil
	}
	return io.NopCloser(r), nil
}
