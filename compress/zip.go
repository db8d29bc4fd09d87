package compress

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ZipCodec handles zip-archived input.
//
// Decompression reads the first regular file entry in the archive; multi-file
// archives are not concatenated. Compression produces a single-entry archive,
// which exists so tests can round-trip zip inputs.
type ZipCodec struct{}

var _ Codec = (*ZipCodec)(nil)

// NewZipCodec creates a new zip codec.
func NewZipCodec() ZipCodec {
	return ZipCodec{}
}

// Compress wraps the input data in a single-entry zip archive.
func (c ZipCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	entry, err := w.Create("data")
	if err != nil {
		return nil, err
	}
	if _, err := entry.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress extracts the first file entry of a zip archive.
func (c ZipCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("zip decompression failed: %w", err)
	}

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("zip decompression failed: %w", err)
		}
		out, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("zip decompression failed: %w", err)
		}

		return out, nil
	}

	return nil, errors.New("zip archive contains no file entries")
}
