package compress

import (
	"bytes"
	"compress/bzip2"
	"errors"
	"fmt"
	"io"
)

// Bzip2Codec handles bzip2-compressed input (`.bz2`).
//
// The standard library only implements bzip2 decompression, which is all the
// reader needs; Compress reports the format as decompress-only.
type Bzip2Codec struct{}

var _ Codec = (*Bzip2Codec)(nil)

// NewBzip2Codec creates a new bzip2 codec.
func NewBzip2Codec() Bzip2Codec {
	return Bzip2Codec{}
}

// Compress is not supported for bzip2.
func (c Bzip2Codec) Compress(data []byte) ([]byte, error) {
	return nil, errors.New("bzip2 compression is not supported")
}

// Decompress inflates a bzip2 stream.
func (c Bzip2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := io.ReadAll(bzip2.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("bzip2 decompression failed: %w", err)
	}

	return out, nil
}
