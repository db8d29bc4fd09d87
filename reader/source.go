package reader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ByteSource is a ranged byte provider. A read call owns its sources for the
// duration of the call and never retains them afterward.
//
// Implementations must tolerate ranges that run past the end of the data by
// returning the available suffix; the ingestor pads its requested length to
// cover row-size uncertainty and trims against the true size.
type ByteSource interface {
	// ReadRange returns size bytes starting at offset. A size of 0 means
	// everything from offset to the end. Requests extending past the end
	// return the available bytes without error.
	ReadRange(offset, size uint64) ([]byte, error)

	// Size returns the total number of bytes the source can provide.
	Size() (uint64, error)

	// Ext returns the source's file extension (without the dot) as a hint
	// for compression auto-detection, or "" when no hint exists.
	Ext() string
}

// FileSource provides ranged reads from a file on disk.
type FileSource struct {
	path string
}

var _ ByteSource = (*FileSource)(nil)

// NewFileSource creates a ByteSource backed by the file at path. The file is
// opened per read so a FileSource can be reused across read calls.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// ReadRange reads size bytes starting at offset from the file.
func (s *FileSource) ReadRange(offset, size uint64) ([]byte, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open source %s: %w", s.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat source %s: %w", s.path, err)
	}

	total := uint64(info.Size())
	if offset >= total {
		return nil, nil
	}
	avail := total - offset
	if size == 0 || size > avail {
		size = avail
	}

	buf := make([]byte, size)
	n, err := f.ReadAt(buf, int64(offset))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read source %s: %w", s.path, err)
	}

	return buf[:n], nil
}

// Size returns the file size in bytes.
func (s *FileSource) Size() (uint64, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return 0, fmt.Errorf("stat source %s: %w", s.path, err)
	}

	return uint64(info.Size()), nil
}

// Ext returns the file's extension without the leading dot.
func (s *FileSource) Ext() string {
	return strings.TrimPrefix(filepath.Ext(s.path), ".")
}

// BufferSource provides ranged reads over an in-memory byte slice.
type BufferSource struct {
	data []byte
	ext  string
}

var _ ByteSource = (*BufferSource)(nil)

// NewBufferSource creates a ByteSource over data. The slice is not copied;
// the caller must not modify it during a read call.
func NewBufferSource(data []byte) *BufferSource {
	return &BufferSource{data: data}
}

// NewBufferSourceExt creates a BufferSource with an extension hint for
// compression auto-detection, for buffers that hold compressed bytes.
func NewBufferSourceExt(data []byte, ext string) *BufferSource {
	return &BufferSource{data: data, ext: strings.TrimPrefix(ext, ".")}
}

// ReadRange returns size bytes of the buffer starting at offset.
func (s *BufferSource) ReadRange(offset, size uint64) ([]byte, error) {
	if offset >= uint64(len(s.data)) {
		return nil, nil
	}
	avail := uint64(len(s.data)) - offset
	if size == 0 || size > avail {
		size = avail
	}

	return s.data[offset : offset+size], nil
}

// Size returns the buffer length.
func (s *BufferSource) Size() (uint64, error) {
	return uint64(len(s.data)), nil
}

// Ext returns the extension hint given at construction.
func (s *BufferSource) Ext() string {
	return s.ext
}
