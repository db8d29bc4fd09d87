package pool

import "sync"

// Default sizing for pooled ingest buffers. Buffers that grow past the
// threshold are dropped instead of pooled so one oversized read does not pin
// memory for the lifetime of the process.
const (
	IngestBufferDefaultSize  = 1024 * 64       // 64KiB
	IngestBufferMaxThreshold = 1024 * 1024 * 8 // 8MiB
)

// ByteBuffer is a reusable byte buffer for staging raw input bytes.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Write appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) Write(data []byte) {
	bb.B = append(bb.B, data...)
}

var ingestBufferPool = sync.Pool{
	New: func() any { return NewByteBuffer(IngestBufferDefaultSize) },
}

// GetIngestBuffer retrieves a reset ByteBuffer from the pool.
func GetIngestBuffer() *ByteBuffer {
	buf, _ := ingestBufferPool.Get().(*ByteBuffer)
	buf.Reset()

	return buf
}

// PutIngestBuffer returns a ByteBuffer to the pool unless it grew past the
// retention threshold.
func PutIngestBuffer(buf *ByteBuffer) {
	if buf == nil || cap(buf.B) > IngestBufferMaxThreshold {
		return
	}
	ingestBufferPool.Put(buf)
}
