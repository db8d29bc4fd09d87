package pool

import "sync"

// Pool for the record-start offset tables the boundary locator builds on
// every Read call. Pooling them keeps repeated reads allocation-free after
// warmup.
var uint64SlicePool = sync.Pool{
	New: func() any { return &[]uint64{} },
}

// GetUint64Slice retrieves and resizes a uint64 slice from the pool.
//
// The returned slice has length equal to size and unspecified contents. If
// the pooled slice has insufficient capacity, a new slice is allocated. The
// caller must call the returned cleanup function (typically with defer) to
// return the slice to the pool; the slice must not be used after cleanup.
func GetUint64Slice(size int) ([]uint64, func()) {
	ptr, _ := uint64SlicePool.Get().(*[]uint64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint64, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { uint64SlicePool.Put(ptr) }
}
