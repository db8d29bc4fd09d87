package table

import (
	"math/bits"
	"sync/atomic"
)

// Bitmap is a word-packed validity mask with one bit per row.
//
// Set uses an atomic OR so the parallel conversion pass can mark rows from
// multiple chunks even when a chunk boundary splits a 64-bit word. After
// materialization the bitmap is read-only.
type Bitmap struct {
	words []uint64
	n     int
}

// NewBitmap creates a bitmap for n rows with all bits clear.
func NewBitmap(n int) *Bitmap {
	return &Bitmap{
		words: make([]uint64, (n+63)/64),
		n:     n,
	}
}

// Len returns the number of rows covered by the bitmap.
func (b *Bitmap) Len() int {
	return b.n
}

// Set marks row i as valid. Safe for concurrent use on distinct rows.
func (b *Bitmap) Set(i int) {
	// atomic.OrUint64 requires Go 1.23; emulate it with a CAS loop.
	addr := &b.words[i>>6]
	mask := uint64(1) << (uint(i) & 63)
	for {
		old := atomic.LoadUint64(addr)
		if old&mask != 0 || atomic.CompareAndSwapUint64(addr, old, old|mask) {
			return
		}
	}
}

// Get reports whether row i is marked valid.
func (b *Bitmap) Get(i int) bool {
	return b.words[i>>6]&(1<<(uint(i)&63)) != 0
}

// CountSet returns the number of valid rows.
func (b *Bitmap) CountSet() int {
	count := 0
	for _, w := range b.words {
		count += bits.OnesCount64(w)
	}

	return count
}
