package reader

import (
	"slices"

	"github.com/arloliu/jsoncol/internal/parallel"
	"github.com/arloliu/jsoncol/internal/pool"
)

// recordTerminator delimits records in line-delimited mode.
const recordTerminator = '\n'

// locateRecordStarts scans the decompressed buffer and returns the ascending
// record-start offsets, one per record, relative to the buffer base.
//
// baseAtStart reports whether the buffer begins at the true start of the
// input; only then does the implicit record at offset 0 exist. A window that
// begins mid-record instead starts at the first boundary found after a
// terminator.
//
// When quoteAware is set, quote-character positions enter the candidate table
// alongside terminator positions and a strictly sequential host pass removes
// them again: the pass toggles an inside-quote flag on each quote occurrence
// and invalidates both the quote positions themselves and any terminator
// position inside a quoted span. The correction cost is proportional to the
// candidate count, not the byte count; the position scan itself stays
// data-parallel.
//
// The returned offset table is pooled; the caller must invoke the release
// function once the table is no longer referenced.
func locateRecordStarts(buf []byte, baseAtStart bool, quote byte, quoteAware bool) ([]uint64, func()) {
	noop := func() {}
	if len(buf) == 0 {
		return nil, noop
	}

	bounds := parallel.Chunks(len(buf))

	// Pass 1: count matches per chunk to size the table.
	counts := make([]int, len(bounds))
	_ = parallel.ForChunks(bounds, func(idx, start, end int) error {
		n := 0
		for _, c := range buf[start:end] {
			if c == recordTerminator || (quoteAware && c == quote) {
				n++
			}
		}
		counts[idx] = n

		return nil
	})

	head := 0
	if baseAtStart {
		head = 1 // implicit record at offset 0
	}
	total := head
	offsets := make([]int, len(bounds))
	for i, n := range counts {
		offsets[i] = total
		total += n
	}
	if total == 0 {
		return nil, noop
	}

	starts, release := pool.GetUint64Slice(total)
	if baseAtStart {
		starts[0] = 0
	}

	// Pass 2: fill positions immediately following each match.
	_ = parallel.ForChunks(bounds, func(idx, start, end int) error {
		w := offsets[idx]
		for i, c := range buf[start:end] {
			if c == recordTerminator || (quoteAware && c == quote) {
				starts[w] = uint64(start + i + 1)
				w++
			}
		}

		return nil
	})

	// Parallel fill order is not guaranteed; sortedness restores determinism.
	slices.Sort(starts)

	if quoteAware {
		starts = filterQuotedBoundaries(buf, starts, quote)
	}

	// A terminator as the very last byte marks end-of-data, not a new record.
	if n := len(starts); n > 0 && starts[n-1] == uint64(len(buf)) {
		starts = starts[:n-1]
	}

	return starts, release
}

// filterQuotedBoundaries is the sequential quote-state correction pass. It
// depends on strict left-to-right propagation of the inside-quote flag and
// must not be parallelized.
func filterQuotedBoundaries(buf []byte, starts []uint64, quote byte) []uint64 {
	live := len(starts)
	sentinel := uint64(len(buf))
	inQuote := false

	for i := 1; i < len(starts); i++ {
		if buf[starts[i]-1] == quote {
			inQuote = !inQuote
			starts[i] = sentinel
			live--
		} else if inQuote {
			starts[i] = sentinel
			live--
		}
	}

	slices.Sort(starts)

	return starts[:live]
}
