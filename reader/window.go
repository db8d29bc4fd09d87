package reader

import (
	"fmt"

	"github.com/arloliu/jsoncol/errs"
)

// stageWindow trims the record-start table to the requested byte-range size,
// rebases the retained offsets to zero, and copies exactly the covered byte
// span into a fresh single-owner buffer. The decompressed buffer is not
// referenced by later stages.
//
// rangeSize is the requested byte_range_size; 0 means unbounded. A record
// whose start lies inside the window is retained even when it ends past the
// window, which is why the ingestor over-reads.
func stageWindow(buf []byte, starts []uint64, rangeSize uint64) ([]byte, []uint64, error) {
	end := uint64(len(buf))

	if rangeSize != 0 {
		// Scan from the end while an entry exceeds the limit; the smallest
		// dropped start is where the last in-range record ends.
		for len(starts) > 0 && starts[len(starts)-1] > rangeSize {
			end = starts[len(starts)-1]
			starts = starts[:len(starts)-1]
		}
	}

	if len(starts) == 0 {
		return nil, nil, errs.ErrNoRecords
	}

	start := starts[0]
	if end > uint64(len(buf)) || start > end {
		return nil, nil, fmt.Errorf("stage window [%d, %d): %w", start, end, errs.ErrRangeOverflow)
	}

	rebased := make([]uint64, len(starts))
	for i, s := range starts {
		rebased[i] = s - start
	}

	staged := make([]byte, end-start)
	copy(staged, buf[start:end])

	return staged, rebased, nil
}
