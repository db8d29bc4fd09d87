package reader

import (
	"fmt"

	"github.com/arloliu/jsoncol/compress"
	"github.com/arloliu/jsoncol/format"
	"github.com/arloliu/jsoncol/internal/pool"
)

// Padding added to a bounded byte-range read. A record that starts inside the
// window may end past it, so the ingestor reads beyond the requested size and
// lets the window stager trim to exact record boundaries. With no schema yet
// there is no per-column estimate, so the allowance is the maximum row size
// the reader supports plus a fixed base.
const (
	baseRangePadding = 1024
	maxRowBytes      = 16 * 1024
)

// ingest reads the configured byte-range window from the ordered source set
// into one host buffer. The sources form a single logical input; the window
// offset and size apply to their concatenation.
//
// The returned release function returns the buffer to the ingest pool; the
// buffer must not be used after calling it.
func ingest(cfg *Config) ([]byte, func(), error) {
	buf := pool.GetIngestBuffer()
	release := func() { pool.PutIngestBuffer(buf) }

	offset := cfg.byteRangeOffset
	readSize := uint64(0) // 0 = everything from offset
	if cfg.byteRangeSize != 0 {
		readSize = cfg.byteRangeSize + baseRangePadding + maxRowBytes
	}

	base := uint64(0)
	for _, src := range cfg.sources {
		size, err := src.Size()
		if err != nil {
			return nil, release, fmt.Errorf("ingest: %w", err)
		}
		if base+size <= offset {
			base += size
			continue
		}

		local := uint64(0)
		if offset > base {
			local = offset - base
		}
		want := uint64(0) // rest of this source
		if readSize != 0 {
			consumed := base + local - offset
			want = readSize - consumed
			if want > size-local {
				want = size - local
			}
		}

		data, err := src.ReadRange(local, want)
		if err != nil {
			return nil, release, fmt.Errorf("ingest: %w", err)
		}
		buf.Write(data)

		base += size
		if readSize != 0 && uint64(buf.Len()) >= readSize {
			break
		}
	}

	return buf.Bytes(), release, nil
}

// decompress inflates the ingested buffer. With CompressionAuto the codec is
// detected from the first source's file extension; unrecognized extensions
// pass through unchanged.
func decompress(cfg *Config, raw []byte) ([]byte, error) {
	comp := cfg.compression
	if comp == format.CompressionAuto {
		comp = format.CompressionNone
		if len(cfg.sources) > 0 {
			comp = compress.Detect(cfg.sources[0].Ext())
		}
	}

	codec, err := compress.GetCodec(comp)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}

	out, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}

	return out, nil
}
