package reader

import (
	"errors"
	"fmt"

	"github.com/arloliu/jsoncol/errs"
	"github.com/arloliu/jsoncol/internal/options"
	"github.com/arloliu/jsoncol/table"
)

// Reader ingests newline-delimited JSON and produces a typed columnar table.
//
// A Reader carries only its construction-time configuration; every Read call
// owns its buffers, record-start table, and column map exclusively, so one
// Reader may serve concurrent Read calls.
//
// A call runs the pipeline to completion or fails atomically: no partial
// table is ever returned, no stage is retried, and there is no mid-read
// cancellation. The caller may retry the whole call with adjusted options.
type Reader struct {
	cfg *Config
}

// NewReader creates a Reader with the given options.
//
// Configuration errors are fatal here rather than at read time: no input
// sources, a non-lines record layout, a zero quote or delimiter character, or
// both positional and name-keyed explicit types supplied together.
func NewReader(opts ...Option) (*Reader, error) {
	cfg := NewConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if !cfg.lines {
		return nil, errs.ErrLinesOnly
	}
	if len(cfg.sources) == 0 {
		return nil, errors.New("no input sources configured")
	}
	if cfg.dtypeList != nil && cfg.dtypeMap != nil {
		return nil, errors.New("positional and name-keyed column types are mutually exclusive")
	}

	return &Reader{cfg: cfg}, nil
}

// Read runs the full ingestion pipeline once:
//
//	Ingest → Decompress → Locate-Boundaries → Stage → Discover-Schema →
//	Infer-Types → Materialize
//
// and returns the resulting table of typed columns in discovered order. Any
// stage failure aborts the call with no partial result.
func (r *Reader) Read() (*table.Table, error) {
	cfg := r.cfg

	raw, release, err := ingest(cfg)
	if err != nil {
		release()
		return nil, err
	}
	defer release()

	if len(raw) == 0 {
		return nil, errs.ErrEmptyInput
	}

	decomp, err := decompress(cfg, raw)
	if err != nil {
		return nil, err
	}
	if len(decomp) == 0 {
		return nil, errs.ErrEmptyDecompressed
	}

	starts, releaseStarts := locateRecordStarts(decomp, cfg.byteRangeOffset == 0, cfg.quoteChar, cfg.newlinesInStrings)
	defer releaseStarts()
	if len(starts) == 0 {
		return nil, errs.ErrNoRecords
	}

	staged, rebased, err := stageWindow(decomp, starts, cfg.byteRangeSize)
	if err != nil {
		return nil, err
	}

	sch, err := discoverSchema(staged, rebased, cfg)
	if err != nil {
		return nil, err
	}

	dtypes, err := resolveTypes(staged, rebased, sch, cfg)
	if err != nil {
		return nil, fmt.Errorf("type resolution: %w", err)
	}

	return materialize(staged, rebased, sch, dtypes, cfg)
}
