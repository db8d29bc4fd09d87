// Package jsoncol reads newline-delimited JSON into a typed, columnar
// in-memory table for analytics workloads on large semi-structured datasets.
//
// Each input line is one record: a flat JSON object or a flat JSON array.
// The reader discovers column names, resolves one concrete type per column
// from bounded per-field statistics, and materializes per-column value
// buffers with validity bitmaps, all through data-parallel scanning passes.
//
// # Core Features
//
//   - Hash-based column identification (64-bit xxHash64) for O(1) field routing
//   - Deterministic column ordering (first occurrence in file)
//   - Type inference over conflicting observed value classes with a fixed
//     precedence rule, or caller-supplied explicit types
//   - Byte-range windows for partial reads of huge files
//   - Compressed input (gzip, zip, bzip2, xz, zstd, s2, lz4) with
//     auto-detection by extension
//   - Quote-aware record splitting for newlines inside quoted strings
//
// # Basic Usage
//
// Reading an in-memory buffer:
//
//	tbl, err := jsoncol.ReadBuffer([]byte("{\"a\":1}\n{\"a\":2}\n"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	col, _ := tbl.ColumnByName("a")
//	fmt.Println(col.Type(), col.Int64s()) // Int64 [1 2]
//
// Reading a compressed file with a byte-range window:
//
//	tbl, err := jsoncol.ReadFile("events.json.gz",
//	    reader.WithByteRange(0, 1<<20),
//	)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the reader
// package. For fine-grained control over sources, explicit column types, and
// parsing options, use the reader package directly.
package jsoncol

import (
	"github.com/arloliu/jsoncol/internal/hash"
	"github.com/arloliu/jsoncol/reader"
	"github.com/arloliu/jsoncol/table"
)

// ReadFile reads one line-delimited JSON file into a table.
//
// The compression codec is auto-detected from the file extension (gz, zip,
// bz2, xz, zst, s2, lz4; anything else reads as plain text). Additional
// options are applied after the file source.
//
// Example:
//
//	tbl, err := jsoncol.ReadFile("events.jsonl",
//	    reader.WithDayFirst(true),
//	)
func ReadFile(path string, opts ...reader.Option) (*table.Table, error) {
	allOpts := append([]reader.Option{reader.WithFiles(path)}, opts...)
	r, err := reader.NewReader(allOpts...)
	if err != nil {
		return nil, err
	}

	return r.Read()
}

// ReadBuffer reads line-delimited JSON from an in-memory buffer into a table.
//
// The buffer is treated as uncompressed unless a compression option says
// otherwise. The slice is not copied; it must not be modified during the call.
func ReadBuffer(data []byte, opts ...reader.Option) (*table.Table, error) {
	allOpts := append([]reader.Option{reader.WithBuffer(data)}, opts...)
	r, err := reader.NewReader(allOpts...)
	if err != nil {
		return nil, err
	}

	return r.Read()
}

// ColumnID converts a column name to its 64-bit hash identifier.
//
// The reader routes fields to columns by xxHash64 of the raw key bytes, so
// the hash of a name is stable across reads and processes. Distinct names
// that collide hash to the same logical column; with 64-bit hashes the
// probability is negligible for practical schemas.
func ColumnID(name string) uint64 {
	return hash.ID(name)
}
