// Package errs defines the sentinel errors shared across jsoncol packages.
//
// All of these conditions are fatal for a single Read call: the reader never
// returns a partial table. Callers can match them with errors.Is after the
// reader wraps them with per-stage context.
package errs

import "errors"

var (
	// ErrEmptyInput indicates the configured sources produced zero bytes.
	ErrEmptyInput = errors.New("ingested input is empty")

	// ErrEmptyDecompressed indicates decompression produced zero bytes.
	ErrEmptyDecompressed = errors.New("decompressed input is empty")

	// ErrNoRecords indicates no record boundaries were found in the selected
	// byte window.
	ErrNoRecords = errors.New("no records found in input")

	// ErrNoColumnNames indicates schema discovery produced zero column names.
	ErrNoColumnNames = errors.New("no column names found")

	// ErrNoTypes indicates type resolution produced zero column types.
	ErrNoTypes = errors.New("no column types resolved")

	// ErrNoColumns indicates materialization produced zero output columns.
	ErrNoColumns = errors.New("no output columns produced")

	// ErrNotJSONInput indicates the first record contains neither '{' nor '['.
	ErrNotJSONInput = errors.New("input is not valid line-delimited JSON")

	// ErrTypeMismatch indicates the caller-supplied types do not cover the
	// discovered columns: a positional list with the wrong length, or a
	// name-keyed map missing a discovered name.
	ErrTypeMismatch = errors.New("explicit column types do not match discovered columns")

	// ErrTypeDetection indicates a column's value-class histogram matched no
	// resolution rule.
	ErrTypeDetection = errors.New("unable to detect column type")

	// ErrLinesOnly indicates the reader was configured for a record layout
	// other than line-delimited JSON.
	ErrLinesOnly = errors.New("only line-delimited JSON input is supported")

	// ErrRangeOverflow indicates the computed byte span exceeds the available
	// data.
	ErrRangeOverflow = errors.New("byte range exceeds available data")
)
