// Package reader implements the multi-stage pipeline that turns
// newline-delimited JSON bytes into a typed, columnar in-memory table.
//
// Records are single lines holding either a flat JSON object or a flat JSON
// array. The pipeline infers or validates the schema without a prior grammar
// definition and resolves per-field type ambiguity from bounded statistics
// instead of full parsing.
//
// # Pipeline
//
// One Read call moves data strictly forward through seven stages; each
// stage's output is the next stage's required input and no stage is
// re-entered:
//
//  1. Ingest: ranged byte sources → one host buffer, honoring the optional
//     byte-range window with padding for row-size uncertainty.
//  2. Decompress: inflate by codec name or extension auto-detection.
//  3. Locate boundaries: data-parallel terminator scan producing the ordered
//     record-start table, with an optional sequential quote-state correction
//     when terminators may appear inside quoted strings.
//  4. Stage: trim the record-start table to the byte-range window, rebase
//     offsets to zero, and copy exactly the covered span.
//  5. Discover schema: positional names for array rows, parallel key harvest
//     aggregated by hash into first-occurrence order for object rows.
//  6. Infer types: one concrete type per column, from supplied types or a
//     parallel value-class histogram reduced by a fixed precedence chain.
//  7. Materialize: parallel conversion into per-column value buffers with
//     validity bitmaps and null counts, plus escape normalization on string
//     columns.
//
// # Concurrency
//
// Data-parallel passes (scanning, harvesting, classification, conversion)
// split the record space into chunks joined before the next stage runs;
// corrections that depend on left-to-right state (quote tracking, array name
// walk) stay strictly sequential. A Reader holds no mutable cross-call state,
// so concurrent Read calls are independent.
//
// # Scope
//
// Only flat scalar fields are decoded: nested objects or arrays as values,
// strict JSON validation, and Unicode escape decoding (`\u####`) are out of
// scope. Behavior on malformed input beyond bracket detection is unspecified.
package reader
