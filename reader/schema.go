package reader

import (
	"bytes"
	"slices"
	"strconv"

	"github.com/arloliu/jsoncol/errs"
	"github.com/arloliu/jsoncol/internal/hash"
	"github.com/arloliu/jsoncol/internal/parallel"
)

type recordShape uint8

const (
	shapeObject recordShape = iota
	shapeArray
)

// schema is the column map of one read: ordered column names plus the
// hash→column-index lookup the conversion pass routes fields with. Built once
// per read and read-only afterward.
type schema struct {
	shape recordShape
	names []string
	index map[uint64]int
}

// keyOccurrence is one key token found during the object-shape harvest:
// where it starts in the staged buffer, how long it is, and its xxHash64.
// The hash alone identifies a logical column; distinct key strings that
// collide are not distinguished.
type keyOccurrence struct {
	off    uint64
	length uint64
	hash   uint64
}

// discoverSchema determines column names from the staged buffer.
//
// The first record's bytes decide the row shape: object form wins when its
// opening brace occurs at or before the array bracket's position; absence of
// both brackets is a fatal not-valid-input error.
func discoverSchema(buf []byte, starts []uint64, cfg *Config) (*schema, error) {
	start, end := recordSpan(buf, starts, 0)
	first := buf[start:end]

	objPos := bytes.IndexByte(first, '{')
	arrPos := bytes.IndexByte(first, '[')

	switch {
	case objPos < 0 && arrPos < 0:
		return nil, errs.ErrNotJSONInput
	case arrPos < 0 || (objPos >= 0 && objPos <= arrPos):
		return discoverObjectSchema(buf, starts, cfg)
	default:
		return discoverArraySchema(first, cfg)
	}
}

// discoverArraySchema derives positional column names from a single
// sequential scan of the first record. The walk toggles a quote flag and
// emits a new stringified ordinal whenever the current position is the
// delimiter outside quotes or the last byte of the row.
func discoverArraySchema(first []byte, cfg *Config) (*schema, error) {
	row := first
	for len(row) > 0 && (row[len(row)-1] == recordTerminator || row[len(row)-1] == '\r') {
		row = row[:len(row)-1]
	}

	var names []string
	inQuote := false
	for i := 0; i < len(row); i++ {
		if row[i] == cfg.quoteChar {
			inQuote = !inQuote
		}
		if (row[i] == cfg.delimiter && !inQuote) || i == len(row)-1 {
			names = append(names, strconv.Itoa(len(names)))
		}
	}
	if len(names) == 0 {
		return nil, errs.ErrNoColumnNames
	}

	index := make(map[uint64]int, len(names))
	for i, name := range names {
		index[hash.ID(name)] = i
	}

	return &schema{shape: shapeArray, names: names, index: index}, nil
}

// discoverObjectSchema harvests keys from all records in parallel and
// aggregates them by hash into a deterministic, ordered name list.
//
// Two passes over the records: pass 1 counts key occurrences to size the
// occurrence table, pass 2 fills (offset, length, hash) rows at running
// indices. Groups keep the minimum offset and its length as representative;
// sorting groups by representative offset fixes column order to
// first-occurrence-in-file order regardless of harvest parallelism.
func discoverObjectSchema(buf []byte, starts []uint64, cfg *Config) (*schema, error) {
	bounds := parallel.Chunks(len(starts))

	counts := make([]int, len(bounds))
	_ = parallel.ForChunks(bounds, func(idx, s, e int) error {
		n := 0
		for rec := s; rec < e; rec++ {
			rs, re := recordSpan(buf, starts, rec)
			scanObjectFields(buf, rs, re, cfg.quoteChar, func(_, _, _, _ uint64) {
				n++
			})
		}
		counts[idx] = n

		return nil
	})

	total := 0
	offsets := make([]int, len(bounds))
	for i, n := range counts {
		offsets[i] = total
		total += n
	}
	if total == 0 {
		return nil, errs.ErrNoColumnNames
	}

	occurrences := make([]keyOccurrence, total)
	_ = parallel.ForChunks(bounds, func(idx, s, e int) error {
		w := offsets[idx]
		for rec := s; rec < e; rec++ {
			rs, re := recordSpan(buf, starts, rec)
			scanObjectFields(buf, rs, re, cfg.quoteChar, func(keyOff, keyLen, _, _ uint64) {
				occurrences[w] = keyOccurrence{
					off:    keyOff,
					length: keyLen,
					hash:   hash.Bytes(buf[keyOff : keyOff+keyLen]),
				}
				w++
			})
		}

		return nil
	})

	groups := make(map[uint64]keyOccurrence, 16)
	for _, occ := range occurrences {
		rep, ok := groups[occ.hash]
		if !ok || occ.off < rep.off {
			groups[occ.hash] = occ
		}
	}

	reps := make([]keyOccurrence, 0, len(groups))
	for _, rep := range groups {
		reps = append(reps, rep)
	}
	slices.SortFunc(reps, func(a, b keyOccurrence) int {
		switch {
		case a.off < b.off:
			return -1
		case a.off > b.off:
			return 1
		default:
			return 0
		}
	})

	names := make([]string, len(reps))
	index := make(map[uint64]int, len(reps))
	for i, rep := range reps {
		names[i] = string(buf[rep.off : rep.off+rep.length])
		index[rep.hash] = i
	}

	return &schema{shape: shapeObject, names: names, index: index}, nil
}
