package reader

import (
	"strconv"
	"strings"

	"github.com/arloliu/jsoncol/errs"
	"github.com/arloliu/jsoncol/format"
	"github.com/arloliu/jsoncol/internal/hash"
	"github.com/arloliu/jsoncol/internal/parallel"
	"github.com/arloliu/jsoncol/table"
)

// materialize allocates per-column value and validity buffers, runs the
// parallel conversion pass over every (record, column) pair, and finalizes
// the immutable output table. Object rows route fields through the hash
// lookup; array rows route by position. Null count per column is the record
// count minus the valid occurrences the pass accumulated.
func materialize(buf []byte, starts []uint64, sch *schema, dtypes []format.DataType, cfg *Config) (*table.Table, error) {
	ncols := len(sch.names)
	if ncols == 0 {
		return nil, errs.ErrNoColumns
	}
	records := len(starts)

	builders := make([]*table.ColumnBuilder, ncols)
	for i := range builders {
		builders[i] = table.NewColumnBuilder(sch.names[i], dtypes[i], records)
	}

	bounds := parallel.Chunks(records)
	partialValid := make([][]int, len(bounds))

	_ = parallel.ForChunks(bounds, func(idx, s, e int) error {
		valid := make([]int, ncols)
		for rec := s; rec < e; rec++ {
			rs, re := recordSpan(buf, starts, rec)
			if sch.shape == shapeObject {
				scanObjectFields(buf, rs, re, cfg.quoteChar, func(keyOff, keyLen, valOff, valLen uint64) {
					ci, ok := sch.index[hash.Bytes(buf[keyOff:keyOff+keyLen])]
					if !ok {
						return
					}
					if convertField(builders[ci], rec, buf[valOff:valOff+valLen], cfg) {
						valid[ci]++
					}
				})
			} else {
				splitArrayFields(buf, rs, re, cfg.quoteChar, cfg.delimiter, func(ci int, valOff, valLen uint64) {
					if ci >= ncols {
						return
					}
					if convertField(builders[ci], rec, buf[valOff:valOff+valLen], cfg) {
						valid[ci]++
					}
				})
			}
		}
		partialValid[idx] = valid

		return nil
	})

	validTotals := make([]int, ncols)
	for _, valid := range partialValid {
		for i, n := range valid {
			validTotals[i] += n
		}
	}

	for _, b := range builders {
		if b.Type() == format.TypeString {
			normalizeEscapes(b.MutableStrings())
		}
	}

	columns := make([]table.Column, ncols)
	for i, b := range builders {
		columns[i] = b.Finish(validTotals[i])
	}

	return table.New(columns), nil
}

// convertField parses one raw field span according to the column's resolved
// type, writing the value and validity bit on success. A null literal, an
// empty field, or a failed parse leaves the row null.
func convertField(b *table.ColumnBuilder, row int, raw []byte, cfg *Config) bool {
	f := trimSpace(raw)
	f = unquote(f, cfg.quoteChar)
	f = trimSpace(f)

	if len(f) == 0 || string(f) == "null" {
		return false
	}

	switch b.Type() {
	case format.TypeInt64:
		v, err := strconv.ParseInt(string(f), 10, 64)
		if err != nil {
			return false
		}
		b.SetInt64(row, v)
	case format.TypeUint64:
		v, err := strconv.ParseUint(string(f), 10, 64)
		if err != nil {
			return false
		}
		b.SetUint64(row, v)
	case format.TypeFloat64:
		v, err := strconv.ParseFloat(string(f), 64)
		if err != nil {
			return false
		}
		b.SetFloat64(row, v)
	case format.TypeBool:
		switch string(f) {
		case "true":
			b.SetBool(row, true)
		case "false":
			b.SetBool(row, false)
		default:
			return false
		}
	case format.TypeTimestampMilli:
		ms, ok := parseDatetime(string(f), cfg.dayFirst)
		if !ok {
			return false
		}
		b.SetMillis(row, ms)
	case format.TypeString:
		b.SetString(row, string(f))
	default:
		// TypeInt8 is the all-null placeholder; nothing converts into it.
		return false
	}

	return true
}

// escapeReplacer applies the fixed, order-independent substring substitution
// over materialized string values. Replacements never overlap, so a single
// left-to-right pass is equivalent to any application order. Unicode escapes
// (`\u####`) are deliberately left undecoded.
var escapeReplacer = strings.NewReplacer(
	`\"`, `"`,
	`\\`, `\`,
	`\t`, "\t",
	`\r`, "\r",
	`\b`, "\b",
)

// normalizeEscapes rewrites escape sequences in place over a string column's
// value buffer. Rows without a backslash are left untouched.
func normalizeEscapes(values []string) {
	_ = parallel.ForEachChunk(len(values), func(s, e int) error {
		for i := s; i < e; i++ {
			if strings.IndexByte(values[i], '\\') >= 0 {
				values[i] = escapeReplacer.Replace(values[i])
			}
		}

		return nil
	})
}
