package reader

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/arloliu/jsoncol/errs"
	"github.com/arloliu/jsoncol/format"
	"github.com/arloliu/jsoncol/internal/hash"
	"github.com/arloliu/jsoncol/internal/parallel"
)

// classCounts is the mutually exclusive value-class histogram of one column:
// how many field occurrences matched each candidate type category.
type classCounts struct {
	nulls     int64
	bools     int64
	posInts   int64 // small positive integers (fit in int64)
	negInts   int64 // small negative integers (fit in int64)
	bigInts   int64 // integers overflowing int64 width
	floats    int64
	datetimes int64
	strings   int64
}

// resolveTypes produces one concrete type per column, either from
// caller-supplied types or from a parallel statistics pass over all field
// occurrences reduced by the fixed precedence rule.
func resolveTypes(buf []byte, starts []uint64, sch *schema, cfg *Config) ([]format.DataType, error) {
	if cfg.dtypeList != nil {
		if len(cfg.dtypeList) != len(sch.names) {
			return nil, fmt.Errorf("%d types for %d columns: %w",
				len(cfg.dtypeList), len(sch.names), errs.ErrTypeMismatch)
		}

		return slices.Clone(cfg.dtypeList), nil
	}

	if cfg.dtypeMap != nil {
		dtypes := make([]format.DataType, len(sch.names))
		for i, name := range sch.names {
			dtype, ok := cfg.dtypeMap[name]
			if !ok {
				return nil, fmt.Errorf("column %q has no supplied type: %w", name, errs.ErrTypeMismatch)
			}
			dtypes[i] = dtype
		}

		return dtypes, nil
	}

	counts := countValueClasses(buf, starts, sch, cfg)

	dtypes := make([]format.DataType, len(sch.names))
	for i := range counts {
		dtype, err := resolveColumnType(counts[i], int64(len(starts)))
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", sch.names[i], err)
		}
		dtypes[i] = dtype
	}
	if len(dtypes) == 0 {
		return nil, errs.ErrNoTypes
	}

	return dtypes, nil
}

// countValueClasses runs the parallel classification pass: every chunk of
// records accumulates its own per-column histogram, merged sequentially after
// the join.
func countValueClasses(buf []byte, starts []uint64, sch *schema, cfg *Config) []classCounts {
	ncols := len(sch.names)
	bounds := parallel.Chunks(len(starts))
	partials := make([][]classCounts, len(bounds))

	_ = parallel.ForChunks(bounds, func(idx, s, e int) error {
		counts := make([]classCounts, ncols)
		for rec := s; rec < e; rec++ {
			rs, re := recordSpan(buf, starts, rec)
			if sch.shape == shapeObject {
				scanObjectFields(buf, rs, re, cfg.quoteChar, func(keyOff, keyLen, valOff, valLen uint64) {
					ci, ok := sch.index[hash.Bytes(buf[keyOff:keyOff+keyLen])]
					if !ok {
						return
					}
					tally(&counts[ci], classifyValue(buf[valOff:valOff+valLen], cfg.quoteChar))
				})
			} else {
				splitArrayFields(buf, rs, re, cfg.quoteChar, cfg.delimiter, func(ci int, valOff, valLen uint64) {
					if ci >= ncols {
						return
					}
					tally(&counts[ci], classifyValue(buf[valOff:valOff+valLen], cfg.quoteChar))
				})
			}
		}
		partials[idx] = counts

		return nil
	})

	merged := make([]classCounts, ncols)
	for _, counts := range partials {
		for i := range counts {
			merged[i].nulls += counts[i].nulls
			merged[i].bools += counts[i].bools
			merged[i].posInts += counts[i].posInts
			merged[i].negInts += counts[i].negInts
			merged[i].bigInts += counts[i].bigInts
			merged[i].floats += counts[i].floats
			merged[i].datetimes += counts[i].datetimes
			merged[i].strings += counts[i].strings
		}
	}

	return merged
}

type valueClass uint8

const (
	classNull valueClass = iota
	classBool
	classPosInt
	classNegInt
	classBigInt
	classFloat
	classDatetime
	classString
)

func tally(c *classCounts, class valueClass) {
	switch class {
	case classNull:
		c.nulls++
	case classBool:
		c.bools++
	case classPosInt:
		c.posInts++
	case classNegInt:
		c.negInts++
	case classBigInt:
		c.bigInts++
	case classFloat:
		c.floats++
	case classDatetime:
		c.datetimes++
	case classString:
		c.strings++
	}
}

// classifyValue assigns one raw field occurrence to exactly one value class.
// Surrounding quotes are stripped first, so quoted digits classify as
// integers and quoted dates as datetimes.
func classifyValue(raw []byte, quote byte) valueClass {
	f := trimSpace(raw)
	f = unquote(f, quote)
	f = trimSpace(f)

	if len(f) == 0 || string(f) == "null" {
		return classNull
	}
	if string(f) == "true" || string(f) == "false" {
		return classBool
	}
	if isInteger(f) {
		if _, err := strconv.ParseInt(string(f), 10, 64); err == nil {
			if f[0] == '-' {
				return classNegInt
			}

			return classPosInt
		}

		return classBigInt
	}
	if _, err := strconv.ParseFloat(string(f), 64); err == nil {
		return classFloat
	}
	if isLikeDatetime(f) {
		return classDatetime
	}

	return classString
}

// isInteger reports whether f is an optionally signed run of digits.
func isInteger(f []byte) bool {
	i := 0
	if f[0] == '-' || f[0] == '+' {
		i = 1
	}
	if i == len(f) {
		return false
	}
	for ; i < len(f); i++ {
		if f[i] < '0' || f[i] > '9' {
			return false
		}
	}

	return true
}

// isLikeDatetime is the bounded datetime heuristic: digits plus a limited
// budget of date separators. It deliberately never parses; parsing happens at
// materialization against the layout list.
func isLikeDatetime(f []byte) bool {
	digits, colons, seps := 0, 0, 0
	for _, c := range f {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == ':':
			colons++
		case c == '-' || c == '/':
			seps++
		case c == '.' || c == ' ' || c == '+' || c == 'T' || c == 'Z':
			// allowed separators
		default:
			return false
		}
	}
	if digits == 0 || colons > 3 || seps > 2 {
		return false
	}

	return colons > 0 || seps > 0
}

// resolveColumnType reduces a column's value-class histogram to one output
// type. The rules form a total, order-significant precedence chain; later
// rules are unreachable once an earlier one fires and must not be reordered.
func resolveColumnType(c classCounts, records int64) (format.DataType, error) {
	intTotal := c.posInts + c.negInts + c.bigInts

	switch {
	case c.nulls == records:
		// Entire column is null; narrowest placeholder.
		return format.TypeInt8, nil
	case c.strings > 0:
		return format.TypeString, nil
	case c.datetimes > 0:
		return format.TypeTimestampMilli, nil
	case c.floats > 0 || (intTotal > 0 && c.nulls > 0):
		// Integers mixed with nulls widen to float so nulls stay representable.
		return format.TypeFloat64, nil
	case c.posInts+c.negInts > 0 && c.bigInts == 0:
		return format.TypeInt64, nil
	case c.bigInts > 0 && c.negInts > 0:
		// No single numeric type holds both; fall back to strings.
		return format.TypeString, nil
	case c.bigInts > 0:
		return format.TypeUint64, nil
	case c.bools > 0:
		return format.TypeBool, nil
	default:
		return format.TypeInvalid, errs.ErrTypeDetection
	}
}
