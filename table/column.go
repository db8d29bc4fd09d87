package table

import (
	"time"

	"github.com/arloliu/jsoncol/format"
)

// Column is one typed output column: a value buffer, a validity bitmap, and a
// null count. Columns are immutable once their table is built; the value
// slices returned by the accessors must not be modified by the caller.
//
// Exactly one value buffer is populated, selected by the column's data type.
// Accessing the buffer for a different type returns nil.
type Column struct {
	name      string
	dtype     format.DataType
	length    int
	nullCount int
	validity  *Bitmap

	ints   []int64
	uints  []uint64
	floats []float64
	bools  []bool
	strs   []string
	times  []int64 // epoch milliseconds
	i8s    []int8  // all-null placeholder storage
}

// Name returns the column name.
func (c *Column) Name() string {
	return c.name
}

// Type returns the column's resolved data type.
func (c *Column) Type() format.DataType {
	return c.dtype
}

// Len returns the number of rows.
func (c *Column) Len() int {
	return c.length
}

// NullCount returns the number of rows without a valid value.
func (c *Column) NullCount() int {
	return c.nullCount
}

// IsValid reports whether the value at row is present (not null).
func (c *Column) IsValid(row int) bool {
	return c.validity.Get(row)
}

// Int64s returns the value buffer of a TypeInt64 column, or nil for other types.
func (c *Column) Int64s() []int64 {
	return c.ints
}

// Uint64s returns the value buffer of a TypeUint64 column, or nil for other types.
func (c *Column) Uint64s() []uint64 {
	return c.uints
}

// Float64s returns the value buffer of a TypeFloat64 column, or nil for other types.
func (c *Column) Float64s() []float64 {
	return c.floats
}

// Bools returns the value buffer of a TypeBool column, or nil for other types.
func (c *Column) Bools() []bool {
	return c.bools
}

// Strings returns the value buffer of a TypeString column, or nil for other types.
func (c *Column) Strings() []string {
	return c.strs
}

// Millis returns the value buffer of a TypeTimestampMilli column as epoch
// milliseconds, or nil for other types.
func (c *Column) Millis() []int64 {
	return c.times
}

// TimeAt returns the value of a TypeTimestampMilli column at row as a
// time.Time in UTC. The second return value is false when the row is null or
// the column is not a timestamp column.
func (c *Column) TimeAt(row int) (time.Time, bool) {
	if c.dtype != format.TypeTimestampMilli || !c.validity.Get(row) {
		return time.Time{}, false
	}

	return time.UnixMilli(c.times[row]).UTC(), true
}

// ColumnBuilder assembles one column during materialization.
//
// The conversion pass writes values and validity bits for disjoint row ranges
// from multiple goroutines; Finish seals the column with its final null count.
type ColumnBuilder struct {
	col Column
}

// NewColumnBuilder allocates the value buffer and validity bitmap for a
// column of the given type with rows entries, all initially null.
func NewColumnBuilder(name string, dtype format.DataType, rows int) *ColumnBuilder {
	b := &ColumnBuilder{
		col: Column{
			name:     name,
			dtype:    dtype,
			length:   rows,
			validity: NewBitmap(rows),
		},
	}

	switch dtype {
	case format.TypeInt8:
		b.col.i8s = make([]int8, rows)
	case format.TypeInt64:
		b.col.ints = make([]int64, rows)
	case format.TypeUint64:
		b.col.uints = make([]uint64, rows)
	case format.TypeFloat64:
		b.col.floats = make([]float64, rows)
	case format.TypeBool:
		b.col.bools = make([]bool, rows)
	case format.TypeString:
		b.col.strs = make([]string, rows)
	case format.TypeTimestampMilli:
		b.col.times = make([]int64, rows)
	}

	return b
}

// Type returns the data type the builder allocates for.
func (b *ColumnBuilder) Type() format.DataType {
	return b.col.dtype
}

// SetInt64 stores v at row and marks it valid.
func (b *ColumnBuilder) SetInt64(row int, v int64) {
	b.col.ints[row] = v
	b.col.validity.Set(row)
}

// SetUint64 stores v at row and marks it valid.
func (b *ColumnBuilder) SetUint64(row int, v uint64) {
	b.col.uints[row] = v
	b.col.validity.Set(row)
}

// SetFloat64 stores v at row and marks it valid.
func (b *ColumnBuilder) SetFloat64(row int, v float64) {
	b.col.floats[row] = v
	b.col.validity.Set(row)
}

// SetBool stores v at row and marks it valid.
func (b *ColumnBuilder) SetBool(row int, v bool) {
	b.col.bools[row] = v
	b.col.validity.Set(row)
}

// SetString stores v at row and marks it valid.
func (b *ColumnBuilder) SetString(row int, v string) {
	b.col.strs[row] = v
	b.col.validity.Set(row)
}

// SetMillis stores an epoch-millisecond timestamp at row and marks it valid.
func (b *ColumnBuilder) SetMillis(row int, ms int64) {
	b.col.times[row] = ms
	b.col.validity.Set(row)
}

// MutableStrings exposes the string buffer for in-place escape normalization.
// Only the materializer's string post-processing pass uses this.
func (b *ColumnBuilder) MutableStrings() []string {
	return b.col.strs
}

// Finish seals the column. validCount is the number of rows the conversion
// pass marked valid; the null count is the remainder.
func (b *ColumnBuilder) Finish(validCount int) Column {
	b.col.nullCount = b.col.length - validCount

	return b.col
}
