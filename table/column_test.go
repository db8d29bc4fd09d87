package table

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/jsoncol/format"
)

func TestBitmap(t *testing.T) {
	b := NewBitmap(130)
	assert.Equal(t, 130, b.Len())
	assert.Equal(t, 0, b.CountSet())

	for _, i := range []int{0, 1, 63, 64, 65, 129} {
		b.Set(i)
	}

	assert.Equal(t, 6, b.CountSet())
	assert.True(t, b.Get(0))
	assert.True(t, b.Get(64))
	assert.True(t, b.Get(129))
	assert.False(t, b.Get(2))
	assert.False(t, b.Get(128))
}

func TestBitmapConcurrentSet(t *testing.T) {
	const rows = 10000
	b := NewBitmap(rows)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < rows; i += 8 {
				b.Set(i)
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, rows, b.CountSet())
}

func TestColumnBuilderInt64(t *testing.T) {
	b := NewColumnBuilder("a", format.TypeInt64, 3)
	b.SetInt64(0, 10)
	b.SetInt64(2, 30)

	col := b.Finish(2)
	assert.Equal(t, "a", col.Name())
	assert.Equal(t, format.TypeInt64, col.Type())
	assert.Equal(t, 3, col.Len())
	assert.Equal(t, 1, col.NullCount())
	assert.Equal(t, []int64{10, 0, 30}, col.Int64s())
	assert.True(t, col.IsValid(0))
	assert.False(t, col.IsValid(1))
	assert.True(t, col.IsValid(2))

	// the other typed accessors stay nil
	assert.Nil(t, col.Strings())
	assert.Nil(t, col.Float64s())
}

func TestColumnBuilderTimestamp(t *testing.T) {
	b := NewColumnBuilder("ts", format.TypeTimestampMilli, 2)
	want := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	b.SetMillis(0, want.UnixMilli())

	col := b.Finish(1)
	got, ok := col.TimeAt(0)
	require.True(t, ok)
	assert.Equal(t, want, got)

	_, ok = col.TimeAt(1)
	assert.False(t, ok)
}

func TestColumnBuilderAllNullPlaceholder(t *testing.T) {
	b := NewColumnBuilder("empty", format.TypeInt8, 4)
	col := b.Finish(0)

	assert.Equal(t, format.TypeInt8, col.Type())
	assert.Equal(t, 4, col.NullCount())
	for i := 0; i < 4; i++ {
		assert.False(t, col.IsValid(i))
	}
}

func TestTable(t *testing.T) {
	a := NewColumnBuilder("a", format.TypeInt64, 2)
	a.SetInt64(0, 1)
	a.SetInt64(1, 2)
	s := NewColumnBuilder("s", format.TypeString, 2)
	s.SetString(0, "x")
	s.SetString(1, "y")

	tbl := New([]Column{a.Finish(2), s.Finish(2)})

	assert.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumColumns())
	assert.Equal(t, []string{"a", "s"}, tbl.Names())
	assert.Equal(t, "a", tbl.Column(0).Name())

	col, ok := tbl.ColumnByName("s")
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, col.Strings())

	_, ok = tbl.ColumnByName("missing")
	assert.False(t, ok)
}
