package jsoncol

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/jsoncol/format"
	"github.com/arloliu/jsoncol/reader"
)

func TestReadBuffer(t *testing.T) {
	tbl, err := ReadBuffer([]byte("{\"a\":1}\n{\"a\":2}\n"))
	require.NoError(t, err)

	require.Equal(t, 2, tbl.NumRows())
	col, ok := tbl.ColumnByName("a")
	require.True(t, ok)
	assert.Equal(t, format.TypeInt64, col.Type())
	assert.Equal(t, []int64{1, 2}, col.Int64s())
}

func TestReadBufferWithOptions(t *testing.T) {
	tbl, err := ReadBuffer([]byte("{\"a\":1}\n{\"a\":2}\n{\"a\":3}\n"),
		reader.WithByteRange(3, 10),
	)
	require.NoError(t, err)

	require.Equal(t, 1, tbl.NumRows())
	col, ok := tbl.ColumnByName("a")
	require.True(t, ok)
	assert.Equal(t, []int64{2}, col.Int64s())
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{\"a\":1,\"b\":\"x\"}\n{\"a\":2,\"b\":\"y\"}\n"), 0o644))

	tbl, err := ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, []string{"a", "b"}, tbl.Names())

	b, ok := tbl.ColumnByName("b")
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, b.Strings())
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.jsonl"))
	require.Error(t, err)
}

func TestColumnID(t *testing.T) {
	assert.Equal(t, ColumnID("a"), ColumnID("a"))
	assert.NotEqual(t, ColumnID("a"), ColumnID("b"))
	assert.Equal(t, uint64(0x4fdcca5ddb678139), ColumnID("test"))
}
