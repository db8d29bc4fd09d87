package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/jsoncol/errs"
	"github.com/arloliu/jsoncol/internal/hash"
)

func discoverFrom(t *testing.T, input string, cfg *Config) (*schema, error) {
	t.Helper()
	buf := []byte(input)
	starts, release := locateRecordStarts(buf, true, cfg.quoteChar, cfg.newlinesInStrings)
	defer release()
	require.NotEmpty(t, starts)

	return discoverSchema(buf, starts, cfg)
}

func TestDiscoverObjectSchemaOrder(t *testing.T) {
	// Column order is first-occurrence-in-file order, independent of which
	// records contribute which keys.
	sch, err := discoverFrom(t, "{\"b\":1,\"a\":2}\n{\"c\":3,\"a\":4}\n", NewConfig())
	require.NoError(t, err)

	assert.Equal(t, shapeObject, sch.shape)
	assert.Equal(t, []string{"b", "a", "c"}, sch.names)

	for i, name := range sch.names {
		idx, ok := sch.index[hash.ID(name)]
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
}

func TestDiscoverObjectSchemaDeterministic(t *testing.T) {
	input := ""
	for i := 0; i < 500; i++ {
		input += "{\"x\":1,\"y\":2,\"z\":3}\n"
	}

	first, err := discoverFrom(t, input, NewConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, first.names)

	for run := 0; run < 3; run++ {
		again, err := discoverFrom(t, input, NewConfig())
		require.NoError(t, err)
		assert.Equal(t, first.names, again.names)
	}
}

func TestDiscoverArraySchema(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"three fields", "[1,2,3]\n", []string{"0", "1", "2"}},
		{"single field", "[42]\n", []string{"0"}},
		{"delimiter inside quotes ignored", "[1,\"x, y\",3]\n", []string{"0", "1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sch, err := discoverFrom(t, tt.input, NewConfig())
			require.NoError(t, err)
			assert.Equal(t, shapeArray, sch.shape)
			assert.Equal(t, tt.want, sch.names)
		})
	}
}

func TestDiscoverSchemaDisambiguation(t *testing.T) {
	t.Run("object bracket first wins", func(t *testing.T) {
		sch, err := discoverFrom(t, "{\"a\":\"[1]\"}\n", NewConfig())
		require.NoError(t, err)
		assert.Equal(t, shapeObject, sch.shape)
	})

	t.Run("array bracket first wins", func(t *testing.T) {
		sch, err := discoverFrom(t, "  [1,2]\n", NewConfig())
		require.NoError(t, err)
		assert.Equal(t, shapeArray, sch.shape)
	})

	t.Run("neither bracket is fatal", func(t *testing.T) {
		_, err := discoverFrom(t, "plain text\n", NewConfig())
		assert.ErrorIs(t, err, errs.ErrNotJSONInput)
	})
}
