package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocateRecordStartsPlain(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		baseAtStart bool
		want        []uint64
	}{
		{"terminated records", "a\nb\nc\n", true, []uint64{0, 2, 4}},
		{"unterminated last record", "a\nb\nc", true, []uint64{0, 2, 4}},
		{"no terminator is one record", "abc", true, []uint64{0}},
		{"mid-window drops partial first record", "artial\nfull\n", false, []uint64{7}},
		{"mid-window without terminator has no records", "abc", false, nil},
		{"empty buffer", "", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, release := locateRecordStarts([]byte(tt.input), tt.baseAtStart, '"', false)
			defer release()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocateRecordStartsQuoteAware(t *testing.T) {
	t.Run("terminator inside quotes is not a boundary", func(t *testing.T) {
		input := "{\"a\":\"x\ny\"}\n"
		got, release := locateRecordStarts([]byte(input), true, '"', true)
		defer release()
		assert.Equal(t, []uint64{0}, got)
	})

	t.Run("even quote occurrences cancel", func(t *testing.T) {
		input := "{\"a\":\"q\",\"b\":\"r\"}\n{\"a\":\"s\"}\n"
		got, release := locateRecordStarts([]byte(input), true, '"', true)
		defer release()
		assert.Equal(t, []uint64{0, 18}, got)
	})

	t.Run("quote aware matches plain split on unquoted input", func(t *testing.T) {
		input := "1\n2\n3\n"
		plain, releasePlain := locateRecordStarts([]byte(input), true, '"', false)
		defer releasePlain()
		aware, releaseAware := locateRecordStarts([]byte(input), true, '"', true)
		defer releaseAware()
		assert.Equal(t, plain, aware)
	})
}

func TestLocateRecordStartsDeterministic(t *testing.T) {
	// Boundary count must not depend on parallel scan ordering; repeated runs
	// over the same bytes must agree exactly.
	input := make([]byte, 0, 64*1024)
	for i := 0; i < 5000; i++ {
		input = append(input, []byte("{\"k\":1}\n")...)
	}

	first, releaseFirst := locateRecordStarts(input, true, '"', false)
	defer releaseFirst()
	assert.Len(t, first, 5000)
	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1], first[i])
	}

	for run := 0; run < 3; run++ {
		again, release := locateRecordStarts(input, true, '"', false)
		assert.Equal(t, first, again)
		release()
	}
}
