package reader

import (
	"bytes"
	"testing"
)

func benchInput(records int) []byte {
	var buf bytes.Buffer
	for i := 0; i < records; i++ {
		buf.WriteString(`{"ts":"2020-01-02 03:04:05","host":"web-1","code":200,"lat":1.25}` + "\n")
	}

	return buf.Bytes()
}

func BenchmarkLocateRecordStarts(b *testing.B) {
	input := benchInput(10000)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		starts, release := locateRecordStarts(input, true, '"', false)
		if len(starts) != 10000 {
			b.Fatalf("got %d records", len(starts))
		}
		release()
	}
}

func BenchmarkLocateRecordStartsQuoteAware(b *testing.B) {
	input := benchInput(10000)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		starts, release := locateRecordStarts(input, true, '"', true)
		if len(starts) != 10000 {
			b.Fatalf("got %d records", len(starts))
		}
		release()
	}
}

func BenchmarkRead(b *testing.B) {
	input := benchInput(10000)
	r, err := NewReader(WithBuffer(input))
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(input)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tbl, err := r.Read()
		if err != nil {
			b.Fatal(err)
		}
		if tbl.NumRows() != 10000 {
			b.Fatalf("got %d rows", tbl.NumRows())
		}
	}
}
