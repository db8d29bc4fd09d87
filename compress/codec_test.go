package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/jsoncol/format"
)

func testPayload() []byte {
	var buf bytes.Buffer
	for i := 0; i < 200; i++ {
		buf.WriteString(`{"a":1,"b":"hello","c":3.14}` + "\n")
	}

	return buf.Bytes()
}

func TestRoundTripCodecs(t *testing.T) {
	tests := []struct {
		name  string
		ctype format.CompressionType
	}{
		{"gzip", format.CompressionGzip},
		{"zip", format.CompressionZip},
		{"xz", format.CompressionXz},
		{"zstd", format.CompressionZstd},
		{"s2", format.CompressionS2},
		{"lz4", format.CompressionLZ4},
	}

	payload := testPayload()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := GetCodec(tt.ctype)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.NotEmpty(t, compressed)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, payload, decompressed)
		})
	}
}

func TestNoOpCodec(t *testing.T) {
	codec := NewNoOpCodec()
	payload := testPayload()

	out, err := codec.Decompress(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestBzip2CompressUnsupported(t *testing.T) {
	codec := NewBzip2Codec()

	_, err := codec.Compress(testPayload())
	assert.Error(t, err)
}

func TestDecompressCorruptInput(t *testing.T) {
	for _, ctype := range []format.CompressionType{
		format.CompressionGzip,
		format.CompressionZip,
		format.CompressionXz,
		format.CompressionZstd,
	} {
		t.Run(ctype.String(), func(t *testing.T) {
			codec, err := GetCodec(ctype)
			require.NoError(t, err)

			_, err = codec.Decompress([]byte("definitely not compressed data"))
			assert.Error(t, err)
		})
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		ext  string
		want format.CompressionType
	}{
		{"gz", format.CompressionGzip},
		{".gz", format.CompressionGzip},
		{"GZ", format.CompressionGzip},
		{"zip", format.CompressionZip},
		{"bz2", format.CompressionBzip2},
		{"xz", format.CompressionXz},
		{"zst", format.CompressionZstd},
		{"zstd", format.CompressionZstd},
		{"s2", format.CompressionS2},
		{"lz4", format.CompressionLZ4},
		{"json", format.CompressionNone},
		{"", format.CompressionNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Detect(tt.ext), "ext %q", tt.ext)
	}
}

func TestGetCodecUnknown(t *testing.T) {
	_, err := GetCodec(format.CompressionAuto)
	assert.Error(t, err)

	_, err = GetCodec(format.CompressionType(0xff))
	assert.Error(t, err)
}

func TestDecompressEmptyInput(t *testing.T) {
	for ctype := range builtinCodecs {
		codec, err := GetCodec(ctype)
		require.NoError(t, err)

		out, err := codec.Decompress(nil)
		require.NoError(t, err)
		assert.Empty(t, out)
	}
}
