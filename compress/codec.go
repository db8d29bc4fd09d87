package compress

import (
	"fmt"
	"strings"

	"github.com/arloliu/jsoncol/format"
)

// Decompressor inflates a fully ingested input buffer.
//
// The reader consumes decompression as a black-box primitive: it hands the
// codec the raw ingested bytes and receives the complete decompressed buffer.
// Streaming decompression of a single record larger than host memory is out
// of scope.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller (except the
//     no-op codec, which passes the input through)
//   - Input slice is not modified
//   - Internal decoder state may be pooled for reuse
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Compressor deflates a buffer into the codec's container format.
//
// Compression is not used by the reader itself; it exists so tests and
// tooling can produce inputs in every supported container format. Codecs for
// decompress-only formats return an error from Compress.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Codec combines both directions for codecs that support them.
type Codec interface {
	Compressor
	Decompressor
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// CompressionAuto must be resolved to a concrete type (see Detect) before the
// lookup; passing it here is an error.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:  NewNoOpCodec(),
	format.CompressionGzip:  NewGzipCodec(),
	format.CompressionZip:   NewZipCodec(),
	format.CompressionBzip2: NewBzip2Codec(),
	format.CompressionXz:    NewXzCodec(),
	format.CompressionZstd:  NewZstdCodec(),
	format.CompressionS2:    NewS2Codec(),
	format.CompressionLZ4:   NewLZ4Codec(),
}

// Detect maps a source file extension to its compression type.
//
// Recognized extensions: gz, zip, bz2, xz, plus zst, s2, and lz4 for the
// supplemental codecs. Anything else, including the empty extension of an
// in-memory buffer, is treated as uncompressed.
func Detect(ext string) format.CompressionType {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "gz":
		return format.CompressionGzip
	case "zip":
		return format.CompressionZip
	case "bz2":
		return format.CompressionBzip2
	case "xz":
		return format.CompressionXz
	case "zst", "zstd":
		return format.CompressionZstd
	case "s2":
		return format.CompressionS2
	case "lz4":
		return format.CompressionLZ4
	default:
		return format.CompressionNone
	}
}
