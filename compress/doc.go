// Package compress provides the decompression codecs used to inflate ingested
// input before record scanning.
//
// The reader treats decompression as a single black-box step: the entire
// ingested buffer goes in, the entire decompressed buffer comes out. Codecs
// are looked up by compression type, and the type itself can be detected from
// the source file extension:
//
//	codec, _ := compress.GetCodec(compress.Detect("gz"))
//	plain, err := codec.Decompress(raw)
//
// # Supported formats
//
//   - None: passthrough for plain text input
//   - Gzip: `.gz` (klauspost/compress/gzip, pooled readers)
//   - Zip: `.zip`, first file entry of the archive
//   - Bzip2: `.bz2`, decompress only
//   - Xz: `.xz`
//   - Zstd: `.zst`, pure-Go by default, cgo under the `zstdcgo` build tag
//   - S2: `.s2` stream format
//   - LZ4: `.lz4` frame format
//
// Every codec also implements Compress where the format allows it, so tests
// and tooling can produce inputs in any supported container without shelling
// out to external tools.
package compress
