package compress

// ZstdCodec handles Zstandard-compressed input (`.zst`).
//
// Two implementations are provided: a pure-Go one built on
// klauspost/compress/zstd (the default) and a cgo one built on valyala/gozstd,
// selected with the `zstdcgo` build tag for deployments that can take the cgo
// dependency in exchange for faster decompression of large inputs.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
