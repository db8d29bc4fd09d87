package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given column name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Bytes computes the xxHash64 of a raw key slice without copying.
func Bytes(key []byte) uint64 {
	return xxhash.Sum64(key)
}
