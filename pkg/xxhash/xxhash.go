// Package xxhash provides XXH64 hashing of fixed 16-byte keys.
//
// Derived from github.com/pierrec/xxHash, reduced to the
// short-input path since keys never reach the 32-byte stripe size.
package xxhash

const (
	prime64_1 = 11400714785074694791
	prime64_2 = 14029467366897019727
	prime64_3 = 1609587929392839161
	prime64_4 = 9650029242287828579
	prime64_5 = 2870177450012600261
)

// Sum16 returns the XXH64 hash of key using seed.
// The result equals hashing the 16 bytes with any XXH64 implementation.
func Sum16(seed uint64, key [16]byte) uint64 {
	h64 := seed + prime64_5 + 16

	h64 ^= rol31(u64(key[0:8])*prime64_2) * prime64_1
	h64 = rol27(h64)*prime64_1 + prime64_4

	h64 ^= rol31(u64(key[8:16])*prime64_2) * prime64_1
	h64 = rol27(h64)*prime64_1 + prime64_4

	h64 ^= h64 >> 33
	h64 *= prime64_2
	h64 ^= h64 >> 29
	h64 *= prime64_3
	h64 ^= h64 >> 32

	return h64
}

func u64(buf []byte) uint64 {
	// go compiler recognizes this pattern
	// and optimizes it on little endian platforms
	_ = buf[7] // BCE hint for compiler
	return uint64(buf[0]) |
		uint64(buf[1])<<8 |
		uint64(buf[2])<<16 |
		uint64(buf[3])<<24 |
		uint64(buf[4])<<32 |
		uint64(buf[5])<<40 |
		uint64(buf[6])<<48 |
		uint64(buf[7])<<56
}

func rol27(u uint64) uint64 { return u<<27 | u>>37 }
func rol31(u uint64) uint64 { return u<<31 | u>>33 }
