package ergomap

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/graph-guard/ergomap/pkg/xxhash"
	"github.com/zeebo/xxh3"
)

// Hasher hashes raw keys for the backing table.
//
// WARNING: a hasher with a fixed or predictable seed makes
// the table vulnerable to inputs crafted to collide. Collisions
// degrade performance, they never make distinct ids equal.
type Hasher interface{ Hash(Raw) uint64 }

// HasherXXH3 hashes keys with XXH3 from github.com/zeebo/xxh3.
type HasherXXH3 struct {
	Seed uint64
}

func (h HasherXXH3) Hash(k Raw) uint64 {
	return xxh3.HashSeed(k[:], h.Seed)
}

// HasherXXH64 hashes keys with XXH64.
type HasherXXH64 struct {
	Seed uint64
}

func (h HasherXXH64) Hash(k Raw) uint64 {
	return xxhash.Sum16(h.Seed, k)
}

// NewHasherXXH3 returns an XXH3 hasher with a random seed.
func NewHasherXXH3() HasherXXH3 { return HasherXXH3{Seed: randomSeed()} }

// NewHasherXXH64 returns an XXH64 hasher with a random seed.
func NewHasherXXH64() HasherXXH64 { return HasherXXH64{Seed: randomSeed()} }

func randomSeed() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Errorf("ergomap: reading random seed: %w", err))
	}
	return binary.LittleEndian.Uint64(b[:])
}
