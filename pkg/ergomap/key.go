package ergomap

import "encoding/binary"

// Key specifies how the raw key of a new Id is derived.
// Keys are consumed by the inserting methods of Map and not retained.
type Key struct {
	random bool
	raw    Raw
}

// Builder is implemented by values that derive their own key
// from their content, enabling idempotent inserts.
// See BuildInsert and ForceBuildInsert.
type Builder interface {
	BuildID() Key
}

// KeyRandom derives a random key that isn't in use at the moment of insertion.
// The key is a version 4 UUID carrying 122 random bits.
func KeyRandom() Key { return Key{random: true} }

// KeyValue derives the key from v encoded big-endian
// into the low 8 bytes of the raw key.
// Sequential ids use the same encoding, see WithSequentialIDs.
func KeyValue(v uint64) Key {
	var k Key
	binary.BigEndian.PutUint64(k.raw[RawSize-8:], v)
	return k
}

// KeyArray uses a as the raw key.
func KeyArray(a Raw) Key { return Key{raw: a} }

// KeyString uses the bytes of s as the raw key.
// s is truncated to RawSize bytes, shorter strings are padded with zeros.
// Consequently strings sharing the first RawSize bytes derive the same key,
// and so do strings that only differ by trailing zero bytes.
// Truncation may cut a multi-byte UTF-8 sequence.
func KeyString(s string) Key {
	var k Key
	copy(k.raw[:], s)
	return k
}

// IsRandom returns true for keys created by KeyRandom.
func (k Key) IsRandom() bool { return k.random }
