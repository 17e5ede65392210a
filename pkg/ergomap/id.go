package ergomap

import "github.com/google/uuid"

// RawSize is the width of raw keys in bytes.
const RawSize = 16

// Raw is the fixed-width key underlying every Id.
type Raw [RawSize]byte

// Id is an opaque handle to a value of type T stored in a Map[T].
//
// Ids are comparable with == and usable as map keys. Two ids are
// equal if their raw keys are equal. T only exists at compile time
// and prevents an Id[A] from being passed where an Id[B] is expected.
//
// Ids are issued by the inserting methods of Map and by Lookup.
// The zero Id is never issued by Insert but may be derived from a Key.
type Id[T any] struct {
	raw Raw
}

// Raw returns a copy of the raw key.
func (id Id[T]) Raw() Raw { return id.raw }

// IsZero returns true for the zero Id.
// Insert never issues the zero Id, but KeyValue(0), KeyString("")
// and KeyArray(Raw{}) derive it, so a zero Id may refer to a stored value.
func (id Id[T]) IsZero() bool { return id.raw == Raw{} }

// String returns the raw key in the canonical UUID text form.
func (id Id[T]) String() string { return uuid.UUID(id.raw).String() }
