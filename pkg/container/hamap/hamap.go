// Package hamap provides a collision-safe hashmap implementation
// which allows allocation-free reseting efficiently reusing memory.
// Allocations are made only in case of hash collisions and growth.
// The hasher is provided by the user during initialization
// which makes the hash function and its seed explicit.
//
// Buckets are kept in a power-of-two sized slice indexed by the
// low bits of the key hash. Keys sharing a bucket are chained.
// The slice doubles once the load factor exceeds 3/4, keeping
// lookups, inserts and deletes O(1) on average.
package hamap

import "fmt"

const minBuckets = 8

type bucket[K comparable, V any] struct {
	Used bool
	pair[K, V]
}

type pair[K comparable, V any] struct {
	KeyHash uint64
	Key     K
	Value   V
	Next    *pair[K, V]
}

// Hasher hashes keys to 64-bit values.
// Distinct keys may share a hash value, the map resolves such collisions.
type Hasher[K comparable] interface{ Hash(K) uint64 }

// Map is a chained hash table backed by a slice of buckets.
type Map[K comparable, V any] struct {
	size   int
	d      []bucket[K, V]
	hasher Hasher[K]
}

// New creates a new map instance preallocated for capacity pairs.
// Panics if hasher is nil.
func New[K comparable, V any](
	capacity int,
	hasher Hasher[K],
) *Map[K, V] {
	if hasher == nil {
		panic(fmt.Errorf("hamap: nil hasher"))
	}
	m := &Map[K, V]{hasher: hasher}
	if capacity > 0 {
		m.d = make([]bucket[K, V], bucketsFor(capacity))
	}
	return m
}

// bucketsFor returns the power of two number of buckets
// holding n pairs without exceeding the load factor.
func bucketsFor(n int) int {
	b := minBuckets
	for maxLoad(b) < n {
		b <<= 1
	}
	return b
}

func maxLoad(buckets int) int { return buckets - buckets>>2 }

// Reset resets the map keeping the allocated buckets.
func (m *Map[K, V]) Reset() {
	for i := range m.d {
		// Release references held by values and overflow pairs.
		m.d[i] = bucket[K, V]{}
	}
	m.size = 0
}

// Set associates key with value overwriting any existing associations.
func (m *Map[K, V]) Set(key K, value V) {
	hash := m.hasher.Hash(key)
	if p := m.find(hash, key); p != nil {
		p.Value = value
		return
	}
	if m.size+1 > maxLoad(len(m.d)) {
		m.grow()
	}
	m.link(pair[K, V]{KeyHash: hash, Key: key, Value: value})
	m.size++
}

// link appends p to the chain of its bucket without checking for duplicates.
func (m *Map[K, V]) link(p pair[K, V]) {
	p.Next = nil
	b := &m.d[p.KeyHash&uint64(len(m.d)-1)]
	if !b.Used {
		b.Used, b.pair = true, p
		return
	}
	last := &b.pair
	for last.Next != nil {
		last = last.Next
	}
	last.Next = &p
}

func (m *Map[K, V]) grow() {
	n := minBuckets
	if len(m.d) > 0 {
		n = len(m.d) << 1
	}
	old := m.d
	m.d = make([]bucket[K, V], n)
	for i := range old {
		if !old[i].Used {
			continue
		}
		for p := &old[i].pair; p != nil; {
			next := p.Next
			m.link(*p)
			p = next
		}
	}
}

func (m *Map[K, V]) find(hash uint64, key K) *pair[K, V] {
	if len(m.d) == 0 {
		return nil
	}
	b := &m.d[hash&uint64(len(m.d)-1)]
	if !b.Used {
		return nil
	}
	for p := &b.pair; p != nil; p = p.Next {
		if p.KeyHash == hash && p.Key == key {
			return p
		}
	}
	return nil
}

// Get returns (value, true) if key exists,
// otherwise returns (zeroValue, false).
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	if p := m.find(m.hasher.Hash(key), key); p != nil {
		return p.Value, true
	}
	return value, false
}

// Delete deletes the key if it exists and returns its value.
// Noop if the key doesn't exist.
func (m *Map[K, V]) Delete(key K) (value V, ok bool) {
	if len(m.d) == 0 {
		return value, false
	}
	hash := m.hasher.Hash(key)
	b := &m.d[hash&uint64(len(m.d)-1)]
	if !b.Used {
		return value, false
	}

	var prev *pair[K, V]
	for p := &b.pair; p != nil; prev, p = p, p.Next {
		if p.KeyHash != hash || p.Key != key {
			continue
		}
		value = p.Value
		switch {
		case prev != nil:
			prev.Next = p.Next
		case p.Next != nil:
			// Head of the chain, promote the next pair
			b.pair = *p.Next
		default:
			*b = bucket[K, V]{}
		}
		m.size--
		return value, true
	}
	return value, false
}

// Len returns the number of stored key-value pairs.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Cap returns the number of pairs the map holds before growing.
func (m *Map[K, V]) Cap() int {
	if len(m.d) == 0 {
		return 0
	}
	return maxLoad(len(m.d))
}

// Visit calls fn for every stored key-value pair.
// Returns immediately if fn returns true.
func (m *Map[K, V]) Visit(fn func(key K, value V) (stop bool)) {
	for i := range m.d {
		if !m.d[i].Used {
			continue
		}
		for p := &m.d[i].pair; p != nil; p = p.Next {
			if fn(p.Key, p.Value) {
				return
			}
		}
	}
}
