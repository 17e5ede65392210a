// Package ergomap provides a map that issues opaque, typed ids
// for stored values instead of accepting application keys.
//
// Values are inserted and an Id[T] is returned, which is the only
// way to refer to the value later. Ids can't be confused between
// maps of different value types, and an id that was never stored
// can't be produced by accident. Values implementing Builder may
// derive deterministic ids from their content for idempotent inserts.
//
// A Map is not safe for concurrent use. Callers sharing a map
// between goroutines must synchronize access themselves.
package ergomap

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/graph-guard/ergomap/pkg/container"
	"github.com/graph-guard/ergomap/pkg/container/gomap"
	"github.com/graph-guard/ergomap/pkg/container/hamap"
	plog "github.com/phuslu/log"
	"golang.org/x/exp/slices"
)

// Map stores values of type T under ids it issues.
type Map[T any] struct {
	table       container.Mapper[Raw, *T]
	counter     uint64
	sequential  bool
	rand        io.Reader
	maxAttempts int
	log         plog.Logger
	stats       Stats
}

// New creates an empty map.
func New[T any](opts ...Option) *Map[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	m := &Map[T]{
		sequential:  o.sequential,
		rand:        o.rand,
		maxAttempts: o.maxAttempts,
		log:         o.log,
	}
	if o.hasher != nil {
		m.table = hamap.New[Raw, *T](o.capacity, o.hasher)
	} else {
		m.table = gomap.New[Raw, *T](o.capacity)
	}
	return m
}

// Cap returns the number of values the map can hold without reallocating.
func (m *Map[T]) Cap() int { return m.table.Cap() }

// Len returns the number of stored values.
func (m *Map[T]) Len() int { return m.table.Len() }

// IsEmpty returns true if the map contains no values.
func (m *Map[T]) IsEmpty() bool { return m.table.Len() == 0 }

// Stats returns the operation counters.
func (m *Map[T]) Stats() Stats { return m.stats }

// Clear removes all values keeping the allocated memory for reuse.
// All ids issued before become stale. The sequential id counter
// is not reset, so cleared ids are never reissued.
func (m *Map[T]) Clear() {
	m.stats.Removed += uint64(m.table.Len())
	m.table.Reset()
}

// Insert stores value under a new id and returns the id.
// Random ids are version 4 UUIDs carrying 122 random bits,
// the remaining 6 bits are fixed by the version and variant.
func (m *Map[T]) Insert(value T) Id[T] {
	raw := m.mint()
	m.table.Set(raw, &value)
	m.stats.Inserted++
	return Id[T]{raw: raw}
}

// InsertAs stores value under the id derived from key.
// Returns false and leaves the map unchanged if the id is already in use.
// Only ok signals the rejection: the id returned along with false is
// the zero Id, which resolves to a stored value if one was inserted
// under an all-zero key such as KeyValue(0) or KeyString("").
func (m *Map[T]) InsertAs(key Key, value T) (Id[T], bool) {
	if key.random {
		return m.Insert(value), true
	}
	if _, ok := m.table.Get(key.raw); ok {
		m.stats.Rejected++
		return Id[T]{}, false
	}
	m.table.Set(key.raw, &value)
	m.stats.Inserted++
	return Id[T]{raw: key.raw}, true
}

// ForceInsertAs stores value under the id derived from key
// replacing any value stored under the same id.
// The replaced value is returned with replaced set to true.
// Pointers obtained from GetPtr keep referring to the replaced value.
func (m *Map[T]) ForceInsertAs(key Key, value T) (
	id Id[T],
	prev T,
	replaced bool,
) {
	if key.random {
		return m.Insert(value), prev, false
	}
	id = Id[T]{raw: key.raw}
	if p, ok := m.table.Get(key.raw); ok {
		prev, replaced = *p, true
		m.stats.Overwritten++
		m.log.Debug().Str("id", id.String()).Msg("entry overwritten")
	} else {
		m.stats.Inserted++
	}
	m.table.Set(key.raw, &value)
	return id, prev, replaced
}

// Remove removes the value stored under id and returns it.
// Returns false if id isn't stored in the map.
func (m *Map[T]) Remove(id Id[T]) (T, bool) {
	p, ok := m.table.Delete(id.raw)
	if !ok {
		var zero T
		return zero, false
	}
	m.stats.Removed++
	return *p, true
}

// Contains returns true if a value is stored under id.
func (m *Map[T]) Contains(id Id[T]) bool {
	_, ok := m.table.Get(id.raw)
	return ok
}

// Get returns a copy of the value stored under id.
// Returns false if id is stale or was issued by another map.
func (m *Map[T]) Get(id Id[T]) (T, bool) {
	p, ok := m.table.Get(id.raw)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// GetPtr returns a pointer to the value stored under id.
// Returns false if id is stale or was issued by another map.
// The pointer stays valid after removal but no longer refers to
// a value of the map.
func (m *Map[T]) GetPtr(id Id[T]) (*T, bool) {
	return m.table.Get(id.raw)
}

// MustGet is like Get but panics with *ErrorStale if id isn't stored.
// Only use it where id is known to be stored.
func (m *Map[T]) MustGet(id Id[T]) T {
	return *m.MustGetPtr(id)
}

// MustGetPtr is like GetPtr but panics with *ErrorStale if id isn't stored.
// Only use it where id is known to be stored.
func (m *Map[T]) MustGetPtr(id Id[T]) *T {
	p, ok := m.GetPtr(id)
	if !ok {
		panic(&ErrorStale{ID: id.String()})
	}
	return p
}

// Lookup returns the id derived from key if a value is stored under it.
// Random keys never resolve.
func (m *Map[T]) Lookup(key Key) (Id[T], bool) {
	if key.random {
		return Id[T]{}, false
	}
	if _, ok := m.table.Get(key.raw); !ok {
		return Id[T]{}, false
	}
	return Id[T]{raw: key.raw}, true
}

// ForAll calls fn once for every stored value in unspecified order.
// fn must not insert into or remove from the map.
func (m *Map[T]) ForAll(fn func(Id[T], T)) {
	m.table.Visit(func(k Raw, p *T) (stop bool) {
		fn(Id[T]{raw: k}, *p)
		return false
	})
}

// ForAllMut calls fn once for every stored value in unspecified order
// providing a pointer to the value.
// fn must not insert into or remove from the map.
func (m *Map[T]) ForAllMut(fn func(Id[T], *T)) {
	m.table.Visit(func(k Raw, p *T) (stop bool) {
		fn(Id[T]{raw: k}, p)
		return false
	})
}

// IDs returns the ids of all stored values ordered by their raw keys.
func (m *Map[T]) IDs() []Id[T] {
	ids := make([]Id[T], 0, m.table.Len())
	m.table.Visit(func(k Raw, _ *T) (stop bool) {
		ids = append(ids, Id[T]{raw: k})
		return false
	})
	slices.SortFunc(ids, func(a, b Id[T]) bool {
		return bytes.Compare(a.raw[:], b.raw[:]) < 0
	})
	return ids
}

// Values returns copies of all stored values in the order of IDs.
func (m *Map[T]) Values() []T {
	ids := m.IDs()
	values := make([]T, len(ids))
	for i := range ids {
		p, _ := m.table.Get(ids[i].raw)
		values[i] = *p
	}
	return values
}

func (m *Map[T]) String() string {
	return fmt.Sprintf(
		"ergomap(%s entries, capacity %s)",
		humanize.Comma(int64(m.table.Len())),
		humanize.Comma(int64(m.table.Cap())),
	)
}

// mint returns a raw key that isn't in use.
func (m *Map[T]) mint() Raw {
	if m.sequential {
		for {
			m.counter++
			k := KeyValue(m.counter)
			if _, ok := m.table.Get(k.raw); !ok {
				return k.raw
			}
		}
	}

	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		u, err := m.newUUID()
		if err != nil {
			panic(fmt.Errorf("ergomap: reading random id: %w", err))
		}
		if _, ok := m.table.Get(Raw(u)); !ok {
			return Raw(u)
		}
		m.stats.Collisions++
		m.log.Warn().
			Str("id", u.String()).
			Int("attempt", attempt).
			Msg("random id collision")
	}
	m.log.Error().
		Int("attempts", m.maxAttempts).
		Msg("random id attempts exhausted")
	panic(&ErrorExhausted{Attempts: m.maxAttempts})
}

func (m *Map[T]) newUUID() (uuid.UUID, error) {
	if m.rand != nil {
		return uuid.NewRandomFromReader(m.rand)
	}
	return uuid.NewRandom()
}
