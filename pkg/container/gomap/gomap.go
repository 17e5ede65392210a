// Package gomap provides a container.Mapper implementation
// backed by Go's native map. The runtime seeds every map's hash
// function randomly which makes it resistant to collision attacks.
package gomap

type Gomap[K comparable, V any] struct {
	m map[K]V

	// capacity is the highest of the initial hint and the peak length.
	// Go maps never shrink, so this is a lower bound of the real capacity.
	capacity int
}

func New[K comparable, V any](capacity int) *Gomap[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Gomap[K, V]{
		m:        make(map[K]V, capacity),
		capacity: capacity,
	}
}

func (m *Gomap[K, V]) Set(key K, value V) {
	m.m[key] = value
	if len(m.m) > m.capacity {
		m.capacity = len(m.m)
	}
}

func (m *Gomap[K, V]) Delete(key K) (v V, ok bool) {
	if v, ok = m.m[key]; ok {
		delete(m.m, key)
	}
	return v, ok
}

func (m *Gomap[K, V]) Get(key K) (v V, ok bool) {
	v, ok = m.m[key]
	return v, ok
}

// Reset deletes all keys. The compiler turns the loop into
// a single map clear which keeps the buckets allocated.
func (m *Gomap[K, V]) Reset() {
	for k := range m.m {
		delete(m.m, k)
	}
}

func (m *Gomap[K, V]) Len() int {
	return len(m.m)
}

func (m *Gomap[K, V]) Cap() int {
	return m.capacity
}

func (m *Gomap[K, V]) Visit(fn func(K, V) (stop bool)) {
	for k, v := range m.m {
		if fn(k, v) {
			break
		}
	}
}
