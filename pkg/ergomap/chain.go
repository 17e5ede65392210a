//go:build chainable

package ergomap

// With inserts value and returns the map. The id is discarded,
// use Lookup or ForAll to find the value again.
func (m *Map[T]) With(value T) *Map[T] {
	m.Insert(value)
	return m
}

// Without removes the value stored under id and returns the map.
func (m *Map[T]) Without(id Id[T]) *Map[T] {
	m.Remove(id)
	return m
}

// Cleared clears the map and returns it.
func (m *Map[T]) Cleared() *Map[T] {
	m.Clear()
	return m
}
