package ergomap

// ForOne calls fn with the value stored under id and returns its result.
// Returns false without calling fn if id isn't stored.
func ForOne[T, R any](m *Map[T], id Id[T], fn func(T) R) (r R, ok bool) {
	p, ok := m.table.Get(id.raw)
	if !ok {
		return r, false
	}
	return fn(*p), true
}

// ForOneMut calls fn with a pointer to the value stored under id
// and returns its result.
// Returns false without calling fn if id isn't stored.
func ForOneMut[T, R any](m *Map[T], id Id[T], fn func(*T) R) (r R, ok bool) {
	p, ok := m.table.Get(id.raw)
	if !ok {
		return r, false
	}
	return fn(p), true
}

// BuildInsert is InsertAs using the key value derives from its content.
func BuildInsert[T Builder](m *Map[T], value T) (Id[T], bool) {
	return m.InsertAs(value.BuildID(), value)
}

// ForceBuildInsert is ForceInsertAs using the key value derives
// from its content.
func ForceBuildInsert[T Builder](m *Map[T], value T) (
	id Id[T],
	prev T,
	replaced bool,
) {
	return m.ForceInsertAs(value.BuildID(), value)
}

// BuildLookup returns the id value derives from its content
// if a value is stored under it.
func BuildLookup[T Builder](m *Map[T], value T) (Id[T], bool) {
	return m.Lookup(value.BuildID())
}
