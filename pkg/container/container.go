// Package container defines the backing table contract
// shared by the hash table implementations in its subpackages.
package container

// Mapper is a mutable key-value table.
// Implementations are not safe for concurrent use.
type Mapper[K comparable, V any] interface {
	// Set associates key with value overwriting any existing association.
	Set(K, V)

	// Get returns (value, true) if key exists,
	// otherwise returns (zeroValue, false).
	Get(K) (v V, ok bool)

	// Delete removes key and returns the value that was associated with it.
	// Returns (zeroValue, false) if key doesn't exist.
	Delete(K) (v V, ok bool)

	// Reset removes all keys but keeps allocated memory for reuse.
	Reset()

	// Len returns the number of stored key-value pairs.
	Len() int

	// Cap returns the number of pairs the table can hold without reallocating.
	Cap() int

	// Visit calls fn for every stored key-value pair.
	// Returns immediately if fn returns true.
	// fn must not add or delete keys.
	Visit(fn func(K, V) (stop bool))
}
