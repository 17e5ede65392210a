package ergomap

// Stats counts the outcomes of map operations
// since the map was created.
type Stats struct {
	// Inserted is the number of values stored under a new id.
	Inserted uint64

	// Overwritten is the number of values replaced by forcing inserts.
	Overwritten uint64

	// Rejected is the number of non-forcing inserts
	// refused because the key was in use.
	Rejected uint64

	// Removed counts removed values including those dropped by Clear.
	Removed uint64

	// Collisions is the number of random keys drawn that were in use.
	Collisions uint64
}
