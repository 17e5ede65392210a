package ergomap

import "strconv"

// ErrorStale is the panic value of MustGet and MustGetPtr
// when the id isn't stored in the map.
type ErrorStale struct {
	ID string
}

func (e ErrorStale) Error() string {
	return "ergomap: stale or foreign id " + e.ID
}

// ErrorExhausted is the panic value of random inserts that failed to
// find an unused key within the configured number of attempts.
type ErrorExhausted struct {
	Attempts int
}

func (e ErrorExhausted) Error() string {
	return "ergomap: no unused random id found after " +
		strconv.Itoa(e.Attempts) + " attempts"
}
