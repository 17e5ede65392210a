package ergomap

import (
	"io"

	"github.com/graph-guard/ergomap/pkg/config"
	plog "github.com/phuslu/log"
)

// Option configures a Map during construction.
type Option func(*options)

type options struct {
	capacity    int
	hasher      Hasher
	sequential  bool
	rand        io.Reader
	maxAttempts int
	log         plog.Logger
}

func defaultOptions() options {
	return options{
		maxAttempts: config.DefaultMaxRandomAttempts,
		log: plog.Logger{
			Level:  plog.InfoLevel,
			Writer: &plog.IOWriter{Writer: io.Discard},
		},
	}
}

// WithCapacity preallocates the backing table for n entries.
// n is a hint, not a limit.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.capacity = n
	}
}

// WithHasher backs the map by a chained hash table using h
// instead of Go's native map. A nil h restores the native map.
//
// WARNING: Go's native map is seeded randomly and resistant to
// collision attacks. Using a hasher with a known seed can expose
// a denial-of-service attack vector.
func WithHasher(h Hasher) Option {
	return func(o *options) { o.hasher = h }
}

// WithSequentialIDs makes Insert mint ids from a counter local to the map
// instead of random keys. The counter starts at 1 and is encoded like KeyValue.
// Sequential ids are unique for the lifetime of the map but are reissued
// by new maps.
func WithSequentialIDs() Option {
	return func(o *options) { o.sequential = true }
}

// WithRandSource sets the source random keys are read from.
// By default crypto/rand is used.
func WithRandSource(r io.Reader) Option {
	return func(o *options) { o.rand = r }
}

// WithMaxRandomAttempts sets how many random keys are drawn
// before an insert gives up. n below 1 is treated as 1.
func WithMaxRandomAttempts(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.maxAttempts = n
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l plog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithConfig applies a configuration read by the config package.
// Hashers without a configured seed are seeded randomly.
func WithConfig(c *config.Config) Option {
	return func(o *options) {
		WithCapacity(c.Capacity)(o)
		o.sequential = c.IDs == config.IDsSequential
		if c.MaxRandomAttempts > 0 {
			o.maxAttempts = c.MaxRandomAttempts
		}
		switch c.Hash.Algorithm {
		case config.AlgorithmXXH3:
			h := NewHasherXXH3()
			if c.Hash.Seed != nil {
				h.Seed = *c.Hash.Seed
			}
			o.hasher = h
		case config.AlgorithmXXH64:
			h := NewHasherXXH64()
			if c.Hash.Seed != nil {
				h.Seed = *c.Hash.Seed
			}
			o.hasher = h
		default:
			o.hasher = nil
		}
	}
}
