// Package config reads the construction parameters of an ergomap
// from YAML documents.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

const DefaultMaxRandomAttempts = 16

// IDs selects how handles are minted by plain inserts.
type IDs string

const (
	IDsRandom     IDs = "random"
	IDsSequential IDs = "sequential"
)

// Algorithm selects the hash function of the backing table.
type Algorithm string

const (
	// AlgorithmNative uses Go's map with its per-map random seed.
	AlgorithmNative Algorithm = "native"
	AlgorithmXXH3   Algorithm = "xxh3"
	AlgorithmXXH64  Algorithm = "xxh64"
)

type Config struct {
	Capacity          int
	IDs               IDs
	MaxRandomAttempts int
	Hash              Hash
}

type Hash struct {
	Algorithm Algorithm

	// Seed is nil when the seed is to be drawn randomly.
	Seed *uint64
}

// Default returns the configuration used when none is provided.
func Default() *Config {
	return &Config{
		IDs:               IDsRandom,
		MaxRandomAttempts: DefaultMaxRandomAttempts,
		Hash:              Hash{Algorithm: AlgorithmNative},
	}
}

type config struct {
	Capacity          *int        `yaml:"capacity"`
	IDs               *string     `yaml:"ids"`
	MaxRandomAttempts *int        `yaml:"max-random-attempts"`
	Hash              *hashConfig `yaml:"hash"`
}

type hashConfig struct {
	Algorithm *string `yaml:"algorithm"`
	Seed      *uint64 `yaml:"seed"`
}

// ReadFile reads the configuration file at path from filesystem.
func ReadFile(filesystem fs.FS, path string) (*Config, error) {
	f, err := filesystem.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ErrorMissing{FilePath: path}
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	defer f.Close()
	return Read(f, path)
}

// Read decodes and validates a configuration document.
// path is only used for error reporting.
// Omitted options are set to the values of Default.
func Read(r io.Reader, path string) (*Config, error) {
	var c config
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty document
			return Default(), nil
		}
		return nil, &ErrorIllegal{
			FilePath: path,
			Feature:  "config",
			Message:  err.Error(),
		}
	}

	conf := Default()
	if c.Capacity != nil {
		if *c.Capacity < 0 {
			return nil, &ErrorIllegal{
				FilePath: path,
				Feature:  "capacity",
				Message:  "must not be negative",
			}
		}
		conf.Capacity = *c.Capacity
	}

	if c.IDs != nil {
		switch v := IDs(*c.IDs); v {
		case IDsRandom, IDsSequential:
			conf.IDs = v
		default:
			return nil, &ErrorIllegal{
				FilePath: path,
				Feature:  "ids",
				Message: fmt.Sprintf(
					"unsupported value %q, expected one of: %s, %s",
					*c.IDs, IDsRandom, IDsSequential,
				),
			}
		}
	}

	if c.MaxRandomAttempts != nil {
		if *c.MaxRandomAttempts < 1 {
			return nil, &ErrorIllegal{
				FilePath: path,
				Feature:  "max-random-attempts",
				Message:  "must be at least 1",
			}
		}
		conf.MaxRandomAttempts = *c.MaxRandomAttempts
	}

	if c.Hash != nil {
		if c.Hash.Algorithm == nil {
			return nil, &ErrorMissing{
				FilePath: path,
				Feature:  "hash.algorithm",
			}
		}
		switch a := Algorithm(*c.Hash.Algorithm); a {
		case AlgorithmNative:
			if c.Hash.Seed != nil {
				return nil, &ErrorIllegal{
					FilePath: path,
					Feature:  "hash.seed",
					Message:  "the native algorithm can't be seeded",
				}
			}
			conf.Hash.Algorithm = a
		case AlgorithmXXH3, AlgorithmXXH64:
			conf.Hash = Hash{Algorithm: a, Seed: c.Hash.Seed}
		default:
			return nil, &ErrorIllegal{
				FilePath: path,
				Feature:  "hash.algorithm",
				Message: fmt.Sprintf(
					"unsupported value %q, expected one of: %s, %s, %s",
					*c.Hash.Algorithm,
					AlgorithmNative, AlgorithmXXH3, AlgorithmXXH64,
				),
			}
		}
	}

	return conf, nil
}

type ErrorMissing struct {
	FilePath string
	Feature  string
}

func (e ErrorMissing) Error() string {
	var b strings.Builder
	if e.Feature == "" {
		b.Grow(len("missing ") + len(e.FilePath))
		b.WriteString("missing ")
		b.WriteString(e.FilePath)
		return b.String()
	}
	b.Grow(len("missing ") + len(e.Feature) + len(" in ") + len(e.FilePath))
	b.WriteString("missing ")
	b.WriteString(e.Feature)
	b.WriteString(" in ")
	b.WriteString(e.FilePath)
	return b.String()
}

type ErrorIllegal struct {
	FilePath string
	Feature  string
	Message  string
}

func (e ErrorIllegal) Error() string {
	var b strings.Builder
	b.Grow(len("illegal ") +
		len(e.Feature) +
		len(" in ") +
		len(e.FilePath) +
		len(": ") +
		len(e.Message))
	b.WriteString("illegal ")
	b.WriteString(e.Feature)
	b.WriteString(" in ")
	b.WriteString(e.FilePath)
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}
