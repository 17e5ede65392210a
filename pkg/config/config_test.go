package config_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/graph-guard/ergomap/pkg/config"
	"github.com/stretchr/testify/require"
)

const ConfigFileName = "ergomap.yml"

func TestReadFile(t *testing.T) {
	fs := fstest.MapFS{
		ConfigFileName: &fstest.MapFile{Data: []byte(lines(
			`capacity: 64`,
			`ids: sequential`,
			`max-random-attempts: 4`,
			`hash:`,
			`  algorithm: xxh3`,
			`  seed: 42`,
		))},
	}
	c, err := config.ReadFile(fs, ConfigFileName)
	require.NoError(t, err)
	seed := uint64(42)
	require.Equal(t, &config.Config{
		Capacity:          64,
		IDs:               config.IDsSequential,
		MaxRandomAttempts: 4,
		Hash: config.Hash{
			Algorithm: config.AlgorithmXXH3,
			Seed:      &seed,
		},
	}, c)
}

func TestReadEmpty(t *testing.T) {
	c, err := config.Read(strings.NewReader(""), ConfigFileName)
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)
}

func TestReadUnseeded(t *testing.T) {
	c, err := config.Read(strings.NewReader(lines(
		`hash:`,
		`  algorithm: xxh64`,
	)), ConfigFileName)
	require.NoError(t, err)
	require.Equal(t, config.AlgorithmXXH64, c.Hash.Algorithm)
	require.Nil(t, c.Hash.Seed)
	require.Equal(t, config.IDsRandom, c.IDs)
	require.Equal(t, config.DefaultMaxRandomAttempts, c.MaxRandomAttempts)
}

func TestErrMissingFile(t *testing.T) {
	c, err := config.ReadFile(fstest.MapFS{}, ConfigFileName)
	require.Equal(t, &config.ErrorMissing{FilePath: ConfigFileName}, err)
	require.Equal(t, "missing "+ConfigFileName, err.Error())
	require.Nil(t, c)
}

func TestErrMissingAlgorithm(t *testing.T) {
	c, err := config.Read(strings.NewReader(lines(
		`hash:`,
		`  seed: 1`,
	)), ConfigFileName)
	require.Equal(t, &config.ErrorMissing{
		FilePath: ConfigFileName,
		Feature:  "hash.algorithm",
	}, err)
	require.Equal(t, "missing hash.algorithm in "+ConfigFileName, err.Error())
	require.Nil(t, c)
}

func TestErrIllegal(t *testing.T) {
	for _, td := range []struct {
		name    string
		input   string
		feature string
		message string
	}{
		{
			name:    "negative capacity",
			input:   `capacity: -1`,
			feature: "capacity",
			message: "must not be negative",
		},
		{
			name:    "unknown ids",
			input:   `ids: uuid`,
			feature: "ids",
			message: `unsupported value "uuid", expected one of: random, sequential`,
		},
		{
			name:    "zero attempts",
			input:   `max-random-attempts: 0`,
			feature: "max-random-attempts",
			message: "must be at least 1",
		},
		{
			name: "unknown algorithm",
			input: lines(
				`hash:`,
				`  algorithm: md5`,
			),
			feature: "hash.algorithm",
			message: `unsupported value "md5", ` +
				`expected one of: native, xxh3, xxh64`,
		},
		{
			name: "seeded native",
			input: lines(
				`hash:`,
				`  algorithm: native`,
				`  seed: 1`,
			),
			feature: "hash.seed",
			message: "the native algorithm can't be seeded",
		},
	} {
		t.Run(td.name, func(t *testing.T) {
			c, err := config.Read(strings.NewReader(td.input), ConfigFileName)
			require.Equal(t, &config.ErrorIllegal{
				FilePath: ConfigFileName,
				Feature:  td.feature,
				Message:  td.message,
			}, err)
			require.Nil(t, c)
		})
	}
}

func TestErrUnknownField(t *testing.T) {
	c, err := config.Read(strings.NewReader(`shards: 4`), ConfigFileName)
	require.Error(t, err)
	require.IsType(t, &config.ErrorIllegal{}, err)
	require.Equal(t, "config", err.(*config.ErrorIllegal).Feature)
	require.Nil(t, c)
}

func lines(l ...string) string { return strings.Join(l, "\n") + "\n" }
