package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "xoshiro128+", cfg.Defaults.Engine)
	require.NotNil(t, cfg.Defaults.Seed)
	assert.Equal(t, DefaultSeed, *cfg.Defaults.Seed)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
defaults {
  engine    = "xoroshiro256+"
  seed      = 99
  log_level = "debug"
}

dump {
  size   = "2GiB"
  codec  = "zstd"
  output = "xoroshiro256.bin"
}

stats {
  streams = 8
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "xoroshiro256+", cfg.Defaults.Engine)
	require.NotNil(t, cfg.Defaults.Seed)
	assert.Equal(t, uint64(99), *cfg.Defaults.Seed)
	assert.Equal(t, "debug", cfg.Defaults.LogLevel)
	assert.Equal(t, "2GiB", cfg.Dump.Size)
	assert.Equal(t, "zstd", cfg.Dump.Codec)
	assert.Equal(t, "xoroshiro256.bin", cfg.Dump.Output)
	assert.Equal(t, 8, cfg.Stats.Streams)
	assert.Equal(t, 1_000_000, cfg.Stats.Samples, "unset values get defaults")
	assert.Equal(t, 100, cfg.Stats.Buckets)
}

func TestLoadZeroSeed(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, `
defaults {
  seed = 0
}
`))
	require.NoError(t, err)
	require.NotNil(t, cfg.Defaults.Seed)
	assert.Equal(t, uint64(0), *cfg.Defaults.Seed)
}

func TestLoadInvalidSyntax(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, `defaults {`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `unknown_block {}`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown engine", func(c *Config) { c.Defaults.Engine = "mt19937" }},
		{"bad log level", func(c *Config) { c.Defaults.LogLevel = "loud" }},
		{"bad size", func(c *Config) { c.Dump.Size = "huge" }},
		{"bad codec", func(c *Config) { c.Dump.Codec = "brotli" }},
		{"tiny chunk", func(c *Config) { c.Dump.ChunkSize = 4 }},
		{"no samples", func(c *Config) { c.Stats.Samples = -1 }},
		{"no streams", func(c *Config) { c.Stats.Streams = -1 }},
		{"one bucket", func(c *Config) { c.Stats.Buckets = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
