// Package config loads the optional prng.hcl configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/prng/internal/dump"
	"github.com/lox/prng/internal/registry"
)

// DefaultFile is the configuration file looked up when none is given.
const DefaultFile = "prng.hcl"

// DefaultSeed is used when neither the file nor the flags name a seed.
const DefaultSeed uint64 = 0x1234

// Config represents the complete configuration
type Config struct {
	Defaults *Defaults    `hcl:"defaults,block"`
	Dump     *DumpConfig  `hcl:"dump,block"`
	Stats    *StatsConfig `hcl:"stats,block"`
}

// Defaults apply to every command
type Defaults struct {
	Engine   string  `hcl:"engine,optional"`
	Seed     *uint64 `hcl:"seed,optional"` // nil until set; 0 is a valid seed
	Entropy  bool    `hcl:"entropy,optional"`
	LogLevel string  `hcl:"log_level,optional"`
}

// DumpConfig configures the dump command
type DumpConfig struct {
	Size      string `hcl:"size,optional"`
	Codec     string `hcl:"codec,optional"`
	Output    string `hcl:"output,optional"`
	ChunkSize int    `hcl:"chunk_size,optional"`
}

// StatsConfig configures the stats command
type StatsConfig struct {
	Samples int `hcl:"samples,optional"`
	Streams int `hcl:"streams,optional"`
	Buckets int `hcl:"buckets,optional"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Defaults == nil {
		c.Defaults = &Defaults{}
	}
	if c.Dump == nil {
		c.Dump = &DumpConfig{}
	}
	if c.Stats == nil {
		c.Stats = &StatsConfig{}
	}

	if c.Defaults.Engine == "" {
		c.Defaults.Engine = "xoshiro128+"
	}
	if c.Defaults.Seed == nil {
		seed := DefaultSeed
		c.Defaults.Seed = &seed
	}
	if c.Defaults.LogLevel == "" {
		c.Defaults.LogLevel = "info"
	}

	if c.Dump.Size == "" {
		c.Dump.Size = "64MiB"
	}
	if c.Dump.Codec == "" {
		c.Dump.Codec = string(dump.CodecNone)
	}
	if c.Dump.ChunkSize == 0 {
		c.Dump.ChunkSize = dump.DefaultChunkSize
	}

	if c.Stats.Samples == 0 {
		c.Stats.Samples = 1_000_000
	}
	if c.Stats.Streams == 0 {
		c.Stats.Streams = 4
	}
	if c.Stats.Buckets == 0 {
		c.Stats.Buckets = 100
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := registry.Lookup(c.Defaults.Engine); err != nil {
		return err
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Defaults.LogLevel] {
		return fmt.Errorf("invalid log level %q", c.Defaults.LogLevel)
	}

	if _, err := dump.ParseSize(c.Dump.Size); err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	if _, err := dump.ParseCodec(c.Dump.Codec); err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	if c.Dump.ChunkSize < 8 {
		return fmt.Errorf("dump: chunk size must be at least 8, got %d", c.Dump.ChunkSize)
	}

	if c.Stats.Samples < 1 {
		return fmt.Errorf("stats: samples must be positive")
	}
	if c.Stats.Streams < 1 {
		return fmt.Errorf("stats: streams must be positive")
	}
	if c.Stats.Buckets < 2 {
		return fmt.Errorf("stats: need at least 2 buckets")
	}

	return nil
}
