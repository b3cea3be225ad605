package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"github.com/lox/prng/cmd/prng/shared"
	"github.com/lox/prng/internal/config"
	"github.com/lox/prng/internal/entropy"
	"github.com/lox/prng/internal/registry"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
)

// Globals are flags shared by every command.
type Globals struct {
	Config    string `kong:"default='prng.hcl',type='path',help='Configuration file (ignored if missing)'"`
	Debug     bool   `kong:"help='Enable debug logging'"`
	LogFormat string `kong:"default='console',enum='console,json',help='Log format (console|json)'"`
	Plain     bool   `kong:"help='Disable colours and styling'"`
}

// setup loads the configuration and builds the logger.
func (g *Globals) setup() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("%s: %w", g.Config, err)
	}

	level, err := shared.ParseLevel(cfg.Defaults.LogLevel)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if g.Debug {
		level = zerolog.DebugLevel
	}

	if g.Plain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	var logger zerolog.Logger
	if g.LogFormat == "json" {
		logger = shared.SetupStructuredLogger(level)
	} else {
		logger = shared.SetupLogger(level, g.Plain)
	}
	return cfg, logger, nil
}

// EngineFlags select and seed an engine. Unset flags fall back to the
// configuration file.
type EngineFlags struct {
	Engine  string  `kong:"short='e',help='Engine name (see list)'"`
	Seed    *uint64 `kong:"short='s',help='Seed value'"`
	Entropy bool    `kong:"help='Seed from system entropy instead of a fixed seed'"`
}

func (f *EngineFlags) name(cfg *config.Config) string {
	if f.Engine != "" {
		return f.Engine
	}
	return cfg.Defaults.Engine
}

func (f *EngineFlags) seed(cfg *config.Config) uint64 {
	switch {
	case f.Seed != nil:
		return *f.Seed
	case f.Entropy || cfg.Defaults.Entropy:
		return entropy.New(quartz.NewReal()).Seed64()
	default:
		return *cfg.Defaults.Seed
	}
}

// open returns the selected engine and the seed it was given.
func (f *EngineFlags) open(cfg *config.Config, logger zerolog.Logger) (registry.Engine, uint64, error) {
	name := f.name(cfg)
	seed := f.seed(cfg)
	e, err := registry.New(name, seed)
	if err != nil {
		return nil, 0, err
	}
	logger.Debug().Str("engine", name).Uint64("seed", seed).Msg("Engine ready")
	return e, seed, nil
}
