// Package config loads runtime settings from MAZE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"

	"mazeescape/pkg/game/events"
	"mazeescape/pkg/game/mode"
)

// Renderer backends
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Limits accepted by Validate
const (
	MinTickRate = 1
	MaxTickRate = 120
	MinTileSize = 4
	MaxTileSize = 128
)

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid configuration")

// Config is the runtime configuration of the game
type Config struct {
	Mode           string `env:"MAZE_MODE"            envDefault:"classic"`
	Renderer       string `env:"MAZE_RENDERER"        envDefault:"tui"`
	RecordsPath    string `env:"MAZE_RECORDS_PATH"    envDefault:"best_time.txt"`
	Seed           int64  `env:"MAZE_SEED"` // 0 seeds from the current time
	TickRate       int    `env:"MAZE_TICK_RATE"       envDefault:"10"` // Simulation ticks per second
	LogLevel       string `env:"MAZE_LOG_LEVEL"       envDefault:"info"`
	LogFile        string `env:"MAZE_LOG_FILE"`
	Locale         string `env:"MAZE_LOCALE"          envDefault:"en_GB"`
	LocaleDir      string `env:"MAZE_LOCALE_DIR"      envDefault:"locales"`
	EventThreshold string `env:"MAZE_EVENT_THRESHOLD" envDefault:"redraw"`
	TileSize       int    `env:"MAZE_TILE_SIZE"       envDefault:"24"`
	DumpDir        string `env:"MAZE_DUMP_DIR"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment and validates the result
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	if _, err := c.ModeConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	switch c.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		return fmt.Errorf("%w: renderer %q (want %s or %s)", ErrInvalid, c.Renderer, RendererTUI, RendererEbiten)
	}

	if c.TickRate < MinTickRate || c.TickRate > MaxTickRate {
		return fmt.Errorf("%w: tick rate %d outside [%d, %d]", ErrInvalid, c.TickRate, MinTickRate, MaxTickRate)
	}

	if c.TileSize < MinTileSize || c.TileSize > MaxTileSize {
		return fmt.Errorf("%w: tile size %d outside [%d, %d]", ErrInvalid, c.TileSize, MinTileSize, MaxTileSize)
	}

	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if c.RecordsPath == "" {
		return fmt.Errorf("%w: empty records path", ErrInvalid)
	}

	return nil
}

// ModeConfig resolves the configured mode preset with the configured
// event threshold policy applied.
func (c Config) ModeConfig() (mode.Config, error) {
	m, err := mode.Lookup(c.Mode)
	if err != nil {
		return mode.Config{}, err
	}

	policy, err := events.ParseThresholdPolicy(c.EventThreshold)
	if err != nil {
		return mode.Config{}, err
	}
	m.Threshold = policy

	return m, nil
}

// Level returns the logrus level for LogLevel
func (c Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}

// TickInterval returns the time between simulation ticks
func (c Config) TickInterval() time.Duration {
	if c.TickRate < MinTickRate {
		return time.Second / MinTickRate
	}
	return time.Second / time.Duration(c.TickRate)
}
