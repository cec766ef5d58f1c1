package game

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/samdwyer/shadowdelve/internal/entity"
	"github.com/samdwyer/shadowdelve/internal/world"
)

// envPrefix namespaces the environment variables read by LoadConfig.
const envPrefix = "SHADOWDELVE_"

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"SEED"`

	Width       int `env:"WIDTH"`
	Height      int `env:"HEIGHT"`
	MinRoom     int `env:"MIN_ROOM"`
	MaxRoom     int `env:"MAX_ROOM"`
	MaxAttempts int `env:"ATTEMPTS"`
	SightRadius int `env:"RADIUS"`

	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	// LogFile receives log output. Empty discards it, since the terminal
	// belongs to the game.
	LogFile string `env:"LOG_FILE"`
}

// DefaultConfig returns the standard settings.
func DefaultConfig() Config {
	p := world.DefaultParams()
	return Config{
		Width:       p.Width,
		Height:      p.Height,
		MinRoom:     p.MinRoom,
		MaxRoom:     p.MaxRoom,
		MaxAttempts: p.MaxAttempts,
		SightRadius: entity.DefaultSightRadius,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Params returns the generation parameters in c.
func (c Config) Params() world.Params {
	return world.Params{
		Width:       c.Width,
		Height:      c.Height,
		MinRoom:     c.MinRoom,
		MaxRoom:     c.MaxRoom,
		MaxAttempts: c.MaxAttempts,
	}
}

// Validate checks the generation parameters.
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig builds a Config from defaults, a .env file in the working
// directory, SHADOWDELVE_* environment variables and finally args, each
// overriding the last. A missing .env file is not an error.
func LoadConfig(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := DefaultConfig()
	if err := cfg.applyEnv(nil); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("shadowdelve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "dungeon seed (0 picks one)")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "dungeon width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "dungeon height")
	fs.IntVar(&cfg.MinRoom, "min-room", cfg.MinRoom, "smallest room side, walls included")
	fs.IntVar(&cfg.MaxRoom, "max-room", cfg.MaxRoom, "largest room side, walls included")
	fs.IntVar(&cfg.MaxAttempts, "attempts", cfg.MaxAttempts, "room placement attempts")
	fs.IntVar(&cfg.SightRadius, "radius", cfg.SightRadius, "observer sight radius")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	return cfg, cfg.Validate()
}

// applyEnv overrides fields from SHADOWDELVE_* variables in environ, or in
// the process environment when environ is nil. Unset and empty variables
// keep the current value.
func (c *Config) applyEnv(environ map[string]string) error {
	opts := env.Options{
		Prefix:      envPrefix,
		Environment: environ,
	}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	return nil
}
