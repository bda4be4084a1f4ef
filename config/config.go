package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig is returned for settings that parse but make no sense
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the runtime settings. Everything comes from the environment.
type Config struct {
	// Level file; empty plays the built-in level
	LevelPath string `env:"DICEWALK_LEVEL"`
	// Extra die templates, loaded on top of the built-in ones
	TemplatesDir string `env:"DICEWALK_TEMPLATES"`

	LogLevel    string `env:"DICEWALK_LOG_LEVEL" envDefault:"info"`
	LogEncoding string `env:"DICEWALK_LOG_ENCODING" envDefault:"console"`

	Fullscreen bool `env:"DICEWALK_FULLSCREEN"`
	// Rebuild the board when the level or template files change
	Watch bool `env:"DICEWALK_WATCH"`
	// Overrides the level seed when non-zero
	Seed int64 `env:"DICEWALK_SEED"`

	// Sound effect volume in [0, 1]; 0 mutes
	Volume float64 `env:"DICEWALK_VOLUME" envDefault:"0.5"`

	WindowWidth  int `env:"DICEWALK_WINDOW_WIDTH" envDefault:"800"`
	WindowHeight int `env:"DICEWALK_WINDOW_HEIGHT" envDefault:"600"`
}

// Load reads the configuration from the process environment
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from the given variables only
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume %v is outside [0, 1]", ErrInvalidConfig, c.Volume)
	}
	if c.Watch && c.LevelPath == "" && c.TemplatesDir == "" {
		return fmt.Errorf("%w: DICEWALK_WATCH needs DICEWALK_LEVEL or DICEWALK_TEMPLATES", ErrInvalidConfig)
	}
	return nil
}

// WatchPaths lists the files and directories hot reload follows
func (c Config) WatchPaths() []string {
	var paths []string
	if c.LevelPath != "" {
		paths = append(paths, c.LevelPath)
	}
	if c.TemplatesDir != "" {
		paths = append(paths, c.TemplatesDir)
	}
	return paths
}
