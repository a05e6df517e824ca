// Package config reads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	ResizerDraw   = "draw"
	ResizerOpenCV = "opencv"
)

type Config struct {
	LogLevel string `env:"GALLERY_LOG_LEVEL" envDefault:"info"`
	JSONLogs bool   `env:"GALLERY_JSON_LOGS" envDefault:"false"`

	// Largest size an image is fitted into
	BoxWidth  int `env:"GALLERY_BOX_WIDTH" envDefault:"1200"`
	BoxHeight int `env:"GALLERY_BOX_HEIGHT" envDefault:"850"`

	WindowWidth  int `env:"GALLERY_WINDOW_WIDTH" envDefault:"1920"`
	WindowHeight int `env:"GALLERY_WINDOW_HEIGHT" envDefault:"1080"`

	Resizer      string `env:"GALLERY_RESIZER" envDefault:"draw"`
	CacheEntries int    `env:"GALLERY_CACHE_ENTRIES" envDefault:"16"`

	MetricsAddr string `env:"GALLERY_METRICS_ADDR"`
	StartDir    string `env:"GALLERY_START_DIR"`
}

// Load parses the environment and validates the result
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if c.BoxWidth <= 0 || c.BoxHeight <= 0 {
		errs = append(errs, fmt.Errorf("display box must be positive, got %dx%d", c.BoxWidth, c.BoxHeight))
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight))
	}
	if c.CacheEntries < 0 {
		errs = append(errs, fmt.Errorf("cache entries cannot be negative, got %d", c.CacheEntries))
	}
	switch c.Resizer {
	case ResizerDraw, ResizerOpenCV:
	default:
		errs = append(errs, fmt.Errorf("unknown resizer %q", c.Resizer))
	}

	return errors.Join(errs...)
}
