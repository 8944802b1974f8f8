package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/input"
)

const (
	DefaultSize  = 50
	DefaultTheme = "classic"
	DefaultFPS   = 60

	minFPS = 1
	maxFPS = 120
)

var (
	ErrUnknownPreset   = errors.New("config: unknown preset")
	ErrInvalidMaxValue = errors.New("config: max_value must be positive")
)

// Config is the on-disk and environment configuration. A zero SpeedMs means
// "use the size-based default".
type Config struct {
	Size      int    `yaml:"size" env:"SIZE"`
	Seed      int64  `yaml:"seed" env:"SEED"`
	MaxValue  int    `yaml:"max_value" env:"MAX_VALUE"`
	SpeedMs   int    `yaml:"speed_ms" env:"SPEED_MS"`
	Theme     string `yaml:"theme" env:"THEME"`
	FPS       int    `yaml:"fps" env:"FPS"`
	AltScreen bool   `yaml:"alt_screen" env:"ALT_SCREEN"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:      DefaultSize,
		MaxValue:  input.DefaultMaxValue,
		Theme:     DefaultTheme,
		FPS:       DefaultFPS,
		AltScreen: true,
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto c. Keys absent from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overlays SORTVIZ_* environment variables onto c.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: "SORTVIZ_"}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ApplyPreset copies the preset's size and speed onto c.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	c.Size = p.Size
	c.SpeedMs = p.SpeedMs
	return nil
}

// Validate clamps out-of-range values so they never reach the recorder.
// Only an unusable max value is an error.
func (c *Config) Validate() error {
	if c.MaxValue <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxValue, c.MaxValue)
	}
	c.Size = input.ClampSize(c.Size)
	c.FPS = max(minFPS, min(maxFPS, c.FPS))
	if c.SpeedMs < 0 {
		c.SpeedMs = 0
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	return nil
}

// Speed returns the configured step interval, or 0 for the default.
func (c *Config) Speed() time.Duration {
	return time.Duration(c.SpeedMs) * time.Millisecond
}

// FrameInterval is the redraw period for the configured FPS.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(max(minFPS, c.FPS))
}
