package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth      = 10
	DefaultHeight     = 10
	DefaultGlyph      = "X"
	DefaultIntervalMS = 500
	DefaultEmpty      = "."
	DefaultMark       = "#"
	DefaultMessage    = "place your pieces"
)

// Config describes a demo board: its dimensions, the cursor glyph and
// blink interval, and the two cell values the placement callback
// toggles between.
type Config struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Glyph      string `yaml:"glyph"`
	IntervalMS int    `yaml:"interval_ms"`
	Empty      string `yaml:"empty"`
	Mark       string `yaml:"mark"`
	Message    string `yaml:"message"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Glyph:      DefaultGlyph,
		IntervalMS: DefaultIntervalMS,
		Empty:      DefaultEmpty,
		Mark:       DefaultMark,
		Message:    DefaultMessage,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}
