// Package config loads fitrank's YAML configuration file.
//
// A config file overrides the built-in defaults section by section; keys it
// leaves out keep their default values:
//
//	scoring:
//	  weights:
//	    base: 5.0
//	    include_priority: 1.0
//	  intensity:
//	    high:
//	      high_systemic: -1.5
//	logging:
//	  level: debug
//	attribution:
//	  enabled: true
//	  database: fitrank.db
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/fitrank/internal/exercise"
	"github.com/roach88/fitrank/internal/scoring"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root configuration document.
type Config struct {
	Scoring     Scoring     `yaml:"scoring"`
	Logging     Logging     `yaml:"logging"`
	Attribution Attribution `yaml:"attribution"`
}

// Scoring configures the scorer.
type Scoring struct {
	Weights   scoring.Weights        `yaml:"weights"`
	Intensity scoring.IntensityTable `yaml:"intensity"`
}

// Logging configures the CLI logger.
type Logging struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// Attribution configures exclusion and breakdown recording.
type Attribution struct {
	Enabled bool `yaml:"enabled"`

	// Database is the SQLite file reports are written to. Empty keeps
	// reports in memory only.
	Database string `yaml:"database,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Scoring: Scoring{
			Weights:   scoring.DefaultWeights(),
			Intensity: scoring.DefaultIntensityTable(),
		},
		Logging: Logging{Level: "info"},
	}
}

// Load reads path and applies it over Default.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config bytes over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks weights, intensity table keys and the log level.
func (c *Config) Validate() error {
	if err := c.Scoring.Weights.Validate(); err != nil {
		return fmt.Errorf("%w: scoring.weights: %w", ErrInvalidConfig, err)
	}

	for in, row := range c.Scoring.Intensity {
		if !slices.Contains(scoring.Intensities, in) {
			return fmt.Errorf("%w: scoring.intensity: unknown intensity %q", ErrInvalidConfig, in)
		}
		for profile := range row {
			if !slices.Contains(exercise.FatigueProfiles, profile) {
				return fmt.Errorf("%w: scoring.intensity.%s: unknown fatigue profile %q",
					ErrInvalidConfig, in, profile)
			}
		}
	}

	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}
	return nil
}

// SlogLevel returns the configured log level. Call after Validate.
func (c *Config) SlogLevel() slog.Level {
	level, _ := ParseLevel(c.Logging.Level)
	return level
}

// ParseLevel maps a level name to a slog.Level. Empty means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown level %q", name)
	}
}
