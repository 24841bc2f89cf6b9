// Package config loads scrim's tuning configuration from YAML. All fields
// default to sane values; an absent file is not an error.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/emberforge/scrim/pkg/bus"
	"github.com/emberforge/scrim/pkg/surface"
)

// Default configuration values exported for documentation and validation.
const (
	DefaultPoolCap            = 8
	DefaultFocusHistoryDepth  = 16
	DefaultLogLevel           = "info"
	DefaultTelemetryNamespace = "scrim"
)

// Config is the complete scrim configuration.
type Config struct {
	Pool      PoolConfig      `yaml:"pool"`
	Focus     FocusConfig     `yaml:"focus"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// PoolConfig bounds the surface reuse pool.
type PoolConfig struct {
	// DefaultCap applies to variants absent from Caps.
	DefaultCap int `yaml:"default_cap"`
	// Caps maps variant names ("menu", "dialog", ...) to free-list bounds.
	Caps map[string]int `yaml:"caps"`
}

// FocusConfig tunes focus restore behavior.
type FocusConfig struct {
	HistoryDepth int `yaml:"history_depth"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// TelemetryConfig controls the statistics exporter.
type TelemetryConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
	// Listen is the optional metrics HTTP address, e.g. "127.0.0.1:9190".
	Listen string `yaml:"listen"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Pool: PoolConfig{
			DefaultCap: DefaultPoolCap,
		},
		Focus: FocusConfig{
			HistoryDepth: DefaultFocusHistoryDepth,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Telemetry: TelemetryConfig{
			Namespace: DefaultTelemetryNamespace,
		},
	}
}

// Load reads the config at path over the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks bounds and variant names.
func (c *Config) Validate() error {
	if c.Pool.DefaultCap < 0 {
		return fmt.Errorf("pool.default_cap must not be negative: %d", c.Pool.DefaultCap)
	}
	for name, cap := range c.Pool.Caps {
		if _, err := surface.ParseVariant(name); err != nil {
			return fmt.Errorf("pool.caps: %w", err)
		}
		if cap < 0 {
			return fmt.Errorf("pool.caps.%s must not be negative: %d", name, cap)
		}
	}
	if c.Focus.HistoryDepth < 0 {
		return fmt.Errorf("focus.history_depth must not be negative: %d", c.Focus.HistoryDepth)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Telemetry.Enabled && c.Telemetry.Namespace == "" {
		return fmt.Errorf("telemetry.namespace must be set when telemetry is enabled")
	}
	return nil
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	lvl, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// ManagerOptions assembles surface.Options from the config.
func (c *Config) ManagerOptions(logger *slog.Logger, b *bus.Bus) (surface.Options, error) {
	caps := make(map[surface.Variant]int, len(c.Pool.Caps))
	for name, cap := range c.Pool.Caps {
		v, err := surface.ParseVariant(name)
		if err != nil {
			return surface.Options{}, fmt.Errorf("pool.caps: %w", err)
		}
		caps[v] = cap
	}
	return surface.Options{
		Logger:            logger,
		Bus:               b,
		FocusHistoryDepth: c.Focus.HistoryDepth,
		PoolCaps:          caps,
		DefaultPoolCap:    c.Pool.DefaultCap,
	}, nil
}

func parseLevel(level string) (slog.Level, error) {
	switch level {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}
