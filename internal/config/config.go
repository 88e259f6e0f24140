// Package config handles configuration loading, validation, and hot
// reload for keybridge.
package config

import (
	"fmt"
	"time"

	"keybridge/internal/ime"
	"keybridge/internal/logging"
)

// Config holds the complete keybridge configuration.
type Config struct {
	// Repeat configures synthetic key repeat.
	Repeat RepeatConfig `toml:"repeat" json:"repeat" yaml:"repeat"`

	// IME configures composition enablement.
	IME IMEConfig `toml:"ime" json:"ime" yaml:"ime"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`

	// Trace configures the sqlite event recorder.
	Trace TraceConfig `toml:"trace" json:"trace" yaml:"trace"`
}

// RepeatConfig holds key repeat timing.
type RepeatConfig struct {
	// InitialDelayMs is the delay before the first repeat pulse.
	InitialDelayMs int `toml:"initial_delay_ms" json:"initial_delay_ms" yaml:"initial_delay_ms"`

	// IntervalMs is the interval between repeat pulses.
	IntervalMs int `toml:"interval_ms" json:"interval_ms" yaml:"interval_ms"`
}

// InitialDelay returns the initial delay as a duration.
func (r RepeatConfig) InitialDelay() time.Duration {
	return time.Duration(r.InitialDelayMs) * time.Millisecond
}

// Interval returns the pulse interval as a duration.
func (r RepeatConfig) Interval() time.Duration {
	return time.Duration(r.IntervalMs) * time.Millisecond
}

// IMEConfig holds IME enablement settings.
type IMEConfig struct {
	// Mode is "auto" (platform heuristic), "enabled", or "disabled".
	Mode string `toml:"mode" json:"mode" yaml:"mode"`

	// EngineFamily and EngineMinor identify the embedded engine build,
	// feeding the macOS composition heuristic.
	EngineFamily int `toml:"engine_family" json:"engine_family" yaml:"engine_family"`
	EngineMinor  int `toml:"engine_minor" json:"engine_minor" yaml:"engine_minor"`
}

// GateMode converts the configured mode string to an ime.Mode.
func (c IMEConfig) GateMode() (ime.Mode, error) {
	switch c.Mode {
	case "auto", "":
		return ime.ModeAuto, nil
	case "enabled":
		return ime.ModeEnabled, nil
	case "disabled":
		return ime.ModeDisabled, nil
	}
	return ime.ModeAuto, fmt.Errorf("unknown ime mode %q", c.Mode)
}

// EngineVersion returns the configured engine build version.
func (c IMEConfig) EngineVersion() ime.Version {
	return ime.Version{Family: c.EngineFamily, Minor: c.EngineMinor}
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level     string `toml:"level" json:"level" yaml:"level"`
	Format    string `toml:"format" json:"format" yaml:"format"`
	Output    string `toml:"output" json:"output" yaml:"output"`
	FilePath  string `toml:"file_path" json:"file_path" yaml:"file_path"`
	AddSource bool   `toml:"add_source" json:"add_source" yaml:"add_source"`
}

// LoggerConfig converts the section to a logging.Config.
func (c LoggingConfig) LoggerConfig() (*logging.Config, error) {
	level, err := logging.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}

	cfg := logging.DefaultConfig()
	cfg.Level = level
	cfg.Format = format
	if c.Output != "" {
		cfg.Output = c.Output
	}
	if c.FilePath != "" {
		cfg.FilePath = c.FilePath
	}
	cfg.AddSource = c.AddSource
	return cfg, nil
}

// TraceConfig holds event recorder settings.
type TraceConfig struct {
	// Enabled turns on sqlite event recording.
	Enabled bool `toml:"enabled" json:"enabled" yaml:"enabled"`

	// DBPath is the sqlite database path. Required when Enabled.
	DBPath string `toml:"db_path" json:"db_path" yaml:"db_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Repeat: RepeatConfig{
			InitialDelayMs: 500,
			IntervalMs:     100,
		},
		IME: IMEConfig{
			Mode:         "auto",
			EngineFamily: 5,
			EngineMinor:  0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Trace: TraceConfig{},
	}
}

// Validate checks field ranges and cross-field consistency, then runs the
// configuration through the embedded JSON schema.
func (c *Config) Validate() error {
	if c.Repeat.InitialDelayMs <= 0 {
		return fmt.Errorf("repeat.initial_delay_ms must be positive, got %d", c.Repeat.InitialDelayMs)
	}
	if c.Repeat.IntervalMs <= 0 {
		return fmt.Errorf("repeat.interval_ms must be positive, got %d", c.Repeat.IntervalMs)
	}
	if c.Repeat.IntervalMs > c.Repeat.InitialDelayMs {
		return fmt.Errorf("repeat.interval_ms (%d) must not exceed repeat.initial_delay_ms (%d)",
			c.Repeat.IntervalMs, c.Repeat.InitialDelayMs)
	}
	if _, err := c.IME.GateMode(); err != nil {
		return err
	}
	if c.IME.EngineFamily < 0 || c.IME.EngineMinor < 0 {
		return fmt.Errorf("ime engine version must not be negative")
	}
	if _, err := c.Logging.LoggerConfig(); err != nil {
		return err
	}
	if c.Trace.Enabled && c.Trace.DBPath == "" {
		return fmt.Errorf("trace.db_path is required when tracing is enabled")
	}
	return validateSchema(c)
}
