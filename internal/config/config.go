// Package config loads the YAML configuration of the lily command.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the lily command configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Console ConsoleConfig `yaml:"console"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// ConsoleConfig configures where program output goes.
type ConsoleConfig struct {
	Output string `yaml:"output"` // stdout, stderr or a file path
	Prefix string `yaml:"prefix"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Log:     LogConfig{Level: "warn"},
		Console: ConsoleConfig{Output: "stdout"},
	}
}

// Load reads the configuration at path. A missing file yields the defaults.
// Environment overrides are applied after the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults.
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LILY_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LILY_CONSOLE_OUTPUT"); v != "" {
		c.Console.Output = v
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	if strings.TrimSpace(c.Console.Output) == "" {
		return fmt.Errorf("console output must not be empty")
	}
	return nil
}

// Save writes the configuration as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Logger builds the zap logger described by the configuration. verbose
// forces debug level.
func (c *Config) Logger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// OpenOutput opens the console output destination. The returned closer
// must be called once output is complete; it does not close the standard streams.
func (c *Config) OpenOutput(stdout, stderr io.Writer) (io.Writer, func() error, error) {
	nop := func() error { return nil }
	switch c.Console.Output {
	case "stdout", "-":
		return stdout, nop, nil
	case "stderr":
		return stderr, nop, nil
	}
	f, err := os.OpenFile(c.Console.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open console output: %w", err)
	}
	return f, f.Close, nil
}
