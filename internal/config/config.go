// Package config loads jsonscrub configuration from ~/.jsonscrub/config.yaml
// with environment variable overrides. A missing config file is not an
// error; defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rshade/jsonscrub/internal/logging"
)

// Environment variables recognized as overrides.
const (
	EnvLogLevel  = "JSONSCRUB_LOG_LEVEL"
	EnvLogFormat = "JSONSCRUB_LOG_FORMAT"
)

// Defaults applied when the config file or a section is absent.
const (
	DefaultSourceDir   = "./data"
	DefaultFileLimit   = 10
	DefaultStorageFile = "users.db"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
)

// Config is the root configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig configures the batch cleaner's input.
type SourceConfig struct {
	// Dir is the directory scanned for .json record files.
	Dir string `yaml:"dir"`
	// FileLimit bounds the number of files considered per processing pass.
	FileLimit int `yaml:"file_limit"`
}

// StorageConfig configures the user directory's storage handle.
type StorageConfig struct {
	// Path is the sqlite database file handed to the user directory.
	Path string `yaml:"path"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// ToLoggingConfig converts the YAML-facing section into the logging
// package's construction config.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		File:   lc.File,
	}
}

// ConfigDir returns the jsonscrub configuration directory, ~/.jsonscrub.
// Falls back to a relative .jsonscrub when the home directory cannot be
// resolved.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jsonscrub"
	}
	return filepath.Join(home, ".jsonscrub")
}

// New loads configuration from ~/.jsonscrub/config.yaml, applying defaults
// and environment overrides. Load errors degrade to defaults; use Load
// directly when errors must be surfaced.
func New() *Config {
	cfg, err := Load(filepath.Join(ConfigDir(), "config.yaml"))
	if err != nil {
		cfg = defaults()
		applyEnvOverrides(cfg)
	}
	return cfg
}

// Load reads configuration from path, applying defaults for absent fields
// and environment overrides on top. A missing file yields the defaults with
// no error; a present but unparseable file is an error.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, unmarshalErr)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// Validate checks the configuration for semantic correctness.
func (c *Config) Validate() error {
	if c.Source.FileLimit < 0 {
		return fmt.Errorf("source.file_limit must not be negative, got %d", c.Source.FileLimit)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Source: SourceConfig{
			Dir:       DefaultSourceDir,
			FileLimit: DefaultFileLimit,
		},
		Storage: StorageConfig{
			Path: filepath.Join(ConfigDir(), DefaultStorageFile),
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		cfg.Logging.Format = format
	}
}
