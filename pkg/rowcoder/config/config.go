// Package config loads the rowcoder YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/models"
	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/output"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "rowcoder.yaml"

// Config holds all rowcoder configuration.
type Config struct {
	Session SessionConfig `yaml:"session"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// SessionConfig configures cursor placement and saving.
type SessionConfig struct {
	// Start on the first row with no label set instead of row 1.
	StartAtUncoded bool `yaml:"start_at_uncoded"`
	// Save pending checkbox edits before moving to another row.
	AutosaveOnNavigate bool `yaml:"autosave_on_navigate"`
}

// ExportConfig configures the exported file.
type ExportConfig struct {
	Format    string `yaml:"format"`     // xlsx, csv
	SheetName string `yaml:"sheet_name"` // Excel only
	Directory string `yaml:"directory"`  // empty: next to the input file
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Session: SessionConfig{
			AutosaveOnNavigate: true,
		},
		Export: ExportConfig{
			Format:    string(models.FormatXLSX),
			SheetName: output.DefaultSheetName,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file at DefaultPath is not
// an error; a missing file anywhere else is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	if _, err := models.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("export.format: %w", err)
	}
	if c.Export.SheetName == "" {
		return fmt.Errorf("export.sheet_name must not be empty")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: invalid level %q", c.Logging.Level)
	}
	return nil
}

// ExportFormat returns the configured export format.
func (c *Config) ExportFormat() models.Format {
	f, err := models.ParseFormat(c.Export.Format)
	if err != nil {
		return models.FormatXLSX
	}
	return f
}
