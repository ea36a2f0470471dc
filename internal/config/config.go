// Package config loads, validates and persists pagekit's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagekit/internal/logging"
)

// Defaults applied by New before any file or environment overrides.
const (
	CurrentVersion           = "1.0.0"
	DefaultItemsPerPage      = 20
	DefaultMaxDisplayedPages = 7
	DefaultOutputFormat      = "table"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = logging.FormatConsole
	configFileName           = "config.yaml"
	supportedVersions        = "^1.0.0"
	maxItemsPerPage          = 10000
	maxDisplayedPagesLimit   = 99
)

// Supported output formats for non-interactive commands.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Environment variables that override file configuration.
const (
	EnvHome              = "PAGEKIT_HOME"
	EnvLogLevel          = "PAGEKIT_LOG_LEVEL"
	EnvItemsPerPage      = "PAGEKIT_ITEMS_PER_PAGE"
	EnvMaxDisplayedPages = "PAGEKIT_MAX_DISPLAYED_PAGES"
	EnvOutputFormat      = "PAGEKIT_OUTPUT_FORMAT"
)

// Validation errors.
var (
	ErrInvalidVersion       = errors.New("unsupported config version")
	ErrInvalidItemsPerPage  = errors.New("pagination.items_per_page must be between 1 and 10000")
	ErrInvalidMaxDisplayed  = errors.New("pagination.max_displayed_pages must be between 1 and 99")
	ErrInvalidOutputFormat  = errors.New("output.default_format must be table, json or yaml")
	ErrInvalidLoggingFormat = errors.New("logging.format must be console or json")
)

// Config is the root of config.yaml.
type Config struct {
	Version    string           `json:"version"    yaml:"version"`
	Pagination PaginationConfig `json:"pagination" yaml:"pagination"`
	Output     OutputConfig     `json:"output"     yaml:"output"`
	Logging    LoggingConfig    `json:"logging"    yaml:"logging"`

	configPath string
}

// PaginationConfig holds the defaults for new pagination controls.
type PaginationConfig struct {
	ItemsPerPage      int  `json:"items_per_page"      yaml:"items_per_page"`
	MaxDisplayedPages int  `json:"max_displayed_pages" yaml:"max_displayed_pages"`
	FullMode          bool `json:"full_mode"           yaml:"full_mode"`
}

// OutputConfig controls non-interactive rendering.
type OutputConfig struct {
	DefaultFormat string `json:"default_format" yaml:"default_format"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `json:"level"          yaml:"level"`
	Format string `json:"format"         yaml:"format"`
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
}

// DefaultConfig returns a Config with built-in defaults and no path.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Pagination: PaginationConfig{
			ItemsPerPage:      DefaultItemsPerPage,
			MaxDisplayedPages: DefaultMaxDisplayedPages,
			FullMode:          true,
		},
		Output: OutputConfig{DefaultFormat: DefaultOutputFormat},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// New returns the effective configuration: defaults, then the config file in
// the config directory if present, then environment overrides. A malformed
// file is reported on stderr and ignored.
func New() *Config {
	cfg := DefaultConfig()

	dir, err := GetConfigDir()
	if err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
		if _, statErr := os.Stat(cfg.configPath); statErr == nil {
			if mergeErr := ShallowMergeYAML(cfg, cfg.configPath); mergeErr != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: ignoring config file: %v\n", mergeErr)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

// applyEnvOverrides applies PAGEKIT_* variables; unparsable numbers are ignored.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
	if v, err := strconv.Atoi(os.Getenv(EnvItemsPerPage)); err == nil {
		c.Pagination.ItemsPerPage = v
	}
	if v, err := strconv.Atoi(os.Getenv(EnvMaxDisplayedPages)); err == nil {
		c.Pagination.MaxDisplayedPages = v
	}
}

// ConfigPath returns the file this configuration is saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file this configuration is saved to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration to ConfigPath, creating its directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}

	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidVersion, c.Version, err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrInvalidVersion, v, supportedVersions)
	}

	if c.Pagination.ItemsPerPage < 1 || c.Pagination.ItemsPerPage > maxItemsPerPage {
		return fmt.Errorf("%w: got %d", ErrInvalidItemsPerPage, c.Pagination.ItemsPerPage)
	}
	if c.Pagination.MaxDisplayedPages < 1 || c.Pagination.MaxDisplayedPages > maxDisplayedPagesLimit {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxDisplayed, c.Pagination.MaxDisplayedPages)
	}

	switch c.Output.DefaultFormat {
	case OutputTable, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, c.Output.DefaultFormat)
	}

	switch c.Logging.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLoggingFormat, c.Logging.Format)
	}

	return nil
}
