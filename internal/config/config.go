// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Environment variables read by FromEnv
const (
	ProfileEnvVar     = "QUARTO_PROFILE"
	DatabaseURLEnvVar = "DATABASE_URL"
)

// Built-in defaults
const (
	DefaultDataDir = "_data"
	DefaultProfile = "default"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values come from flags, the environment, or defaults.
type Config struct {
	// DataDir holds the master YAML files
	DataDir     string `json:"data_dir,omitempty" validate:"required"`
	// OutputDir receives the tmp_*.yml files; defaults to DataDir
	OutputDir   string `json:"output_dir,omitempty"`
	// Profile selects the filter configuration; unknown names fall back to default
	Profile     string `json:"profile,omitempty"`
	// DatabaseURL enables run persistence in PostgreSQL
	DatabaseURL string `json:"database_url,omitempty"`

	// Behavior
	Verbose        bool `json:"verbose,omitempty"`
	SkipValidation bool `json:"skip_validation,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables
func FromEnv() Config {
	return Config{
		Profile:     os.Getenv(ProfileEnvVar),
		DatabaseURL: os.Getenv(DatabaseURLEnvVar),
	}
}

// Defaults returns the built-in defaults
func Defaults() Config {
	return Config{
		DataDir: DefaultDataDir,
		Profile: DefaultProfile,
	}
}

// Validate checks that the merged configuration is usable
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	info, err := os.Stat(c.DataDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("config error: data directory not found: %s", c.DataDir)
	}
	if err != nil {
		return fmt.Errorf("config error: failed to stat data directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("config error: data_dir is not a directory: %s", c.DataDir)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// It is applied in layers: flags over config file over environment over built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ResolvedOutputDir returns OutputDir, or DataDir when no output directory is set
func (c *Config) ResolvedOutputDir() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return c.DataDir
}
