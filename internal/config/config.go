// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Profiles string `json:"profiles,omitempty"` // Path to a JSON file with the profile pool
	Target   string `json:"target,omitempty"`   // Profile ID to recommend for

	// Recommendation behavior
	Count    int     `json:"count,omitempty"`     // Number of recommendations to return
	MinScore float64 `json:"min_score,omitempty"` // Minimum score for persisted matches

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for chat advice
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed breakdowns
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port        int    `json:"port,omitempty"`         // HTTP server port
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("config error: 'count' must be non-negative")
	}
	if c.MinScore < 0 {
		return fmt.Errorf("config error: 'min_score' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}

	if c.Profiles != "" {
		if _, err := os.Stat(c.Profiles); os.IsNotExist(err) {
			return fmt.Errorf("config error: profiles file not found: %s", c.Profiles)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Profiles == "" {
		result.Profiles = defaults.Profiles
	}
	if result.Target == "" {
		result.Target = defaults.Target
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Numeric fields: use default if zero
	if result.Count == 0 {
		result.Count = defaults.Count
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
