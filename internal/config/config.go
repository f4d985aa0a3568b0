/*
PURPOSE:
  Defines the configuration structure and loading logic for rating-report.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of the Supabase project URL and output directory.
  - The anon key must never be embedded in source; it is sourced from the
    environment (or a local config file kept out of version control).

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Needs to support environment variable overrides (SUPABASE_...).

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing config file falls back to defaults (env still applies).
  - Validate() reports missing URL/key before any network call.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should be sensible (e.g., 60s request timeout).

USAGE:
  cfg, err := config.Load("rating_report.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update Load() defaults.

RELATED FILES:
  - internal/cli/run.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for rating-report.
type Config struct {
	// SupabaseURL is the project base URL, e.g. https://xyz.supabase.co
	SupabaseURL string `yaml:"supabase_url"`
	// AnonKey is the Supabase anon API key. Normally supplied via the
	// SUPABASE_ANON_KEY environment variable rather than the file.
	AnonKey        string        `yaml:"anon_key"`
	OutputDir      string        `yaml:"output_dir"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// ExportJSON additionally writes each report as JSON Lines.
	ExportJSON bool `yaml:"export_json"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:      ".",
		RequestTimeout: 60 * time.Second,
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
// Environment overrides (SUPABASE_URL, SUPABASE_ANON_KEY) always apply last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		// Search for defaults
		defaults := []string{"rating_report.yaml", "rating-report.yaml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			// No config file found, defaults + env only
			cfg.applyEnv()
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SUPABASE_URL"); v != "" {
		c.SupabaseURL = v
	}
	if v := os.Getenv("SUPABASE_ANON_KEY"); v != "" {
		c.AnonKey = v
	}
}

// Validate checks that the fields required for a fetch are present.
func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return errors.New("supabase URL not configured (set supabase_url or SUPABASE_URL)")
	}
	if c.AnonKey == "" {
		return errors.New("supabase anon key not configured (set SUPABASE_ANON_KEY)")
	}
	return nil
}
