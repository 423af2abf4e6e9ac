// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/rendezvous/internal/scheduler"
	"github.com/javiermolinar/rendezvous/internal/week"
)

// MaxHorizonDays bounds the search so a window never laps the week.
const MaxHorizonDays = week.DaysInWeek

// Config holds the application configuration.
type Config struct {
	Search SearchConfig `toml:"search"`
	Output OutputConfig `toml:"output"`
}

// SearchConfig holds slot search settings.
type SearchConfig struct {
	HorizonDays  int `toml:"horizon_days"`  // e.g., 3
	RetryMinutes int `toml:"retry_minutes"` // e.g., 30
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	Template     string `toml:"template"`      // e.g., "%DD %HH:%MM"
	WeekdayCodes string `toml:"weekday_codes"` // "cyrillic" or "latin"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			HorizonDays:  scheduler.DefaultHorizonDays,
			RetryMinutes: scheduler.DefaultRetryMinutes,
		},
		Output: OutputConfig{
			Template:     "%DD %HH:%MM",
			WeekdayCodes: week.Cyrillic.Name(),
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "rendezvous", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(expandPath(path), cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("RENDEZVOUS_HORIZON_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RENDEZVOUS_HORIZON_DAYS: %w", err)
		}
		cfg.Search.HorizonDays = n
	}
	if v := os.Getenv("RENDEZVOUS_RETRY_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RENDEZVOUS_RETRY_MINUTES: %w", err)
		}
		cfg.Search.RetryMinutes = n
	}
	if v := os.Getenv("RENDEZVOUS_TEMPLATE"); v != "" {
		cfg.Output.Template = v
	}
	if v := os.Getenv("RENDEZVOUS_WEEKDAY_CODES"); v != "" {
		cfg.Output.WeekdayCodes = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Search.HorizonDays < 1 || c.Search.HorizonDays > MaxHorizonDays {
		return fmt.Errorf("horizon_days must be between 1 and %d, got %d", MaxHorizonDays, c.Search.HorizonDays)
	}
	if c.Search.RetryMinutes < 1 {
		return fmt.Errorf("retry_minutes must be positive, got %d", c.Search.RetryMinutes)
	}
	if strings.TrimSpace(c.Output.Template) == "" {
		return errors.New("template must be set")
	}
	if _, err := week.CodesByName(c.Output.WeekdayCodes); err != nil {
		return err
	}
	return nil
}

// Codes returns the configured weekday code table.
// Falls back to Cyrillic for an unvalidated config.
func (c *Config) Codes() *week.Codes {
	codes, err := week.CodesByName(c.Output.WeekdayCodes)
	if err != nil {
		return week.Cyrillic
	}
	return codes
}

// SchedulerOptions returns scheduler options derived from the config.
func (c *Config) SchedulerOptions() scheduler.Options {
	return scheduler.Options{
		HorizonDays:  c.Search.HorizonDays,
		RetryMinutes: c.Search.RetryMinutes,
		Codes:        c.Codes(),
	}
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
