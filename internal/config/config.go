// Package config loads client configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all configuration for the vitalog client.
type Config struct {
	BaseURL   string // care planner API base URL
	TimeoutMs int    // per-request timeout
	LogCalls  bool   // write API call telemetry to stderr
	DBPath    string // session store location; ":memory:" for ephemeral
	NoColor   bool   // disable styled output
}

// DefaultConfig returns a Config with sensible defaults. The session store
// lives under ~/.vitalog unless overridden.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "http://localhost:8000",
		TimeoutMs: 10000,
	}
}

// LoadConfig reads configuration from VITALOG_* environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("VITALOG_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("VITALOG_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("VITALOG_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("VITALOG_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("VITALOG_NO_COLOR"); v != "" {
		cfg.NoColor, _ = strconv.ParseBool(v)
	}

	return cfg
}

// ResolveDBPath returns the configured session store path, defaulting to
// ~/.vitalog/vitalog.db when unset.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".vitalog", "vitalog.db"), nil
}
