// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/toyiyo/nimble-pnl-sub007/core/types"
	"github.com/toyiyo/nimble-pnl-sub007/internal/errors"
	"github.com/toyiyo/nimble-pnl-sub007/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Currency is the reporting currency
	Currency types.Currency `json:"currency"`

	// Rules contains conversion-rule file settings
	Rules RulesConfig `json:"rules"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// RulesConfig points at HCL conversion-rule files merged into the
// default unit catalog at startup.
type RulesConfig struct {
	// Paths lists rule files, loaded in order
	Paths []string `json:"paths,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows per-ingredient and per-day detail
	ShowDetails bool `json:"show_details"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version:  "1",
		Currency: types.CurrencyUSD,
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from a JSON file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if !cfg.Currency.Valid() {
		return nil, errors.Newf(errors.TypeConfig, "unsupported currency %q", cfg.Currency)
	}
	return cfg, nil
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Get returns the active configuration
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the active configuration
func Set(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg
}
