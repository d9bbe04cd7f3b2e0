// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/shopspring/decimal"

	"saas-cost/core/types"
	"saas-cost/internal/errors"
	"saas-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Currency contains currency settings
	Currency CurrencyConfig `json:"currency"`

	// Output contains output settings
	Output OutputConfig `json:"output"`

	// Scenario contains default scenario assumptions
	Scenario ScenarioConfig `json:"scenario"`

	// AI contains AI cost estimation defaults
	AI AIConfig `json:"ai,omitempty"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CurrencyConfig contains currency settings
type CurrencyConfig struct {
	// Base is the base currency for prices and reports
	Base types.Currency `json:"base"`

	// USDExchangeRate converts USD amounts to the base currency
	USDExchangeRate decimal.Decimal `json:"usd_exchange_rate"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default report format (cli, json, markdown)
	DefaultFormat string `json:"default_format"`

	// ShowMilestones includes milestone projections in reports
	ShowMilestones bool `json:"show_milestones"`

	// ShowAICosts includes AI cost projections in reports
	ShowAICosts bool `json:"show_ai_costs"`
}

// ScenarioConfig contains default scenario assumptions
type ScenarioConfig struct {
	// UtilizationRate scales variable cost estimates
	UtilizationRate float64 `json:"utilization_rate"`

	// ChurnRate is the default monthly churn fraction
	ChurnRate float64 `json:"churn_rate"`

	// GrowthRate is the default monthly growth fraction
	GrowthRate float64 `json:"growth_rate"`

	// CAC is the default customer acquisition cost
	CAC decimal.Decimal `json:"cac"`
}

// AIConfig contains AI cost estimation defaults
type AIConfig struct {
	// Provider is the default AI provider
	Provider string `json:"provider"`

	// Model is the default model; empty selects the provider default
	Model string `json:"model,omitempty"`

	// RequestsPerMonth is the assumed monthly requests per customer
	RequestsPerMonth int `json:"requests_per_month"`

	// AvgInputTokens is the assumed prompt size per request
	AvgInputTokens int64 `json:"avg_input_tokens"`

	// AvgOutputTokens is the assumed completion size per request
	AvgOutputTokens int64 `json:"avg_output_tokens"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Currency: CurrencyConfig{
			Base:            types.CurrencyMYR,
			USDExchangeRate: decimal.RequireFromString("4.50"),
		},
		Output: OutputConfig{
			DefaultFormat:  "cli",
			ShowMilestones: true,
			ShowAICosts:    true,
		},
		Scenario: ScenarioConfig{
			UtilizationRate: 1,
		},
		AI: AIConfig{
			Provider:         "openai",
			RequestsPerMonth: 100,
			AvgInputTokens:   2000,
			AvgOutputTokens:  800,
		},
		Logging: logging.DefaultConfig(),
	}
}

var (
	mu      sync.RWMutex
	current = DefaultConfig()
)

// Get returns the current configuration
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the current configuration
func Set(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg
}

// Load reads configuration from a JSON file, filling unset fields
// with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "failed to parse config file", err)
	}

	logging.Debug("loaded configuration")
	return cfg, nil
}

// Save writes the configuration to a JSON file
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Internal("failed to encode config", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(errors.TypeConfig, "failed to create config directory", err)
		}
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".saas-cost.json"
	}
	return filepath.Join(home, ".saas-cost.json")
}
