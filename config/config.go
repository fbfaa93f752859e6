package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete simulator configuration
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	Market  MarketConfig  `json:"market" yaml:"market"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Data    DataConfig    `json:"data" yaml:"data"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// AccountConfig contains account initialization parameters
type AccountConfig struct {
	ID          string  `json:"id" yaml:"id"`
	Currency    string  `json:"currency" yaml:"currency"`
	OpeningCash float64 `json:"opening_cash" yaml:"opening_cash"`
}

// MarketConfig seeds the simulated market at process start
type MarketConfig struct {
	Instruments []InstrumentConfig `json:"instruments" yaml:"instruments"`
}

type InstrumentConfig struct {
	Symbol string  `json:"symbol" yaml:"symbol"`
	Name   string  `json:"name" yaml:"name"`
	Price  float64 `json:"price" yaml:"price"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type             string `json:"type" yaml:"type"` // "csv", "sqlite" or "none"
	TransactionsFile string `json:"transactions_file,omitempty" yaml:"transactions_file,omitempty"`
	SnapshotsFile    string `json:"snapshots_file,omitempty" yaml:"snapshots_file,omitempty"`
	DBPath           string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// DataConfig locates the flat-file account store
type DataConfig struct {
	Dir string `json:"dir" yaml:"dir"`
}

// LogConfig contains logging parameters
type LogConfig struct {
	Level      string `json:"level" yaml:"level"`
	Format     string `json:"format,omitempty" yaml:"format,omitempty"` // "console" or "json"
	OutputFile string `json:"output_file,omitempty" yaml:"output_file,omitempty"`
}

// Default returns the configuration used when no config file is given:
// $10,000 opening cash and the standard five-instrument seed market.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			ID:          "default",
			Currency:    "USD",
			OpeningCash: 10000.00,
		},
		Market: MarketConfig{
			Instruments: []InstrumentConfig{
				{Symbol: "AAPL", Name: "Apple Inc.", Price: 190.00},
				{Symbol: "MSFT", Name: "Microsoft", Price: 420.00},
				{Symbol: "GOOGL", Name: "Alphabet", Price: 165.00},
				{Symbol: "AMZN", Name: "Amazon", Price: 180.00},
				{Symbol: "TSLA", Name: "Tesla", Price: 250.00},
			},
		},
		Journal: JournalConfig{Type: "none"},
		Data:    DataConfig{Dir: "portfolio_data"},
		Log:     LogConfig{Level: "info", Format: "console"},
	}
}

// LoadFromFile loads configuration from a file (YAML or JSON), layered on
// top of Default so partial files only override what they name.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.OpeningCash < 0 {
		return fmt.Errorf("account.opening_cash must not be negative")
	}
	if len(c.Market.Instruments) == 0 {
		return fmt.Errorf("market.instruments must not be empty")
	}
	for _, in := range c.Market.Instruments {
		if in.Symbol == "" {
			return fmt.Errorf("market instrument without a symbol")
		}
		if in.Price <= 0 {
			return fmt.Errorf("instrument %s: price must be positive", in.Symbol)
		}
	}

	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.TransactionsFile == "" || c.Journal.SnapshotsFile == "" {
			return fmt.Errorf("csv journal requires transactions_file and snapshots_file")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("sqlite journal requires db_path")
		}
	default:
		return fmt.Errorf("journal.type must be csv, sqlite or none, got %q", c.Journal.Type)
	}

	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir is required")
	}
	return nil
}
