package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level donrec.yaml configuration.
type Config struct {
	Fees     FeesConfig     `yaml:"fees"`
	Encoding EncodingConfig `yaml:"encoding"`
	Matching MatchingConfig `yaml:"matching"`
}

// FeesConfig defines the platform fee model.
type FeesConfig struct {
	// Percent is the flat fee deducted from gross to estimate expected
	// net, e.g. 1.1 for 1% commission plus 10% VAT on the commission.
	Percent float64 `yaml:"percent"`
}

// EncodingConfig controls input file decoding.
type EncodingConfig struct {
	// Name is "auto" for statistical detection, or a charset name like
	// "windows-1256" to force one.
	Name string `yaml:"name"`
}

// MatchingConfig tunes the matching engine.
type MatchingConfig struct {
	// DateToleranceDays is the window for the date-proximity review
	// signal. The matcher itself does not use date proximity.
	DateToleranceDays int `yaml:"date_tolerance_days"`
}

// Load reads a donrec.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the standard fee model and auto-detected
// encoding.
func Default() *Config {
	return &Config{
		Fees:     FeesConfig{Percent: 1.1},
		Encoding: EncodingConfig{Name: "auto"},
		Matching: MatchingConfig{DateToleranceDays: 3},
	}
}
