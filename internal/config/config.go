package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the optional achrecon.yaml configuration.
type Config struct {
	Report ReportConfig `yaml:"report"`
}

// ReportConfig controls output presentation.
type ReportConfig struct {
	SheetName    string  `yaml:"sheet_name"`
	OutputFile   string  `yaml:"output_file"`
	MaxColWidth  float64 `yaml:"max_col_width"`
	WidthPadding float64 `yaml:"width_padding"`
}

// Load reads an achrecon.yaml file from disk.
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

// LoadOrDefault reads path if it exists, falling back to Default otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
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

// Default returns a Config matching the finance team's report template.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			SheetName:    "ACH Report",
			OutputFile:   "ACH_By_Date_Report.xlsx",
			MaxColWidth:  40,
			WidthPadding: 2,
		},
	}
}
