package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file written next to the data directory.
const FileName = "finanzas.yaml"

// Config represents the top-level finanzas.yaml configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig locates the transaction store.
type DataConfig struct {
	Dir       string `yaml:"dir"`
	StoreFile string `yaml:"store_file"`
}

// ExportConfig holds CSV export defaults.
type ExportConfig struct {
	OutFile string `yaml:"out_file"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// StorePath returns the full path of the store file.
func (c *Config) StorePath() string {
	return filepath.Join(c.Data.Dir, c.Data.StoreFile)
}

// Load reads a finanzas.yaml file from disk.
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

// Default returns a Config with sensible defaults rooted at dir.
func Default(dir string) *Config {
	return &Config{
		Data: DataConfig{
			Dir:       dir,
			StoreFile: "finanzas.db",
		},
		Export: ExportConfig{
			OutFile: "transacciones.csv",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
