package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory when
// no path is given.
const DefaultFile = "tourguide.yaml"

// Config is the settings of a tourguide run.
type Config struct {
	QuestDB  string         `yaml:"questdb" json:"questdb"`
	Database DatabaseConfig `yaml:"database" json:"database"`
	Log      LogConfig      `yaml:"log" json:"log"`
	Output   OutputConfig   `yaml:"output" json:"output"`
}

// DatabaseConfig locates the world database used for enrichment.
type DatabaseConfig struct {
	Path   string       `yaml:"path" json:"path"`
	Enrich EnrichConfig `yaml:"enrich" json:"enrich"`
}

// EnrichConfig selects which enrichments run.
type EnrichConfig struct {
	Enabled      bool `yaml:"enabled" json:"enabled"`
	Titles       bool `yaml:"titles" json:"titles"`
	Requirements bool `yaml:"requirements" json:"requirements"`
	Coords       bool `yaml:"coords" json:"coords"`
}

// LogConfig sets the log level and an optional log file.
type LogConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// OutputConfig controls terminal styling.
type OutputConfig struct {
	// Color is "auto", "always" or "never".
	Color string `yaml:"color" json:"color"`
}

// Default returns the configuration used without a config file.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Enrich: EnrichConfig{
				Titles:       true,
				Requirements: true,
				Coords:       true,
			},
		},
		Log:    LogConfig{Level: "info"},
		Output: OutputConfig{Color: "auto"},
	}
}

// ApplyDefaults fills settings left empty by a config file.
func (c *Config) ApplyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}
}

// Validate rejects settings no component understands.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q", c.Output.Color)
	}
	if c.Database.Enrich.Enabled && c.Database.Path == "" {
		return fmt.Errorf("enrichment needs a database path")
	}
	return nil
}

// Load reads a config file. Keys missing from the file keep their default.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r := Default()
	if err := yaml.Unmarshal(b, r); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	r.ApplyDefaults()
	return r, nil
}

// LoadOptional loads path, or DefaultFile when path is empty. A missing
// default file is not an error.
func LoadOptional(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	cfg, err := Load(DefaultFile)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	return cfg, err
}
