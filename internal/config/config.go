// Package config holds the on-disk settings for the horcrux CLI: where its
// home directory is, which field size and share scheme new splits default
// to, and how it logs and formats output.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the YAML document persisted at Path(home).
type Config struct {
	DefaultBitsize int    `yaml:"default_bitsize"`
	DefaultScheme  string `yaml:"default_scheme"`
	OutputFormat   string `yaml:"output_format"`
	LogLevel       string `yaml:"log_level"`
	LogFile        string `yaml:"log_file"`
}

// Defaults returns the configuration a fresh home directory starts with.
func Defaults() *Config {
	return &Config{
		DefaultBitsize: 256,
		DefaultScheme:  "compact",
		OutputFormat:   "",
		LogLevel:       "off",
		LogFile:        "",
	}
}

// DefaultHome returns $HOME/.horcrux, following the teacher's
// DefaultHome convention of scoping all persisted state under a single
// dotfile directory.
func DefaultHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	return filepath.Join(home, ".horcrux"), nil
}

// Path returns the config file path for a given home directory.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// Load reads and parses the config file at Path(home). A missing file is
// not an error: it returns Defaults().
func Load(home string) (*Config, error) {
	data, err := os.ReadFile(Path(home))
	if os.IsNotExist(err) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", Path(home), err)
	}
	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", Path(home), err)
	}
	return cfg, nil
}

// Save writes cfg to Path(home), creating home if necessary.
func Save(cfg *Config, home string) error {
	if err := os.MkdirAll(home, 0o700); err != nil {
		return fmt.Errorf("config: create home %s: %w", home, err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(Path(home), data, 0o600); err != nil {
		return fmt.Errorf("config: write %s: %w", Path(home), err)
	}
	return nil
}
