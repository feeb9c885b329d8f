package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"go-scales/theory"
)

// Format selects how a derived scale is printed
type Format string

const (
	FormatTable  Format = "table"
	FormatInline Format = "inline"
	FormatYAML   Format = "yaml"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatInline, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	}
	return "", fmt.Errorf("unknown format %q (want table, inline or yaml)", s)
}

// MIDIConfig controls keyboard input for picking roots
type MIDIConfig struct {
	Enabled    bool   `yaml:"enabled"`
	PortFilter string `yaml:"port_filter,omitempty"` // substring of input port names; empty = any keyboard
}

// UIConfig stores shell state between runs
type UIConfig struct {
	LastRoot string `yaml:"last_root,omitempty"`
	LastMode int    `yaml:"last_mode,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	Spelling theory.Spelling `yaml:"spelling"`
	Format   Format          `yaml:"format"`
	Palette  string          `yaml:"palette,omitempty"` // GPL file; built-in palette when empty
	Debug    bool            `yaml:"debug,omitempty"`
	MIDI     MIDIConfig      `yaml:"midi"`
	UI       UIConfig        `yaml:"ui,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Spelling: theory.Sharps,
		Format:   FormatTable,
		MIDI: MIDIConfig{
			Enabled: true,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-scales"), nil
}

// ConfigPath returns the full path to config.yaml
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config at path (default location when empty),
// or returns defaults if the file does not exist
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Format == "" {
		cfg.Format = FormatTable
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field values that yaml decoding lets through
func (c *Config) Validate() error {
	if _, err := ParseFormat(string(c.Format)); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.UI.LastMode != 0 {
		if _, err := theory.ModeFromNumber(c.UI.LastMode); err != nil {
			return fmt.Errorf("config: ui.last_mode: %w", err)
		}
	}
	if c.UI.LastRoot != "" {
		if _, err := theory.ParsePitchClass(c.UI.LastRoot); err != nil {
			return fmt.Errorf("config: ui.last_root: %w", err)
		}
	}
	return nil
}

// Save writes the config to path (default location when empty)
func (c *Config) Save(path string) error {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Remember records the last scale shown in the shell
func (c *Config) Remember(root string, mode theory.Mode, sp theory.Spelling) {
	c.UI.LastRoot = root
	c.UI.LastMode = mode.Number()
	c.Spelling = sp
}
