package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable settings read from
// ~/.config/dlog/config.yaml. Every field has a working default so the
// file is optional.
type Config struct {
	DBPath       string `yaml:"db_path,omitempty"`
	Editor       string `yaml:"editor,omitempty"`
	DefaultLimit int    `yaml:"default_limit,omitempty"`
}

// Dir returns the dlog config directory (~/.config/dlog).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "dlog"), nil
}

func Default() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return &Config{
		DBPath:       filepath.Join(dir, "dlog.db"),
		DefaultLimit: 10,
	}, nil
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. Fields left unset in the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if file.DBPath != "" {
		cfg.DBPath = file.DBPath
	}
	if file.Editor != "" {
		cfg.Editor = file.Editor
	}
	if file.DefaultLimit > 0 {
		cfg.DefaultLimit = file.DefaultLimit
	}
	return cfg, nil
}

// LoadDefault loads config.yaml from the standard config directory.
func LoadDefault() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return Load(filepath.Join(dir, "config.yaml"))
}
