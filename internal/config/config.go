// Package config persists the small amount of user preference cratebump
// keeps between runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"cratebump/internal/logging"
)

// Config holds the persisted preferences.
type Config struct {
	// AlwaysAsk makes the bump command confirm before modifying files.
	AlwaysAsk bool `toml:"always_ask"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{AlwaysAsk: false}
}

// Path returns the config file location under the user config directory.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(base, "cratebump", "config.toml"), nil
}

// Load reads the config file, falling back to defaults when it is missing
// or unreadable. A broken config never blocks the tool.
func Load() Config {
	log := logging.Get(logging.CategoryConfig)

	path, err := Path()
	if err != nil {
		log.Warnw("using default configuration", "error", err)
		return Default()
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file at an explicit path.
func LoadFrom(path string) Config {
	log := logging.Get(logging.CategoryConfig)

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !os.IsNotExist(err) {
			log.Warnw("could not read config, using defaults", "path", path, "error", err)
		}
		return Default()
	}
	log.Debugw("configuration loaded", "path", path, "always_ask", cfg.AlwaysAsk)
	return cfg
}

// Save writes the config file, creating its directory as needed.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes a config file to an explicit path.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	logging.Get(logging.CategoryConfig).Debugw("configuration saved", "path", path)
	return nil
}
