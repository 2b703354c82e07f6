package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user-tunable defaults, loaded from an optional TOML file
// at $XDG_CONFIG_HOME/gridlock/config.toml (~/.config/gridlock/ when
// XDG_CONFIG_HOME is unset). Command-line flags override config values,
// which override the built-in defaults.
//
// Example config.toml:
//
//	grid = 4
//	min-length = 4
//
//	[serve]
//	addr = ":8417"
type Config struct {
	Grid      int         `toml:"grid"`       // default grid edge length
	MinLength int         `toml:"min-length"` // default minimum pattern length
	Serve     ServeConfig `toml:"serve"`
}

// ServeConfig holds defaults for the serve command.
type ServeConfig struct {
	Addr string `toml:"addr"` // listen address, e.g. ":8417"
}

// DefaultConfig returns the built-in defaults: the classic Android
// parameters (3×3 grid, minimum length 4).
func DefaultConfig() Config {
	return Config{
		Grid:      3,
		MinLength: 4,
		Serve:     ServeConfig{Addr: ":8417"},
	}
}

// LoadConfig loads the config file from the standard location, falling
// back to DefaultConfig when the file is missing or the config
// directory cannot be determined. A malformed file is ignored the same
// way; commands still run with defaults.
func LoadConfig() Config {
	dir, err := configDir()
	if err != nil {
		return DefaultConfig()
	}
	return loadConfigFrom(filepath.Join(dir, "config.toml"))
}

// loadConfigFrom loads a config file from an explicit path, applying
// file values on top of the defaults.
func loadConfigFrom(path string) Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig()
	}
	return cfg
}
