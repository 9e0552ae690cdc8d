package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config holds optional user settings read from the config file. Every
// field has a working default; a missing file is not an error.
type config struct {
	// Addr is the default listen address for the serve command.
	Addr string `toml:"addr"`
	// Detailed makes the graph command include export lists by default.
	Detailed bool `toml:"detailed"`
}

func defaultConfig() config {
	return config{Addr: ":8080"}
}

// configPath returns the user config file location,
// ~/.config/regions/config.toml.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "regions", "config.toml"), nil
}

// loadConfig reads the config file at path, falling back to defaults when
// the file does not exist. Unknown keys are ignored.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultConfig().Addr
	}
	return cfg, nil
}
