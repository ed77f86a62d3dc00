package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultConfigFile is tried when CONFIG_PATH is empty.
const defaultConfigFile = "./config.yaml"

// Load builds the server configuration. Values come from the YAML file
// named by CONFIG_PATH, overridden by environment variables, with the
// env-default tags filling whatever neither sets. A missing default file
// is not an error; a missing CONFIG_PATH file is.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := configPath()
	_, statErr := os.Stat(path)

	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("load server config %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("open server config %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("load server config from environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}
	return &cfg, nil
}

func configPath() (string, bool) {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p, true
	}
	return defaultConfigFile, false
}
