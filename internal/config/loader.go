package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load reads configuration from the file named by CONFIG_PATH (fallback
// "./config.yaml") and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	return load(path, path != "")
}

// LoadFile is Load with an explicit YAML path, as passed on a command
// line. An empty path behaves like Load.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Load()
	}
	return load(path, true)
}

func load(path string, explicit bool) (*Config, error) {
	var cfg Config

	if path == "" {
		path = defaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
