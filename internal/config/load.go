package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultFileName is the config file looked up in the working directory
// when no explicit path is given.
const defaultFileName = "goblb.yaml"

// Load loads configuration with priority: defaults < file. An empty path
// falls back to the default file name; a missing default file is not an
// error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = defaultFileName
	}

	if err := loadFromFile(cfg, path); err != nil {
		if explicit || !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	return cfg, nil
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
