package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Marshal renders cfg as TOML, with resolved paths, for `urlsmith config show`.
func Marshal(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

