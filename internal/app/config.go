package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all the configuration settings for our Application: the
// network port the server listens on, the name of the current operating
// environment (development, staging, production, etc.), the accepted API
// keys and the per-key rate limit. Settings come from command-line flags,
// optionally seeded from a YAML config file.
type Config struct {
	Port      int      `yaml:"port"`
	Env       string   `yaml:"env"`
	APIKeys   []string `yaml:"apiKeys"`
	RateLimit int      `yaml:"rateLimit"`
}

// DefaultConfig returns the settings used when neither a config file nor
// flags override them.
func DefaultConfig() Config {
	return Config{
		Port:      4000,
		Env:       "development",
		APIKeys:   []string{"test"},
		RateLimit: 100,
	}
}

// LoadConfigFile reads a YAML config file and fills unset fields with
// defaults.
func LoadConfigFile(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := Config{}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}

	defaults := DefaultConfig()
	if cfg.Port == 0 {
		cfg.Port = defaults.Port
	}
	if cfg.Env == "" {
		cfg.Env = defaults.Env
	}
	if len(cfg.APIKeys) == 0 {
		cfg.APIKeys = defaults.APIKeys
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = defaults.RateLimit
	}

	return cfg, nil
}
