package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Watch struct {
		Cron string `yaml:"cron"` // empty disables watch mode
	} `yaml:"watch"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies .env and
// environment variable overrides. The API key historically lives in a
// .env file next to the binary, so that is honored too.
func Load(path string) (*Config, error) {
	// A missing .env is fine; it is just one override source.
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DEXBOARD_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DEXBOARD_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("DEXBOARD_WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.BaseURL == "" {
		cfg.DataSource.BaseURL = "https://api.dexboard.dev"
	}

	return cfg, nil
}

// Validate checks that all required fields are set. The API key is the
// one hard requirement: without it no fetch can succeed, so startup
// aborts before attempting any network call.
func (c *Config) Validate() error {
	if c.DataSource.APIKey == "" {
		return fmt.Errorf("data_source.api_key is required (set DEXBOARD_API_KEY in .env or the environment)")
	}
	if c.DataSource.BaseURL == "" {
		return fmt.Errorf("data_source.base_url is required")
	}
	return nil
}
