package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Storage  StorageConfig  `toml:"storage"`
	Provider ProviderConfig `toml:"provider"`
	Session  SessionConfig  `toml:"session"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig selects and configures the storage backend
type StorageConfig struct {
	// Type is "memory" or "redis"
	Type string `toml:"type"`
	// RedisURL is the connection URL, required when Type is "redis"
	RedisURL string `toml:"redis_url"`
	// DatasetTTL bounds how long a fetched dataset is served before a
	// refresh is suggested (e.g. "30m")
	DatasetTTL string `toml:"dataset_ttl"`
}

// ProviderConfig contains settings for the external statistics provider
type ProviderConfig struct {
	// FantasyBaseURL is the fantasy games API root
	FantasyBaseURL string `toml:"fantasy_base_url"`
	// CoreBaseURL is the sports core API root
	CoreBaseURL string `toml:"core_base_url"`
	// Timeout is the per-request timeout (e.g. "30s")
	Timeout string `toml:"timeout"`
}

// SessionConfig contains session lifetime settings
type SessionConfig struct {
	// Duration is how long a session (and its draft state) lives (e.g. "24h")
	Duration string `toml:"duration"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "",
			Port: 8080,
		},
		Storage: StorageConfig{
			Type:       "memory",
			RedisURL:   "",
			DatasetTTL: "30m",
		},
		Provider: ProviderConfig{
			FantasyBaseURL: "https://fantasy.espn.com/apis/v3/games/fba",
			CoreBaseURL:    "https://sports.core.api.espn.com",
			Timeout:        "30s",
		},
		Session: SessionConfig{
			Duration: "24h",
		},
	}
}

// Load reads configuration from the given TOML file path, falling back to
// defaults when the path is empty or the file does not exist, then applies
// environment overrides
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		} else if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides file values with environment variables where set
func (c *Config) applyEnv() {
	if v := os.Getenv("DRAFTBOARD_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("DRAFTBOARD_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		c.Storage.Type = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.Storage.RedisURL = v
	}
}

// Validate checks the configuration for inconsistencies
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case "memory":
	case "redis":
		if c.Storage.RedisURL == "" {
			return fmt.Errorf("storage.redis_url required when storage.type is redis")
		}
	default:
		return fmt.Errorf("invalid storage.type %q: must be 'memory' or 'redis'", c.Storage.Type)
	}

	for _, d := range []struct {
		name  string
		value string
	}{
		{"storage.dataset_ttl", c.Storage.DatasetTTL},
		{"provider.timeout", c.Provider.Timeout},
		{"session.duration", c.Session.Duration},
	} {
		if _, err := time.ParseDuration(d.value); err != nil {
			return fmt.Errorf("invalid %s %q: %w", d.name, d.value, err)
		}
	}

	return nil
}

// DatasetTTL returns the parsed dataset TTL
func (c *Config) DatasetTTL() time.Duration {
	d, _ := time.ParseDuration(c.Storage.DatasetTTL)
	return d
}

// ProviderTimeout returns the parsed provider request timeout
func (c *Config) ProviderTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Provider.Timeout)
	return d
}

// SessionDuration returns the parsed session lifetime
func (c *Config) SessionDuration() time.Duration {
	d, _ := time.ParseDuration(c.Session.Duration)
	return d
}
