package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Transform TransformConfig
	Build     BuildConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"127.0.0.1"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// TransformConfig holds resolver configuration.
type TransformConfig struct {
	MaxDepth int  `envconfig:"SFCX_MAX_DEPTH" default:"32"`
	PadLines bool `envconfig:"SFCX_PAD_LINES" default:"false"`
	// Root confines file reads. Empty means unconfined.
	Root string `envconfig:"SFCX_ROOT" default:""`
}

// BuildConfig holds batch build configuration.
type BuildConfig struct {
	Workers   int `envconfig:"SFCX_WORKERS" default:"0"`
	CacheSize int `envconfig:"SFCX_CACHE_SIZE" default:"512"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate rejects values no component can run with.
func (c *Config) Validate() error {
	if c.Transform.MaxDepth <= 0 {
		return fmt.Errorf("SFCX_MAX_DEPTH must be positive, got %d", c.Transform.MaxDepth)
	}
	if c.Build.CacheSize <= 0 {
		return fmt.Errorf("SFCX_CACHE_SIZE must be positive, got %d", c.Build.CacheSize)
	}
	if c.Build.Workers < 0 {
		return fmt.Errorf("SFCX_WORKERS must not be negative, got %d", c.Build.Workers)
	}
	return nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "127.0.0.1",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Transform: TransformConfig{
			MaxDepth: 32,
		},
		Build: BuildConfig{
			CacheSize: 512,
		},
	}
}
