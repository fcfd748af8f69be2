package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings loaded from YAML.
type Config struct {
	ListenAddr string `yaml:"listen_addr"`

	// Redis address for the memoization cache; empty selects the
	// in-memory cache.
	RedisAddr       string `yaml:"redis_addr"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`

	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type RateLimitConfig struct {
	Requests      int `yaml:"requests"`
	WindowSeconds int `yaml:"window_seconds"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		ListenAddr:      ":8080",
		RedisAddr:       "",
		CacheTTLSeconds: 3600,
		RateLimit: RateLimitConfig{
			Requests:      30,
			WindowSeconds: 60,
		},
	}
}

// Load reads the YAML file at path, filling unset fields from defaults.
// A missing file is not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = Default().ListenAddr
	}
	if cfg.RateLimit.Requests <= 0 {
		cfg.RateLimit.Requests = Default().RateLimit.Requests
	}
	if cfg.RateLimit.WindowSeconds <= 0 {
		cfg.RateLimit.WindowSeconds = Default().RateLimit.WindowSeconds
	}
	if cfg.CacheTTLSeconds < 0 {
		cfg.CacheTTLSeconds = 0
	}

	return cfg, nil
}
