package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config defines engine configuration.
type Config struct {
	Cache     CacheConfig     `yaml:"cache"`
	Freshness FreshnessConfig `yaml:"freshness"`
	Origin    OriginConfig    `yaml:"origin"`
	Registry  RegistryConfig  `yaml:"registry"`
	Log       LogConfig       `yaml:"log"`
}

type CacheConfig struct {
	Root string `yaml:"root"`
}

// FreshnessConfig holds the phase-dependent cache-age thresholds, in
// seconds. BurstNoCache selects the variant that bypasses the cache
// entirely during the first hour after a puzzle unlock.
type FreshnessConfig struct {
	BurstSeconds  int  `yaml:"burst_seconds"`
	BurstNoCache  bool `yaml:"burst_no_cache"`
	ActiveSeconds int  `yaml:"active_seconds"`
	IdleSeconds   int  `yaml:"idle_seconds"`
}

type OriginConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// RegistryConfig selects the public registry backend: "files" keeps
// token records alongside the cache, "sqlite" uses the indexed store.
type RegistryConfig struct {
	Backend    string `yaml:"backend"`
	SQLitePath string `yaml:"sqlite_path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Timeout returns the origin request timeout.
func (o OriginConfig) Timeout() time.Duration {
	return time.Duration(o.TimeoutSeconds) * time.Second
}

// Load reads configuration from an optional .env file, an optional YAML
// file named by ADVENTBOARD_CONFIG_PATH, and ADVENTBOARD_* environment
// variables, in increasing precedence.
func Load() (Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	cfg := Config{
		Cache: CacheConfig{
			Root: "data",
		},
		Freshness: FreshnessConfig{
			BurstSeconds:  60,
			ActiveSeconds: 900,
			IdleSeconds:   3600,
		},
		Origin: OriginConfig{
			TimeoutSeconds: 10,
		},
		Registry: RegistryConfig{
			Backend:    "files",
			SQLitePath: "registry.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("ADVENTBOARD_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if root := os.Getenv("ADVENTBOARD_CACHE_ROOT"); root != "" {
		cfg.Cache.Root = root
	}
	if err := intFromEnv("ADVENTBOARD_BURST_SECONDS", &cfg.Freshness.BurstSeconds); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("ADVENTBOARD_BURST_NO_CACHE"); v != "" {
		noCache, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ADVENTBOARD_BURST_NO_CACHE: %w", err)
		}
		cfg.Freshness.BurstNoCache = noCache
	}
	if err := intFromEnv("ADVENTBOARD_ACTIVE_SECONDS", &cfg.Freshness.ActiveSeconds); err != nil {
		return Config{}, err
	}
	if err := intFromEnv("ADVENTBOARD_IDLE_SECONDS", &cfg.Freshness.IdleSeconds); err != nil {
		return Config{}, err
	}
	if base := os.Getenv("ADVENTBOARD_ORIGIN_URL"); base != "" {
		cfg.Origin.BaseURL = base
	}
	if err := intFromEnv("ADVENTBOARD_ORIGIN_TIMEOUT_SECONDS", &cfg.Origin.TimeoutSeconds); err != nil {
		return Config{}, err
	}
	if backend := os.Getenv("ADVENTBOARD_REGISTRY_BACKEND"); backend != "" {
		cfg.Registry.Backend = backend
	}
	if path := os.Getenv("ADVENTBOARD_REGISTRY_SQLITE_PATH"); path != "" {
		cfg.Registry.SQLitePath = path
	}
	if level := os.Getenv("ADVENTBOARD_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if cfg.Registry.Backend != "files" && cfg.Registry.Backend != "sqlite" {
		return Config{}, fmt.Errorf("unknown registry backend %q", cfg.Registry.Backend)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func intFromEnv(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	*dst = n
	return nil
}
