package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	StorageDisk   = "disk"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// history storage
	StorageBackend string `toml:"storage_backend"`
	HistoryPath    string `toml:"history_path"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`
	RedisKey       string `toml:"redis_key"`
	// progress
	ReportCacheSizeMB int `toml:"report_cache_size_mb"`
	// http
	AllowedOrigins []string `toml:"allowed_origins"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the validated section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	if cfg.StorageBackend == "" {
		cfg.StorageBackend = StorageDisk
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config for env %s: %w", env, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}

	switch c.StorageBackend {
	case StorageDisk:
		if c.HistoryPath == "" {
			return errors.New("history_path is required for the disk storage backend")
		}
	case StorageRedis:
		if c.RedisHost == "" || c.RedisPort == "" {
			return errors.New("redis_host and redis_port are required for the redis storage backend")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage backend: %s", c.StorageBackend)
	}

	if c.ReportCacheSizeMB < 0 {
		return fmt.Errorf("report_cache_size_mb must not be negative: %d", c.ReportCacheSizeMB)
	}

	return nil
}
