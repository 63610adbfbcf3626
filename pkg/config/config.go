// Package config loads application configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host               string `yaml:"host"`
	Port               int    `yaml:"port"`
	RateLimitPerSecond int    `yaml:"rate_limit_per_second"`
	RateLimitBurst     int    `yaml:"rate_limit_burst"`
}

// ObservabilityConfig holds metrics settings.
type ObservabilityConfig struct {
	MetricsEnabled bool `yaml:"metrics_enabled"`
}

// ProfilingConfig holds pprof settings.
type ProfilingConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// LimitsConfig bounds a single request's workload.
type LimitsConfig struct {
	MaxReportFiles int           `yaml:"max_report_files"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes"`
	ResultTTL      time.Duration `yaml:"result_ttl"`
}

// Config is the root application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Observability ObservabilityConfig `yaml:"observability"`
	Profiling     ProfilingConfig     `yaml:"profiling"`
	Limits        LimitsConfig        `yaml:"limits"`
}

// Load builds the configuration from defaults, an optional YAML file
// (CONFIG_FILE, falling back to config.yaml when present), and environment
// variables, in that order of precedence.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               8000,
			RateLimitPerSecond: 10,
			RateLimitBurst:     20,
		},
		Observability: ObservabilityConfig{
			MetricsEnabled: true,
		},
		Profiling: ProfilingConfig{
			Enabled: false,
			Port:    6060,
		},
		Limits: LimitsConfig{
			MaxReportFiles: 30,
			MaxUploadBytes: 64 << 20,
			ResultTTL:      30 * time.Minute,
		},
	}

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	if cfg.Limits.MaxReportFiles <= 0 {
		return nil, fmt.Errorf("invalid max report files %d", cfg.Limits.MaxReportFiles)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v, ok := envInt("PORT"); ok {
		cfg.Server.Port = v
	}
	if v, ok := envInt("RATE_LIMIT_PER_SECOND"); ok {
		cfg.Server.RateLimitPerSecond = v
	}
	if v, ok := envInt("RATE_LIMIT_BURST"); ok {
		cfg.Server.RateLimitBurst = v
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		cfg.Observability.MetricsEnabled = v == "true" || v == "1"
	}
	if v := os.Getenv("PPROF_ENABLED"); v != "" {
		cfg.Profiling.Enabled = v == "true" || v == "1"
	}
	if v, ok := envInt("PPROF_PORT"); ok {
		cfg.Profiling.Port = v
	}
	if v, ok := envInt("MAX_REPORT_FILES"); ok {
		cfg.Limits.MaxReportFiles = v
	}
	if v, ok := envInt("MAX_UPLOAD_BYTES"); ok {
		cfg.Limits.MaxUploadBytes = int64(v)
	}
	if v := os.Getenv("RESULT_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Limits.ResultTTL = d
		}
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
