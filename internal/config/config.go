package config

import (
	"os"
	"strings"
	"time"
)

// Config holds process settings read from the environment.
type Config struct {
	Port         string
	AssetsDir    string
	DataDir      string
	FetchTimeout time.Duration
	LogLevel     string
	LogFormat    string

	// Warnings collects values that were present but unusable; the caller
	// logs them once the logger is up.
	Warnings []string
}

const (
	defaultPort         = "8080"
	defaultAssetsDir    = "public"
	defaultDataDir      = "data"
	defaultFetchTimeout = 10 * time.Second
)

// Load reads the configuration from environment variables.
func Load() Config {
	return load(os.Getenv)
}

func load(getenv func(string) string) Config {
	cfg := Config{
		Port:         getenv("PORT"),
		AssetsDir:    getenv("ASSETS_DIR"),
		DataDir:      getenv("DATA_DIR"),
		FetchTimeout: defaultFetchTimeout,
		LogLevel:     strings.ToLower(getenv("LOG_LEVEL")),
		LogFormat:    strings.ToLower(getenv("LOG_FORMAT")),
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = defaultAssetsDir
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat != "console" {
		cfg.LogFormat = "json"
	}

	if v := getenv("FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			cfg.Warnings = append(cfg.Warnings, "invalid FETCH_TIMEOUT "+v+", using "+defaultFetchTimeout.String())
		} else {
			cfg.FetchTimeout = d
		}
	}
	return cfg
}
