package config

import (
	"testing"
	"time"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg := load(envFrom(nil))
	if cfg.Port != "8080" || cfg.AssetsDir != "public" || cfg.DataDir != "data" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Fatalf("expected 10s fetch timeout, got %v", cfg.FetchTimeout)
	}
	if cfg.LogFormat != "json" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected log settings: %q %q", cfg.LogFormat, cfg.LogLevel)
	}
}

func TestLoadInvalidTimeoutKeepsDefault(t *testing.T) {
	cfg := load(envFrom(map[string]string{"FETCH_TIMEOUT": "soon", "PORT": "3000"}))
	if cfg.FetchTimeout != 10*time.Second {
		t.Fatalf("expected default timeout, got %v", cfg.FetchTimeout)
	}
	if len(cfg.Warnings) != 1 {
		t.Fatalf("expected one warning, got %v", cfg.Warnings)
	}
	if cfg.Port != "3000" {
		t.Fatalf("expected port 3000, got %s", cfg.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg := load(envFrom(map[string]string{
		"FETCH_TIMEOUT": "2500ms",
		"LOG_FORMAT":    "Console",
		"LOG_LEVEL":     "DEBUG",
	}))
	if cfg.FetchTimeout != 2500*time.Millisecond {
		t.Fatalf("expected 2.5s, got %v", cfg.FetchTimeout)
	}
	if cfg.LogFormat != "console" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log settings: %q %q", cfg.LogFormat, cfg.LogLevel)
	}
}
