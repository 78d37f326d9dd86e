package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.AppEnv != "dev" {
		t.Fatalf("expected dev, got %s", cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":8443" {
		t.Fatalf("expected :8443, got %s", cfg.HTTPAddr)
	}
	if cfg.SessionTTL != time.Hour {
		t.Fatalf("expected 1h, got %s", cfg.SessionTTL)
	}
	if cfg.TraceProb != 1.0 {
		t.Fatalf("expected 1.0, got %f", cfg.TraceProb)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("TRACE_PROBABILITY", "0.25")

	cfg := Load()
	if cfg.AppEnv != "prod" {
		t.Fatalf("expected prod, got %s", cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":9000" {
		t.Fatalf("expected :9000, got %s", cfg.HTTPAddr)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("expected 30m, got %s", cfg.SessionTTL)
	}
	if cfg.TraceProb != 0.25 {
		t.Fatalf("expected 0.25, got %f", cfg.TraceProb)
	}
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("TRACE_PROBABILITY", "lots")

	cfg := Load()
	if cfg.SessionTTL != time.Hour {
		t.Fatalf("expected 1h fallback, got %s", cfg.SessionTTL)
	}
	if cfg.TraceProb != 1.0 {
		t.Fatalf("expected 1.0 fallback, got %f", cfg.TraceProb)
	}
}
