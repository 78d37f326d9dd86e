// Package config loads service settings from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything cmd/api needs to wire the service.
type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string
	RedisAddr   string
	OtelHost    string
	TraceProb   float64
	SessionTTL  time.Duration
	CertFile    string
	KeyFile     string
}

// Load reads the environment, falling back to development defaults.
func Load() Config {
	return Config{
		AppEnv:      getEnv("APP_ENV", "dev"),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8443"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost/storeflow?sslmode=disable"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		OtelHost:    getEnv("OTEL_HOST", ""),
		TraceProb:   getEnvFloat("TRACE_PROBABILITY", 1.0),
		SessionTTL:  getEnvDuration("SESSION_TTL", time.Hour),
		CertFile:    getEnv("TLS_CERT_FILE", "certs/server.crt"),
		KeyFile:     getEnv("TLS_KEY_FILE", "certs/server.key"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
