// Package config loads service configuration from environment variables,
// with .env file support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service configuration.
type Config struct {
	Server    ServerConfig
	Upstream  UpstreamConfig
	Storage   StorageConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	ListenAddr     string
	AllowedOrigins []string
}

// UpstreamConfig holds the fee API client configuration.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// StorageConfig holds persistence configuration. UseMemory replaces both
// databases with in-memory stores for local development.
type StorageConfig struct {
	PostgresDSN   string
	ClickhouseDSN string
	UseMemory     bool
}

// CacheConfig holds Redis cache configuration. An empty address disables
// caching.
type CacheConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

// RateLimitConfig holds the per-client rate limiter settings.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load reads configuration from the environment, loading .env first if it
// exists. Missing optional values fall back to defaults; Validate catches
// inconsistent combinations.
func Load() (*Config, error) {
	// Ignore a missing .env; system env vars take precedence either way.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			ListenAddr:     getEnv("FEESCAN_LISTEN_ADDR", ":8080"),
			AllowedOrigins: splitList(getEnv("FEESCAN_ALLOWED_ORIGINS", "*")),
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnv("FEESCAN_UPSTREAM_URL", ""),
			Timeout: getDuration("FEESCAN_UPSTREAM_TIMEOUT", 30*time.Second),
		},
		Storage: StorageConfig{
			PostgresDSN:   getEnv("FEESCAN_POSTGRES_DSN", ""),
			ClickhouseDSN: getEnv("FEESCAN_CLICKHOUSE_DSN", ""),
			UseMemory:     getBool("FEESCAN_USE_MEMORY", false),
		},
		Cache: CacheConfig{
			RedisAddr:     getEnv("FEESCAN_REDIS_ADDR", ""),
			RedisPassword: getEnv("FEESCAN_REDIS_PASSWORD", ""),
			RedisDB:       getInt("FEESCAN_REDIS_DB", 0),
			TTL:           getDuration("FEESCAN_CACHE_TTL", 60*time.Second),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getFloat("FEESCAN_RATE_LIMIT_RPS", 2),
			Burst:             getInt("FEESCAN_RATE_LIMIT_BURST", 5),
		},
	}

	return cfg, nil
}

// Validate checks required fields and consistency.
func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("FEESCAN_UPSTREAM_URL is required")
	}
	if !c.Storage.UseMemory && c.Storage.PostgresDSN == "" {
		return fmt.Errorf("FEESCAN_POSTGRES_DSN is required (or set FEESCAN_USE_MEMORY=true)")
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("FEESCAN_RATE_LIMIT_RPS must be positive")
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("FEESCAN_RATE_LIMIT_BURST must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
