package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for configuration values.
const (
	DefaultPort        = "8080"
	DefaultDBPath      = "/data/arb.db"
	DefaultFeedTimeout = 10 * time.Second
	DefaultCacheTTL    = 5 * time.Second
	DefaultFreeLimit   = 3
)

// Config holds all application configuration.
type Config struct {
	Port   string
	DBPath string

	// Odds feed settings. An empty FeedURL disables the feed (the calculator
	// and persistence endpoints still work).
	FeedURL     string
	FeedAPIKey  string
	FeedTimeout time.Duration

	// Redis cache for the opportunity list. Empty URL disables caching.
	RedisURL string
	CacheTTL time.Duration

	// Paywall: rows a free-plan user sees before teasers start.
	FreeRowLimit int

	CORSOrigins []string
}

// Load reads configuration from environment variables (and .env file if present).
func Load() Config {
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	cfg := Config{
		Port:         DefaultPort,
		DBPath:       DefaultDBPath,
		FeedURL:      os.Getenv("FEED_URL"),
		FeedAPIKey:   os.Getenv("FEED_API_KEY"),
		FeedTimeout:  DefaultFeedTimeout,
		RedisURL:     os.Getenv("REDIS_URL"),
		CacheTTL:     DefaultCacheTTL,
		FreeRowLimit: DefaultFreeLimit,
		CORSOrigins:  []string{"http://localhost:3000"},
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}

	if v := os.Getenv("FEED_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.FeedTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	if v := os.Getenv("CACHE_TTL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.CacheTTL = time.Duration(ms) * time.Millisecond
		}
	}

	if v := os.Getenv("FREE_ROW_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FreeRowLimit = n
		}
	}

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = strings.Split(v, ",")
	}

	return cfg
}

// Validate checks that configuration values are within acceptable ranges.
func Validate(cfg Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if cfg.DBPath == "" {
		return fmt.Errorf("DB_PATH must not be empty")
	}
	if cfg.FeedURL != "" && cfg.FeedAPIKey == "" {
		return fmt.Errorf("FEED_API_KEY is required when FEED_URL is set")
	}
	if cfg.FeedTimeout < 100*time.Millisecond {
		return fmt.Errorf("FEED_TIMEOUT_MS must be at least 100ms, got %v", cfg.FeedTimeout)
	}
	if cfg.CacheTTL < time.Second {
		return fmt.Errorf("CACHE_TTL_MS must be at least 1s, got %v", cfg.CacheTTL)
	}
	if cfg.FreeRowLimit < 0 {
		return fmt.Errorf("FREE_ROW_LIMIT must be non-negative, got %d", cfg.FreeRowLimit)
	}
	return nil
}
