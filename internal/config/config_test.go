package config

import (
	"os"
	"testing"
	"time"
)

func clearEnv() {
	for _, key := range []string{
		"PORT", "DB_PATH", "FEED_URL", "FEED_API_KEY", "FEED_TIMEOUT_MS",
		"REDIS_URL", "CACHE_TTL_MS", "FREE_ROW_LIMIT", "CORS_ORIGINS",
	} {
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv()

	cfg := Load()

	if cfg.Port != DefaultPort {
		t.Errorf("Port = %q, want %q", cfg.Port, DefaultPort)
	}
	if cfg.DBPath != DefaultDBPath {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, DefaultDBPath)
	}
	if cfg.FeedTimeout != DefaultFeedTimeout {
		t.Errorf("FeedTimeout = %v, want %v", cfg.FeedTimeout, DefaultFeedTimeout)
	}
	if cfg.CacheTTL != DefaultCacheTTL {
		t.Errorf("CacheTTL = %v, want %v", cfg.CacheTTL, DefaultCacheTTL)
	}
	if cfg.FreeRowLimit != DefaultFreeLimit {
		t.Errorf("FreeRowLimit = %d, want %d", cfg.FreeRowLimit, DefaultFreeLimit)
	}
	if cfg.FeedURL != "" || cfg.RedisURL != "" {
		t.Error("feed and redis should default to disabled")
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("FEED_TIMEOUT_MS", "2500")
	os.Setenv("FREE_ROW_LIMIT", "5")
	os.Setenv("CORS_ORIGINS", "https://app.example.com,https://staging.example.com")
	defer clearEnv()

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.FeedTimeout != 2500*time.Millisecond {
		t.Errorf("FeedTimeout = %v, want 2.5s", cfg.FeedTimeout)
	}
	if cfg.FreeRowLimit != 5 {
		t.Errorf("FreeRowLimit = %d, want 5", cfg.FreeRowLimit)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://app.example.com" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Port:        "8080",
		DBPath:      ":memory:",
		FeedTimeout: time.Second,
		CacheTTL:    5 * time.Second,
	}
	if err := Validate(valid); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Empty port", func(c *Config) { c.Port = "" }},
		{"Empty db path", func(c *Config) { c.DBPath = "" }},
		{"Feed without key", func(c *Config) { c.FeedURL = "https://feed.example.com" }},
		{"Tiny feed timeout", func(c *Config) { c.FeedTimeout = 10 * time.Millisecond }},
		{"Tiny cache ttl", func(c *Config) { c.CacheTTL = 100 * time.Millisecond }},
		{"Negative free limit", func(c *Config) { c.FreeRowLimit = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := Validate(cfg); err == nil {
				t.Error("invalid config accepted")
			}
		})
	}
}
