package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the environment-backed server configuration. Load it after
// godotenv has populated the process environment.
type Config struct {
	Port string

	// Provider
	ProjectID string
	Location  string
	ModelID   string

	// DemoMode short-circuits provider calls with canned content and
	// tightens the rate limit. PublicDemoMode is a separate client-visible
	// flag used purely for UI messaging.
	DemoMode       bool
	PublicDemoMode bool

	RateLimit  int
	RateWindow time.Duration

	// RedisAddr switches the limiter to the Redis backend when set.
	RedisAddr string
}

const (
	defaultLimit     = 10
	defaultDemoLimit = 5
	defaultWindow    = time.Minute
)

func Load() *Config {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		ProjectID:      os.Getenv("GOOGLE_CLOUD_PROJECT"),
		Location:       os.Getenv("GOOGLE_CLOUD_LOCATION"),
		ModelID:        getEnv("MODEL_ID", "gemini-2.5-flash"),
		DemoMode:       os.Getenv("DEMO_MODE") == "true",
		PublicDemoMode: os.Getenv("PUBLIC_DEMO_MODE") == "true",
		RateWindow:     getDurationEnv("RATE_WINDOW", defaultWindow),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
	}

	limit := defaultLimit
	if cfg.DemoMode {
		limit = defaultDemoLimit
	}
	cfg.RateLimit = getIntEnv("RATE_LIMIT", limit)

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
