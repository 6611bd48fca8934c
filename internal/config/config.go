package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type AppConfig struct {
	// Backend
	APIBaseURL string

	// Durable state
	StateBackend string // "file" or "redis"
	StatePath    string
	RedisAddr    string
	RedisPass    string
	RedisDB      int
	RedisPrefix  string

	// Logging
	Debug bool
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		APIBaseURL: getEnv("LAZZAT_API_URL", "http://localhost:8000/api"),

		StateBackend: getEnv("LAZZAT_STATE_BACKEND", "file"),
		StatePath:    getEnv("LAZZAT_STATE_PATH", defaultStatePath()),
		RedisAddr:    getEnv("LAZZAT_REDIS_ADDR", "localhost:6379"),
		RedisPass:    getEnv("LAZZAT_REDIS_PASS", ""),
		RedisDB:      getEnvInt("LAZZAT_REDIS_DB", 0),
		RedisPrefix:  getEnv("LAZZAT_REDIS_PREFIX", "lazzat"),

		Debug: strings.ToLower(getEnv("LAZZAT_DEBUG", "false")) == "true",
	}
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "lazzat", "state.json")
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
