package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Upstream   Upstream
	RedisAddr  string
	RateLimit  int
	RateWindow time.Duration
	JWTSecret  string
	HTTPPort   string
	LogLevel   slog.Level
}

// Upstream holds the store API endpoints the gateway reads from.
type Upstream struct {
	ProductsURL string
	UsersURL    string
	Timeout     time.Duration
}

func NewConfig() *Config {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	return &Config{
		Upstream: Upstream{
			ProductsURL: getEnv("PRODUCTS_URL", "https://fakestoreapi.com/products"),
			UsersURL:    getEnv("USERS_URL", "https://fakestoreapi.com/users"),
			Timeout:     getDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		},
		RedisAddr:  getEnv("REDIS_ADDR", ""),
		RateLimit:  getInt("RATE_LIMIT", 60),
		RateWindow: getDuration("RATE_WINDOW", time.Minute),
		JWTSecret:  getEnv("JWT_SECRET", ""),
		HTTPPort:   getEnv("HTTP_PORT", "8080"),
		LogLevel:   getLevel("LOG_LEVEL", slog.LevelInfo),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("Invalid integer in environment, using default", "key", key, "value", value)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("Invalid duration in environment, using default", "key", key, "value", value)
		return fallback
	}
	return d
}

func getLevel(key string, fallback slog.Level) slog.Level {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		slog.Warn("Invalid log level in environment, using default", "key", key, "value", value)
		return fallback
	}
	return level
}
