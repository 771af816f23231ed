package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	for _, key := range []string{"PRODUCTS_URL", "USERS_URL", "UPSTREAM_TIMEOUT", "REDIS_ADDR", "RATE_LIMIT", "RATE_WINDOW", "JWT_SECRET", "HTTP_PORT", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := NewConfig()

	if cfg.Upstream.ProductsURL != "https://fakestoreapi.com/products" {
		t.Fatalf("unexpected products url %q", cfg.Upstream.ProductsURL)
	}
	if cfg.Upstream.Timeout != 10*time.Second {
		t.Fatalf("expected fallback timeout, got %v", cfg.Upstream.Timeout)
	}
	if cfg.RateLimit != 60 {
		t.Fatalf("expected fallback rate limit, got %d", cfg.RateLimit)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("expected info level, got %v", cfg.LogLevel)
	}
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("PRODUCTS_URL", "http://localhost:8083/products")
	t.Setenv("USERS_URL", "http://localhost:8081/users")
	t.Setenv("UPSTREAM_TIMEOUT", "2s")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_PORT", "9090")

	cfg := NewConfig()

	if cfg.Upstream.UsersURL != "http://localhost:8081/users" {
		t.Fatalf("unexpected users url %q", cfg.Upstream.UsersURL)
	}
	if cfg.Upstream.Timeout != 2*time.Second || cfg.RateWindow != 30*time.Second {
		t.Fatalf("unexpected durations: %v %v", cfg.Upstream.Timeout, cfg.RateWindow)
	}
	if cfg.RateLimit != 5 || cfg.HTTPPort != "9090" {
		t.Fatalf("unexpected limit/port: %d %s", cfg.RateLimit, cfg.HTTPPort)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.LogLevel)
	}
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestNewConfigWarnsOnMalformedDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BAD-KEY=1\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	chdir(t, dir)
	logs := captureLogs(t)

	NewConfig()

	if !strings.Contains(logs.String(), "Failed to load .env file") {
		t.Fatalf("expected a warning for malformed .env, got %q", logs.String())
	}
}

func TestNewConfigWithoutDotEnvIsQuiet(t *testing.T) {
	chdir(t, t.TempDir())
	logs := captureLogs(t)

	NewConfig()

	if strings.Contains(logs.String(), ".env") {
		t.Fatalf("missing .env should not be reported, got %q", logs.String())
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(prev) })
}
