package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"store-insights/internal/api"
	"store-insights/internal/auth"
	"store-insights/internal/config"
	"store-insights/internal/gateway"
	"store-insights/internal/insights"
	"store-insights/internal/ratelimit"
)

func main() {
	cfg := config.NewConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	slog.Info("Starting Store Insights", "port", cfg.HTTPPort,
		"products_url", cfg.Upstream.ProductsURL, "users_url", cfg.Upstream.UsersURL)

	var limiter api.Limiter
	if cfg.RedisAddr != "" {
		l, err := ratelimit.NewLimiter(cfg.RedisAddr, cfg.RateLimit, cfg.RateWindow)
		if err != nil {
			slog.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer l.Close()
		limiter = l
		slog.Info("Connected to Redis", "addr", cfg.RedisAddr, "limit", cfg.RateLimit, "window", cfg.RateWindow)
	} else {
		slog.Info("Rate limiting disabled, REDIS_ADDR not set")
	}

	var authMiddleware *auth.Middleware
	if cfg.JWTSecret != "" {
		authMiddleware = auth.NewMiddleware(cfg.JWTSecret)
		slog.Info("Bearer token auth enabled for /api")
	}

	gw := gateway.New(cfg.Upstream)
	handler := api.NewHandler(insights.NewService(gw), limiter)
	mux := api.NewRouter(handler, authMiddleware)

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)
	slog.Info("Server listening", "addr", serverAddr)

	if err := http.ListenAndServe(serverAddr, mux); err != nil {
		slog.Error("Server shutdown error", "error", err)
		os.Exit(1)
	}
}
