package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"store-insights/internal/config"
	"store-insights/internal/models"
	"store-insights/internal/telemetry"
)

var (
	ErrRequest        = errors.New("upstream request failed")
	ErrUpstreamStatus = errors.New("upstream returned non-success status")
	ErrDecode         = errors.New("upstream body is not valid JSON")
)

type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: bad status code: %d", e.URL, e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUpstreamStatus
}

// Gateway is the only component that talks to the store API.
type Gateway struct {
	cfg    config.Upstream
	client *http.Client
}

type Option func(*Gateway)

func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) {
		g.client = c
	}
}

func New(cfg config.Upstream, opts ...Option) *Gateway {
	g := &Gateway{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FetchResource issues a single GET and decodes the JSON body into target.
func (g *Gateway) FetchResource(ctx context.Context, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, url, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("%w: %s: trailing data after JSON value", ErrDecode, url)
	}
	return nil
}

func (g *Gateway) fetch(ctx context.Context, resource, url string, target any) error {
	start := time.Now()
	err := g.FetchResource(ctx, url, target)
	telemetry.ObserveUpstream(resource, outcome(err), time.Since(start))

	if err != nil {
		slog.Debug("Upstream fetch failed", "resource", resource, "url", url, "error", err)
		return err
	}
	slog.Debug("Upstream fetch", "resource", resource, "url", url, "duration", time.Since(start))
	return nil
}

func (g *Gateway) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := g.fetch(ctx, "products", g.cfg.ProductsURL, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (g *Gateway) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := g.fetch(ctx, "users", g.cfg.UsersURL, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUpstreamStatus):
		return "status"
	case errors.Is(err, ErrDecode):
		return "decode"
	default:
		return "error"
	}
}
