package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"store-insights/internal/auth"
	"store-insights/internal/gateway"
	"store-insights/internal/insights"
	"store-insights/internal/models"
	"store-insights/internal/render"
)

// Insights is the set of derived views the handlers serve.
type Insights interface {
	AboveAveragePrice(ctx context.Context) ([]models.Product, error)
	TopRated(ctx context.Context, n int) ([]models.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Averages(ctx context.Context) (models.PriceRatingAverages, error)
	TopRatedCheapest(ctx context.Context, n int) ([]models.Product, error)
	UserSummaries(ctx context.Context) ([]models.UserProductSummary, error)
}

type Limiter interface {
	Allow(ctx context.Context, client string) bool
}

type Handler struct {
	svc     Insights
	limiter Limiter
}

// NewHandler builds the handlers. limiter may be nil to disable rate limiting.
func NewHandler(svc Insights, limiter Limiter) *Handler {
	return &Handler{
		svc:     svc,
		limiter: limiter,
	}
}

const (
	formatJSON = "json"
	formatHTML = "html"
	formatCSV  = "csv"
)

func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := render.Page(&buf); err != nil {
		slog.Error("Page render error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (h *Handler) AboveAveragePrice(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.AboveAveragePrice(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeProducts(w, r, products, render.AboveAverage)
}

func (h *Handler) TopRated(w http.ResponseWriter, r *http.Request) {
	n, ok := topN(w, r)
	if !ok {
		return
	}
	products, err := h.svc.TopRated(r.Context(), n)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeProducts(w, r, products, render.TopRated)
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeView(w, r, categories, func(out io.Writer) error {
		return render.Categories(out, categories)
	})
}

func (h *Handler) Averages(w http.ResponseWriter, r *http.Request) {
	avg, err := h.svc.Averages(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeView(w, r, avg, func(out io.Writer) error {
		return render.Averages(out, avg)
	})
}

func (h *Handler) TopRatedCheapest(w http.ResponseWriter, r *http.Request) {
	n, ok := topN(w, r)
	if !ok {
		return
	}
	products, err := h.svc.TopRatedCheapest(r.Context(), n)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeProducts(w, r, products, render.TopRatedCheapest)
}

func (h *Handler) UserSummaries(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	summaries, err := h.svc.UserSummaries(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	subject, _ := auth.Subject(r.Context())
	slog.Info("User summaries computed", "users", len(summaries), "subject", subject, "duration", time.Since(start))
	h.writeView(w, r, summaries, func(out io.Writer) error {
		return render.UserSummaries(out, summaries)
	})
}

// RateLimit rejects clients that exceeded their window with 429.
func (h *Handler) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	if h.limiter == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !h.limiter.Allow(r.Context(), ip) {
			slog.Warn("Rate limit exceeded", "ip", ip)
			writeError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next(w, r)
	}
}

func (h *Handler) writeProducts(w http.ResponseWriter, r *http.Request, products []models.Product, html func(io.Writer, []models.Product) error) {
	if format(r) == formatCSV {
		var buf bytes.Buffer
		if err := render.ProductsCSV(&buf, products); err != nil {
			slog.Error("CSV render error", "path", r.URL.Path, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Write(buf.Bytes())
		return
	}
	h.writeView(w, r, products, func(out io.Writer) error {
		return html(out, products)
	})
}

func (h *Handler) writeView(w http.ResponseWriter, r *http.Request, value any, html func(io.Writer) error) {
	switch format(r) {
	case formatHTML:
		var buf bytes.Buffer
		if err := html(&buf); err != nil {
			slog.Error("HTML render error", "path", r.URL.Path, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	case formatJSON:
		writeJSON(w, http.StatusOK, value)
	default:
		writeError(w, http.StatusNotAcceptable, "format not supported for this view")
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, insights.ErrEmptyInput):
		slog.Warn("Empty input", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusUnprocessableEntity, "no products to aggregate")
	case errors.Is(err, context.DeadlineExceeded):
		slog.Error("Upstream timeout", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusGatewayTimeout, "store API timed out")
	case errors.Is(err, gateway.ErrUpstreamStatus),
		errors.Is(err, gateway.ErrRequest),
		errors.Is(err, gateway.ErrDecode):
		slog.Error("Upstream error", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadGateway, "store API unavailable")
	default:
		slog.Error("Request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func format(r *http.Request) string {
	if f := r.URL.Query().Get("format"); f != "" {
		return strings.ToLower(f)
	}
	accept := r.Header.Get("Accept")
	switch {
	case strings.Contains(accept, "text/html"):
		return formatHTML
	case strings.Contains(accept, "text/csv"):
		return formatCSV
	default:
		return formatJSON
	}
}

func topN(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("n")
	if raw == "" {
		return insights.DefaultTopN, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		writeError(w, http.StatusBadRequest, "n must be a positive integer")
		return 0, false
	}
	return n, true
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	body, err := json.Marshal(value)
	if err != nil {
		slog.Error("JSON marshal error", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
