package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"store-insights/internal/auth"
	"store-insights/internal/telemetry"
)

// NewRouter registers every route. authMW may be nil to leave /api open.
func NewRouter(h *Handler, authMW *auth.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /{$}", telemetry.Middleware("/", h.Page))

	routes := []struct {
		path    string
		handler http.HandlerFunc
	}{
		{"/api/products/above-average", h.AboveAveragePrice},
		{"/api/products/top-rated", h.TopRated},
		{"/api/products/categories", h.Categories},
		{"/api/products/averages", h.Averages},
		{"/api/products/top-rated-cheapest", h.TopRatedCheapest},
		{"/api/users/summary", h.UserSummaries},
	}

	for _, rt := range routes {
		handler := h.RateLimit(rt.handler)
		if authMW != nil {
			handler = authMW.ValidateToken(handler)
		}
		mux.HandleFunc("GET "+rt.path, telemetry.Middleware(rt.path, handler))
	}

	return mux
}
