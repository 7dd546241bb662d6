package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"drone-dispatch-service/internal/api/handlers"
	"drone-dispatch-service/internal/platform/obs"
	"drone-dispatch-service/internal/ports"
)

// RouterConfig carries the tunables the router needs beyond its ports.
type RouterConfig struct {
	// PlanRateLimit throttles POST /plans; nil disables throttling.
	PlanRateLimit *rate.Limiter
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.DispatchRepository, planCache ports.PlanCache, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	dispatchHandler := &handlers.DispatchHandler{Repo: repo}
	planHandler := &handlers.PlanHandler{
		Repo:  repo,
		Cache: planCache,
	}

	var plans http.Handler = http.HandlerFunc(planHandler.Plan)
	if cfg.PlanRateLimit != nil {
		plans = rateLimitMiddleware(cfg.PlanRateLimit, plans)
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/orders", dispatchHandler.ListOrders)
	mux.HandleFunc("/drones", dispatchHandler.ListDrones)
	mux.Handle("/plans", plans)
	mux.Handle("/metrics", promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{}))

	return loggingMiddleware(mux)
}
