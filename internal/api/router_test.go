package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/time/rate"

	"drone-dispatch-service/internal/adapters/cache"
	"drone-dispatch-service/internal/domain"
)

type fixtureRepository struct {
	orders []*domain.Order
	drones []*domain.Drone
}

func (f *fixtureRepository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return f.orders, nil
}

func (f *fixtureRepository) ListDrones(ctx context.Context) ([]*domain.Drone, error) {
	return f.drones, nil
}

func testRouter(limiter *rate.Limiter) http.Handler {
	repo := &fixtureRepository{
		orders: []*domain.Order{{ID: 1, Ref: "ORD-1", X: 3, Y: 4, Deadline: 10, Weight: 2}},
		drones: []*domain.Drone{{ID: "DRN-1", MaxPayload: 5, MaxDistance: 20, Speed: 1, Available: true}},
	}
	return NewRouter(repo, cache.NewMemoryPlanCache(), RouterConfig{PlanRateLimit: limiter})
}

func TestRouterRoutes(t *testing.T) {
	router := testRouter(nil)

	for _, c := range []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/orders", http.StatusOK},
		{http.MethodGet, "/drones", http.StatusOK},
		{http.MethodPost, "/plans", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodPost, "/health", http.StatusMethodNotAllowed},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(c.method, c.path, nil))
		if rec.Code != c.want {
			t.Errorf("%s %s = %d, want %d", c.method, c.path, rec.Code, c.want)
		}
	}
}

func TestRouterPlanRateLimit(t *testing.T) {
	// one token, no refill within the test
	router := testRouter(rate.NewLimiter(rate.Limit(0.001), 1))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/plans", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("first request = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/plans", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request = %d, want 429", rec.Code)
	}

	// other endpoints stay unthrottled
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("orders request = %d, want 200", rec.Code)
	}
}
