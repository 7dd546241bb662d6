package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"drone-dispatch-service/internal/adapters/cache"
	"drone-dispatch-service/internal/api/dto"
	"drone-dispatch-service/internal/domain"
)

// fixtureRepository hands fixed planning inputs to the handlers.
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

func fixtures() *fixtureRepository {
	return &fixtureRepository{
		orders: []*domain.Order{
			{ID: 1, Ref: "ORD-1", X: 3, Y: 4, Deadline: 10, Weight: 2},
		},
		drones: []*domain.Drone{
			{ID: "DRN-1", MaxPayload: 5, MaxDistance: 20, Speed: 1, Available: true},
		},
	}
}

func TestPlanHandler(t *testing.T) {
	h := &PlanHandler{Repo: fixtures(), Cache: cache.NewMemoryPlanCache()}

	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(`{"bypass_cache": false}`))
	rec := httptest.NewRecorder()
	h.Plan(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	var res dto.PlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.PlanID == "" {
		t.Fatalf("expected a plan id")
	}
	if !res.FullCoverage || res.OrdersServed != 1 {
		t.Fatalf("response = %+v, want full coverage of the single order", res)
	}
	if res.TotalDistance != 14 || res.TotalTime != 7 {
		t.Fatalf("distance/time = %v/%v, want 14/7", res.TotalDistance, res.TotalTime)
	}
	if len(res.Assignments) != 1 {
		t.Fatalf("assignments = %d, want 1", len(res.Assignments))
	}
	a := res.Assignments[0]
	if a.Drone != "DRN-1" || len(a.Orders) != 1 || a.Orders[0] != "ORD-1" || a.TotalDistance != 14 {
		t.Fatalf("assignment = %+v", a)
	}
	if res.CacheHit {
		t.Fatalf("first run cannot be a cache hit")
	}
}

func TestPlanHandlerCacheHit(t *testing.T) {
	h := &PlanHandler{Repo: fixtures(), Cache: cache.NewMemoryPlanCache()}

	first := httptest.NewRecorder()
	h.Plan(first, httptest.NewRequest(http.MethodPost, "/plans", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d, want 200", first.Code)
	}

	second := httptest.NewRecorder()
	h.Plan(second, httptest.NewRequest(http.MethodPost, "/plans", nil))
	if second.Code != http.StatusOK {
		t.Fatalf("second status = %d, want 200", second.Code)
	}

	var res dto.PlanResponse
	if err := json.Unmarshal(second.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.CacheHit {
		t.Fatalf("second identical request should be served from the cache")
	}
}

func TestPlanHandlerEmptyBody(t *testing.T) {
	h := &PlanHandler{Repo: fixtures(), Cache: cache.NewMemoryPlanCache()}

	rec := httptest.NewRecorder()
	h.Plan(rec, httptest.NewRequest(http.MethodPost, "/plans", nil))

	// an absent body means default options, not a client error
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
}

func TestPlanHandlerRejectsBadRequests(t *testing.T) {
	h := &PlanHandler{Repo: fixtures(), Cache: cache.NewMemoryPlanCache()}

	rec := httptest.NewRecorder()
	h.Plan(rec, httptest.NewRequest(http.MethodGet, "/plans", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET status = %d, want 405", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.Plan(rec, httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(`{"unknown_field": 1}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown field status = %d, want 400", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.Plan(rec, httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(`{}{}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("trailing object status = %d, want 400", rec.Code)
	}
}

func TestPlanHandlerNoDrones(t *testing.T) {
	repo := &fixtureRepository{
		orders: []*domain.Order{{ID: 1, Ref: "ORD-1", X: 1, Y: 1, Deadline: 10, Weight: 1}},
	}
	h := &PlanHandler{Repo: repo, Cache: cache.NewMemoryPlanCache()}

	rec := httptest.NewRecorder()
	h.Plan(rec, httptest.NewRequest(http.MethodPost, "/plans", nil))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 when no drones are available", rec.Code)
	}
}

func TestDispatchHandlerListOrders(t *testing.T) {
	h := &DispatchHandler{Repo: fixtures()}

	rec := httptest.NewRecorder()
	h.ListOrders(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.ListOrdersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Orders) != 1 || res.Orders[0].ID != "ORD-1" || res.Orders[0].DeliveryX != 3 {
		t.Fatalf("orders = %+v", res.Orders)
	}
}

func TestDispatchHandlerListDrones(t *testing.T) {
	h := &DispatchHandler{Repo: fixtures()}

	rec := httptest.NewRecorder()
	h.ListDrones(rec, httptest.NewRequest(http.MethodGet, "/drones", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.ListDronesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Drones) != 1 || res.Drones[0].ID != "DRN-1" || res.Drones[0].Speed != 1 {
		t.Fatalf("drones = %+v", res.Drones)
	}
}
