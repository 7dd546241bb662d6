package services

import (
	"context"
	"errors"
	"testing"

	"drone-dispatch-service/internal/domain"
	"drone-dispatch-service/internal/ports"
)

// stubRepository hands fixed fixtures to the planner.
type stubRepository struct {
	orders []*domain.Order
	drones []*domain.Drone
}

func (s *stubRepository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.orders, nil
}

func (s *stubRepository) ListDrones(ctx context.Context) ([]*domain.Drone, error) {
	return s.drones, nil
}

// stubCache counts traffic so tests can tell a hit from a fresh run.
type stubCache struct {
	plans map[string]*domain.DispatchPlan
	gets  int
	puts  int
}

func newStubCache() *stubCache {
	return &stubCache{plans: make(map[string]*domain.DispatchPlan)}
}

func (c *stubCache) Get(ctx context.Context, fingerprint string) (*domain.DispatchPlan, error) {
	c.gets++
	if plan, ok := c.plans[fingerprint]; ok {
		return plan, nil
	}
	return nil, ports.ErrNotFound
}

func (c *stubCache) Put(ctx context.Context, fingerprint string, plan *domain.DispatchPlan) error {
	c.puts++
	c.plans[fingerprint] = plan
	return nil
}

func TestPlanDispatchSingleOrderSingleDrone(t *testing.T) {
	// one order at (3,4): 7 out, 7 back
	repo := &stubRepository{
		orders: []*domain.Order{{ID: 1, Ref: "ORD-1", X: 3, Y: 4, Deadline: 10, Weight: 2}},
		drones: []*domain.Drone{{ID: "DRN-1", MaxPayload: 5, MaxDistance: 20, Speed: 1, Available: true}},
	}

	plan, stats, err := PlanDispatch(context.Background(), PlanDispatchRequest{}, repo, nil)
	if err != nil {
		t.Fatalf("PlanDispatch: %v", err)
	}

	if !plan.FullCoverage || plan.OrdersServed != 1 {
		t.Fatalf("expected full coverage of the single order, got %+v", plan)
	}
	if plan.TotalDistance != 14 {
		t.Fatalf("total distance = %v, want 14", plan.TotalDistance)
	}
	if plan.TotalTime != 7 {
		t.Fatalf("total time = %v, want 7 (outbound only)", plan.TotalTime)
	}

	if len(plan.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(plan.Entries))
	}
	e := plan.Entries[0]
	if e.DroneID != "DRN-1" || len(e.OrderRefs) != 1 || e.OrderRefs[0] != "ORD-1" {
		t.Fatalf("entry = %+v, want DRN-1 serving ORD-1", e)
	}
	if e.RoundTripDistance != 14 {
		t.Fatalf("entry distance = %v, want 14", e.RoundTripDistance)
	}

	if stats.Orders != 1 || stats.Drones != 1 || stats.Routes != 1 {
		t.Fatalf("stats = %+v, want 1 order, 1 drone, 1 route", stats)
	}
}

func TestPlanDispatchPayloadForcesPartialCoverage(t *testing.T) {
	// 3 + 3 exceeds the payload of 4, so no route carries both orders;
	// the best plan serves the nearer order alone
	repo := &stubRepository{
		orders: []*domain.Order{
			{ID: 1, Ref: "ORD-1", X: 2, Y: 0, Deadline: 1000, Weight: 3},
			{ID: 2, Ref: "ORD-2", X: 9, Y: 0, Deadline: 1000, Weight: 3},
		},
		drones: []*domain.Drone{{ID: "DRN-1", MaxPayload: 4, MaxDistance: 100, Speed: 1, Available: true}},
	}

	plan, _, err := PlanDispatch(context.Background(), PlanDispatchRequest{}, repo, nil)
	if err != nil {
		t.Fatalf("PlanDispatch: %v", err)
	}

	if plan.FullCoverage {
		t.Fatalf("combined weight exceeds the payload, coverage cannot be full")
	}
	if plan.OrdersServed != 1 {
		t.Fatalf("orders served = %d, want 1", plan.OrdersServed)
	}
	if refs := plan.Entries[0].OrderRefs; len(refs) != 1 || refs[0] != "ORD-1" {
		t.Fatalf("served %v, want the nearer ORD-1", refs)
	}
}

func TestPlanDispatchCoverageBeatsTime(t *testing.T) {
	// each drone can lift exactly one specific order, so full coverage
	// needs both drones flying; the selector must prefer that over any
	// quicker single-order plan
	repo := &stubRepository{
		orders: []*domain.Order{
			{ID: 1, Ref: "ORD-1", X: 1, Y: 0, Deadline: 1000, Weight: 5},
			{ID: 2, Ref: "ORD-2", X: 40, Y: 0, Deadline: 1000, Weight: 2},
		},
		drones: []*domain.Drone{
			{ID: "DRN-1", MaxPayload: 5, MaxDistance: 10, Speed: 1, Available: true},
			{ID: "DRN-2", MaxPayload: 2, MaxDistance: 100, Speed: 1, Available: true},
		},
	}

	plan, _, err := PlanDispatch(context.Background(), PlanDispatchRequest{}, repo, nil)
	if err != nil {
		t.Fatalf("PlanDispatch: %v", err)
	}

	if !plan.FullCoverage {
		t.Fatalf("a full-coverage assignment exists and must be chosen, got %+v", plan)
	}
	for _, e := range plan.Entries {
		if len(e.OrderRefs) != 1 {
			t.Fatalf("each drone should carry exactly one order, got %+v", plan.Entries)
		}
	}
}

func TestPlanDispatchZeroSpeedDroneStaysIdle(t *testing.T) {
	repo := &stubRepository{
		orders: []*domain.Order{{ID: 1, Ref: "ORD-1", X: 1, Y: 1, Deadline: 1000, Weight: 1}},
		drones: []*domain.Drone{
			{ID: "DRN-STUCK", MaxPayload: 10, MaxDistance: 100, Speed: 0, Available: true},
			{ID: "DRN-2", MaxPayload: 10, MaxDistance: 100, Speed: 1, Available: true},
		},
	}

	plan, _, err := PlanDispatch(context.Background(), PlanDispatchRequest{}, repo, nil)
	if err != nil {
		t.Fatalf("PlanDispatch: %v", err)
	}

	if len(plan.Entries[0].OrderRefs) != 0 {
		t.Fatalf("a drone that cannot move must stay idle, got %+v", plan.Entries[0])
	}
	if !plan.FullCoverage {
		t.Fatalf("the mobile drone should still cover the order")
	}
}

func TestPlanDispatchZeroOrders(t *testing.T) {
	repo := &stubRepository{
		drones: []*domain.Drone{{ID: "DRN-1", MaxPayload: 5, MaxDistance: 20, Speed: 1, Available: true}},
	}

	plan, stats, err := PlanDispatch(context.Background(), PlanDispatchRequest{}, repo, nil)
	if err != nil {
		t.Fatalf("PlanDispatch: %v", err)
	}

	// nothing to deliver: the all-idle plan trivially covers the empty set
	if !plan.FullCoverage || plan.TotalTime != 0 || plan.OrdersServed != 0 {
		t.Fatalf("expected a zero-cost all-idle plan, got %+v", plan)
	}
	if stats.Routes != 0 {
		t.Fatalf("routes = %d, want 0", stats.Routes)
	}
}

func TestPlanDispatchZeroDrones(t *testing.T) {
	repo := &stubRepository{
		orders: []*domain.Order{{ID: 1, Ref: "ORD-1", X: 1, Y: 1, Deadline: 10, Weight: 1}},
	}

	_, _, err := PlanDispatch(context.Background(), PlanDispatchRequest{}, repo, nil)
	if !errors.Is(err, ErrNoDrones) {
		t.Fatalf("err = %v, want ErrNoDrones", err)
	}
}

func TestPlanDispatchIdempotent(t *testing.T) {
	repo := &stubRepository{
		orders: []*domain.Order{
			{ID: 1, Ref: "ORD-1", X: 2, Y: 3, Deadline: 100, Weight: 1},
			{ID: 2, Ref: "ORD-2", X: -4, Y: 1, Deadline: 100, Weight: 2},
			{ID: 3, Ref: "ORD-3", X: 5, Y: -2, Deadline: 100, Weight: 1},
		},
		drones: []*domain.Drone{
			{ID: "DRN-1", MaxPayload: 3, MaxDistance: 50, Speed: 2, Available: true},
			{ID: "DRN-2", MaxPayload: 4, MaxDistance: 40, Speed: 1, Available: true},
		},
	}

	first, _, err := PlanDispatch(context.Background(), PlanDispatchRequest{}, repo, nil)
	if err != nil {
		t.Fatalf("PlanDispatch: %v", err)
	}
	second, _, err := PlanDispatch(context.Background(), PlanDispatchRequest{}, repo, nil)
	if err != nil {
		t.Fatalf("PlanDispatch: %v", err)
	}

	if first.TotalTime != second.TotalTime {
		t.Fatalf("total time changed between runs: %v vs %v", first.TotalTime, second.TotalTime)
	}
	if first.OrdersServed != second.OrdersServed {
		t.Fatalf("orders served changed between runs: %d vs %d", first.OrdersServed, second.OrdersServed)
	}
	for i := range first.Entries {
		a, b := first.Entries[i], second.Entries[i]
		if a.DroneID != b.DroneID || len(a.OrderRefs) != len(b.OrderRefs) {
			t.Fatalf("entry %d differs between runs: %+v vs %+v", i, a, b)
		}
		for j := range a.OrderRefs {
			if a.OrderRefs[j] != b.OrderRefs[j] {
				t.Fatalf("entry %d differs between runs: %+v vs %+v", i, a, b)
			}
		}
	}
}

func TestPlanDispatchCache(t *testing.T) {
	repo := &stubRepository{
		orders: []*domain.Order{{ID: 1, Ref: "ORD-1", X: 3, Y: 4, Deadline: 10, Weight: 2}},
		drones: []*domain.Drone{{ID: "DRN-1", MaxPayload: 5, MaxDistance: 20, Speed: 1, Available: true}},
	}
	planCache := newStubCache()

	first, stats, err := PlanDispatch(context.Background(), PlanDispatchRequest{}, repo, planCache)
	if err != nil {
		t.Fatalf("PlanDispatch: %v", err)
	}
	if stats.CacheHit {
		t.Fatalf("first run cannot be a cache hit")
	}
	if planCache.puts != 1 {
		t.Fatalf("puts = %d, want the finished plan stored once", planCache.puts)
	}

	second, stats, err := PlanDispatch(context.Background(), PlanDispatchRequest{}, repo, planCache)
	if err != nil {
		t.Fatalf("PlanDispatch: %v", err)
	}
	if !stats.CacheHit {
		t.Fatalf("second run with identical inputs should hit the cache")
	}
	if second.ID != first.ID {
		t.Fatalf("cached plan id = %q, want %q", second.ID, first.ID)
	}

	// a bypass runs the search again and refreshes the stored plan
	third, stats, err := PlanDispatch(context.Background(), PlanDispatchRequest{BypassCache: true}, repo, planCache)
	if err != nil {
		t.Fatalf("PlanDispatch: %v", err)
	}
	if stats.CacheHit {
		t.Fatalf("bypass must not read the cache")
	}
	if third.ID == first.ID {
		t.Fatalf("bypass run should mint a fresh plan id")
	}
}

func TestInputFingerprint(t *testing.T) {
	orders := []*domain.Order{{ID: 1, Ref: "ORD-1", X: 1, Y: 2, Deadline: 3, Weight: 4}}
	drones := []*domain.Drone{{ID: "DRN-1", MaxPayload: 5, MaxDistance: 6, Speed: 7}}

	same := InputFingerprint(orders, drones)
	if same != InputFingerprint(orders, drones) {
		t.Fatalf("fingerprint must be stable for identical inputs")
	}

	moved := []*domain.Order{{ID: 1, Ref: "ORD-1", X: 9, Y: 2, Deadline: 3, Weight: 4}}
	if InputFingerprint(moved, drones) == same {
		t.Fatalf("moving an order must change the fingerprint")
	}
}
