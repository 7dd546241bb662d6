package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"drone-dispatch-service/internal/domain"
	"drone-dispatch-service/internal/platform/obs"
	"drone-dispatch-service/internal/ports"

	"github.com/google/uuid"
)

// ErrNoDrones is returned when the fleet has no available drones. With no
// drones there is nothing to assign routes to, so no plan can exist, not
// even an all-idle one.
var ErrNoDrones = errors.New("no available drones")

type PlanDispatchRequest struct {
	// BypassCache forces a fresh planner run even if a cached plan exists
	// for the current inputs.
	BypassCache bool
}

// PlanStats reports the size of the search space a planner run walked.
// Cached results skip the search, leaving the enumeration counts at zero.
type PlanStats struct {
	Orders           int
	Drones           int
	Routes           int
	FeasiblePairs    int
	ValidAssignments int
	CacheHit         bool
}

// PlanDispatch runs the full planning pipeline: load orders and the available
// fleet, enumerate every candidate route, check each against every drone,
// expand the order-disjoint assignments, and pick the best one.
//
// The search is exact and exhaustive, so identical inputs always produce a
// plan with the same total time and covered orders. That makes finished plans
// safe to cache: the inputs are fingerprinted and the cache is consulted
// before the search runs. Cache failures are logged and ignored; the planner
// never fails because the cache is down. A nil cache disables caching.
func PlanDispatch(
	ctx context.Context,
	req PlanDispatchRequest,
	repo ports.DispatchRepository,
	cache ports.PlanCache,
) (_ *domain.DispatchPlan, _ PlanStats, err error) {
	defer obs.Time(ctx, "plan.dispatch")(&err)

	var stats PlanStats

	orders, err := repo.ListOrders(ctx)
	if err != nil {
		return nil, stats, fmt.Errorf("plan dispatch: list orders: %w", err)
	}

	drones, err := repo.ListDrones(ctx)
	if err != nil {
		return nil, stats, fmt.Errorf("plan dispatch: list drones: %w", err)
	}
	if len(drones) == 0 {
		return nil, stats, fmt.Errorf("plan dispatch: %w", ErrNoDrones)
	}

	stats.Orders = len(orders)
	stats.Drones = len(drones)

	key := InputFingerprint(orders, drones)

	if cache != nil && !req.BypassCache {
		plan, cacheErr := cache.Get(ctx, key)
		switch {
		case cacheErr == nil:
			stats.CacheHit = true
			return plan, stats, nil
		case !errors.Is(cacheErr, ports.ErrNotFound):
			log.Printf("plan cache read failed: %v", cacheErr)
		}
	}

	routes := GenerateRoutes(orders)
	stats.Routes = len(routes)

	fleet, err := EvaluateFeasibility(ctx, drones, routes)
	if err != nil {
		return nil, stats, fmt.Errorf("plan dispatch: %w", err)
	}
	for _, f := range fleet {
		stats.FeasiblePairs += len(f.FeasibleRoutes)
	}

	assignments := EnumerateAssignments(fleet)
	stats.ValidAssignments = len(assignments)

	best, err := SelectBestAssignment(assignments, len(orders))
	if err != nil {
		return nil, stats, fmt.Errorf("plan dispatch: %w", err)
	}

	plan := domain.NewDispatchPlan(best, len(orders))
	plan.ID = uuid.NewString()
	plan.CreatedAt = time.Now().UTC()

	if cache != nil {
		if cacheErr := cache.Put(ctx, key, plan); cacheErr != nil {
			log.Printf("plan cache write failed: %v", cacheErr)
		}
	}

	return plan, stats, nil
}

// InputFingerprint hashes the planning inputs into a stable cache key.
// Every field the engine reads is included, in load order, so two input sets
// collide only if they would produce the same plan.
func InputFingerprint(orders []*domain.Order, drones []*domain.Drone) string {
	h := sha256.New()
	for _, o := range orders {
		fmt.Fprintf(h, "o|%s|%g|%g|%g|%g\n", o.Ref, o.X, o.Y, o.Deadline, o.Weight)
	}
	for _, d := range drones {
		fmt.Fprintf(h, "d|%s|%g|%g|%g\n", d.ID, d.MaxPayload, d.MaxDistance, d.Speed)
	}
	return hex.EncodeToString(h.Sum(nil))
}
