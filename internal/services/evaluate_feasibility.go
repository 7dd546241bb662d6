package services

import (
	"context"
	"fmt"
	"sync"

	"drone-dispatch-service/internal/domain"
)

// DroneFeasibility holds one drone's verdicts over the full candidate route
// list. Verdicts is indexed by route position; FeasibleRoutes keeps the
// admitted routes in generation order, which fixes the candidate order the
// assignment stage sees.
type DroneFeasibility struct {
	Drone          *domain.Drone
	Verdicts       []domain.Feasibility
	FeasibleRoutes []*domain.Route
}

// EvaluateFeasibility checks every candidate route against every drone.
// Drones are evaluated concurrently since their verdicts are independent;
// each worker owns one result slot, so no locking is needed and the output
// order matches the fleet order regardless of scheduling.
func EvaluateFeasibility(
	ctx context.Context,
	drones []*domain.Drone,
	routes []*domain.Route,
) ([]DroneFeasibility, error) {
	results := make([]DroneFeasibility, len(drones))

	sem := make(chan struct{}, 5)
	var wg sync.WaitGroup

	for i, drone := range drones {
		wg.Add(1)
		go func(slot int, d *domain.Drone) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			verdicts := make([]domain.Feasibility, len(routes))
			feasible := make([]*domain.Route, 0)
			for j, route := range routes {
				// Bail out between checks once the caller has given up.
				if j%1024 == 0 && ctx.Err() != nil {
					return
				}
				verdicts[j] = domain.CheckRoute(route, d)
				if verdicts[j].Feasible() {
					feasible = append(feasible, route)
				}
			}
			results[slot] = DroneFeasibility{Drone: d, Verdicts: verdicts, FeasibleRoutes: feasible}
		}(i, drone)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("evaluate feasibility: %w", err)
	}
	return results, nil
}
