package services

import (
	"context"
	"testing"

	"drone-dispatch-service/internal/domain"
)

// evaluatedFleet runs generation and feasibility for the given inputs,
// failing the test on error.
func evaluatedFleet(t *testing.T, orders []*domain.Order, drones []*domain.Drone) []DroneFeasibility {
	t.Helper()

	fleet, err := EvaluateFeasibility(context.Background(), drones, GenerateRoutes(orders))
	if err != nil {
		t.Fatalf("EvaluateFeasibility: %v", err)
	}
	return fleet
}

func TestEnumerateAssignmentsDisjoint(t *testing.T) {
	orders := testOrders(2)
	drones := []*domain.Drone{
		{ID: "DRN-1", MaxPayload: 10, MaxDistance: 100, Speed: 1},
		{ID: "DRN-2", MaxPayload: 10, MaxDistance: 100, Speed: 1},
	}

	assignments := EnumerateAssignments(evaluatedFleet(t, orders, drones))
	if len(assignments) == 0 {
		t.Fatalf("expected at least the all-idle assignment")
	}

	for _, a := range assignments {
		seen := make(map[domain.OrderID]struct{})
		for _, c := range a.Choices {
			if c.Idle() {
				continue
			}
			for _, id := range c.Route.OrderIDs() {
				if _, dup := seen[id]; dup {
					t.Fatalf("order %d assigned to two drones", id)
				}
				seen[id] = struct{}{}
			}
		}
	}
}

func TestEnumerateAssignmentsCount(t *testing.T) {
	// 2 orders, 2 unconstrained drones: each drone has 4 feasible routes
	// plus idle. Of the 25 tuples, 14 reuse an order and are pruned.
	assignments := EnumerateAssignments(evaluatedFleet(t, testOrders(2), []*domain.Drone{
		{ID: "DRN-1", MaxPayload: 10, MaxDistance: 100, Speed: 1},
		{ID: "DRN-2", MaxPayload: 10, MaxDistance: 100, Speed: 1},
	}))

	if len(assignments) != 11 {
		t.Fatalf("valid assignments = %d, want 11", len(assignments))
	}
}

func TestEnumerateAssignmentsAllIdleLast(t *testing.T) {
	assignments := EnumerateAssignments(evaluatedFleet(t, testOrders(2), []*domain.Drone{
		{ID: "DRN-1", MaxPayload: 10, MaxDistance: 100, Speed: 1},
	}))

	last := assignments[len(assignments)-1]
	for _, c := range last.Choices {
		if !c.Idle() {
			t.Fatalf("expected the all-idle assignment last, got %+v", last)
		}
	}
}

func TestEnumerateAssignmentsNoFeasibleRoutes(t *testing.T) {
	// a drone that can lift nothing still gets the idle option
	assignments := EnumerateAssignments(evaluatedFleet(t, testOrders(2), []*domain.Drone{
		{ID: "DRN-1", MaxPayload: 0.5, MaxDistance: 100, Speed: 1},
	}))

	if len(assignments) != 1 {
		t.Fatalf("valid assignments = %d, want only all-idle", len(assignments))
	}
	if !assignments[0].Choices[0].Idle() {
		t.Fatalf("expected the drone to stay idle")
	}
}

func TestEnumerateAssignmentsEmptyFleet(t *testing.T) {
	if got := EnumerateAssignments(nil); got != nil {
		t.Fatalf("expected no assignments without drones, got %d", len(got))
	}
}
