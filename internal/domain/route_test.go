package domain

import "testing"

func TestNewRoute(t *testing.T) {
	// build test data
	o1 := &Order{ID: 1, Ref: "ORD-1", X: 2, Y: 3, Deadline: 10, Weight: 1.5}
	o2 := &Order{ID: 2, Ref: "ORD-2", X: 5, Y: 1, Deadline: 20, Weight: 2.5}

	route := NewRoute([]*Order{o1, o2})

	if route.Len() != 2 {
		t.Fatalf("len = %d, want 2", route.Len())
	}
	if route.TotalWeight != 4 {
		t.Fatalf("total weight = %v, want 4", route.TotalWeight)
	}

	// depot -> (2,3) is 5, then (2,3) -> (5,1) is 5 more
	if route.LastCumulative() != 10 {
		t.Fatalf("last cumulative = %v, want 10", route.LastCumulative())
	}
	// return leg from (5,1) adds 6
	if route.Metrics.RoundTripDistance != 16 {
		t.Fatalf("round trip = %v, want 16", route.Metrics.RoundTripDistance)
	}

	ids := route.OrderIDs()
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("order ids = %v, want [1 2]", ids)
	}
}

func TestRouteLastCumulativeEmpty(t *testing.T) {
	route := NewRoute(nil)
	if route.LastCumulative() != 0 {
		t.Fatalf("last cumulative = %v, want 0", route.LastCumulative())
	}
}
