package domain

import "math"

// Immutable delivery coordinates relative to the depot at the origin.
type Point struct {
	X float64
	Y float64
}

// Manhattan returns the Manhattan distance |Δx| + |Δy| between two points.
func Manhattan(a, b Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// Depot-relative trip metrics for an ordered sequence of delivery points.
// All slices are indexed by stop position; a RouteMetrics value is computed
// once per route and never mutated.
type RouteMetrics struct {
	// DepotDistances[i] is the Manhattan distance from the depot to stop i.
	DepotDistances []float64
	// LegDistances[i] is the distance flown to reach stop i: from the depot
	// for the first stop, from stop i-1 otherwise.
	LegDistances []float64
	// CumulativeDistances[i] is the running sum of leg distances through stop i.
	CumulativeDistances []float64
	// RoundTripDistance is the cumulative distance at the last stop plus the
	// direct return leg from the last stop to the depot.
	RoundTripDistance float64
}

// ComputeRouteMetrics derives the trip metrics for points visited in order,
// starting and ending at the depot. It is a pure function of the coordinates:
// a single-stop sequence yields a round trip of twice the depot distance, and
// an empty sequence yields zero-valued metrics.
func ComputeRouteMetrics(points []Point) RouteMetrics {
	if len(points) == 0 {
		return RouteMetrics{}
	}

	depot := Point{}

	depotDistances := make([]float64, len(points))
	for i, p := range points {
		depotDistances[i] = Manhattan(depot, p)
	}

	legDistances := make([]float64, len(points))
	legDistances[0] = depotDistances[0]
	for i := 1; i < len(points); i++ {
		legDistances[i] = Manhattan(points[i-1], points[i])
	}

	cumulative := make([]float64, len(points))
	cumulative[0] = legDistances[0]
	for i := 1; i < len(points); i++ {
		cumulative[i] = cumulative[i-1] + legDistances[i]
	}

	last := len(points) - 1
	roundTrip := cumulative[last] + depotDistances[last]

	return RouteMetrics{
		DepotDistances:      depotDistances,
		LegDistances:        legDistances,
		CumulativeDistances: cumulative,
		RoundTripDistance:   roundTrip,
	}
}
