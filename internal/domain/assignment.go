package domain

// RouteChoice pairs a drone with the route it flies in a candidate
// assignment. A nil Route means the drone stays idle at the depot.
type RouteChoice struct {
	Drone *Drone
	Route *Route
}

// Idle reports whether the drone sits out the plan.
func (c RouteChoice) Idle() bool {
	return c.Route == nil
}

// Represents one complete candidate assignment: exactly one route choice per
// drone, with no order served twice. Aggregate cost figures are derived once
// at construction.
//
// TotalTime sums each flying drone's travel time through its final stop; the
// return leg is unpaid because the last delivery is already made. TotalDistance
// sums full round trips, since the drone still has to fly home. Idle drones
// contribute zero to both.
type Assignment struct {
	Choices       []RouteChoice
	TotalTime     float64
	TotalDistance float64
	OrderCount    int
}

// NewAssignment derives the aggregate figures for the given choices. The
// slice is retained, not copied.
func NewAssignment(choices []RouteChoice) Assignment {
	a := Assignment{Choices: choices}
	for _, c := range choices {
		if c.Idle() {
			continue
		}
		a.TotalTime += c.Route.LastCumulative() / c.Drone.Speed
		a.TotalDistance += c.Route.Metrics.RoundTripDistance
		a.OrderCount += c.Route.Len()
	}
	return a
}

// CoversAll reports whether the assignment serves every one of totalOrders
// orders. Routes within an assignment are disjoint, so the summed route
// lengths count distinct orders. An all-idle assignment covers an empty
// order set.
func (a Assignment) CoversAll(totalOrders int) bool {
	return a.OrderCount == totalOrders
}
