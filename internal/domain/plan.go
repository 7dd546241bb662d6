package domain

import "time"

// PlanEntry is the published result for one drone: the external references of
// the orders it serves, in visit order, and the round-trip distance it flies.
// Idle drones keep an empty order list and zero distance.
type PlanEntry struct {
	DroneID           string
	OrderRefs         []string
	RoundTripDistance float64
}

// Represents a finished dispatch plan: one entry per available drone, in fleet
// order, plus the aggregate figures of the winning assignment.
type DispatchPlan struct {
	ID            string
	CreatedAt     time.Time
	Entries       []PlanEntry
	TotalTime     float64
	TotalDistance float64
	OrdersServed  int
	FullCoverage  bool
}

// NewDispatchPlan renders the winning assignment into its published form.
// Identity and timestamps are the caller's concern.
func NewDispatchPlan(a Assignment, totalOrders int) *DispatchPlan {
	plan := &DispatchPlan{
		Entries:       make([]PlanEntry, 0, len(a.Choices)),
		TotalTime:     a.TotalTime,
		TotalDistance: a.TotalDistance,
		OrdersServed:  a.OrderCount,
		FullCoverage:  a.CoversAll(totalOrders),
	}
	for _, c := range a.Choices {
		entry := PlanEntry{DroneID: c.Drone.ID, OrderRefs: []string{}}
		if !c.Idle() {
			entry.OrderRefs = make([]string, 0, c.Route.Len())
			for _, o := range c.Route.Orders {
				entry.OrderRefs = append(entry.OrderRefs, o.Ref)
			}
			entry.RoundTripDistance = c.Route.Metrics.RoundTripDistance
		}
		plan.Entries = append(plan.Entries, entry)
	}
	return plan
}
