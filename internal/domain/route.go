package domain

// Represents one candidate trip: an ordered sequence of orders served in a
// single depot round trip. The trip metrics and total weight are derived once
// at construction and travel with the route, so feasibility checks and
// assignment scoring never recompute them.
type Route struct {
	Orders      []*Order
	Metrics     RouteMetrics
	TotalWeight float64
}

// NewRoute builds a route over the given order sequence and derives its
// metrics. The slice is retained, not copied; callers hand over ownership.
func NewRoute(orders []*Order) *Route {
	points := make([]Point, len(orders))
	weight := 0.0
	for i, o := range orders {
		points[i] = o.Point()
		weight += o.Weight
	}
	return &Route{
		Orders:      orders,
		Metrics:     ComputeRouteMetrics(points),
		TotalWeight: weight,
	}
}

// Len returns the number of stops on the route.
func (r *Route) Len() int {
	return len(r.Orders)
}

// OrderIDs returns the internal identifiers of the orders on the route, in
// visit order.
func (r *Route) OrderIDs() []OrderID {
	ids := make([]OrderID, len(r.Orders))
	for i, o := range r.Orders {
		ids[i] = o.ID
	}
	return ids
}

// LastCumulative returns the travel distance from the depot through the final
// stop, excluding the return leg. Zero for an empty route.
func (r *Route) LastCumulative() float64 {
	if n := len(r.Metrics.CumulativeDistances); n > 0 {
		return r.Metrics.CumulativeDistances[n-1]
	}
	return 0
}
