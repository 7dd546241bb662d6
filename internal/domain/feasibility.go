package domain

// Feasibility records the outcome of each admission rule for one route on one
// drone. Keeping the rules separate lets callers report which constraint
// failed rather than a bare yes/no.
type Feasibility struct {
	WeightOK    bool
	DistanceOK  bool
	DeadlinesOK bool
}

// Feasible reports whether every rule passed.
func (f Feasibility) Feasible() bool {
	return f.WeightOK && f.DistanceOK && f.DeadlinesOK
}

// CheckRoute evaluates whether the drone can fly the route: the summed package
// weight must fit the payload, the round trip must fit the range, and every
// stop must be reached within its deadline in visit order. Arrival time at a
// stop is its cumulative distance divided by the drone's speed. A drone with
// zero or negative speed can never arrive, so all deadline checks fail.
func CheckRoute(route *Route, drone *Drone) Feasibility {
	f := Feasibility{
		WeightOK:   drone.CanLift(route.TotalWeight),
		DistanceOK: drone.CanTravel(route.Metrics.RoundTripDistance),
	}
	if drone.Speed <= 0 {
		return f
	}
	f.DeadlinesOK = true
	for i, o := range route.Orders {
		if route.Metrics.CumulativeDistances[i]/drone.Speed > o.Deadline {
			f.DeadlinesOK = false
			break
		}
	}
	return f
}
