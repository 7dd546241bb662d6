package services

import "drone-dispatch-service/internal/domain"

// EnumerateAssignments expands the cross product of per-drone candidates into
// every valid complete assignment. Each drone's candidates are its feasible
// routes in generation order followed by the idle option, so the all-idle
// assignment is always present and always last. Tuples in which two drones
// share an order are pruned as soon as the clash appears; the surviving
// sequence is identical to filtering the full cross product.
func EnumerateAssignments(fleet []DroneFeasibility) []domain.Assignment {
	if len(fleet) == 0 {
		return nil
	}

	var (
		assignments []domain.Assignment
		choices     = make([]domain.RouteChoice, len(fleet))
		used        = make(map[domain.OrderID]struct{})
	)

	var walk func(pos int)
	walk = func(pos int) {
		if pos == len(fleet) {
			complete := make([]domain.RouteChoice, len(choices))
			copy(complete, choices)
			assignments = append(assignments, domain.NewAssignment(complete))
			return
		}

		slot := fleet[pos]
		for _, route := range slot.FeasibleRoutes {
			if overlaps(route, used) {
				continue
			}
			for _, id := range route.OrderIDs() {
				used[id] = struct{}{}
			}
			choices[pos] = domain.RouteChoice{Drone: slot.Drone, Route: route}
			walk(pos + 1)
			for _, id := range route.OrderIDs() {
				delete(used, id)
			}
		}

		// Idle comes after every route candidate.
		choices[pos] = domain.RouteChoice{Drone: slot.Drone}
		walk(pos + 1)
	}
	walk(0)

	return assignments
}

func overlaps(route *domain.Route, used map[domain.OrderID]struct{}) bool {
	for _, o := range route.Orders {
		if _, taken := used[o.ID]; taken {
			return true
		}
	}
	return false
}
