package services

import "drone-dispatch-service/internal/domain"

// GenerateRoutes builds every candidate route over the given orders: all
// non-empty subsets, each expanded into all visit orders.
//
// The output order is fixed: subset sizes ascending, subsets in lexicographic
// index order within a size, and the permutations of each subset in
// lexicographic order. Later stages inherit their determinism from this
// sequence, so it must not change.
//
// The count grows factorially with the order count; callers are expected to
// keep the order set small enough for exhaustive search.
func GenerateRoutes(orders []*domain.Order) []*domain.Route {
	n := len(orders)
	routes := make([]*domain.Route, 0, CountRoutes(n))

	subset := make([]*domain.Order, 0, n)
	for size := 1; size <= n; size++ {
		combineOrders(orders, 0, size, subset, &routes)
	}
	return routes
}

// combineOrders walks the subsets of the given size whose first element is at
// or after index start, emitting every permutation of each completed subset.
func combineOrders(orders []*domain.Order, start, size int, subset []*domain.Order, routes *[]*domain.Route) {
	if size == 0 {
		permuteOrders(subset, nil, make([]bool, len(subset)), routes)
		return
	}
	// Stop once too few elements remain to fill the subset.
	for i := start; i <= len(orders)-size; i++ {
		combineOrders(orders, i+1, size-1, append(subset, orders[i]), routes)
	}
}

// permuteOrders extends the partial visit order one position at a time,
// trying the unused subset elements in slice order.
func permuteOrders(subset, sequence []*domain.Order, used []bool, routes *[]*domain.Route) {
	if len(sequence) == len(subset) {
		route := make([]*domain.Order, len(sequence))
		copy(route, sequence)
		*routes = append(*routes, domain.NewRoute(route))
		return
	}
	for i, o := range subset {
		if used[i] {
			continue
		}
		used[i] = true
		permuteOrders(subset, append(sequence, o), used, routes)
		used[i] = false
	}
}

// CountRoutes returns the number of routes GenerateRoutes emits for n orders:
// the sum over subset sizes k of n!/(n-k)!.
func CountRoutes(n int) int {
	total := 0
	for k := 1; k <= n; k++ {
		arrangements := 1
		for i := 0; i < k; i++ {
			arrangements *= n - i
		}
		total += arrangements
	}
	return total
}
