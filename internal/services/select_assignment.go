package services

import (
	"errors"

	"drone-dispatch-service/internal/domain"
)

// SelectBestAssignment picks the winning assignment under the two-tier
// policy: among assignments covering every order, the one with the least
// total time; if none covers everything, the most orders served wins, with
// total time as the secondary criterion.
//
// Comparisons are strict, so ties keep the earliest candidate in enumeration
// order. That makes the result deterministic for a given input.
func SelectBestAssignment(assignments []domain.Assignment, totalOrders int) (domain.Assignment, error) {
	if len(assignments) == 0 {
		return domain.Assignment{}, errors.New("select assignment: no candidates")
	}

	bestIdx := -1
	for i, a := range assignments {
		if !a.CoversAll(totalOrders) {
			continue
		}
		if bestIdx == -1 || a.TotalTime < assignments[bestIdx].TotalTime {
			bestIdx = i
		}
	}
	if bestIdx >= 0 {
		return assignments[bestIdx], nil
	}

	// No full coverage is possible; fall back to maximum coverage.
	for i, a := range assignments {
		if bestIdx == -1 {
			bestIdx = i
			continue
		}
		best := assignments[bestIdx]
		if a.OrderCount > best.OrderCount ||
			(a.OrderCount == best.OrderCount && a.TotalTime < best.TotalTime) {
			bestIdx = i
		}
	}
	return assignments[bestIdx], nil
}
