package dto

import "time"

type PlanRequest struct {
	// BypassCache forces a fresh planner run even when a cached plan
	// exists for the current orders and fleet.
	BypassCache bool `json:"bypass_cache"`
}

// AssignmentResponse is one drone's share of the plan, in the original batch
// wire names: the drone identifier, the order identifiers it serves in
// delivery order, and the round-trip distance it flies.
type AssignmentResponse struct {
	Drone         string   `json:"drone"`
	Orders        []string `json:"orders"`
	TotalDistance float64  `json:"total_distance"`
}

type PlanResponse struct {
	PlanID        string               `json:"plan_id"`
	CreatedAt     time.Time            `json:"created_at"`
	Assignments   []AssignmentResponse `json:"assignments"`
	TotalTime     float64              `json:"total_time"`
	TotalDistance float64              `json:"total_distance"`
	OrdersServed  int                  `json:"orders_served"`
	FullCoverage  bool                 `json:"full_coverage"`
	CacheHit      bool                 `json:"cache_hit"`
}
