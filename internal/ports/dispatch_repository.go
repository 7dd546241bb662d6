package ports

import (
	"context"
	"drone-dispatch-service/internal/domain"
)

// Port: a boundary for retrieving orders and fleet drones from a data source.
type DispatchRepository interface {
	// Retrieve all orders awaiting assignment, in load order.
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	// Retrieve all drones marked available for dispatch.
	ListDrones(ctx context.Context) ([]*domain.Drone, error)
}
