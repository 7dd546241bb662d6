package repositories

import (
	"context"

	"drone-dispatch-service/internal/domain"
)

// MemoryDispatchRepository serves fixed in-memory fixtures behind the
// DispatchRepository port. It backs tests and ad-hoc wiring where no
// database is wanted.
type MemoryDispatchRepository struct {
	orders []*domain.Order
	drones []*domain.Drone
}

// NewMemoryDispatchRepository retains the given slices. Unavailable drones
// are filtered out up front, preserving fleet order, matching what the
// database-backed repositories return.
func NewMemoryDispatchRepository(orders []*domain.Order, drones []*domain.Drone) *MemoryDispatchRepository {
	available := make([]*domain.Drone, 0, len(drones))
	for _, d := range drones {
		if d.Available {
			available = append(available, d)
		}
	}
	return &MemoryDispatchRepository{orders: orders, drones: available}
}

func (m *MemoryDispatchRepository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return m.orders, nil
}

func (m *MemoryDispatchRepository) ListDrones(ctx context.Context) ([]*domain.Drone, error) {
	return m.drones, nil
}
