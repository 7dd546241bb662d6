package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"drone-dispatch-service/internal/domain"
)

// batchInput mirrors the batch planning input file: a single JSON document
// holding the orders to serve and the drone fleet.
type batchInput struct {
	Orders []OrderSeed `json:"orders"`
	Drones struct {
		Fleet []DroneSeed `json:"fleet"`
	} `json:"drones"`
}

// FileDispatchRepository serves one batch input file as a read-only data
// source behind the DispatchRepository port. The file is read, validated,
// and converted once at construction: orders get sequential internal
// identifiers in file order and unavailable drones are dropped, so the
// planner sees exactly what a database-backed run would.
type FileDispatchRepository struct {
	orders []*domain.Order
	drones []*domain.Drone
}

// NewFileDispatchRepository loads the batch input file at path. Malformed
// records, duplicate identifiers, and empty collections fail here with a
// descriptive error so the planner never runs on bad input.
func NewFileDispatchRepository(path string) (*FileDispatchRepository, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch input: read %q: %w", path, err)
	}

	var input batchInput
	if err := json.Unmarshal(bytes, &input); err != nil {
		return nil, fmt.Errorf("read batch input: parse json: %w", err)
	}

	if len(input.Orders) == 0 {
		return nil, errors.New("read batch input: orders must not be empty")
	}
	if len(input.Drones.Fleet) == 0 {
		return nil, errors.New("read batch input: drone fleet must not be empty")
	}

	orders := make([]*domain.Order, 0, len(input.Orders))
	orderRefs := make(map[string]struct{}, len(input.Orders))
	for i, s := range input.Orders {
		if err := validateOrderSeed(i, s); err != nil {
			return nil, fmt.Errorf("read batch input: %w", err)
		}
		if _, ok := orderRefs[string(s.ID)]; ok {
			return nil, fmt.Errorf("read batch input: duplicate order id %q at index %d", s.ID, i+1)
		}
		orderRefs[string(s.ID)] = struct{}{}

		orders = append(orders, &domain.Order{
			ID:       domain.OrderID(i + 1),
			Ref:      string(s.ID),
			X:        s.DeliveryX,
			Y:        s.DeliveryY,
			Deadline: s.Deadline,
			Weight:   s.PackageWeight,
		})
	}

	drones := make([]*domain.Drone, 0, len(input.Drones.Fleet))
	droneRefs := make(map[string]struct{}, len(input.Drones.Fleet))
	for i, s := range input.Drones.Fleet {
		if err := validateDroneSeed(i, s); err != nil {
			return nil, fmt.Errorf("read batch input: %w", err)
		}
		if _, ok := droneRefs[string(s.ID)]; ok {
			return nil, fmt.Errorf("read batch input: duplicate drone id %q at index %d", s.ID, i+1)
		}
		droneRefs[string(s.ID)] = struct{}{}

		if !s.Available {
			continue
		}
		drones = append(drones, &domain.Drone{
			ID:          string(s.ID),
			MaxPayload:  s.MaxPayload,
			MaxDistance: s.MaxDistance,
			Speed:       s.Speed,
			Available:   true,
		})
	}

	return &FileDispatchRepository{orders: orders, drones: drones}, nil
}

func (f *FileDispatchRepository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return f.orders, nil
}

func (f *FileDispatchRepository) ListDrones(ctx context.Context) ([]*domain.Drone, error) {
	return f.drones, nil
}
