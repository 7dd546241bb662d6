package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"drone-dispatch-service/internal/domain"
)

// Postgres-backed implementation of the DispatchRepository port. Selected
// when DATABASE_URL is configured; the SQLite repository covers local runs.
type PostgresDispatchRepository struct{ DB *sql.DB }

func NewPostgresDispatchRepository(db *sql.DB) *PostgresDispatchRepository {
	return &PostgresDispatchRepository{DB: db}
}

// Return all orders in load order, with internal identifiers assigned
// sequentially from 1 in scan order.
func (p *PostgresDispatchRepository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	if p.DB == nil {
		return nil, errors.New("postgres dispatch repository: DB is nil")
	}

	query := `
	SELECT ref, delivery_x, delivery_y, deadline, package_weight
	FROM orders
	ORDER BY order_seq;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0, 16)
	for rows.Next() {
		o := &domain.Order{}
		if err := rows.Scan(&o.Ref, &o.X, &o.Y, &o.Deadline, &o.Weight); err != nil {
			return nil, fmt.Errorf("list orders: scan row: %w", err)
		}
		o.ID = domain.OrderID(len(orders) + 1)
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: row iteration: %w", err)
	}

	return orders, nil
}

// Return the available drones in fleet order.
func (p *PostgresDispatchRepository) ListDrones(ctx context.Context) ([]*domain.Drone, error) {
	if p.DB == nil {
		return nil, errors.New("postgres dispatch repository: DB is nil")
	}

	query := `
	SELECT ref, max_payload, max_distance, speed
	FROM drones
	WHERE available
	ORDER BY drone_seq;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list drones: query drones table: %w", err)
	}
	defer rows.Close()

	drones := make([]*domain.Drone, 0, 8)
	for rows.Next() {
		d := &domain.Drone{Available: true}
		if err := rows.Scan(&d.ID, &d.MaxPayload, &d.MaxDistance, &d.Speed); err != nil {
			return nil, fmt.Errorf("list drones: scan row: %w", err)
		}
		drones = append(drones, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drones: row iteration: %w", err)
	}

	return drones, nil
}
