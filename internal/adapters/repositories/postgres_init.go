package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitPostgresSchema creates the Postgres tables for orders, the drone fleet,
// and the plan cache.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		order_seq BIGSERIAL PRIMARY KEY,
		ref TEXT NOT NULL UNIQUE,
		delivery_x DOUBLE PRECISION NOT NULL,
		delivery_y DOUBLE PRECISION NOT NULL,
		deadline DOUBLE PRECISION NOT NULL,
		package_weight DOUBLE PRECISION NOT NULL
	);
	`

	createDronesQuery := `
	CREATE TABLE IF NOT EXISTS drones (
		drone_seq BIGSERIAL PRIMARY KEY,
		ref TEXT NOT NULL UNIQUE,
		max_payload DOUBLE PRECISION NOT NULL,
		max_distance DOUBLE PRECISION NOT NULL,
		speed DOUBLE PRECISION NOT NULL,
		available BOOLEAN NOT NULL DEFAULT TRUE
	);
	`

	createPlanCacheQuery := `
	CREATE TABLE IF NOT EXISTS plan_cache (
		fingerprint TEXT PRIMARY KEY,
		plan_json TEXT NOT NULL,
		expires_at BIGINT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_plan_cache_expires_at
	ON plan_cache(expires_at);
	`

	statements := []string{
		createOrdersQuery,
		createDronesQuery,
		createPlanCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// SeedPostgresOrders loads the JSON orders seed file into the orders table,
// upserting by ref.
func SeedPostgresOrders(db *sql.DB, jsonPath string) error {
	seeds, err := LoadOrderSeeds(jsonPath)
	if err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed orders: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO orders (ref, delivery_x, delivery_y, deadline, package_weight)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (ref) DO UPDATE
	SET delivery_x = EXCLUDED.delivery_x,
		delivery_y = EXCLUDED.delivery_y,
		deadline = EXCLUDED.deadline,
		package_weight = EXCLUDED.package_weight;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed orders: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range seeds {
		if _, err := stmt.Exec(string(s.ID), s.DeliveryX, s.DeliveryY, s.Deadline, s.PackageWeight); err != nil {
			return fmt.Errorf("seed orders: insert ref=%q: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed orders: commit tx: %w", err)
	}

	return nil
}

// SeedPostgresFleet loads the YAML fleet seed file into the drones table,
// upserting by ref.
func SeedPostgresFleet(db *sql.DB, yamlPath string) error {
	seeds, err := LoadFleetSeeds(yamlPath)
	if err != nil {
		return fmt.Errorf("seed fleet: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed fleet: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO drones (ref, max_payload, max_distance, speed, available)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (ref) DO UPDATE
	SET max_payload = EXCLUDED.max_payload,
		max_distance = EXCLUDED.max_distance,
		speed = EXCLUDED.speed,
		available = EXCLUDED.available;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed fleet: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range seeds {
		if _, err := stmt.Exec(string(s.ID), s.MaxPayload, s.MaxDistance, s.Speed, s.Available); err != nil {
			return fmt.Errorf("seed fleet: insert ref=%q: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed fleet: commit tx: %w", err)
	}

	return nil
}
