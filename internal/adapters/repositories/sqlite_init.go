package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates the SQLite tables for orders, the drone fleet, and the
// plan cache.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		order_seq INTEGER PRIMARY KEY AUTOINCREMENT,
		ref TEXT NOT NULL UNIQUE,
		delivery_x REAL NOT NULL,
		delivery_y REAL NOT NULL,
		deadline REAL NOT NULL,
		package_weight REAL NOT NULL
	);
	`

	createDronesQuery := `
	CREATE TABLE IF NOT EXISTS drones (
		drone_seq INTEGER PRIMARY KEY AUTOINCREMENT,
		ref TEXT NOT NULL UNIQUE,
		max_payload REAL NOT NULL,
		max_distance REAL NOT NULL,
		speed REAL NOT NULL,
		available INTEGER NOT NULL DEFAULT 1
	);
	`

	createPlanCacheQuery := `
	CREATE TABLE IF NOT EXISTS plan_cache (
		fingerprint TEXT PRIMARY KEY,
		plan_json TEXT NOT NULL,
		expires_at INTEGER NOT NULL
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
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// SeedOrders loads the JSON orders seed file into the orders table. Existing
// rows are updated in place by ref so reseeding keeps the original load order.
func SeedOrders(db *sql.DB, jsonPath string) error {
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
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (ref) DO UPDATE
	SET delivery_x = excluded.delivery_x,
		delivery_y = excluded.delivery_y,
		deadline = excluded.deadline,
		package_weight = excluded.package_weight;
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

// SeedFleet loads the YAML fleet seed file into the drones table. Existing
// rows are updated in place by ref so reseeding keeps the original fleet order.
func SeedFleet(db *sql.DB, yamlPath string) error {
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
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (ref) DO UPDATE
	SET max_payload = excluded.max_payload,
		max_distance = excluded.max_distance,
		speed = excluded.speed,
		available = excluded.available;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed fleet: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range seeds {
		available := 0
		if s.Available {
			available = 1
		}
		if _, err := stmt.Exec(string(s.ID), s.MaxPayload, s.MaxDistance, s.Speed, available); err != nil {
			return fmt.Errorf("seed fleet: insert ref=%q: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed fleet: commit tx: %w", err)
	}

	return nil
}
