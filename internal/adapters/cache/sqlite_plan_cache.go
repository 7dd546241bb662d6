package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"drone-dispatch-service/internal/domain"
	"drone-dispatch-service/internal/ports"
)

// SQLite-backed cache of finished dispatch plans keyed by input fingerprint.
// It shares the application database, so cached plans survive restarts on
// local runs without any extra infrastructure.
type SqlitePlanCache struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewSqlitePlanCache(db *sql.DB, ttl time.Duration) *SqlitePlanCache {
	return &SqlitePlanCache{DB: db, TTL: ttl}
}

// Fetch the cached plan for a fingerprint. Expired rows count as misses;
// they are overwritten in place by the next Put for the same inputs.
func (c *SqlitePlanCache) Get(ctx context.Context, fingerprint string) (*domain.DispatchPlan, error) {
	if c.DB == nil {
		return nil, errors.New("plan cache: db is nil")
	}
	if fingerprint == "" {
		return nil, errors.New("get plan cache: fingerprint must not be empty")
	}

	query := `
	SELECT plan_json, expires_at
	FROM plan_cache
	WHERE fingerprint = ?;
	`

	var payload string
	var expiresAt int64
	err := c.DB.QueryRowContext(ctx, query, fingerprint).Scan(&payload, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get plan cache: query plan_cache table: %w", err)
	}

	if expiresAt <= time.Now().Unix() {
		return nil, ports.ErrNotFound
	}

	var plan domain.DispatchPlan
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return nil, fmt.Errorf("get plan cache: decode plan: %w", err)
	}

	return &plan, nil
}

// Store a finished plan under its fingerprint for the configured TTL.
func (c *SqlitePlanCache) Put(ctx context.Context, fingerprint string, plan *domain.DispatchPlan) error {
	if c.DB == nil {
		return errors.New("plan cache: db is nil")
	}
	if fingerprint == "" {
		return errors.New("insert plan cache: fingerprint must not be empty")
	}
	if plan == nil {
		return errors.New("insert plan cache: plan must not be nil")
	}

	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("insert plan cache: encode plan: %w", err)
	}

	query := `
	INSERT OR REPLACE INTO plan_cache (fingerprint, plan_json, expires_at)
	VALUES (?, ?, ?);
	`

	expiresAt := time.Now().Add(c.TTL).Unix()
	if _, err := c.DB.ExecContext(ctx, query, fingerprint, string(payload), expiresAt); err != nil {
		return fmt.Errorf("insert plan cache fingerprint=%q: %w", fingerprint, err)
	}

	return nil
}
