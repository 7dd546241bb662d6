package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"drone-dispatch-service/internal/domain"
	"drone-dispatch-service/internal/platform/obs"
	"drone-dispatch-service/internal/ports"
)

// SQLPlanCache is the Postgres flavor of the plan cache, used when the
// service runs against DATABASE_URL.
type SQLPlanCache struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewSQLPlanCache(db *sql.DB, ttl time.Duration) *SQLPlanCache {
	return &SQLPlanCache{DB: db, TTL: ttl}
}

// Fetch the cached plan for a fingerprint. Expired rows count as misses.
func (c *SQLPlanCache) Get(ctx context.Context, fingerprint string) (*domain.DispatchPlan, error) {
	if c.DB == nil {
		return nil, errors.New("plan cache: db is nil")
	}
	if fingerprint == "" {
		return nil, errors.New("get plan cache: fingerprint must not be empty")
	}

	query := `
	SELECT plan_json, expires_at
	FROM plan_cache
	WHERE fingerprint = $1;
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
func (c *SQLPlanCache) Put(ctx context.Context, fingerprint string, plan *domain.DispatchPlan) (err error) {
	defer obs.Time(ctx, "plan.cache.put")(&err)

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
	INSERT INTO plan_cache (fingerprint, plan_json, expires_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (fingerprint) DO UPDATE
	SET plan_json = EXCLUDED.plan_json,
		expires_at = EXCLUDED.expires_at;
	`

	expiresAt := time.Now().Add(c.TTL).Unix()
	if _, err := c.DB.ExecContext(ctx, query, fingerprint, string(payload), expiresAt); err != nil {
		return fmt.Errorf("insert plan cache fingerprint=%q: %w", fingerprint, err)
	}

	return nil
}
