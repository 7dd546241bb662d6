package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"drone-dispatch-service/internal/domain"
	"drone-dispatch-service/internal/ports"
)

// Redis-backed cache of finished dispatch plans, for deployments where
// several service instances should share cached results. Expiry is handled
// by Redis key TTLs.
type RedisPlanCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisPlanCache connects using a redis:// URL.
func NewRedisPlanCache(redisURL string, ttl time.Duration) (*RedisPlanCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis plan cache: parse url: %w", err)
	}
	return &RedisPlanCache{Client: redis.NewClient(opt), TTL: ttl}, nil
}

// Fetch the cached plan for a fingerprint.
func (c *RedisPlanCache) Get(ctx context.Context, fingerprint string) (*domain.DispatchPlan, error) {
	if fingerprint == "" {
		return nil, errors.New("get plan cache: fingerprint must not be empty")
	}

	payload, err := c.Client.Get(ctx, planKey(fingerprint)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get plan cache: redis get: %w", err)
	}

	var plan domain.DispatchPlan
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return nil, fmt.Errorf("get plan cache: decode plan: %w", err)
	}

	return &plan, nil
}

// Store a finished plan under its fingerprint for the configured TTL.
func (c *RedisPlanCache) Put(ctx context.Context, fingerprint string, plan *domain.DispatchPlan) error {
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

	if err := c.Client.Set(ctx, planKey(fingerprint), payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert plan cache fingerprint=%q: %w", fingerprint, err)
	}

	return nil
}

func planKey(fingerprint string) string { return "plan:" + fingerprint }
