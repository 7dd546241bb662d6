package cache

import (
	"context"
	"sync"

	"drone-dispatch-service/internal/domain"
	"drone-dispatch-service/internal/ports"
)

// MemoryPlanCache is a map-backed PlanCache without expiry. It backs tests
// and single-process wiring where no cache backend is configured.
type MemoryPlanCache struct {
	mu    sync.RWMutex
	plans map[string]*domain.DispatchPlan
}

func NewMemoryPlanCache() *MemoryPlanCache {
	return &MemoryPlanCache{plans: make(map[string]*domain.DispatchPlan)}
}

func (c *MemoryPlanCache) Get(ctx context.Context, fingerprint string) (*domain.DispatchPlan, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	plan, ok := c.plans[fingerprint]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return plan, nil
}

// Put retains the plan as-is; finished plans are never mutated.
func (c *MemoryPlanCache) Put(ctx context.Context, fingerprint string, plan *domain.DispatchPlan) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.plans[fingerprint] = plan
	return nil
}
