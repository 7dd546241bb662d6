package ports

import (
	"context"
	"errors"

	"drone-dispatch-service/internal/domain"
)

// ErrNotFound is returned by caches and repositories when the requested
// entry does not exist.
var ErrNotFound = errors.New("not found")

// Port: a boundary for caching finished dispatch plans keyed by an input
// fingerprint. A miss is reported as ErrNotFound so callers can tell it from
// a transport failure.
type PlanCache interface {
	Get(ctx context.Context, fingerprint string) (*domain.DispatchPlan, error)
	Put(ctx context.Context, fingerprint string, plan *domain.DispatchPlan) error
}
