package round

import (
	"context"
	"time"
)

// Repository describes round persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Round, error)
	GetByID(ctx context.Context, roundID string) (Round, bool, error)
	GetActive(ctx context.Context) (Round, bool, error)
	Create(ctx context.Context, r Round) error
	// Activate settles every other active round and makes roundID the only active one.
	Activate(ctx context.Context, roundID string, at time.Time) error
	MarkLocked(ctx context.Context, roundID string) error
	CountActive(ctx context.Context) (int, error)
}
