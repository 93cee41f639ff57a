package stats

import "context"

// Repository describes stat entry persistence needs from use cases.
type Repository interface {
	Insert(ctx context.Context, entry Entry) error
	ListByPlayerAndRound(ctx context.Context, playerID, roundID string) ([]Entry, error)
	ListByRound(ctx context.Context, roundID string) ([]Entry, error)
	ListByPlayer(ctx context.Context, playerID string) ([]Entry, error)
}
