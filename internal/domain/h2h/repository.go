package h2h

import "context"

// Repository describes matchup persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, roundID string) ([]Matchup, error)
	GetByID(ctx context.Context, matchupID string) (Matchup, bool, error)
	// GetForUpdate holds the matchup row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, matchupID string) (Matchup, bool, error)
	Create(ctx context.Context, m Matchup) error
	UpdateResult(ctx context.Context, m Matchup) error
}
