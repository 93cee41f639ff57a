package player

import "context"

// ListFilter narrows player listings.
type ListFilter struct {
	Position Position
}

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	// GetForUpdate holds the player row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, playerID string) (Player, bool, error)
	GetByIDs(ctx context.Context, playerIDs []string) ([]Player, error)
	Create(ctx context.Context, p Player) error
	Delete(ctx context.Context, playerID string) error
	// UpdateScoring writes the in-progress round points and the re-priced market value.
	UpdateScoring(ctx context.Context, playerID string, currentRoundPoints int, currentPrice int64) error
	// RollRoundPoints folds every player's current round points into the season total.
	RollRoundPoints(ctx context.Context) (int, error)
}
