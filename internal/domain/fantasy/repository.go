package fantasy

import "context"

// Repository describes roster holding persistence needs from use cases.
type Repository interface {
	ListByUser(ctx context.Context, userID string) (Roster, error)
	ListAll(ctx context.Context) ([]Holding, error)
	CountByPlayer(ctx context.Context, playerID string) (int, error)
	Insert(ctx context.Context, h Holding) error
	Delete(ctx context.Context, userID, playerID string) error
	Update(ctx context.Context, h Holding) error
	ClearCaptain(ctx context.Context, userID string) error
	SetCaptain(ctx context.Context, userID, playerID string) error
}
