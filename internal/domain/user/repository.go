package user

import "context"

// Repository describes account persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Account, error)
	GetByID(ctx context.Context, userID string) (Account, bool, error)
	// GetForUpdate reads the account and holds it for the rest of the transaction.
	GetForUpdate(ctx context.Context, userID string) (Account, bool, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) ([]Account, error)
	Create(ctx context.Context, a Account) error
	UpdateProfile(ctx context.Context, userID, username, email string) error
	UpdateBudget(ctx context.Context, userID string, budget int64) error
}
