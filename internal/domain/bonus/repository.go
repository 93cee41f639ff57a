package bonus

import "context"

// RuleRepository describes bonus rule persistence needs from use cases.
type RuleRepository interface {
	ListByRound(ctx context.Context, roundID string) ([]Rule, error)
	GetByID(ctx context.Context, ruleID string) (Rule, bool, error)
	Create(ctx context.Context, rule Rule) error
	Delete(ctx context.Context, ruleID string) error
}

// MultiplierRepository stores at most one multiplier per (round, player).
type MultiplierRepository interface {
	Get(ctx context.Context, roundID, playerID string) (Multiplier, bool, error)
	ListByRound(ctx context.Context, roundID string) ([]Multiplier, error)
	Upsert(ctx context.Context, m Multiplier) error
	Delete(ctx context.Context, roundID, playerID string) error
}
