package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/bonus"
)

type BonusRuleRepository struct {
	store *Store
}

func (r *BonusRuleRepository) ListByRound(ctx context.Context, roundID string) ([]bonus.Rule, error) {
	out := make([]bonus.Rule, 0)
	r.store.read(ctx, func(st *state) {
		for _, rule := range st.rules {
			if rule.RoundID == roundID {
				out = append(out, rule)
			}
		}
	})

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *BonusRuleRepository) GetByID(ctx context.Context, ruleID string) (bonus.Rule, bool, error) {
	var (
		rule bonus.Rule
		ok   bool
	)
	r.store.read(ctx, func(st *state) {
		rule, ok = st.rules[ruleID]
	})
	return rule, ok, nil
}

func (r *BonusRuleRepository) Create(ctx context.Context, rule bonus.Rule) error {
	return r.store.write(ctx, func(st *state) error {
		if _, exists := st.rules[rule.ID]; exists {
			return fmt.Errorf("bonus rule %s already exists", rule.ID)
		}
		st.rules[rule.ID] = rule
		return nil
	})
}

func (r *BonusRuleRepository) Delete(ctx context.Context, ruleID string) error {
	return r.store.write(ctx, func(st *state) error {
		delete(st.rules, ruleID)
		return nil
	})
}

type MultiplierRepository struct {
	store *Store
}

func (r *MultiplierRepository) Get(ctx context.Context, roundID, playerID string) (bonus.Multiplier, bool, error) {
	var (
		item bonus.Multiplier
		ok   bool
	)
	r.store.read(ctx, func(st *state) {
		item, ok = st.multipliers[multiplierKey{roundID: roundID, playerID: playerID}]
	})
	return item, ok, nil
}

func (r *MultiplierRepository) ListByRound(ctx context.Context, roundID string) ([]bonus.Multiplier, error) {
	out := make([]bonus.Multiplier, 0)
	r.store.read(ctx, func(st *state) {
		for key, item := range st.multipliers {
			if key.roundID == roundID {
				out = append(out, item)
			}
		}
	})

	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}

func (r *MultiplierRepository) Upsert(ctx context.Context, item bonus.Multiplier) error {
	return r.store.write(ctx, func(st *state) error {
		st.multipliers[multiplierKey{roundID: item.RoundID, playerID: item.PlayerID}] = item
		return nil
	})
}

func (r *MultiplierRepository) Delete(ctx context.Context, roundID, playerID string) error {
	return r.store.write(ctx, func(st *state) error {
		delete(st.multipliers, multiplierKey{roundID: roundID, playerID: playerID})
		return nil
	})
}
