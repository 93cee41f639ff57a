package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/round"
)

type RoundRepository struct {
	store *Store
}

func (r *RoundRepository) List(ctx context.Context) ([]round.Round, error) {
	var out []round.Round
	r.store.read(ctx, func(st *state) {
		out = make([]round.Round, 0, len(st.rounds))
		for _, item := range st.rounds {
			out = append(out, item)
		}
	})

	sort.Slice(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	return out, nil
}

func (r *RoundRepository) GetByID(ctx context.Context, roundID string) (round.Round, bool, error) {
	var (
		item round.Round
		ok   bool
	)
	r.store.read(ctx, func(st *state) {
		item, ok = st.rounds[roundID]
	})
	return item, ok, nil
}

func (r *RoundRepository) GetActive(ctx context.Context) (round.Round, bool, error) {
	items, err := r.List(ctx)
	if err != nil {
		return round.Round{}, false, err
	}
	item, ok := round.ActiveOf(items)
	return item, ok, nil
}

func (r *RoundRepository) Create(ctx context.Context, item round.Round) error {
	return r.store.write(ctx, func(st *state) error {
		if _, exists := st.rounds[item.ID]; exists {
			return fmt.Errorf("round %s already exists", item.ID)
		}
		for _, other := range st.rounds {
			if other.Sequence == item.Sequence {
				return fmt.Errorf("round sequence %d already exists", item.Sequence)
			}
		}
		st.rounds[item.ID] = item
		return nil
	})
}

func (r *RoundRepository) Activate(ctx context.Context, roundID string, at time.Time) error {
	return r.store.write(ctx, func(st *state) error {
		target, ok := st.rounds[roundID]
		if !ok {
			return fmt.Errorf("round %s not found", roundID)
		}

		for id, item := range st.rounds {
			if !item.IsActive || id == roundID {
				continue
			}
			settledAt := at
			item.IsActive = false
			item.SettledAt = &settledAt
			item.UpdatedAt = at
			st.rounds[id] = item
		}

		startedAt := at
		target.IsActive = true
		target.IsLocked = false
		target.StartedAt = &startedAt
		target.UpdatedAt = at
		st.rounds[roundID] = target
		return nil
	})
}

func (r *RoundRepository) MarkLocked(ctx context.Context, roundID string) error {
	return r.store.write(ctx, func(st *state) error {
		item, ok := st.rounds[roundID]
		if !ok {
			return fmt.Errorf("round %s not found", roundID)
		}
		item.IsLocked = true
		st.rounds[roundID] = item
		return nil
	})
}

func (r *RoundRepository) CountActive(ctx context.Context) (int, error) {
	count := 0
	r.store.read(ctx, func(st *state) {
		for _, item := range st.rounds {
			if item.IsActive {
				count++
			}
		}
	})
	return count, nil
}
