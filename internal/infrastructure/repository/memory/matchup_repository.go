package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/h2h"
)

type MatchupRepository struct {
	store *Store
}

// List returns every matchup when roundID is empty.
func (r *MatchupRepository) List(ctx context.Context, roundID string) ([]h2h.Matchup, error) {
	out := make([]h2h.Matchup, 0)
	r.store.read(ctx, func(st *state) {
		for _, m := range st.matchups {
			if roundID == "" || m.RoundID == roundID {
				out = append(out, m)
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

func (r *MatchupRepository) GetByID(ctx context.Context, matchupID string) (h2h.Matchup, bool, error) {
	var (
		m  h2h.Matchup
		ok bool
	)
	r.store.read(ctx, func(st *state) {
		m, ok = st.matchups[matchupID]
	})
	return m, ok, nil
}

// GetForUpdate relies on the transaction's write lock for exclusivity.
func (r *MatchupRepository) GetForUpdate(ctx context.Context, matchupID string) (h2h.Matchup, bool, error) {
	return r.GetByID(ctx, matchupID)
}

func (r *MatchupRepository) Create(ctx context.Context, m h2h.Matchup) error {
	return r.store.write(ctx, func(st *state) error {
		if _, exists := st.matchups[m.ID]; exists {
			return fmt.Errorf("matchup %s already exists", m.ID)
		}
		st.matchups[m.ID] = m
		return nil
	})
}

func (r *MatchupRepository) UpdateResult(ctx context.Context, m h2h.Matchup) error {
	return r.store.write(ctx, func(st *state) error {
		current, ok := st.matchups[m.ID]
		if !ok {
			return fmt.Errorf("matchup %s not found", m.ID)
		}
		current.Status = m.Status
		current.User1Score = m.User1Score
		current.User2Score = m.User2Score
		current.WinnerID = m.WinnerID
		current.UpdatedAt = m.UpdatedAt
		st.matchups[m.ID] = current
		return nil
	})
}
