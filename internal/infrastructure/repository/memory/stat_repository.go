package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
)

// StatRepository keeps entries in insertion order; entries are never edited.
type StatRepository struct {
	store *Store
}

func (r *StatRepository) Insert(ctx context.Context, entry stats.Entry) error {
	return r.store.write(ctx, func(st *state) error {
		for _, existing := range st.entries {
			if existing.ID == entry.ID {
				return fmt.Errorf("stat entry %s already exists", entry.ID)
			}
		}
		st.entries = append(st.entries, entry)
		return nil
	})
}

func (r *StatRepository) ListByPlayerAndRound(ctx context.Context, playerID, roundID string) ([]stats.Entry, error) {
	return r.filter(ctx, func(e stats.Entry) bool { return e.PlayerID == playerID && e.RoundID == roundID }), nil
}

func (r *StatRepository) ListByRound(ctx context.Context, roundID string) ([]stats.Entry, error) {
	return r.filter(ctx, func(e stats.Entry) bool { return e.RoundID == roundID }), nil
}

func (r *StatRepository) ListByPlayer(ctx context.Context, playerID string) ([]stats.Entry, error) {
	return r.filter(ctx, func(e stats.Entry) bool { return e.PlayerID == playerID }), nil
}

func (r *StatRepository) filter(ctx context.Context, keep func(stats.Entry) bool) []stats.Entry {
	out := make([]stats.Entry, 0)
	r.store.read(ctx, func(st *state) {
		for _, e := range st.entries {
			if keep(e) {
				out = append(out, e)
			}
		}
	})
	return out
}
