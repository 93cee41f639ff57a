package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func (r *PlayerRepository) List(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	var out []player.Player
	r.store.read(ctx, func(st *state) {
		out = make([]player.Player, 0, len(st.players))
		for _, p := range st.players {
			if filter.Position != "" && p.Position != filter.Position {
				continue
			}
			out = append(out, p)
		}
	})

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	var (
		p  player.Player
		ok bool
	)
	r.store.read(ctx, func(st *state) {
		p, ok = st.players[playerID]
	})
	return p, ok, nil
}

// GetForUpdate relies on the transaction's write lock for exclusivity.
func (r *PlayerRepository) GetForUpdate(ctx context.Context, playerID string) (player.Player, bool, error) {
	return r.GetByID(ctx, playerID)
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	out := make([]player.Player, 0, len(playerIDs))
	r.store.read(ctx, func(st *state) {
		for _, id := range playerIDs {
			if p, ok := st.players[id]; ok {
				out = append(out, p)
			}
		}
	})
	return out, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	return r.store.write(ctx, func(st *state) error {
		if _, exists := st.players[p.ID]; exists {
			return fmt.Errorf("player %s already exists", p.ID)
		}
		st.players[p.ID] = p
		return nil
	})
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	return r.store.write(ctx, func(st *state) error {
		delete(st.players, playerID)
		return nil
	})
}

func (r *PlayerRepository) UpdateScoring(ctx context.Context, playerID string, currentRoundPoints int, currentPrice int64) error {
	return r.store.write(ctx, func(st *state) error {
		p, ok := st.players[playerID]
		if !ok {
			return fmt.Errorf("player %s not found", playerID)
		}
		p.CurrentRoundPoints = currentRoundPoints
		p.CurrentPrice = currentPrice
		st.players[playerID] = p
		return nil
	})
}

func (r *PlayerRepository) RollRoundPoints(ctx context.Context) (int, error) {
	rolled := 0
	err := r.store.write(ctx, func(st *state) error {
		for id, p := range st.players {
			if p.CurrentRoundPoints == 0 {
				continue
			}
			p.TotalPoints += p.CurrentRoundPoints
			p.CurrentRoundPoints = 0
			st.players[id] = p
			rolled++
		}
		return nil
	})
	return rolled, err
}
