package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
)

type HoldingRepository struct {
	store *Store
}

func (r *HoldingRepository) ListByUser(ctx context.Context, userID string) (fantasy.Roster, error) {
	var out fantasy.Roster
	r.store.read(ctx, func(st *state) {
		byPlayer := st.holdings[userID]
		out = make(fantasy.Roster, 0, len(byPlayer))
		for _, h := range byPlayer {
			out = append(out, h)
		}
	})

	sortHoldings(out)
	return out, nil
}

func (r *HoldingRepository) ListAll(ctx context.Context) ([]fantasy.Holding, error) {
	out := make([]fantasy.Holding, 0)
	r.store.read(ctx, func(st *state) {
		for _, byPlayer := range st.holdings {
			for _, h := range byPlayer {
				out = append(out, h)
			}
		}
	})

	sort.Slice(out, func(i, j int) bool {
		if out[i].UserID != out[j].UserID {
			return out[i].UserID < out[j].UserID
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out, nil
}

func (r *HoldingRepository) CountByPlayer(ctx context.Context, playerID string) (int, error) {
	count := 0
	r.store.read(ctx, func(st *state) {
		for _, byPlayer := range st.holdings {
			if _, ok := byPlayer[playerID]; ok {
				count++
			}
		}
	})
	return count, nil
}

func (r *HoldingRepository) Insert(ctx context.Context, h fantasy.Holding) error {
	return r.store.write(ctx, func(st *state) error {
		byPlayer, ok := st.holdings[h.UserID]
		if !ok {
			byPlayer = make(map[string]fantasy.Holding)
			st.holdings[h.UserID] = byPlayer
		}
		if _, exists := byPlayer[h.PlayerID]; exists {
			return fmt.Errorf("holding user=%s player=%s already exists", h.UserID, h.PlayerID)
		}
		byPlayer[h.PlayerID] = h
		return nil
	})
}

func (r *HoldingRepository) Delete(ctx context.Context, userID, playerID string) error {
	return r.store.write(ctx, func(st *state) error {
		delete(st.holdings[userID], playerID)
		return nil
	})
}

func (r *HoldingRepository) Update(ctx context.Context, h fantasy.Holding) error {
	return r.store.write(ctx, func(st *state) error {
		if _, exists := st.holdings[h.UserID][h.PlayerID]; !exists {
			return fmt.Errorf("holding user=%s player=%s not found", h.UserID, h.PlayerID)
		}
		st.holdings[h.UserID][h.PlayerID] = h
		return nil
	})
}

func (r *HoldingRepository) ClearCaptain(ctx context.Context, userID string) error {
	return r.store.write(ctx, func(st *state) error {
		for playerID, h := range st.holdings[userID] {
			if h.IsCaptain {
				h.IsCaptain = false
				st.holdings[userID][playerID] = h
			}
		}
		return nil
	})
}

func (r *HoldingRepository) SetCaptain(ctx context.Context, userID, playerID string) error {
	return r.store.write(ctx, func(st *state) error {
		h, exists := st.holdings[userID][playerID]
		if !exists {
			return fmt.Errorf("holding user=%s player=%s not found", userID, playerID)
		}
		h.IsCaptain = true
		st.holdings[userID][playerID] = h
		return nil
	})
}

func sortHoldings(items fantasy.Roster) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].PlayerID < items[j].PlayerID
	})
}
