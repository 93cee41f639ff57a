package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/bonus"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/h2h"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/round"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
)

type multiplierKey struct {
	roundID  string
	playerID string
}

type state struct {
	players     map[string]player.Player
	rounds      map[string]round.Round
	entries     []stats.Entry
	rules       map[string]bonus.Rule
	multipliers map[multiplierKey]bonus.Multiplier
	holdings    map[string]map[string]fantasy.Holding
	accounts    map[string]user.Account
	matchups    map[string]h2h.Matchup
}

func newState() state {
	return state{
		players:     make(map[string]player.Player),
		rounds:      make(map[string]round.Round),
		rules:       make(map[string]bonus.Rule),
		multipliers: make(map[multiplierKey]bonus.Multiplier),
		holdings:    make(map[string]map[string]fantasy.Holding),
		accounts:    make(map[string]user.Account),
		matchups:    make(map[string]h2h.Matchup),
	}
}

func (st state) clone() state {
	holdings := make(map[string]map[string]fantasy.Holding, len(st.holdings))
	for userID, byPlayer := range st.holdings {
		holdings[userID] = maps.Clone(byPlayer)
	}

	return state{
		players:     maps.Clone(st.players),
		rounds:      maps.Clone(st.rounds),
		entries:     slices.Clone(st.entries),
		rules:       maps.Clone(st.rules),
		multipliers: maps.Clone(st.multipliers),
		holdings:    holdings,
		accounts:    maps.Clone(st.accounts),
		matchups:    maps.Clone(st.matchups),
	}
}

type txKey struct{}

// Store keeps every table in one guarded state so a transaction can span
// repositories. A transaction holds the write lock for its whole duration and
// restores the snapshot taken at its start when fn fails.
type Store struct {
	mu    sync.RWMutex
	state state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

// WithinExclusiveTx is the same as WithinTx here: every memory transaction
// already excludes all others.
func (s *Store) WithinExclusiveTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.WithinTx(ctx, fn)
}

func (s *Store) Players() *PlayerRepository         { return &PlayerRepository{store: s} }
func (s *Store) Rounds() *RoundRepository           { return &RoundRepository{store: s} }
func (s *Store) Stats() *StatRepository             { return &StatRepository{store: s} }
func (s *Store) BonusRules() *BonusRuleRepository   { return &BonusRuleRepository{store: s} }
func (s *Store) Multipliers() *MultiplierRepository { return &MultiplierRepository{store: s} }
func (s *Store) Holdings() *HoldingRepository       { return &HoldingRepository{store: s} }
func (s *Store) Accounts() *AccountRepository       { return &AccountRepository{store: s} }
func (s *Store) Matchups() *MatchupRepository       { return &MatchupRepository{store: s} }

func (s *Store) inTx(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

func (s *Store) read(ctx context.Context, fn func(st *state)) {
	if s.inTx(ctx) {
		fn(&s.state)
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if s.inTx(ctx) {
		return fn(&s.state)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state)
}
