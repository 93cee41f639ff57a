package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/cache"
	idgen "github.com/riskibarqy/fantasy-cricket/internal/platform/id"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

var (
	testNow   = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	testAdmin = user.Principal{UserID: "admin-1", Username: "admin", Role: user.RoleAdmin}
)

type testEnv struct {
	store       *memory.Store
	cache       *cache.Store
	accounts    *AccountService
	team        *TeamService
	rounds      *RoundService
	stats       *StatService
	bonus       *BonusService
	players     *PlayerService
	leaderboard *LeaderboardService
	h2h         *H2HService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	memory.Seed(store, testNow)

	logger := logging.NewNop()
	rules := fantasy.DefaultRules()
	pricing := scoring.DefaultPriceRules()
	cacheStore := cache.NewStore(time.Minute)

	env := &testEnv{store: store, cache: cacheStore}
	env.accounts = NewAccountService(store, store.Accounts(), rules, cacheStore, logger)
	env.team = NewTeamService(store, store.Accounts(), store.Players(), store.Holdings(), store.Rounds(), rules, cacheStore, logger)
	env.rounds = NewRoundService(store, store.Rounds(), store.Players(), cacheStore, idgen.NewSequence("rnd"), logger)
	env.h2h = NewH2HService(store, store.Matchups(), store.Accounts(), store.Rounds(), store.Holdings(), store.Stats(), idgen.NewSequence("h2h"), 2, logger)
	env.stats = NewStatService(store, store.Stats(), store.Players(), store.Rounds(), store.BonusRules(), store.Multipliers(), pricing, env.h2h, cacheStore, idgen.NewSequence("stat"), logger)
	env.bonus = NewBonusService(store, store.BonusRules(), store.Multipliers(), store.Rounds(), store.Players(), idgen.NewSequence("rule"), logger)
	env.players = NewPlayerService(store, store.Players(), store.Holdings(), store.Stats(), pricing, idgen.NewSequence("player"), logger)
	env.leaderboard = NewLeaderboardService(store.Accounts(), store.Holdings(), store.Players(), cacheStore, logger)

	env.setNow(testNow)
	return env
}

func (e *testEnv) setNow(now time.Time) {
	clock := func() time.Time { return now }
	e.accounts.now = clock
	e.team.now = clock
	e.rounds.now = clock
	e.stats.now = clock
	e.bonus.now = clock
	e.players.now = clock
	e.h2h.now = clock
}

func (e *testEnv) account(t *testing.T, userID string) user.Account {
	t.Helper()

	account, err := e.accounts.EnsureAccount(context.Background(), user.Principal{UserID: userID, Username: userID, Role: user.RoleStandard})
	if err != nil {
		t.Fatalf("ensure account %s: %v", userID, err)
	}
	return account
}

func (e *testEnv) buy(t *testing.T, userID, playerID string, asSubstitute bool) MutationResult {
	t.Helper()

	result, err := e.team.Buy(context.Background(), userID, playerID, asSubstitute)
	if err != nil {
		t.Fatalf("buy %s for %s: %v", playerID, userID, err)
	}
	return result
}
