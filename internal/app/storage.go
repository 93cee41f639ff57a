package app

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/config"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/bonus"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/h2h"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/round"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

type repositories struct {
	tx          usecase.Transactor
	players     player.Repository
	rounds      round.Repository
	stats       stats.Repository
	bonusRules  bonus.RuleRepository
	multipliers bonus.MultiplierRepository
	holdings    fantasy.Repository
	accounts    user.Repository
	matchups    h2h.Repository
	close       func() error
}

func openStorage(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		logger.Info("storage ready", "driver", cfg.StorageDriver, "db_name", dbNameFromURL(cfg.DBURL))

		return repositories{
			tx:          postgres.NewTransactor(db),
			players:     postgres.NewPlayerRepository(db),
			rounds:      postgres.NewRoundRepository(db),
			stats:       postgres.NewStatRepository(db),
			bonusRules:  postgres.NewBonusRuleRepository(db),
			multipliers: postgres.NewMultiplierRepository(db),
			holdings:    postgres.NewHoldingRepository(db),
			accounts:    postgres.NewAccountRepository(db),
			matchups:    postgres.NewMatchupRepository(db),
			close:       db.Close,
		}, nil
	case config.StorageMemory:
		store := memory.NewStore()
		logger.Info("storage ready", "driver", cfg.StorageDriver)

		return repositories{
			tx:          store,
			players:     store.Players(),
			rounds:      store.Rounds(),
			stats:       store.Stats(),
			bonusRules:  store.BonusRules(),
			multipliers: store.Multipliers(),
			holdings:    store.Holdings(),
			accounts:    store.Accounts(),
			matchups:    store.Matchups(),
			close:       func() error { return nil },
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// seedDemoData loads the demo player pool and rounds. Rows that already exist
// are left untouched, so restarting against a seeded database is a no-op.
func seedDemoData(ctx context.Context, repos repositories, now time.Time, logger *logging.Logger) error {
	var createdPlayers, createdRounds int

	err := repos.tx.WithinExclusiveTx(ctx, func(ctx context.Context) error {
		for _, p := range memory.SeedPlayers(now) {
			_, exists, err := repos.players.GetByID(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("lookup player %s: %w", p.ID, err)
			}
			if exists {
				continue
			}
			if err := repos.players.Create(ctx, p); err != nil {
				return fmt.Errorf("seed player %s: %w", p.ID, err)
			}
			createdPlayers++
		}

		existing, err := repos.rounds.List(ctx)
		if err != nil {
			return fmt.Errorf("list rounds: %w", err)
		}
		if len(existing) > 0 {
			return nil
		}
		for _, r := range memory.SeedRounds(now) {
			if err := repos.rounds.Create(ctx, r); err != nil {
				return fmt.Errorf("seed round %s: %w", r.ID, err)
			}
			createdRounds++
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("demo data seeded", "players", createdPlayers, "rounds", createdRounds)
	return nil
}
