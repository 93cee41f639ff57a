package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/leaderboard"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/cache"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

const (
	leaderboardCachePrefix = "leaderboard:"
	leaderboardCacheKey    = leaderboardCachePrefix + "v1"
)

type LeaderboardService struct {
	userRepo    user.Repository
	holdingRepo fantasy.Repository
	playerRepo  player.Repository
	cache       cache.Loader
	logger      *logging.Logger
}

func NewLeaderboardService(
	userRepo user.Repository,
	holdingRepo fantasy.Repository,
	playerRepo player.Repository,
	cacheStore cache.Loader,
	logger *logging.Logger,
) *LeaderboardService {
	if logger == nil {
		logger = logging.Default()
	}
	if cacheStore == nil {
		cacheStore = cache.Nop{}
	}

	return &LeaderboardService{
		userRepo:    userRepo,
		holdingRepo: holdingRepo,
		playerRepo:  playerRepo,
		cache:       cacheStore,
		logger:      logger,
	}
}

func (s *LeaderboardService) Get(ctx context.Context) ([]leaderboard.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Get")
	defer span.End()

	value, err := s.cache.GetOrLoad(ctx, leaderboardCacheKey, func(ctx context.Context) (any, error) {
		return s.compute(ctx)
	})
	if err != nil {
		return nil, err
	}

	entries, ok := value.([]leaderboard.Entry)
	if !ok {
		s.logger.WarnContext(ctx, "leaderboard cache returned unexpected type, recomputing")
		return s.compute(ctx)
	}
	return entries, nil
}

func (s *LeaderboardService) compute(ctx context.Context) ([]leaderboard.Entry, error) {
	accounts, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	holdings, err := s.holdingRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list holdings: %w", err)
	}
	players, err := s.playerRepo.List(ctx, player.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	playerByID := make(map[string]player.Player, len(players))
	for _, p := range players {
		playerByID[p.ID] = p
	}

	return leaderboard.Aggregate(accounts, holdings, playerByID), nil
}

func invalidateLeaderboard(ctx context.Context, c cache.Loader, logger *logging.Logger) {
	if err := c.DeletePrefix(ctx, leaderboardCachePrefix); err != nil {
		logger.WarnContext(ctx, "invalidate leaderboard cache failed", "error", err)
	}
}
