package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/bonus"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/round"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/cache"
	idgen "github.com/riskibarqy/fantasy-cricket/internal/platform/id"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

// RoundRecomputer refreshes derived per-round results after new stats land.
type RoundRecomputer interface {
	RecomputeRound(ctx context.Context, roundID string) (RecomputeResult, error)
}

type RecordStatInput struct {
	PlayerID string
	// RoundID defaults to the active round when empty.
	RoundID string
	Line    stats.Line
}

type RecordStatResult struct {
	Entry              stats.Entry
	Breakdown          scoring.Breakdown
	CurrentRoundPoints int
	CurrentPrice       int64
}

type StatService struct {
	tx             Transactor
	statRepo       stats.Repository
	playerRepo     player.Repository
	roundRepo      round.Repository
	ruleRepo       bonus.RuleRepository
	multiplierRepo bonus.MultiplierRepository
	pricing        scoring.PriceRules
	recomputer     RoundRecomputer
	cache          cache.Loader
	idGen          idgen.Generator
	logger         *logging.Logger
	now            func() time.Time
}

func NewStatService(
	tx Transactor,
	statRepo stats.Repository,
	playerRepo player.Repository,
	roundRepo round.Repository,
	ruleRepo bonus.RuleRepository,
	multiplierRepo bonus.MultiplierRepository,
	pricing scoring.PriceRules,
	recomputer RoundRecomputer,
	cacheStore cache.Loader,
	idGen idgen.Generator,
	logger *logging.Logger,
) *StatService {
	if logger == nil {
		logger = logging.Default()
	}
	if cacheStore == nil {
		cacheStore = cache.Nop{}
	}

	return &StatService{
		tx:             tx,
		statRepo:       statRepo,
		playerRepo:     playerRepo,
		roundRepo:      roundRepo,
		ruleRepo:       ruleRepo,
		multiplierRepo: multiplierRepo,
		pricing:        pricing,
		recomputer:     recomputer,
		cache:          cacheStore,
		idGen:          idGen,
		logger:         logger,
		now:            time.Now,
	}
}

// Record scores and stores one stat line for the active round, then recomputes
// the player's round points and price from every entry of that round.
func (s *StatService) Record(ctx context.Context, actor user.Principal, input RecordStatInput) (RecordStatResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatService.Record")
	defer span.End()

	if err := requireAdmin(actor); err != nil {
		return RecordStatResult{}, err
	}

	input.PlayerID = strings.TrimSpace(input.PlayerID)
	input.RoundID = strings.TrimSpace(input.RoundID)
	if input.PlayerID == "" {
		return RecordStatResult{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if err := input.Line.Validate(); err != nil {
		return RecordStatResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	entryID, err := s.idGen.NewID()
	if err != nil {
		return RecordStatResult{}, fmt.Errorf("generate stat entry id: %w", err)
	}

	var result RecordStatResult
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		active, found, err := s.roundRepo.GetActive(ctx)
		if err != nil {
			return fmt.Errorf("get active round: %w", err)
		}
		if !found {
			return fmt.Errorf("%w: no active round to record stats against", ErrConflict)
		}
		roundID := input.RoundID
		if roundID == "" {
			roundID = active.ID
		}
		if roundID != active.ID {
			if _, exists, err := s.roundRepo.GetByID(ctx, roundID); err != nil {
				return fmt.Errorf("get round by id: %w", err)
			} else if !exists {
				return fmt.Errorf("%w: round=%s", ErrNotFound, roundID)
			}
			return fmt.Errorf("%w: stats can only be recorded for the active round %s", ErrConflict, active.ID)
		}

		// Concurrent recordings for one player serialize on this row lock so each
		// recompute below sees every committed entry.
		p, exists, err := s.playerRepo.GetForUpdate(ctx, input.PlayerID)
		if err != nil {
			return fmt.Errorf("lock player: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
		}

		rules, err := s.ruleRepo.ListByRound(ctx, roundID)
		if err != nil {
			return fmt.Errorf("list bonus rules: %w", err)
		}
		scoringInput := scoring.Input{Line: input.Line, Position: p.Position, Rules: rules}
		multiplier, hasMultiplier, err := s.multiplierRepo.Get(ctx, roundID, p.ID)
		if err != nil {
			return fmt.Errorf("get round multiplier: %w", err)
		}
		if hasMultiplier {
			scoringInput.Multiplier = &multiplier
		}

		breakdown := scoring.Calculate(scoringInput)
		entry := stats.Entry{
			ID:        entryID,
			PlayerID:  p.ID,
			RoundID:   roundID,
			Line:      input.Line,
			Points:    breakdown.Total,
			CreatedAt: s.now().UTC(),
		}
		if err := s.statRepo.Insert(ctx, entry); err != nil {
			return fmt.Errorf("insert stat entry: %w", err)
		}

		entries, err := s.statRepo.ListByPlayerAndRound(ctx, p.ID, roundID)
		if err != nil {
			return fmt.Errorf("list stat entries: %w", err)
		}
		currentRoundPoints := stats.SumPoints(entries)
		price := s.pricing.Reprice(p.TotalPoints + currentRoundPoints)
		if err := s.playerRepo.UpdateScoring(ctx, p.ID, currentRoundPoints, price); err != nil {
			return fmt.Errorf("update player scoring: %w", err)
		}

		result = RecordStatResult{
			Entry:              entry,
			Breakdown:          breakdown,
			CurrentRoundPoints: currentRoundPoints,
			CurrentPrice:       price,
		}
		return nil
	})
	if err != nil {
		return RecordStatResult{}, err
	}

	invalidateLeaderboard(ctx, s.cache, s.logger)
	s.logger.InfoContext(ctx, "stat entry recorded",
		"player_id", result.Entry.PlayerID,
		"round_id", result.Entry.RoundID,
		"points", result.Entry.Points,
		"current_round_points", result.CurrentRoundPoints,
		"price", result.CurrentPrice,
	)

	if s.recomputer != nil {
		if _, err := s.recomputer.RecomputeRound(ctx, result.Entry.RoundID); err != nil {
			s.logger.ErrorContext(ctx, "recompute h2h matchups failed", "round_id", result.Entry.RoundID, "error", err)
		}
	}

	return result, nil
}
