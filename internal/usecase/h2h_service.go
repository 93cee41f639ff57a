package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/h2h"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/round"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	idgen "github.com/riskibarqy/fantasy-cricket/internal/platform/id"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

const defaultH2HWorkers = 4

type CreateMatchupInput struct {
	Name    string
	RoundID string
	User1ID string
	User2ID string
}

type RecomputeResult struct {
	RoundID string
	Updated int
	Failed  int
}

type H2HService struct {
	tx          Transactor
	matchupRepo h2h.Repository
	userRepo    user.Repository
	roundRepo   round.Repository
	holdingRepo fantasy.Repository
	statRepo    stats.Repository
	idGen       idgen.Generator
	workers     int
	logger      *logging.Logger
	now         func() time.Time
}

func NewH2HService(
	tx Transactor,
	matchupRepo h2h.Repository,
	userRepo user.Repository,
	roundRepo round.Repository,
	holdingRepo fantasy.Repository,
	statRepo stats.Repository,
	idGen idgen.Generator,
	workers int,
	logger *logging.Logger,
) *H2HService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultH2HWorkers
	}

	return &H2HService{
		tx:          tx,
		matchupRepo: matchupRepo,
		userRepo:    userRepo,
		roundRepo:   roundRepo,
		holdingRepo: holdingRepo,
		statRepo:    statRepo,
		idGen:       idGen,
		workers:     workers,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *H2HService) Create(ctx context.Context, actor user.Principal, input CreateMatchupInput) (h2h.Matchup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.H2HService.Create")
	defer span.End()

	if err := requireAdmin(actor); err != nil {
		return h2h.Matchup{}, err
	}

	input.Name = strings.TrimSpace(input.Name)
	input.RoundID = strings.TrimSpace(input.RoundID)
	input.User1ID = strings.TrimSpace(input.User1ID)
	input.User2ID = strings.TrimSpace(input.User2ID)
	if input.Name == "" || input.RoundID == "" || input.User1ID == "" || input.User2ID == "" {
		return h2h.Matchup{}, fmt.Errorf("%w: name, round_id, user1_id and user2_id are required", ErrInvalidInput)
	}
	if input.User1ID == input.User2ID {
		return h2h.Matchup{}, fmt.Errorf("%w: a user cannot be matched against themselves", ErrConflict)
	}

	for _, userID := range []string{input.User1ID, input.User2ID} {
		if _, exists, err := s.userRepo.GetByID(ctx, userID); err != nil {
			return h2h.Matchup{}, fmt.Errorf("get account: %w", err)
		} else if !exists {
			return h2h.Matchup{}, fmt.Errorf("%w: account=%s", ErrNotFound, userID)
		}
	}
	if _, exists, err := s.roundRepo.GetByID(ctx, input.RoundID); err != nil {
		return h2h.Matchup{}, fmt.Errorf("get round by id: %w", err)
	} else if !exists {
		return h2h.Matchup{}, fmt.Errorf("%w: round=%s", ErrNotFound, input.RoundID)
	}

	matchupID, err := s.idGen.NewID()
	if err != nil {
		return h2h.Matchup{}, fmt.Errorf("generate matchup id: %w", err)
	}

	now := s.now().UTC()
	matchup := h2h.Matchup{
		ID:        matchupID,
		Name:      input.Name,
		RoundID:   input.RoundID,
		User1ID:   input.User1ID,
		User2ID:   input.User2ID,
		Status:    h2h.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := matchup.Validate(); err != nil {
		return h2h.Matchup{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		resolved, err := s.resolve(ctx, matchup)
		if err != nil {
			return err
		}
		matchup = resolved
		if err := s.matchupRepo.Create(ctx, matchup); err != nil {
			return fmt.Errorf("create matchup: %w", err)
		}
		return nil
	})
	if err != nil {
		return h2h.Matchup{}, err
	}

	s.logger.InfoContext(ctx, "h2h matchup created",
		"matchup_id", matchup.ID,
		"round_id", matchup.RoundID,
		"user1_id", matchup.User1ID,
		"user2_id", matchup.User2ID,
		"status", string(matchup.Status),
	)
	return matchup, nil
}

func (s *H2HService) List(ctx context.Context, roundID string) ([]h2h.Matchup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.H2HService.List")
	defer span.End()

	items, err := s.matchupRepo.List(ctx, strings.TrimSpace(roundID))
	if err != nil {
		return nil, fmt.Errorf("list matchups: %w", err)
	}
	return items, nil
}

func (s *H2HService) Get(ctx context.Context, matchupID string) (h2h.Matchup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.H2HService.Get")
	defer span.End()

	matchupID = strings.TrimSpace(matchupID)
	if matchupID == "" {
		return h2h.Matchup{}, fmt.Errorf("%w: matchup id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchupRepo.GetByID(ctx, matchupID)
	if err != nil {
		return h2h.Matchup{}, fmt.Errorf("get matchup: %w", err)
	}
	if !exists {
		return h2h.Matchup{}, fmt.Errorf("%w: matchup=%s", ErrNotFound, matchupID)
	}
	return item, nil
}

// RecomputeRound re-resolves every matchup of the round on a bounded worker pool.
// Each matchup is written in its own transaction; one failure does not stop the rest.
func (s *H2HService) RecomputeRound(ctx context.Context, roundID string) (RecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.H2HService.RecomputeRound")
	defer span.End()

	roundID = strings.TrimSpace(roundID)
	result := RecomputeResult{RoundID: roundID}
	if roundID == "" {
		return result, fmt.Errorf("%w: round id is required", ErrInvalidInput)
	}

	matchups, err := s.matchupRepo.List(ctx, roundID)
	if err != nil {
		return result, fmt.Errorf("list matchups: %w", err)
	}
	if len(matchups) == 0 {
		return result, nil
	}

	workerCount := s.workers
	if workerCount > len(matchups) {
		workerCount = len(matchups)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return result, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var updated atomic.Int32
	var failed atomic.Int32
	var workers sync.WaitGroup
	for _, item := range matchups {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if err := s.recomputeOne(ctx, item); err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "recompute h2h matchup failed", "matchup_id", item.ID, "round_id", roundID, "error", err)
				return
			}
			updated.Add(1)
		}); err != nil {
			workers.Done()
			failed.Add(1)
			s.logger.WarnContext(ctx, "submit h2h recompute failed", "matchup_id", item.ID, "error", err)
		}
	}
	workers.Wait()

	result.Updated = int(updated.Load())
	result.Failed = int(failed.Load())
	s.logger.InfoContext(ctx, "h2h round recomputed", "round_id", roundID, "updated", result.Updated, "failed", result.Failed)

	if result.Failed > 0 {
		return result, fmt.Errorf("recompute round=%s: %d of %d matchups failed", roundID, result.Failed, len(matchups))
	}
	return result, nil
}

func (s *H2HService) recomputeOne(ctx context.Context, item h2h.Matchup) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		locked, exists, err := s.matchupRepo.GetForUpdate(ctx, item.ID)
		if err != nil {
			return fmt.Errorf("lock matchup: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: matchup=%s", ErrNotFound, item.ID)
		}

		resolved, err := s.resolve(ctx, locked)
		if err != nil {
			return err
		}
		resolved.UpdatedAt = s.now().UTC()
		if err := s.matchupRepo.UpdateResult(ctx, resolved); err != nil {
			return fmt.Errorf("update matchup result: %w", err)
		}
		return nil
	})
}

// resolve scores both rosters against the round's stat entries.
func (s *H2HService) resolve(ctx context.Context, item h2h.Matchup) (h2h.Matchup, error) {
	entries, err := s.statRepo.ListByRound(ctx, item.RoundID)
	if err != nil {
		return h2h.Matchup{}, fmt.Errorf("list round stat entries: %w", err)
	}
	points := stats.PointsByPlayer(entries)

	roster1, err := s.holdingRepo.ListByUser(ctx, item.User1ID)
	if err != nil {
		return h2h.Matchup{}, fmt.Errorf("list holdings user=%s: %w", item.User1ID, err)
	}
	roster2, err := s.holdingRepo.ListByUser(ctx, item.User2ID)
	if err != nil {
		return h2h.Matchup{}, fmt.Errorf("list holdings user=%s: %w", item.User2ID, err)
	}

	return h2h.Resolve(item, h2h.RoundScore(roster1, points), h2h.RoundScore(roster2, points), len(entries) > 0), nil
}
