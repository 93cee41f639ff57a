package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/round"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/cache"
	idgen "github.com/riskibarqy/fantasy-cricket/internal/platform/id"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

type CreateRoundInput struct {
	Name        string
	Sequence    int
	LockoutTime time.Time
}

// RoundView is a round with its state derived at read time.
type RoundView struct {
	round.Round
	State round.State
}

type StartRoundResult struct {
	Round         round.Round
	RolledPlayers int
	AlreadyActive bool
}

type RoundService struct {
	tx         Transactor
	roundRepo  round.Repository
	playerRepo player.Repository
	cache      cache.Loader
	idGen      idgen.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewRoundService(
	tx Transactor,
	roundRepo round.Repository,
	playerRepo player.Repository,
	cacheStore cache.Loader,
	idGen idgen.Generator,
	logger *logging.Logger,
) *RoundService {
	if logger == nil {
		logger = logging.Default()
	}
	if cacheStore == nil {
		cacheStore = cache.Nop{}
	}

	return &RoundService{
		tx:         tx,
		roundRepo:  roundRepo,
		playerRepo: playerRepo,
		cache:      cacheStore,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *RoundService) Create(ctx context.Context, actor user.Principal, input CreateRoundInput) (round.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.Create")
	defer span.End()

	if err := requireAdmin(actor); err != nil {
		return round.Round{}, err
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return round.Round{}, fmt.Errorf("%w: round name is required", ErrInvalidInput)
	}
	if input.Sequence <= 0 {
		return round.Round{}, fmt.Errorf("%w: round sequence must be greater than zero", ErrInvalidInput)
	}
	if input.LockoutTime.IsZero() {
		return round.Round{}, fmt.Errorf("%w: lockout time is required", ErrInvalidInput)
	}

	existing, err := s.roundRepo.List(ctx)
	if err != nil {
		return round.Round{}, fmt.Errorf("list rounds: %w", err)
	}
	for _, r := range existing {
		if r.Sequence == input.Sequence {
			return round.Round{}, fmt.Errorf("%w: round sequence %d already used by %s", ErrConflict, input.Sequence, r.ID)
		}
	}

	roundID, err := s.idGen.NewID()
	if err != nil {
		return round.Round{}, fmt.Errorf("generate round id: %w", err)
	}

	now := s.now().UTC()
	item := round.Round{
		ID:          roundID,
		Name:        input.Name,
		Sequence:    input.Sequence,
		LockoutTime: input.LockoutTime.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := item.Validate(); err != nil {
		return round.Round{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.roundRepo.Create(ctx, item); err != nil {
		return round.Round{}, fmt.Errorf("create round: %w", err)
	}

	s.logger.InfoContext(ctx, "round created", "round_id", item.ID, "sequence", item.Sequence, "lockout_time", item.LockoutTime)
	return item, nil
}

func (s *RoundService) List(ctx context.Context) ([]RoundView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.List")
	defer span.End()

	items, err := s.roundRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}

	now := s.now()
	out := make([]RoundView, 0, len(items))
	for _, r := range items {
		out = append(out, RoundView{Round: r, State: r.StateAt(now)})
	}
	return out, nil
}

// Current returns the active round and refreshes its cached lock flag.
func (s *RoundService) Current(ctx context.Context) (RoundView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.Current")
	defer span.End()

	active, found, err := s.roundRepo.GetActive(ctx)
	if err != nil {
		return RoundView{}, fmt.Errorf("get active round: %w", err)
	}
	if !found {
		return RoundView{}, fmt.Errorf("%w: no active round", ErrNotFound)
	}

	now := s.now()
	refreshLockFlag(ctx, s.roundRepo, active, now, s.logger)
	if active.IsLockedAt(now) {
		active.IsLocked = true
	}
	return RoundView{Round: active, State: active.StateAt(now)}, nil
}

// IsLockedNow reports whether roster mutations are currently frozen.
func (s *RoundService) IsLockedNow(ctx context.Context) (bool, error) {
	active, found, err := s.roundRepo.GetActive(ctx)
	if err != nil {
		return false, fmt.Errorf("get active round: %w", err)
	}
	return found && active.IsLockedAt(s.now()), nil
}

// Start rolls every player's current round points into their totals, settles the
// previously active round and activates roundID, all under the exclusive lock.
func (s *RoundService) Start(ctx context.Context, actor user.Principal, roundID string) (StartRoundResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.Start")
	defer span.End()

	if err := requireAdmin(actor); err != nil {
		return StartRoundResult{}, err
	}
	roundID = strings.TrimSpace(roundID)
	if roundID == "" {
		return StartRoundResult{}, fmt.Errorf("%w: round id is required", ErrInvalidInput)
	}

	now := s.now().UTC()
	var result StartRoundResult
	err := s.tx.WithinExclusiveTx(ctx, func(ctx context.Context) error {
		target, exists, err := s.roundRepo.GetByID(ctx, roundID)
		if err != nil {
			return fmt.Errorf("get round by id: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: round=%s", ErrNotFound, roundID)
		}
		if target.SettledAt != nil {
			return fmt.Errorf("%w: round %s is already settled", ErrConflict, roundID)
		}
		if target.IsActive {
			result = StartRoundResult{Round: target, AlreadyActive: true}
			return nil
		}

		rolled, err := s.playerRepo.RollRoundPoints(ctx)
		if err != nil {
			return fmt.Errorf("roll round points: %w", err)
		}
		if err := s.roundRepo.Activate(ctx, roundID, now); err != nil {
			return fmt.Errorf("activate round: %w", err)
		}

		activeCount, err := s.roundRepo.CountActive(ctx)
		if err != nil {
			return fmt.Errorf("count active rounds: %w", err)
		}
		if activeCount != 1 {
			return fmt.Errorf("expected exactly one active round after start, found %d", activeCount)
		}

		started, _, err := s.roundRepo.GetByID(ctx, roundID)
		if err != nil {
			return fmt.Errorf("reload round: %w", err)
		}
		result = StartRoundResult{Round: started, RolledPlayers: rolled}
		return nil
	})
	if err != nil {
		return StartRoundResult{}, err
	}

	if result.AlreadyActive {
		s.logger.InfoContext(ctx, "round already active", "round_id", roundID)
		return result, nil
	}

	invalidateLeaderboard(ctx, s.cache, s.logger)
	s.logger.InfoContext(ctx, "round started",
		"round_id", roundID,
		"sequence", result.Round.Sequence,
		"rolled_players", result.RolledPlayers,
	)
	return result, nil
}
