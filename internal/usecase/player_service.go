package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	idgen "github.com/riskibarqy/fantasy-cricket/internal/platform/id"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

type CreatePlayerInput struct {
	Name      string
	Team      string
	Position  string
	BasePrice int64
}

type PlayerService struct {
	tx          Transactor
	playerRepo  player.Repository
	holdingRepo fantasy.Repository
	statRepo    stats.Repository
	pricing     scoring.PriceRules
	idGen       idgen.Generator
	logger      *logging.Logger
	now         func() time.Time
}

func NewPlayerService(
	tx Transactor,
	playerRepo player.Repository,
	holdingRepo fantasy.Repository,
	statRepo stats.Repository,
	pricing scoring.PriceRules,
	idGen idgen.Generator,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		tx:          tx,
		playerRepo:  playerRepo,
		holdingRepo: holdingRepo,
		statRepo:    statRepo,
		pricing:     pricing,
		idGen:       idGen,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *PlayerService) Create(ctx context.Context, actor user.Principal, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	if err := requireAdmin(actor); err != nil {
		return player.Player{}, err
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Team = strings.TrimSpace(input.Team)
	position, ok := player.ParsePosition(input.Position)
	if !ok {
		return player.Player{}, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, input.Position)
	}
	if input.BasePrice <= 0 {
		return player.Player{}, fmt.Errorf("%w: base price must be greater than zero", ErrInvalidInput)
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	now := s.now().UTC()
	item := player.Player{
		ID:           playerID,
		Name:         input.Name,
		Team:         input.Team,
		Position:     position,
		BasePrice:    input.BasePrice,
		CurrentPrice: s.pricing.ListingPrice(input.BasePrice),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.playerRepo.Create(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	s.logger.InfoContext(ctx, "player created", "player_id", item.ID, "position", string(item.Position), "price", item.CurrentPrice)
	return item, nil
}

// List returns every player, optionally narrowed to one position.
func (s *PlayerService) List(ctx context.Context, position string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	filter := player.ListFilter{}
	if strings.TrimSpace(position) != "" {
		parsed, ok := player.ParsePosition(position)
		if !ok {
			return nil, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, position)
		}
		filter.Position = parsed
	}

	items, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return item, nil
}

func (s *PlayerService) ListStats(ctx context.Context, playerID string) ([]stats.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListStats")
	defer span.End()

	if _, err := s.Get(ctx, playerID); err != nil {
		return nil, err
	}

	entries, err := s.statRepo.ListByPlayer(ctx, strings.TrimSpace(playerID))
	if err != nil {
		return nil, fmt.Errorf("list stat entries: %w", err)
	}
	return entries, nil
}

// Delete removes a player nobody holds.
func (s *PlayerService) Delete(ctx context.Context, actor user.Principal, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	if err := requireAdmin(actor); err != nil {
		return err
	}
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, exists, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
			return fmt.Errorf("get player by id: %w", err)
		} else if !exists {
			return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}

		holders, err := s.holdingRepo.CountByPlayer(ctx, playerID)
		if err != nil {
			return fmt.Errorf("count holdings: %w", err)
		}
		if holders > 0 {
			return fmt.Errorf("%w: player %s is held by %d roster(s)", ErrConflict, playerID, holders)
		}

		if err := s.playerRepo.Delete(ctx, playerID); err != nil {
			return fmt.Errorf("delete player: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "player deleted", "player_id", playerID)
	return nil
}
