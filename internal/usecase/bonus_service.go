package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/bonus"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/round"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	idgen "github.com/riskibarqy/fantasy-cricket/internal/platform/id"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/shopspring/decimal"
)

type CreateBonusRuleInput struct {
	RoundID         string
	Name            string
	Description     string
	BonusPoints     int
	Conditions      bonus.Conditions
	TargetPositions []string
}

// BonusService manages round-scoped bonus rules and player multipliers. Changes
// apply to stat entries recorded afterwards; stored entry points are not rescored.
type BonusService struct {
	tx             Transactor
	ruleRepo       bonus.RuleRepository
	multiplierRepo bonus.MultiplierRepository
	roundRepo      round.Repository
	playerRepo     player.Repository
	idGen          idgen.Generator
	logger         *logging.Logger
	now            func() time.Time
}

func NewBonusService(
	tx Transactor,
	ruleRepo bonus.RuleRepository,
	multiplierRepo bonus.MultiplierRepository,
	roundRepo round.Repository,
	playerRepo player.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *BonusService {
	if logger == nil {
		logger = logging.Default()
	}

	return &BonusService{
		tx:             tx,
		ruleRepo:       ruleRepo,
		multiplierRepo: multiplierRepo,
		roundRepo:      roundRepo,
		playerRepo:     playerRepo,
		idGen:          idGen,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *BonusService) CreateRule(ctx context.Context, actor user.Principal, input CreateBonusRuleInput) (bonus.Rule, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BonusService.CreateRule")
	defer span.End()

	if err := requireAdmin(actor); err != nil {
		return bonus.Rule{}, err
	}

	input.RoundID = strings.TrimSpace(input.RoundID)
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)

	targets, err := bonus.NormalizeTargets(input.TargetPositions)
	if err != nil {
		return bonus.Rule{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	ruleID, err := s.idGen.NewID()
	if err != nil {
		return bonus.Rule{}, fmt.Errorf("generate bonus rule id: %w", err)
	}

	rule := bonus.Rule{
		ID:              ruleID,
		RoundID:         input.RoundID,
		Name:            input.Name,
		Description:     input.Description,
		BonusPoints:     input.BonusPoints,
		Conditions:      input.Conditions,
		TargetPositions: targets,
		CreatedAt:       s.now().UTC(),
	}
	if err := rule.Validate(); err != nil {
		return bonus.Rule{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureRound(ctx, rule.RoundID); err != nil {
			return err
		}
		if err := s.ruleRepo.Create(ctx, rule); err != nil {
			return fmt.Errorf("create bonus rule: %w", err)
		}
		return nil
	})
	if err != nil {
		return bonus.Rule{}, err
	}

	s.logger.InfoContext(ctx, "bonus rule created", "rule_id", rule.ID, "round_id", rule.RoundID, "bonus_points", rule.BonusPoints)
	return rule, nil
}

func (s *BonusService) ListRules(ctx context.Context, roundID string) ([]bonus.Rule, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BonusService.ListRules")
	defer span.End()

	roundID = strings.TrimSpace(roundID)
	if err := s.ensureRound(ctx, roundID); err != nil {
		return nil, err
	}

	items, err := s.ruleRepo.ListByRound(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("list bonus rules: %w", err)
	}
	return items, nil
}

func (s *BonusService) DeleteRule(ctx context.Context, actor user.Principal, ruleID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.BonusService.DeleteRule")
	defer span.End()

	if err := requireAdmin(actor); err != nil {
		return err
	}
	ruleID = strings.TrimSpace(ruleID)
	if ruleID == "" {
		return fmt.Errorf("%w: rule id is required", ErrInvalidInput)
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, exists, err := s.ruleRepo.GetByID(ctx, ruleID); err != nil {
			return fmt.Errorf("get bonus rule: %w", err)
		} else if !exists {
			return fmt.Errorf("%w: bonus rule=%s", ErrNotFound, ruleID)
		}
		if err := s.ruleRepo.Delete(ctx, ruleID); err != nil {
			return fmt.Errorf("delete bonus rule: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "bonus rule deleted", "rule_id", ruleID)
	return nil
}

// UpsertMultiplier sets the single multiplier for (round, player).
func (s *BonusService) UpsertMultiplier(ctx context.Context, actor user.Principal, roundID, playerID string, factor decimal.Decimal) (bonus.Multiplier, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BonusService.UpsertMultiplier")
	defer span.End()

	if err := requireAdmin(actor); err != nil {
		return bonus.Multiplier{}, err
	}

	item := bonus.Multiplier{
		RoundID:   strings.TrimSpace(roundID),
		PlayerID:  strings.TrimSpace(playerID),
		Factor:    factor,
		UpdatedAt: s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return bonus.Multiplier{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureRound(ctx, item.RoundID); err != nil {
			return err
		}
		if _, exists, err := s.playerRepo.GetByID(ctx, item.PlayerID); err != nil {
			return fmt.Errorf("get player by id: %w", err)
		} else if !exists {
			return fmt.Errorf("%w: player=%s", ErrNotFound, item.PlayerID)
		}
		if err := s.multiplierRepo.Upsert(ctx, item); err != nil {
			return fmt.Errorf("upsert multiplier: %w", err)
		}
		return nil
	})
	if err != nil {
		return bonus.Multiplier{}, err
	}

	s.logger.InfoContext(ctx, "round multiplier set", "round_id", item.RoundID, "player_id", item.PlayerID, "factor", item.Factor.String())
	return item, nil
}

func (s *BonusService) ListMultipliers(ctx context.Context, roundID string) ([]bonus.Multiplier, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BonusService.ListMultipliers")
	defer span.End()

	roundID = strings.TrimSpace(roundID)
	if err := s.ensureRound(ctx, roundID); err != nil {
		return nil, err
	}

	items, err := s.multiplierRepo.ListByRound(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("list multipliers: %w", err)
	}
	return items, nil
}

func (s *BonusService) DeleteMultiplier(ctx context.Context, actor user.Principal, roundID, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.BonusService.DeleteMultiplier")
	defer span.End()

	if err := requireAdmin(actor); err != nil {
		return err
	}
	roundID = strings.TrimSpace(roundID)
	playerID = strings.TrimSpace(playerID)
	if roundID == "" || playerID == "" {
		return fmt.Errorf("%w: round id and player id are required", ErrInvalidInput)
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, exists, err := s.multiplierRepo.Get(ctx, roundID, playerID); err != nil {
			return fmt.Errorf("get multiplier: %w", err)
		} else if !exists {
			return fmt.Errorf("%w: multiplier round=%s player=%s", ErrNotFound, roundID, playerID)
		}
		if err := s.multiplierRepo.Delete(ctx, roundID, playerID); err != nil {
			return fmt.Errorf("delete multiplier: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "round multiplier deleted", "round_id", roundID, "player_id", playerID)
	return nil
}

func (s *BonusService) ensureRound(ctx context.Context, roundID string) error {
	if roundID == "" {
		return fmt.Errorf("%w: round id is required", ErrInvalidInput)
	}
	_, exists, err := s.roundRepo.GetByID(ctx, roundID)
	if err != nil {
		return fmt.Errorf("get round by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: round=%s", ErrNotFound, roundID)
	}
	return nil
}
