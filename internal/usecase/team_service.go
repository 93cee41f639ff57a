package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/round"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/cache"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

// MutationResult confirms a successful roster change.
type MutationResult struct {
	Action   fantasy.MutationKind
	PlayerID string
	Price    int64
	Budget   int64
	Message  string
}

// TeamHolding is a holding joined with its player.
type TeamHolding struct {
	fantasy.Holding
	Player player.Player
}

type TeamView struct {
	Account   user.Account
	Holdings  []TeamHolding
	TeamValue int64
	Locked    bool
}

// TeamService applies roster mutations: lockout gate, then policy, then the
// holding and budget writes in one transaction.
type TeamService struct {
	tx          Transactor
	userRepo    user.Repository
	playerRepo  player.Repository
	holdingRepo fantasy.Repository
	roundRepo   round.Repository
	policy      fantasy.Policy
	cache       cache.Loader
	logger      *logging.Logger
	now         func() time.Time
}

func NewTeamService(
	tx Transactor,
	userRepo user.Repository,
	playerRepo player.Repository,
	holdingRepo fantasy.Repository,
	roundRepo round.Repository,
	rules fantasy.Rules,
	cacheStore cache.Loader,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	if cacheStore == nil {
		cacheStore = cache.Nop{}
	}

	return &TeamService{
		tx:          tx,
		userRepo:    userRepo,
		playerRepo:  playerRepo,
		holdingRepo: holdingRepo,
		roundRepo:   roundRepo,
		policy:      fantasy.NewPolicy(rules),
		cache:       cacheStore,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *TeamService) Buy(ctx context.Context, userID, playerID string, asSubstitute bool) (MutationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Buy")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return MutationResult{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	return s.mutate(ctx, userID, fantasy.MutationBuy, playerID, func(ctx context.Context, account user.Account, roster fantasy.Roster) (MutationResult, error) {
		candidate, err := s.getPlayer(ctx, playerID)
		if err != nil {
			return MutationResult{}, err
		}

		mutation := fantasy.Mutation{Kind: fantasy.MutationBuy, Candidate: candidate, AsSubstitute: asSubstitute}
		if err := s.policy.CanApply(roster, account.Budget, mutation); err != nil {
			return MutationResult{}, rejection(err)
		}

		now := s.now().UTC()
		holding := fantasy.Holding{
			UserID:        account.ID,
			PlayerID:      candidate.ID,
			Position:      candidate.Position,
			PurchasePrice: candidate.CurrentPrice,
			IsSubstitute:  asSubstitute,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.holdingRepo.Insert(ctx, holding); err != nil {
			return MutationResult{}, fmt.Errorf("insert holding: %w", err)
		}

		budget := account.Budget - candidate.CurrentPrice
		if err := s.userRepo.UpdateBudget(ctx, account.ID, budget); err != nil {
			return MutationResult{}, fmt.Errorf("update budget: %w", err)
		}

		slot := "main roster"
		if asSubstitute {
			slot = "substitutes"
		}
		return MutationResult{
			Action:   fantasy.MutationBuy,
			PlayerID: candidate.ID,
			Price:    candidate.CurrentPrice,
			Budget:   budget,
			Message:  fmt.Sprintf("bought %s for %d into %s", candidate.Name, candidate.CurrentPrice, slot),
		}, nil
	})
}

func (s *TeamService) Sell(ctx context.Context, userID, playerID string) (MutationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Sell")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return MutationResult{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	return s.mutate(ctx, userID, fantasy.MutationSell, playerID, func(ctx context.Context, account user.Account, roster fantasy.Roster) (MutationResult, error) {
		if err := s.policy.CanApply(roster, account.Budget, fantasy.Mutation{Kind: fantasy.MutationSell, PlayerID: playerID}); err != nil {
			return MutationResult{}, rejection(err)
		}

		sold, err := s.getPlayer(ctx, playerID)
		if err != nil {
			return MutationResult{}, err
		}

		if err := s.holdingRepo.Delete(ctx, account.ID, playerID); err != nil {
			return MutationResult{}, fmt.Errorf("delete holding: %w", err)
		}

		// Proceeds are the current market price, not the purchase price.
		budget := account.Budget + sold.CurrentPrice
		if err := s.userRepo.UpdateBudget(ctx, account.ID, budget); err != nil {
			return MutationResult{}, fmt.Errorf("update budget: %w", err)
		}

		return MutationResult{
			Action:   fantasy.MutationSell,
			PlayerID: sold.ID,
			Price:    sold.CurrentPrice,
			Budget:   budget,
			Message:  fmt.Sprintf("sold %s for %d", sold.Name, sold.CurrentPrice),
		}, nil
	})
}

func (s *TeamService) SetCaptain(ctx context.Context, userID, playerID string) (MutationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.SetCaptain")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return MutationResult{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	return s.mutate(ctx, userID, fantasy.MutationSetCaptain, playerID, func(ctx context.Context, account user.Account, roster fantasy.Roster) (MutationResult, error) {
		if err := s.policy.CanApply(roster, account.Budget, fantasy.Mutation{Kind: fantasy.MutationSetCaptain, PlayerID: playerID}); err != nil {
			return MutationResult{}, rejection(err)
		}

		// Clear then set keeps a single captain without a uniqueness check.
		if err := s.holdingRepo.ClearCaptain(ctx, account.ID); err != nil {
			return MutationResult{}, fmt.Errorf("clear captain: %w", err)
		}
		if err := s.holdingRepo.SetCaptain(ctx, account.ID, playerID); err != nil {
			return MutationResult{}, fmt.Errorf("set captain: %w", err)
		}

		return MutationResult{
			Action:   fantasy.MutationSetCaptain,
			PlayerID: playerID,
			Budget:   account.Budget,
			Message:  fmt.Sprintf("captain set to %s", playerID),
		}, nil
	})
}

func (s *TeamService) Substitute(ctx context.Context, userID, mainPlayerID, substitutePlayerID string) (MutationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Substitute")
	defer span.End()

	mainPlayerID = strings.TrimSpace(mainPlayerID)
	substitutePlayerID = strings.TrimSpace(substitutePlayerID)
	if mainPlayerID == "" || substitutePlayerID == "" {
		return MutationResult{}, fmt.Errorf("%w: main and substitute player ids are required", ErrInvalidInput)
	}
	if mainPlayerID == substitutePlayerID {
		return MutationResult{}, fmt.Errorf("%w: main and substitute player must differ", ErrInvalidInput)
	}

	return s.mutate(ctx, userID, fantasy.MutationSubstitute, substitutePlayerID, func(ctx context.Context, account user.Account, roster fantasy.Roster) (MutationResult, error) {
		mutation := fantasy.Mutation{
			Kind:         fantasy.MutationSubstitute,
			PlayerID:     mainPlayerID,
			SubstituteID: substitutePlayerID,
		}
		if err := s.policy.CanApply(roster, account.Budget, mutation); err != nil {
			return MutationResult{}, rejection(err)
		}

		main, _ := roster.Find(mainPlayerID)
		sub, _ := roster.Find(substitutePlayerID)
		benched, promoted := fantasy.Swap(main, sub)
		now := s.now().UTC()
		benched.UpdatedAt = now
		promoted.UpdatedAt = now

		if err := s.holdingRepo.Update(ctx, benched); err != nil {
			return MutationResult{}, fmt.Errorf("bench player: %w", err)
		}
		if err := s.holdingRepo.Update(ctx, promoted); err != nil {
			return MutationResult{}, fmt.Errorf("promote substitute: %w", err)
		}

		return MutationResult{
			Action:   fantasy.MutationSubstitute,
			PlayerID: substitutePlayerID,
			Budget:   account.Budget,
			Message:  fmt.Sprintf("%s replaces %s in the main roster", substitutePlayerID, mainPlayerID),
		}, nil
	})
}

func (s *TeamService) GetTeam(ctx context.Context, userID string) (TeamView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return TeamView{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	account, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return TeamView{}, fmt.Errorf("get account: %w", err)
	}
	if !exists {
		return TeamView{}, fmt.Errorf("%w: account=%s", ErrNotFound, userID)
	}

	roster, err := s.holdingRepo.ListByUser(ctx, userID)
	if err != nil {
		return TeamView{}, fmt.Errorf("list holdings: %w", err)
	}

	players, err := s.playerRepo.GetByIDs(ctx, roster.PlayerIDs())
	if err != nil {
		return TeamView{}, fmt.Errorf("get players by ids: %w", err)
	}
	playerByID := make(map[string]player.Player, len(players))
	for _, p := range players {
		playerByID[p.ID] = p
	}

	view := TeamView{
		Account:  account,
		Holdings: make([]TeamHolding, 0, len(roster)),
	}
	for _, h := range roster {
		p := playerByID[h.PlayerID]
		view.Holdings = append(view.Holdings, TeamHolding{Holding: h, Player: p})
		view.TeamValue += p.CurrentPrice
	}

	active, found, err := s.roundRepo.GetActive(ctx)
	if err != nil {
		return TeamView{}, fmt.Errorf("get active round: %w", err)
	}
	view.Locked = found && active.IsLockedAt(s.now())

	return view, nil
}

type mutationFunc func(ctx context.Context, account user.Account, roster fantasy.Roster) (MutationResult, error)

func (s *TeamService) mutate(ctx context.Context, userID string, kind fantasy.MutationKind, playerID string, apply mutationFunc) (MutationResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return MutationResult{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	now := s.now()
	var (
		result MutationResult
		gated  round.Round
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		active, found, err := lockGate(ctx, s.roundRepo, now)
		if found {
			gated = active
		}
		if err != nil {
			return err
		}

		account, exists, err := s.userRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: account=%s", ErrNotFound, userID)
		}

		roster, err := s.holdingRepo.ListByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("list holdings: %w", err)
		}

		result, err = apply(ctx, account, roster)
		return err
	})
	refreshLockFlag(ctx, s.roundRepo, gated, now, s.logger)

	if err != nil {
		if errors.Is(err, ErrLocked) || errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNotFound) {
			s.logger.WarnContext(ctx, "roster mutation rejected",
				"action", string(kind),
				"user_id", userID,
				"player_id", playerID,
				"error", err,
			)
		}
		return MutationResult{}, err
	}

	invalidateLeaderboard(ctx, s.cache, s.logger)
	s.logger.InfoContext(ctx, "roster mutation applied",
		"action", string(kind),
		"user_id", userID,
		"player_id", result.PlayerID,
		"price", result.Price,
		"budget", result.Budget,
	)
	return result, nil
}

func (s *TeamService) getPlayer(ctx context.Context, playerID string) (player.Player, error) {
	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return p, nil
}

// rejection tags a roster policy failure as invalid input while keeping the
// specific reason reachable through errors.Is.
func rejection(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}
