package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/cache"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

type UpdateAccountInput struct {
	Username string
	Email    string
}

type AccountService struct {
	tx       Transactor
	userRepo user.Repository
	rules    fantasy.Rules
	cache    cache.Loader
	logger   *logging.Logger
	now      func() time.Time
}

func NewAccountService(tx Transactor, userRepo user.Repository, rules fantasy.Rules, cacheStore cache.Loader, logger *logging.Logger) *AccountService {
	if logger == nil {
		logger = logging.Default()
	}
	if cacheStore == nil {
		cacheStore = cache.Nop{}
	}

	return &AccountService{
		tx:       tx,
		userRepo: userRepo,
		rules:    rules,
		cache:    cacheStore,
		logger:   logger,
		now:      time.Now,
	}
}

// EnsureAccount returns the account for the principal, creating it with the
// initial budget on first use.
func (s *AccountService) EnsureAccount(ctx context.Context, principal user.Principal) (user.Account, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.EnsureAccount")
	defer span.End()

	userID := strings.TrimSpace(principal.UserID)
	if userID == "" {
		return user.Account{}, fmt.Errorf("%w: missing principal", ErrUnauthorized)
	}

	account, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.Account{}, fmt.Errorf("get account: %w", err)
	}
	if exists {
		return account, nil
	}

	created := false
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, exists, err := s.userRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}
		if exists {
			account = existing
			return nil
		}

		username := strings.TrimSpace(principal.Username)
		email := strings.ToLower(strings.TrimSpace(principal.Email))
		clashes, err := s.userRepo.FindByUsernameOrEmail(ctx, username, email)
		if err != nil {
			return fmt.Errorf("find accounts by username or email: %w", err)
		}
		for _, other := range clashes {
			if other.Username == username {
				username = ""
			}
			if email != "" && other.Email == email {
				email = ""
			}
		}
		if username == "" {
			username = userID
		}

		now := s.now().UTC()
		account = user.Account{
			ID:        userID,
			Username:  username,
			Email:     email,
			Role:      principal.Role,
			Budget:    s.rules.InitialBudget,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if account.Role == "" {
			account.Role = user.RoleStandard
		}
		if err := account.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := s.userRepo.Create(ctx, account); err != nil {
			return fmt.Errorf("create account: %w", err)
		}
		created = true
		return nil
	})
	if err != nil {
		return user.Account{}, err
	}

	if created {
		invalidateLeaderboard(ctx, s.cache, s.logger)
		s.logger.InfoContext(ctx, "account created", "user_id", account.ID, "budget", account.Budget)
	}
	return account, nil
}

func (s *AccountService) Get(ctx context.Context, userID string) (user.Account, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.Get")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.Account{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	account, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.Account{}, fmt.Errorf("get account: %w", err)
	}
	if !exists {
		return user.Account{}, fmt.Errorf("%w: account=%s", ErrNotFound, userID)
	}
	return account, nil
}

func (s *AccountService) Update(ctx context.Context, userID string, input UpdateAccountInput) (user.Account, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.Update")
	defer span.End()

	userID = strings.TrimSpace(userID)
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if userID == "" {
		return user.Account{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.Username == "" {
		return user.Account{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			return user.Account{}, fmt.Errorf("%w: invalid email %q", ErrInvalidInput, input.Email)
		}
	}

	var account user.Account
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, exists, err := s.userRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: account=%s", ErrNotFound, userID)
		}

		clashes, err := s.userRepo.FindByUsernameOrEmail(ctx, input.Username, input.Email)
		if err != nil {
			return fmt.Errorf("find accounts by username or email: %w", err)
		}
		for _, other := range clashes {
			if other.ID == userID {
				continue
			}
			if other.Username == input.Username {
				return fmt.Errorf("%w: username %q is taken", ErrConflict, input.Username)
			}
			return fmt.Errorf("%w: email %q is taken", ErrConflict, input.Email)
		}

		if err := s.userRepo.UpdateProfile(ctx, userID, input.Username, input.Email); err != nil {
			return fmt.Errorf("update account profile: %w", err)
		}

		current.Username = input.Username
		current.Email = input.Email
		current.UpdatedAt = s.now().UTC()
		account = current
		return nil
	})
	if err != nil {
		return user.Account{}, err
	}

	invalidateLeaderboard(ctx, s.cache, s.logger)
	s.logger.InfoContext(ctx, "account updated", "user_id", userID)
	return account, nil
}

func (s *AccountService) List(ctx context.Context, actor user.Principal) ([]user.Account, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.List")
	defer span.End()

	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	items, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return items, nil
}
