package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/round"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	fantasymock "github.com/riskibarqy/fantasy-cricket/internal/mocks/domain/fantasy"
	playermock "github.com/riskibarqy/fantasy-cricket/internal/mocks/domain/player"
	roundmock "github.com/riskibarqy/fantasy-cricket/internal/mocks/domain/round"
	usermock "github.com/riskibarqy/fantasy-cricket/internal/mocks/domain/user"
	"github.com/stretchr/testify/mock"
)

// passthroughTx runs fn on the caller's context.
type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTx) WithinExclusiveTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestTeamService_Buy_LockedRoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userRepo := usermock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	holdingRepo := fantasymock.NewRepository(t)
	roundRepo := roundmock.NewRepository(t)

	service := NewTeamService(passthroughTx{}, userRepo, playerRepo, holdingRepo, roundRepo, fantasy.DefaultRules(), nil, nil)
	service.now = func() time.Time { return testNow }

	active := round.Round{
		ID:          "round-001",
		Name:        "Opening Round",
		Sequence:    1,
		LockoutTime: testNow.Add(-time.Minute),
		IsActive:    true,
	}
	roundRepo.
		On("GetActive", mock.Anything).
		Return(active, true, nil).
		Once()
	roundRepo.
		On("MarkLocked", mock.Anything, active.ID).
		Return(nil).
		Once()

	_, err := service.Buy(ctx, "u1", "bat-kohli", false)
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	userRepo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	holdingRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestTeamService_Buy_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userRepo := usermock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	holdingRepo := fantasymock.NewRepository(t)
	roundRepo := roundmock.NewRepository(t)

	service := NewTeamService(passthroughTx{}, userRepo, playerRepo, holdingRepo, roundRepo, fantasy.DefaultRules(), nil, nil)
	service.now = func() time.Time { return testNow }

	candidate := player.Player{
		ID:           "bowl-bumrah",
		Name:         "Jasprit Bumrah",
		Team:         "India",
		Position:     player.PositionBowler,
		BasePrice:    140000,
		CurrentPrice: 140000,
	}

	roundRepo.
		On("GetActive", mock.Anything).
		Return(round.Round{ID: "round-001", LockoutTime: testNow.Add(time.Hour), IsActive: true}, true, nil).
		Once()
	userRepo.
		On("GetForUpdate", mock.Anything, "u1").
		Return(user.Account{ID: "u1", Username: "u1", Budget: 1000000}, true, nil).
		Once()
	holdingRepo.
		On("ListByUser", mock.Anything, "u1").
		Return(fantasy.Roster{}, nil).
		Once()
	playerRepo.
		On("GetByID", mock.Anything, candidate.ID).
		Return(candidate, true, nil).
		Once()
	holdingRepo.
		On("Insert", mock.Anything, mock.MatchedBy(func(h fantasy.Holding) bool {
			return h.UserID == "u1" && h.PlayerID == candidate.ID && h.PurchasePrice == 140000 && !h.IsSubstitute
		})).
		Return(nil).
		Once()
	userRepo.
		On("UpdateBudget", mock.Anything, "u1", int64(860000)).
		Return(nil).
		Once()

	got, err := service.Buy(ctx, "u1", candidate.ID, false)
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	if got.Budget != 860000 {
		t.Fatalf("unexpected budget: got=%d want=%d", got.Budget, 860000)
	}
	if got.Price != 140000 {
		t.Fatalf("unexpected price: got=%d want=%d", got.Price, 140000)
	}
}

func TestPlayerService_Get_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	holdingRepo := fantasymock.NewRepository(t)

	service := NewPlayerService(passthroughTx{}, playerRepo, holdingRepo, nil, scoring.DefaultPriceRules(), nil, nil)

	playerRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "missing-player").
		Return(player.Player{}, false, nil).
		Once()

	_, err := service.Get(ctx, "missing-player")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_Delete_HeldPlayerUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	holdingRepo := fantasymock.NewRepository(t)

	service := NewPlayerService(passthroughTx{}, playerRepo, holdingRepo, nil, scoring.DefaultPriceRules(), nil, nil)

	playerRepo.
		On("GetByID", mock.Anything, "bat-root").
		Return(player.Player{ID: "bat-root"}, true, nil).
		Once()
	holdingRepo.
		On("CountByPlayer", mock.Anything, "bat-root").
		Return(2, nil).
		Once()

	err := service.Delete(ctx, testAdmin, "bat-root")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	playerRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
