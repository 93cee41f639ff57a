package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/bonus"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/round"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	bonusmock "github.com/riskibarqy/fantasy-cricket/internal/mocks/domain/bonus"
	playermock "github.com/riskibarqy/fantasy-cricket/internal/mocks/domain/player"
	roundmock "github.com/riskibarqy/fantasy-cricket/internal/mocks/domain/round"
	statsmock "github.com/riskibarqy/fantasy-cricket/internal/mocks/domain/stats"
	idgen "github.com/riskibarqy/fantasy-cricket/internal/platform/id"
	"github.com/stretchr/testify/mock"
)

func TestStatService_Record_LocksPlayerBeforeSummingUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	statRepo := statsmock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	roundRepo := roundmock.NewRepository(t)
	ruleRepo := bonusmock.NewRuleRepository(t)
	multiplierRepo := bonusmock.NewMultiplierRepository(t)
	pricing := scoring.DefaultPriceRules()

	service := NewStatService(passthroughTx{}, statRepo, playerRepo, roundRepo, ruleRepo, multiplierRepo, pricing, nil, nil, idgen.NewSequence("stat"), nil)

	var calls []string
	record := func(name string) func(mock.Arguments) {
		return func(mock.Arguments) { calls = append(calls, name) }
	}

	kohli := player.Player{ID: "bat-kohli", Position: player.PositionBatsman, TotalPoints: 100}
	committed := stats.Entry{ID: "stat-000", PlayerID: kohli.ID, RoundID: "round-001", Points: 20}
	var inserted stats.Entry

	roundRepo.
		On("GetActive", mock.Anything).
		Return(round.Round{ID: "round-001", IsActive: true}, true, nil).
		Once()
	playerRepo.
		On("GetForUpdate", mock.Anything, kohli.ID).
		Run(record("lock")).
		Return(kohli, true, nil).
		Once()
	ruleRepo.
		On("ListByRound", mock.Anything, "round-001").
		Return([]bonus.Rule{}, nil).
		Once()
	multiplierRepo.
		On("Get", mock.Anything, "round-001", kohli.ID).
		Return(bonus.Multiplier{}, false, nil).
		Once()
	statRepo.
		On("Insert", mock.Anything, mock.AnythingOfType("stats.Entry")).
		Run(func(args mock.Arguments) {
			calls = append(calls, "insert")
			inserted = args.Get(1).(stats.Entry)
		}).
		Return(nil).
		Once()
	statRepo.
		On("ListByPlayerAndRound", mock.Anything, kohli.ID, "round-001").
		Run(record("list")).
		Return(func(context.Context, string, string) ([]stats.Entry, error) {
			return []stats.Entry{committed, inserted}, nil
		}).
		Once()
	playerRepo.
		On("UpdateScoring", mock.Anything, kohli.ID, mock.AnythingOfType("int"), mock.AnythingOfType("int64")).
		Run(record("update")).
		Return(nil).
		Once()

	got, err := service.Record(ctx, testAdmin, RecordStatInput{
		PlayerID: kohli.ID,
		Line:     stats.Line{Runs: 30, BallsFaced: 20, Fours: 3},
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	if order := strings.Join(calls, ","); order != "lock,insert,list,update" {
		t.Fatalf("unexpected call order %s", order)
	}
	wantPoints := committed.Points + inserted.Points
	if got.CurrentRoundPoints != wantPoints {
		t.Fatalf("current round points: got=%d want=%d", got.CurrentRoundPoints, wantPoints)
	}
	if want := pricing.Reprice(kohli.TotalPoints + wantPoints); got.CurrentPrice != want {
		t.Fatalf("current price: got=%d want=%d", got.CurrentPrice, want)
	}
	playerRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
