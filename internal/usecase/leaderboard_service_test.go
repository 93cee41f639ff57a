package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
)

func TestLeaderboardService_InvalidatedByMutations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.account(t, "u1")
	env.account(t, "u2")

	board, err := env.leaderboard.Get(ctx)
	if err != nil {
		t.Fatalf("get leaderboard: %v", err)
	}
	if len(board) != 2 || board[0].Points != 0 || board[0].Rank != 1 || board[1].Rank != 1 {
		t.Fatalf("expected two tied empty rosters, got %+v", board)
	}

	env.buy(t, "u2", "bat-kohli", false)
	if _, err := env.stats.Record(ctx, testAdmin, RecordStatInput{PlayerID: "bat-kohli", Line: stats.Line{Runs: 30}}); err != nil {
		t.Fatalf("record stats: %v", err)
	}

	board, err = env.leaderboard.Get(ctx)
	if err != nil {
		t.Fatalf("get leaderboard: %v", err)
	}
	if board[0].UserID != "u2" || board[0].Points != 30 || board[1].Rank != 2 {
		t.Fatalf("expected u2 leading with 30, got %+v", board)
	}

	if _, err := env.team.SetCaptain(ctx, "u2", "bat-kohli"); err != nil {
		t.Fatalf("set captain: %v", err)
	}
	board, _ = env.leaderboard.Get(ctx)
	if board[0].Points != 60 || board[0].CaptainID != "bat-kohli" {
		t.Fatalf("expected captain doubling after invalidation, got %+v", board[0])
	}
}

func TestLeaderboardService_InvalidatedByAccountChanges(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.account(t, "u1")

	board, err := env.leaderboard.Get(ctx)
	if err != nil {
		t.Fatalf("get leaderboard: %v", err)
	}
	if len(board) != 1 {
		t.Fatalf("expected one entry, got %+v", board)
	}

	env.account(t, "u2")
	board, err = env.leaderboard.Get(ctx)
	if err != nil {
		t.Fatalf("get leaderboard: %v", err)
	}
	if len(board) != 2 {
		t.Fatalf("expected new account at 0 points, got %+v", board)
	}

	if _, err := env.accounts.Update(ctx, "u1", UpdateAccountInput{Username: "renamed"}); err != nil {
		t.Fatalf("update account: %v", err)
	}
	board, err = env.leaderboard.Get(ctx)
	if err != nil {
		t.Fatalf("get leaderboard: %v", err)
	}
	if board[0].UserID != "u1" || board[0].Username != "renamed" {
		t.Fatalf("expected renamed user in leaderboard, got %+v", board[0])
	}
}
