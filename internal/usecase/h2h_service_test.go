package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/h2h"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/memory"
)

func TestH2HService_ResolvesAfterStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.account(t, "u1")
	env.account(t, "u2")

	env.buy(t, "u1", "bat-kohli", false)
	env.buy(t, "u1", "bowl-rabada", true)
	env.buy(t, "u2", "bat-root", false)
	for userID, captain := range map[string]string{"u1": "bat-kohli", "u2": "bat-root"} {
		if _, err := env.team.SetCaptain(ctx, userID, captain); err != nil {
			t.Fatalf("set captain: %v", err)
		}
	}

	matchup, err := env.h2h.Create(ctx, testAdmin, CreateMatchupInput{
		Name:    "Derby",
		RoundID: memory.RoundIDOpening,
		User1ID: "u1",
		User2ID: "u2",
	})
	if err != nil {
		t.Fatalf("create matchup: %v", err)
	}
	if matchup.Status != h2h.StatusPending || matchup.WinnerID != nil {
		t.Fatalf("expected pending matchup, got %+v", matchup)
	}

	lines := map[string]stats.Line{
		"bat-kohli":   {Runs: 25},
		"bat-root":    {Runs: 15},
		"bowl-rabada": {Wickets: 2},
	}
	for playerID, line := range lines {
		if _, err := env.stats.Record(ctx, testAdmin, RecordStatInput{PlayerID: playerID, Line: line}); err != nil {
			t.Fatalf("record %s: %v", playerID, err)
		}
	}

	got, err := env.h2h.Get(ctx, matchup.ID)
	if err != nil {
		t.Fatalf("get matchup: %v", err)
	}
	if got.Status != h2h.StatusCompleted || got.User1Score != 50 || got.User2Score != 30 {
		t.Fatalf("unexpected resolved matchup: %+v", got)
	}
	if got.WinnerID == nil || *got.WinnerID != "u1" {
		t.Fatalf("expected u1 to win, got %v", got.WinnerID)
	}

	listed, err := env.h2h.List(ctx, memory.RoundIDOpening)
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one matchup in round, got %d err=%v", len(listed), err)
	}
}

func TestH2HService_RecomputeTie(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.account(t, "u1")
	env.account(t, "u2")
	env.buy(t, "u1", "bat-kohli", false)
	env.buy(t, "u2", "bat-kohli", false)

	if _, err := env.stats.Record(ctx, testAdmin, RecordStatInput{PlayerID: "bat-kohli", Line: stats.Line{Runs: 10}}); err != nil {
		t.Fatalf("record: %v", err)
	}

	matchup, err := env.h2h.Create(ctx, testAdmin, CreateMatchupInput{Name: "Mirror", RoundID: memory.RoundIDOpening, User1ID: "u1", User2ID: "u2"})
	if err != nil {
		t.Fatalf("create matchup: %v", err)
	}
	if matchup.Status != h2h.StatusCompleted || matchup.WinnerID != nil || matchup.User1Score != 10 {
		t.Fatalf("expected completed tie with no winner, got %+v", matchup)
	}

	result, err := env.h2h.RecomputeRound(ctx, memory.RoundIDOpening)
	if err != nil || result.Updated != 1 || result.Failed != 0 {
		t.Fatalf("unexpected recompute result %+v err=%v", result, err)
	}
}

func TestH2HService_CreateGuards(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.account(t, "u1")
	env.account(t, "u2")

	cases := []struct {
		name  string
		actor user.Principal
		input CreateMatchupInput
		want  error
	}{
		{"standard user", user.Principal{UserID: "u1"}, CreateMatchupInput{Name: "x", RoundID: memory.RoundIDOpening, User1ID: "u1", User2ID: "u2"}, ErrForbidden},
		{"same user", testAdmin, CreateMatchupInput{Name: "x", RoundID: memory.RoundIDOpening, User1ID: "u1", User2ID: "u1"}, ErrConflict},
		{"unknown user", testAdmin, CreateMatchupInput{Name: "x", RoundID: memory.RoundIDOpening, User1ID: "u1", User2ID: "ghost"}, ErrNotFound},
		{"unknown round", testAdmin, CreateMatchupInput{Name: "x", RoundID: "missing", User1ID: "u1", User2ID: "u2"}, ErrNotFound},
		{"missing name", testAdmin, CreateMatchupInput{RoundID: memory.RoundIDOpening, User1ID: "u1", User2ID: "u2"}, ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := env.h2h.Create(ctx, tc.actor, tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
