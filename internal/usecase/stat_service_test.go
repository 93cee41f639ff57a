package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/bonus"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/memory"
	"github.com/shopspring/decimal"
)

func TestStatService_EntriesAccumulateAndReprice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.stats.Record(ctx, testAdmin, RecordStatInput{PlayerID: "bowl-bumrah", Line: stats.Line{Wickets: 3, RunsConceded: 30}})
	if err != nil {
		t.Fatalf("record first entry: %v", err)
	}
	// 3*25 - 15 + 4
	if first.Entry.Points != 64 {
		t.Fatalf("expected 64 points, got %d", first.Entry.Points)
	}

	second, err := env.stats.Record(ctx, testAdmin, RecordStatInput{
		PlayerID: "bowl-bumrah",
		RoundID:  memory.RoundIDOpening,
		Line:     stats.Line{Runs: 12, Catches: 1},
	})
	if err != nil {
		t.Fatalf("record second entry: %v", err)
	}
	if second.CurrentRoundPoints != 84 {
		t.Fatalf("expected 84 accumulated points, got %d", second.CurrentRoundPoints)
	}
	if second.CurrentPrice != 184000 {
		t.Fatalf("expected price 184000, got %d", second.CurrentPrice)
	}

	p, _, _ := env.store.Players().GetByID(ctx, "bowl-bumrah")
	if p.CurrentRoundPoints != 84 || p.CurrentPrice != 184000 {
		t.Fatalf("unexpected stored player: %+v", p)
	}

	entries, err := env.players.ListStats(ctx, "bowl-bumrah")
	if err != nil || len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d err=%v", len(entries), err)
	}
}

func TestStatService_RulesAndMultiplierApply(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	minRuns := 100
	if _, err := env.bonus.CreateRule(ctx, testAdmin, CreateBonusRuleInput{
		RoundID:         memory.RoundIDOpening,
		Name:            "Centurion",
		BonusPoints:     10,
		Conditions:      bonus.Conditions{MinRuns: &minRuns},
		TargetPositions: []string{"batsman"},
	}); err != nil {
		t.Fatalf("create rule: %v", err)
	}
	if _, err := env.bonus.UpsertMultiplier(ctx, testAdmin, memory.RoundIDOpening, "bat-kohli", decimal.NewFromInt(2)); err != nil {
		t.Fatalf("upsert multiplier: %v", err)
	}

	recorded, err := env.stats.Record(ctx, testAdmin, RecordStatInput{PlayerID: "bat-kohli", Line: stats.Line{Runs: 120}})
	if err != nil {
		t.Fatalf("record stats: %v", err)
	}
	// (120 + 8 + 16 + 10) * 2
	if recorded.Entry.Points != 308 {
		t.Fatalf("expected 308 points, got %d (%+v)", recorded.Entry.Points, recorded.Breakdown)
	}

	// The rule targets batsmen only.
	other, err := env.stats.Record(ctx, testAdmin, RecordStatInput{PlayerID: "ar-stokes", Line: stats.Line{Runs: 120}})
	if err != nil {
		t.Fatalf("record stats: %v", err)
	}
	if other.Entry.Points != 144 {
		t.Fatalf("expected 144 points for the all-rounder, got %d", other.Entry.Points)
	}
}

func TestStatService_Guards(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		actor user.Principal
		input RecordStatInput
		want  error
	}{
		{
			name:  "standard user",
			actor: user.Principal{UserID: "u1"},
			input: RecordStatInput{PlayerID: "bat-kohli"},
			want:  ErrForbidden,
		},
		{
			name:  "scheduled round",
			actor: testAdmin,
			input: RecordStatInput{PlayerID: "bat-kohli", RoundID: memory.RoundIDSecond},
			want:  ErrConflict,
		},
		{
			name:  "unknown round",
			actor: testAdmin,
			input: RecordStatInput{PlayerID: "bat-kohli", RoundID: "missing"},
			want:  ErrNotFound,
		},
		{
			name:  "unknown player",
			actor: testAdmin,
			input: RecordStatInput{PlayerID: "missing"},
			want:  ErrNotFound,
		},
		{
			name:  "negative stat",
			actor: testAdmin,
			input: RecordStatInput{PlayerID: "bat-kohli", Line: stats.Line{Runs: -1}},
			want:  ErrInvalidInput,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := env.stats.Record(ctx, tc.actor, tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	entries, _ := env.store.Stats().ListByPlayer(ctx, "bat-kohli")
	if len(entries) != 0 {
		t.Fatalf("expected no entries after rejected records, got %d", len(entries))
	}
}
