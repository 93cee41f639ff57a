package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/bonus"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/memory"
	"github.com/shopspring/decimal"
)

func TestBonusService_RuleLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	minWickets := 4
	rule, err := env.bonus.CreateRule(ctx, testAdmin, CreateBonusRuleInput{
		RoundID:         memory.RoundIDOpening,
		Name:            "Strike bowler",
		BonusPoints:     15,
		Conditions:      bonus.Conditions{MinWickets: &minWickets},
		TargetPositions: []string{"bowler", "ALL-ROUNDER", "Bowler"},
	})
	if err != nil {
		t.Fatalf("create rule: %v", err)
	}
	if len(rule.TargetPositions) != 2 || rule.TargetPositions[1] != "All-rounder" {
		t.Fatalf("expected normalized targets, got %v", rule.TargetPositions)
	}

	rules, err := env.bonus.ListRules(ctx, memory.RoundIDOpening)
	if err != nil || len(rules) != 1 {
		t.Fatalf("expected one rule, got %d err=%v", len(rules), err)
	}

	if err := env.bonus.DeleteRule(ctx, testAdmin, rule.ID); err != nil {
		t.Fatalf("delete rule: %v", err)
	}
	if err := env.bonus.DeleteRule(ctx, testAdmin, rule.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBonusService_RuleValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateBonusRuleInput
		want  error
	}{
		{"unknown target", CreateBonusRuleInput{RoundID: memory.RoundIDOpening, Name: "x", TargetPositions: []string{"Goalkeeper"}}, ErrInvalidInput},
		{"no target", CreateBonusRuleInput{RoundID: memory.RoundIDOpening, Name: "x"}, ErrInvalidInput},
		{"unknown round", CreateBonusRuleInput{RoundID: "missing", Name: "x", TargetPositions: []string{"All"}}, ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := env.bonus.CreateRule(ctx, testAdmin, tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestBonusService_MultiplierUpsert(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.bonus.UpsertMultiplier(ctx, testAdmin, memory.RoundIDOpening, "bat-kohli", decimal.RequireFromString("1.5")); err != nil {
		t.Fatalf("upsert multiplier: %v", err)
	}
	if _, err := env.bonus.UpsertMultiplier(ctx, testAdmin, memory.RoundIDOpening, "bat-kohli", decimal.RequireFromString("2.5")); err != nil {
		t.Fatalf("upsert multiplier again: %v", err)
	}

	items, err := env.bonus.ListMultipliers(ctx, memory.RoundIDOpening)
	if err != nil {
		t.Fatalf("list multipliers: %v", err)
	}
	if len(items) != 1 || !items[0].Factor.Equal(decimal.RequireFromString("2.5")) {
		t.Fatalf("expected a single upserted multiplier, got %+v", items)
	}

	if _, err := env.bonus.UpsertMultiplier(ctx, testAdmin, memory.RoundIDOpening, "bat-kohli", decimal.RequireFromString("10.5")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for out of range factor, got %v", err)
	}
	if _, err := env.bonus.UpsertMultiplier(ctx, testAdmin, memory.RoundIDOpening, "bat-kohli", decimal.RequireFromString("1.255")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for factor finer than the column scale, got %v", err)
	}
	if _, err := env.bonus.UpsertMultiplier(ctx, testAdmin, memory.RoundIDOpening, "missing", decimal.NewFromInt(2)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown player, got %v", err)
	}

	if err := env.bonus.DeleteMultiplier(ctx, testAdmin, memory.RoundIDOpening, "bat-kohli"); err != nil {
		t.Fatalf("delete multiplier: %v", err)
	}
	if err := env.bonus.DeleteMultiplier(ctx, testAdmin, memory.RoundIDOpening, "bat-kohli"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
