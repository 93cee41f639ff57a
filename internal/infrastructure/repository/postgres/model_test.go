package postgres

import (
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/bonus"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/h2h"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

func TestBonusRuleModel_ConditionsAsJSON(t *testing.T) {
	minRuns := 50
	rule := bonus.Rule{
		ID:              "rule-001",
		RoundID:         "round-001",
		Name:            "Half century",
		BonusPoints:     25,
		Conditions:      bonus.Conditions{MinRuns: &minRuns},
		TargetPositions: []string{string(player.PositionBatsman), bonus.TargetAll},
	}

	model, err := bonusRuleModelFrom(rule)
	if err != nil {
		t.Fatalf("model from rule: %v", err)
	}
	if model.Conditions != `{"min_runs":50}` {
		t.Fatalf("unexpected conditions json: %s", model.Conditions)
	}
	if len(model.TargetPositions) != 2 {
		t.Fatalf("unexpected target positions: %v", model.TargetPositions)
	}

	got, err := model.toDomain()
	if err != nil {
		t.Fatalf("rule from model: %v", err)
	}
	if got.Conditions.MinRuns == nil || *got.Conditions.MinRuns != 50 {
		t.Fatalf("expected min_runs=50, got %+v", got.Conditions)
	}
	if got.Conditions.MaxRuns != nil {
		t.Fatalf("expected absent max_runs to stay nil")
	}
}

func TestBonusRuleModel_EmptyConditions(t *testing.T) {
	got, err := bonusRuleTableModel{ID: "rule-002"}.toDomain()
	if err != nil {
		t.Fatalf("rule from model: %v", err)
	}
	if got.Conditions != (bonus.Conditions{}) {
		t.Fatalf("expected zero conditions, got %+v", got.Conditions)
	}

	if _, err := (bonusRuleTableModel{ID: "rule-003", Conditions: "{"}).toDomain(); err == nil {
		t.Fatalf("expected malformed conditions to fail")
	}
}

func TestAccountModel_DefaultsRole(t *testing.T) {
	model := accountModelFrom(user.Account{ID: "u1", Username: "u1"})
	if model.Role != string(user.RoleStandard) {
		t.Fatalf("unexpected role: %s", model.Role)
	}
	if got := (accountTableModel{Role: "ADMIN"}).toDomain(); got.Role != user.RoleAdmin {
		t.Fatalf("expected admin role, got %s", got.Role)
	}
}

func TestMatchupModel_InsertColumns(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	query, args, err := qb.InsertModel("h2h_matchups", matchupModelFrom(h2h.Matchup{
		ID:        "h2h-001",
		Name:      "Derby",
		RoundID:   "round-001",
		User1ID:   "u1",
		User2ID:   "u2",
		CreatedAt: now,
		UpdatedAt: now,
	}))
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	want := "INSERT INTO h2h_matchups (id, name, round_id, user1_id, user2_id, status, user1_score, user2_score, winner_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)"
	if query != want {
		t.Fatalf("unexpected query:\n got: %s\nwant: %s", query, want)
	}
	if args[5] != string(h2h.StatusPending) {
		t.Fatalf("expected pending status default, got %v", args[5])
	}
}
