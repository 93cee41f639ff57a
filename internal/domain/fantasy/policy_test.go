package fantasy

import (
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

func candidate(id string, position player.Position, price int64) player.Player {
	return player.Player{ID: id, Name: id, Team: "t1", Position: position, BasePrice: price, CurrentPrice: price}
}

func holding(id string, position player.Position, sub bool) Holding {
	return Holding{UserID: "u1", PlayerID: id, Position: position, PurchasePrice: 100000, IsSubstitute: sub}
}

func TestPolicy_CanBuy(t *testing.T) {
	policy := NewPolicy(DefaultRules())
	twoBatsmen := Roster{
		holding("bat-1", player.PositionBatsman, false),
		holding("bat-2", player.PositionBatsman, false),
	}

	full := make(Roster, 0, 11)
	for i := 0; i < 11; i++ {
		full = append(full, holding(string(rune('a'+i)), player.PositionBowler, true))
	}

	tests := []struct {
		name      string
		roster    Roster
		budget    int64
		candidate player.Player
		asSub     bool
		targetErr error
	}{
		{
			name:      "first buy accepted",
			roster:    Roster{},
			budget:    1000000,
			candidate: candidate("bat-1", player.PositionBatsman, 100000),
		},
		{
			name:      "already owned",
			roster:    twoBatsmen,
			budget:    1000000,
			candidate: candidate("bat-1", player.PositionBatsman, 100000),
			targetErr: ErrAlreadyOwned,
		},
		{
			name:      "third main batsman rejected",
			roster:    twoBatsmen,
			budget:    1000000,
			candidate: candidate("bat-3", player.PositionBatsman, 100000),
			targetErr: ErrPositionCapReached,
		},
		{
			name:      "third batsman accepted as substitute",
			roster:    twoBatsmen,
			budget:    1000000,
			candidate: candidate("bat-3", player.PositionBatsman, 100000),
			asSub:     true,
		},
		{
			name:      "second batsman substitute rejected by bench cap",
			roster:    append(append(Roster{}, twoBatsmen...), holding("bat-3", player.PositionBatsman, true)),
			budget:    1000000,
			candidate: candidate("bat-4", player.PositionBatsman, 100000),
			asSub:     true,
			targetErr: ErrSubstituteCapReached,
		},
		{
			name:      "roster ceiling",
			roster:    full,
			budget:    1000000,
			candidate: candidate("wk-1", player.PositionWicketKeeper, 100000),
			targetErr: ErrRosterFull,
		},
		{
			name:      "budget exactly equal to price is enough",
			roster:    Roster{},
			budget:    100000,
			candidate: candidate("bowl-1", player.PositionBowler, 100000),
		},
		{
			name:      "insufficient budget",
			roster:    Roster{},
			budget:    99999,
			candidate: candidate("bowl-1", player.PositionBowler, 100000),
			targetErr: ErrInsufficientBudget,
		},
		{
			name:      "unknown position",
			roster:    Roster{},
			budget:    1000000,
			candidate: candidate("gk-1", player.Position("Goalkeeper"), 100000),
			targetErr: ErrUnknownPosition,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := policy.CanApply(tc.roster, tc.budget, Mutation{Kind: MutationBuy, Candidate: tc.candidate, AsSubstitute: tc.asSub})
			if tc.targetErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.targetErr) {
				t.Fatalf("expected %v, got %v", tc.targetErr, err)
			}
			if !IsRejection(err) {
				t.Fatalf("expected rejection classification for %v", err)
			}
		})
	}
}

func TestPolicy_UncappedBench(t *testing.T) {
	rules := DefaultRules()
	rules.SubstituteCaps = nil
	policy := NewPolicy(rules)

	roster := Roster{
		holding("bat-1", player.PositionBatsman, true),
		holding("bat-2", player.PositionBatsman, true),
	}
	if err := policy.CanBuy(roster, 1000000, candidate("bat-3", player.PositionBatsman, 100000), true); err != nil {
		t.Fatalf("expected bench bounded only by roster size, got %v", err)
	}
}

func TestPolicy_CaptainAndSubstitute(t *testing.T) {
	policy := NewPolicy(DefaultRules())
	roster := Roster{
		holding("bat-1", player.PositionBatsman, false),
		holding("bat-2", player.PositionBatsman, true),
		holding("bowl-1", player.PositionBowler, true),
	}

	tests := []struct {
		name      string
		mutation  Mutation
		targetErr error
	}{
		{name: "captain main player", mutation: Mutation{Kind: MutationSetCaptain, PlayerID: "bat-1"}},
		{name: "captain substitute", mutation: Mutation{Kind: MutationSetCaptain, PlayerID: "bat-2"}, targetErr: ErrSubstituteCaptain},
		{name: "captain not owned", mutation: Mutation{Kind: MutationSetCaptain, PlayerID: "nobody"}, targetErr: ErrNotOwned},
		{name: "swap same position", mutation: Mutation{Kind: MutationSubstitute, PlayerID: "bat-1", SubstituteID: "bat-2"}},
		{name: "swap position mismatch", mutation: Mutation{Kind: MutationSubstitute, PlayerID: "bat-1", SubstituteID: "bowl-1"}, targetErr: ErrPositionMismatch},
		{name: "swap outgoing is bench", mutation: Mutation{Kind: MutationSubstitute, PlayerID: "bat-2", SubstituteID: "bowl-1"}, targetErr: ErrNotMainRoster},
		{name: "swap incoming is main", mutation: Mutation{Kind: MutationSubstitute, PlayerID: "bat-1", SubstituteID: "bat-1"}, targetErr: ErrNotSubstitute},
		{name: "sell owned", mutation: Mutation{Kind: MutationSell, PlayerID: "bowl-1"}},
		{name: "sell not owned", mutation: Mutation{Kind: MutationSell, PlayerID: "nobody"}, targetErr: ErrNotOwned},
		{name: "unknown kind", mutation: Mutation{Kind: "trade"}, targetErr: ErrUnknownMutation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := policy.CanApply(roster, 0, tc.mutation)
			if tc.targetErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.targetErr != nil && !errors.Is(err, tc.targetErr) {
				t.Fatalf("expected %v, got %v", tc.targetErr, err)
			}
		})
	}
}

func TestSwap(t *testing.T) {
	main := holding("bat-1", player.PositionBatsman, false)
	main.IsCaptain = true
	sub := holding("bat-2", player.PositionBatsman, true)

	out, in := Swap(main, sub)
	if !out.IsSubstitute || out.IsCaptain {
		t.Fatalf("outgoing player should be benched without captaincy: %+v", out)
	}
	if in.IsSubstitute {
		t.Fatalf("incoming player should join main roster: %+v", in)
	}
}

func TestHolding_Contribution(t *testing.T) {
	if got := (Holding{}).Contribution(10); got != 10 {
		t.Fatalf("main holding: got %d", got)
	}
	if got := (Holding{IsCaptain: true}).Contribution(10); got != 20 {
		t.Fatalf("captain: got %d", got)
	}
	if got := (Holding{IsSubstitute: true, IsCaptain: true}).Contribution(10); got != 0 {
		t.Fatalf("substitute: got %d", got)
	}
}

func TestRules_Validate(t *testing.T) {
	if err := DefaultRules().Validate(); err != nil {
		t.Fatalf("default rules invalid: %v", err)
	}

	rules := DefaultRules()
	rules.RosterSize = 5
	if err := rules.Validate(); err == nil {
		t.Fatalf("expected error when main caps exceed roster size")
	}

	rules = DefaultRules()
	rules.MainCaps[player.Position("Goalkeeper")] = 1
	if err := rules.Validate(); !errors.Is(err, ErrUnknownPosition) {
		t.Fatalf("expected ErrUnknownPosition, got %v", err)
	}
}
