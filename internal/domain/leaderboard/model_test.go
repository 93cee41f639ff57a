package leaderboard

import (
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
)

func TestAggregate(t *testing.T) {
	accounts := []user.Account{
		{ID: "u3", Username: "carol"},
		{ID: "u1", Username: "alice"},
		{ID: "u2", Username: "bob"},
		{ID: "u4", Username: "dave"},
	}
	players := map[string]player.Player{
		"p1": {ID: "p1", TotalPoints: 40, CurrentRoundPoints: 42},
		"p2": {ID: "p2", TotalPoints: 10},
		"p3": {ID: "p3", TotalPoints: 500},
	}
	holdings := []fantasy.Holding{
		{UserID: "u1", PlayerID: "p1", IsCaptain: true},
		{UserID: "u1", PlayerID: "p3", IsSubstitute: true},
		{UserID: "u2", PlayerID: "p1"},
		{UserID: "u2", PlayerID: "p2", IsCaptain: true},
		{UserID: "u3", PlayerID: "p1"},
		{UserID: "u3", PlayerID: "p2", IsCaptain: true},
	}

	got := Aggregate(accounts, holdings, players)
	want := []struct {
		userID string
		points int
		rank   int
	}{
		{"u1", 164, 1},
		{"u2", 102, 2},
		{"u3", 102, 2},
		{"u4", 0, 3},
	}

	if len(got) != len(want) {
		t.Fatalf("unexpected entry count: %d", len(got))
	}
	for i, w := range want {
		if got[i].UserID != w.userID || got[i].Points != w.points || got[i].Rank != w.rank {
			t.Fatalf("entry %d: got=%+v want=%+v", i, got[i], w)
		}
	}
	if got[0].CaptainID != "p1" || got[0].MainRosterLen != 1 {
		t.Fatalf("unexpected captain/main roster for u1: %+v", got[0])
	}
}
