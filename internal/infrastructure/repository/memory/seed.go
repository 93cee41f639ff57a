package memory

import (
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/round"
)

const (
	RoundIDOpening = "round-001"
	RoundIDSecond  = "round-002"
)

func SeedPlayers(now time.Time) []player.Player {
	type row struct {
		id       string
		name     string
		team     string
		position player.Position
		price    int64
	}
	rows := []row{
		{"bat-kohli", "Virat Kohli", "India", player.PositionBatsman, 150000},
		{"bat-root", "Joe Root", "England", player.PositionBatsman, 140000},
		{"bat-williamson", "Kane Williamson", "New Zealand", player.PositionBatsman, 130000},
		{"bat-babar", "Babar Azam", "Pakistan", player.PositionBatsman, 120000},
		{"bowl-bumrah", "Jasprit Bumrah", "India", player.PositionBowler, 140000},
		{"bowl-starc", "Mitchell Starc", "Australia", player.PositionBowler, 130000},
		{"bowl-rashid", "Rashid Khan", "Afghanistan", player.PositionBowler, 120000},
		{"bowl-rabada", "Kagiso Rabada", "South Africa", player.PositionBowler, 110000},
		{"ar-stokes", "Ben Stokes", "England", player.PositionAllRounder, 140000},
		{"ar-jadeja", "Ravindra Jadeja", "India", player.PositionAllRounder, 120000},
		{"ar-shakib", "Shakib Al Hasan", "Bangladesh", player.PositionAllRounder, 100000},
		{"ar-holder", "Jason Holder", "West Indies", player.PositionAllRounder, 90000},
		{"wk-buttler", "Jos Buttler", "England", player.PositionWicketKeeper, 120000},
		{"wk-pant", "Rishabh Pant", "India", player.PositionWicketKeeper, 110000},
		{"wk-decock", "Quinton de Kock", "South Africa", player.PositionWicketKeeper, 100000},
	}

	out := make([]player.Player, 0, len(rows))
	for _, r := range rows {
		out = append(out, player.Player{
			ID:           r.id,
			Name:         r.name,
			Team:         r.team,
			Position:     r.position,
			BasePrice:    r.price,
			CurrentPrice: r.price,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return out
}

// SeedRounds returns an active round open for a week and a scheduled follow-up.
func SeedRounds(now time.Time) []round.Round {
	startedAt := now
	return []round.Round{
		{
			ID:          RoundIDOpening,
			Name:        "Round 1",
			Sequence:    1,
			LockoutTime: now.Add(7 * 24 * time.Hour),
			IsActive:    true,
			StartedAt:   &startedAt,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          RoundIDSecond,
			Name:        "Round 2",
			Sequence:    2,
			LockoutTime: now.Add(14 * 24 * time.Hour),
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// Seed loads the demo player pool and rounds into the store.
func Seed(s *Store, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range SeedPlayers(now) {
		s.state.players[p.ID] = p
	}
	for _, r := range SeedRounds(now) {
		s.state.rounds[r.ID] = r
	}
}
