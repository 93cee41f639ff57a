package h2h

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Matchup compares two users' scores for one round.
type Matchup struct {
	ID         string
	Name       string
	RoundID    string
	User1ID    string
	User2ID    string
	Status     Status
	User1Score int
	User2Score int
	// WinnerID is nil while pending and on a tie.
	WinnerID  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m Matchup) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("matchup id is required")
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("matchup name is required")
	}
	if m.RoundID == "" {
		return fmt.Errorf("matchup round id is required")
	}
	if m.User1ID == "" || m.User2ID == "" {
		return fmt.Errorf("matchup users are required")
	}
	return nil
}

// RoundScore sums one user's main-roster points for a round, doubling the captain.
// pointsByPlayer holds stat-derived points for that round only.
func RoundScore(roster fantasy.Roster, pointsByPlayer map[string]int) int {
	total := 0
	for _, h := range roster {
		total += h.Contribution(pointsByPlayer[h.PlayerID])
	}
	return total
}

// Resolve recomputes scores, status and winner from the current round data.
func Resolve(m Matchup, user1Score, user2Score int, roundHasStats bool) Matchup {
	m.User1Score = user1Score
	m.User2Score = user2Score
	m.WinnerID = nil
	if !roundHasStats {
		m.Status = StatusPending
		return m
	}

	m.Status = StatusCompleted
	switch {
	case user1Score > user2Score:
		winner := m.User1ID
		m.WinnerID = &winner
	case user2Score > user1Score:
		winner := m.User2ID
		m.WinnerID = &winner
	}
	return m
}
