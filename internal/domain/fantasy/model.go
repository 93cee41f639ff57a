package fantasy

import (
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

// Holding is one player on a user's roster, either in the main XI or on the bench.
type Holding struct {
	UserID        string
	PlayerID      string
	Position      player.Position
	PurchasePrice int64
	IsCaptain     bool
	IsSubstitute  bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Contribution is the per-player scoring rule shared by the leaderboard and H2H:
// bench players count for nothing and the captain counts double.
func (h Holding) Contribution(points int) int {
	if h.IsSubstitute {
		return 0
	}
	if h.IsCaptain {
		return points * 2
	}
	return points
}

// Roster is every holding of one user.
type Roster []Holding

func (r Roster) Find(playerID string) (Holding, bool) {
	for _, h := range r {
		if h.PlayerID == playerID {
			return h, true
		}
	}
	return Holding{}, false
}

func (r Roster) MainCount(position player.Position) int {
	count := 0
	for _, h := range r {
		if !h.IsSubstitute && h.Position == position {
			count++
		}
	}
	return count
}

func (r Roster) SubstituteCount(position player.Position) int {
	count := 0
	for _, h := range r {
		if h.IsSubstitute && h.Position == position {
			count++
		}
	}
	return count
}

func (r Roster) Captain() (Holding, bool) {
	for _, h := range r {
		if h.IsCaptain && !h.IsSubstitute {
			return h, true
		}
	}
	return Holding{}, false
}

func (r Roster) PlayerIDs() []string {
	out := make([]string, 0, len(r))
	for _, h := range r {
		out = append(out, h.PlayerID)
	}
	return out
}
