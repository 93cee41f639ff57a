package leaderboard

import (
	"sort"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
)

// Entry is one user's standing.
type Entry struct {
	Rank          int
	UserID        string
	Username      string
	Points        int
	CaptainID     string
	MainRosterLen int
}

// Aggregate scores every account from its main-roster holdings using season
// points (total plus current round), doubling the captain. Results are ordered by
// points descending then user id ascending; equal points share a rank.
func Aggregate(accounts []user.Account, holdings []fantasy.Holding, players map[string]player.Player) []Entry {
	byUser := make(map[string]fantasy.Roster, len(accounts))
	for _, h := range holdings {
		byUser[h.UserID] = append(byUser[h.UserID], h)
	}

	out := make([]Entry, 0, len(accounts))
	for _, account := range accounts {
		entry := Entry{UserID: account.ID, Username: account.Username}
		for _, h := range byUser[account.ID] {
			if h.IsSubstitute {
				continue
			}
			entry.MainRosterLen++
			if h.IsCaptain {
				entry.CaptainID = h.PlayerID
			}
			entry.Points += h.Contribution(players[h.PlayerID].SeasonPoints())
		}
		out = append(out, entry)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].UserID < out[j].UserID
	})

	rank := 0
	for i := range out {
		if i == 0 || out[i].Points != out[i-1].Points {
			rank++
		}
		out[i].Rank = rank
	}

	return out
}
