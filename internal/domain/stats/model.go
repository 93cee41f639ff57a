package stats

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Line is the raw performance of one player in one match.
type Line struct {
	Runs         int
	BallsFaced   int
	Fours        int
	Sixes        int
	Wickets      int
	OversBowled  decimal.Decimal
	RunsConceded int
	Catches      int
	Stumpings    int
	RunOuts      int
}

// Upper bounds for a single match's stat line.
const (
	MaxRuns         = 1000
	MaxBalls        = 1000
	MaxBoundaries   = 500
	MaxWickets      = 10
	MaxRunsConceded = 1000
	MaxDismissals   = 10
)

var maxOversBowled = decimal.NewFromInt(200)

func (l Line) Validate() error {
	counters := []struct {
		name  string
		value int
		max   int
	}{
		{"runs", l.Runs, MaxRuns},
		{"balls_faced", l.BallsFaced, MaxBalls},
		{"fours", l.Fours, MaxBoundaries},
		{"sixes", l.Sixes, MaxBoundaries},
		{"wickets", l.Wickets, MaxWickets},
		{"runs_conceded", l.RunsConceded, MaxRunsConceded},
		{"catches", l.Catches, MaxDismissals},
		{"stumpings", l.Stumpings, MaxDismissals},
		{"run_outs", l.RunOuts, MaxDismissals},
	}
	for _, c := range counters {
		if c.value < 0 {
			return fmt.Errorf("%s must be >= 0", c.name)
		}
		if c.value > c.max {
			return fmt.Errorf("%s must be <= %d", c.name, c.max)
		}
	}
	if l.OversBowled.IsNegative() {
		return fmt.Errorf("overs_bowled must be >= 0")
	}
	if l.OversBowled.GreaterThan(maxOversBowled) {
		return fmt.Errorf("overs_bowled must be <= %s", maxOversBowled)
	}

	return nil
}

// Entry is a recorded stat line with the points computed when it was inserted.
type Entry struct {
	ID        string
	PlayerID  string
	RoundID   string
	Line      Line
	Points    int
	CreatedAt time.Time
}

// SumPoints adds the stored per-entry points.
func SumPoints(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += e.Points
	}
	return total
}

// PointsByPlayer groups stored points per player.
func PointsByPlayer(entries []Entry) map[string]int {
	out := make(map[string]int, len(entries))
	for _, e := range entries {
		out[e.PlayerID] += e.Points
	}
	return out
}
