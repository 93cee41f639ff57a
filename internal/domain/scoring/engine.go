package scoring

import (
	"github.com/riskibarqy/fantasy-cricket/internal/domain/bonus"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/shopspring/decimal"
)

const (
	pointsPerRun         = 1
	pointsPerFour        = 1
	pointsPerSix         = 2
	pointsPerWicket      = 25
	pointsPerCatch       = 8
	pointsPerStumping    = 12
	pointsPerRunOut      = 6
	halfCenturyRuns      = 50
	halfCenturyBonus     = 8
	centuryRuns          = 100
	centuryBonus         = 16
	threeWicketHaul      = 3
	threeWicketBonus     = 4
	fiveWicketHaul       = 5
	fiveWicketBonus      = 8
	runsConcededPerPoint = 2
)

// Breakdown exposes each stage of the running total for one stat line.
type Breakdown struct {
	Batting    int
	Bowling    int
	Fielding   int
	Milestones int
	Bonus      int
	Subtotal   int
	Multiplier decimal.Decimal
	Total      int
}

// Input is everything the engine needs to score one entry.
type Input struct {
	Line       stats.Line
	Position   player.Position
	Rules      []bonus.Rule
	Multiplier *bonus.Multiplier
}

// Calculate applies base scoring, fielding weights, milestones, custom rules and
// the round multiplier in that order, then clamps at zero.
func Calculate(in Input) Breakdown {
	line := in.Line
	out := Breakdown{Multiplier: decimal.NewFromInt(1)}

	out.Batting = line.Runs*pointsPerRun + line.Fours*pointsPerFour + line.Sixes*pointsPerSix
	out.Bowling = line.Wickets*pointsPerWicket - line.RunsConceded/runsConcededPerPoint
	out.Fielding = fieldingPoints(line, in.Position)
	out.Milestones = milestonePoints(line)

	for _, rule := range in.Rules {
		if rule.Applies(in.Position, line) {
			out.Bonus += rule.BonusPoints
		}
	}

	out.Subtotal = out.Batting + out.Bowling + out.Fielding + out.Milestones + out.Bonus
	total := out.Subtotal
	if in.Multiplier != nil {
		out.Multiplier = in.Multiplier.Factor
		total = int(decimal.NewFromInt(int64(total)).Mul(in.Multiplier.Factor).Floor().IntPart())
	}
	if total < 0 {
		total = 0
	}
	out.Total = total

	return out
}

// Score returns the clamped point value for one entry.
func Score(in Input) int {
	return Calculate(in).Total
}

// Wicket-keepers earn 1.5x on every fielding dismissal. Each term is floored on
// its own; with the current weights every term is already whole.
func fieldingPoints(line stats.Line, position player.Position) int {
	catches := line.Catches * pointsPerCatch
	stumpings := line.Stumpings * pointsPerStumping
	runOuts := line.RunOuts * pointsPerRunOut
	if position != player.PositionWicketKeeper {
		return catches + stumpings + runOuts
	}
	return catches*3/2 + stumpings*3/2 + runOuts*3/2
}

// Milestones stack: a century also earns the half-century bonus.
func milestonePoints(line stats.Line) int {
	points := 0
	if line.Runs >= halfCenturyRuns {
		points += halfCenturyBonus
	}
	if line.Runs >= centuryRuns {
		points += centuryBonus
	}
	if line.Wickets >= threeWicketHaul {
		points += threeWicketBonus
	}
	if line.Wickets >= fiveWicketHaul {
		points += fiveWicketBonus
	}
	return points
}
