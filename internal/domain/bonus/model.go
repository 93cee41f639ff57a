package bonus

import (
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/shopspring/decimal"
)

// TargetAll matches every position.
const TargetAll = "All"

// MultiplierScale matches the NUMERIC(4, 2) factor column.
const MultiplierScale = 2

var (
	ErrInvalidRule       = errors.New("invalid bonus rule")
	ErrInvalidMultiplier = errors.New("invalid round multiplier")
)

var (
	MinMultiplier = decimal.RequireFromString("0.1")
	MaxMultiplier = decimal.RequireFromString("10.0")
)

// Conditions holds optional thresholds; a nil field is not checked.
// Min bounds are inclusive lower bounds and max bounds inclusive upper bounds.
type Conditions struct {
	MinRuns    *int `json:"min_runs,omitempty"`
	MaxRuns    *int `json:"max_runs,omitempty"`
	MinWickets *int `json:"min_wickets,omitempty"`
	MaxWickets *int `json:"max_wickets,omitempty"`
	MinCatches *int `json:"min_catches,omitempty"`
	MinSixes   *int `json:"min_sixes,omitempty"`
	MinFours   *int `json:"min_fours,omitempty"`
}

// Matches reports whether every present bound holds for line.
func (c Conditions) Matches(line stats.Line) bool {
	return atLeast(c.MinRuns, line.Runs) &&
		atMost(c.MaxRuns, line.Runs) &&
		atLeast(c.MinWickets, line.Wickets) &&
		atMost(c.MaxWickets, line.Wickets) &&
		atLeast(c.MinCatches, line.Catches) &&
		atLeast(c.MinSixes, line.Sixes) &&
		atLeast(c.MinFours, line.Fours)
}

func (c Conditions) validate() error {
	bounds := []struct {
		name  string
		value *int
	}{
		{"min_runs", c.MinRuns},
		{"max_runs", c.MaxRuns},
		{"min_wickets", c.MinWickets},
		{"max_wickets", c.MaxWickets},
		{"min_catches", c.MinCatches},
		{"min_sixes", c.MinSixes},
		{"min_fours", c.MinFours},
	}
	for _, b := range bounds {
		if b.value != nil && *b.value < 0 {
			return fmt.Errorf("%w: %s must be >= 0", ErrInvalidRule, b.name)
		}
	}
	if c.MinRuns != nil && c.MaxRuns != nil && *c.MinRuns > *c.MaxRuns {
		return fmt.Errorf("%w: min_runs exceeds max_runs", ErrInvalidRule)
	}
	if c.MinWickets != nil && c.MaxWickets != nil && *c.MinWickets > *c.MaxWickets {
		return fmt.Errorf("%w: min_wickets exceeds max_wickets", ErrInvalidRule)
	}
	return nil
}

func atLeast(bound *int, value int) bool {
	return bound == nil || value >= *bound
}

func atMost(bound *int, value int) bool {
	return bound == nil || value <= *bound
}

// Rule awards BonusPoints in one round to players whose position and stat line qualify.
type Rule struct {
	ID              string
	RoundID         string
	Name            string
	Description     string
	BonusPoints     int
	Conditions      Conditions
	TargetPositions []string
	CreatedAt       time.Time
}

// Targets reports whether the rule applies to position.
func (r Rule) Targets(position player.Position) bool {
	for _, target := range r.TargetPositions {
		if target == TargetAll || target == string(position) {
			return true
		}
	}
	return false
}

// Applies combines the position and condition checks.
func (r Rule) Applies(position player.Position, line stats.Line) bool {
	return r.Targets(position) && r.Conditions.Matches(line)
}

func (r Rule) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidRule)
	}
	if r.RoundID == "" {
		return fmt.Errorf("%w: round id is required", ErrInvalidRule)
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRule)
	}
	if len(r.TargetPositions) == 0 {
		return fmt.Errorf("%w: at least one target position is required", ErrInvalidRule)
	}
	for _, target := range r.TargetPositions {
		if target == TargetAll {
			continue
		}
		if !player.Position(target).Valid() {
			return fmt.Errorf("%w: unknown target position %q", ErrInvalidRule, target)
		}
	}
	return r.Conditions.validate()
}

// NormalizeTargets canonicalizes position names and drops duplicates.
func NormalizeTargets(raw []string) ([]string, error) {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, item := range raw {
		value := strings.TrimSpace(item)
		if value == "" {
			continue
		}
		if strings.EqualFold(value, TargetAll) {
			value = TargetAll
		} else {
			position, ok := player.ParsePosition(value)
			if !ok {
				return nil, fmt.Errorf("%w: unknown target position %q", ErrInvalidRule, item)
			}
			value = string(position)
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out, nil
}

// Multiplier scales one player's score in one round.
type Multiplier struct {
	RoundID   string
	PlayerID  string
	Factor    decimal.Decimal
	UpdatedAt time.Time
}

func (m Multiplier) Validate() error {
	if m.RoundID == "" || m.PlayerID == "" {
		return fmt.Errorf("%w: round id and player id are required", ErrInvalidMultiplier)
	}
	if m.Factor.LessThan(MinMultiplier) || m.Factor.GreaterThan(MaxMultiplier) {
		return fmt.Errorf("%w: factor %s must be between %s and %s", ErrInvalidMultiplier, m.Factor, MinMultiplier, MaxMultiplier)
	}
	if !m.Factor.Equal(m.Factor.Round(MultiplierScale)) {
		return fmt.Errorf("%w: factor %s has more than %d decimal places", ErrInvalidMultiplier, m.Factor, MultiplierScale)
	}
	return nil
}
