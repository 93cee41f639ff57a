package player

import (
	"fmt"
	"strings"
	"time"
)

// Position represents the cricket role a player is listed under.
type Position string

const (
	PositionBatsman      Position = "Batsman"
	PositionBowler       Position = "Bowler"
	PositionAllRounder   Position = "All-rounder"
	PositionWicketKeeper Position = "Wicket-keeper"
)

var AllPositions = map[Position]struct{}{
	PositionBatsman:      {},
	PositionBowler:       {},
	PositionAllRounder:   {},
	PositionWicketKeeper: {},
}

// OrderedPositions keeps a stable iteration order for reports and config parsing.
var OrderedPositions = []Position{
	PositionBatsman,
	PositionBowler,
	PositionAllRounder,
	PositionWicketKeeper,
}

// ParsePosition accepts the canonical names case-insensitively.
func ParsePosition(raw string) (Position, bool) {
	value := strings.TrimSpace(raw)
	for _, p := range OrderedPositions {
		if strings.EqualFold(string(p), value) {
			return p, true
		}
	}
	return "", false
}

func (p Position) Valid() bool {
	_, ok := AllPositions[p]
	return ok
}

// Player is a selectable cricketer in the market.
type Player struct {
	ID                 string
	Name               string
	Team               string
	Position           Position
	BasePrice          int64
	CurrentPrice       int64
	TotalPoints        int
	CurrentRoundPoints int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// SeasonPoints is the total including the round still in progress.
func (p Player) SeasonPoints() int {
	return p.TotalPoints + p.CurrentRoundPoints
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(p.Team) == "" {
		return fmt.Errorf("player team is required")
	}
	if !p.Position.Valid() {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.BasePrice <= 0 {
		return fmt.Errorf("player base price must be greater than zero")
	}
	if p.CurrentPrice <= 0 {
		return fmt.Errorf("player current price must be greater than zero")
	}

	return nil
}
