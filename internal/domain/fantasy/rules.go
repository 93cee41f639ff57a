package fantasy

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

var (
	ErrRosterFull           = errors.New("roster is full")
	ErrPositionCapReached   = errors.New("position cap reached")
	ErrSubstituteCapReached = errors.New("substitute cap reached")
	ErrAlreadyOwned         = errors.New("player already in roster")
	ErrInsufficientBudget   = errors.New("insufficient budget")
	ErrPositionMismatch     = errors.New("substitution requires matching positions")
	ErrSubstituteCaptain    = errors.New("substitute cannot be captain")
	ErrNotOwned             = errors.New("player not in roster")
	ErrNotMainRoster        = errors.New("player is not in the main roster")
	ErrNotSubstitute        = errors.New("player is not a substitute")
	ErrUnknownPosition      = errors.New("unknown player position")
	ErrUnknownMutation      = errors.New("unknown roster mutation")
)

var rejections = []error{
	ErrRosterFull,
	ErrPositionCapReached,
	ErrSubstituteCapReached,
	ErrAlreadyOwned,
	ErrInsufficientBudget,
	ErrPositionMismatch,
	ErrSubstituteCaptain,
	ErrNotOwned,
	ErrNotMainRoster,
	ErrNotSubstitute,
	ErrUnknownPosition,
	ErrUnknownMutation,
}

// IsRejection reports whether err is a roster policy rejection.
func IsRejection(err error) bool {
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Rules is the single versioned description of a legal roster.
type Rules struct {
	Version    int
	RosterSize int
	// MainCaps bounds the main XI per position.
	MainCaps map[player.Position]int
	// SubstituteCaps bounds the bench per position; a missing or zero entry leaves
	// that position bounded only by RosterSize.
	SubstituteCaps map[player.Position]int
	InitialBudget  int64
}

func DefaultRules() Rules {
	return Rules{
		Version:    1,
		RosterSize: 11,
		MainCaps: map[player.Position]int{
			player.PositionBatsman:      2,
			player.PositionBowler:       2,
			player.PositionAllRounder:   2,
			player.PositionWicketKeeper: 1,
		},
		SubstituteCaps: map[player.Position]int{
			player.PositionBatsman:      1,
			player.PositionBowler:       1,
			player.PositionAllRounder:   1,
			player.PositionWicketKeeper: 1,
		},
		InitialBudget: 1000000,
	}
}

func (r Rules) Validate() error {
	if r.Version <= 0 {
		return fmt.Errorf("rules version must be greater than zero")
	}
	if r.RosterSize <= 0 {
		return fmt.Errorf("roster size must be greater than zero")
	}
	if r.InitialBudget <= 0 {
		return fmt.Errorf("initial budget must be greater than zero")
	}
	if len(r.MainCaps) == 0 {
		return fmt.Errorf("main caps are required")
	}

	mainTotal := 0
	for position, limit := range r.MainCaps {
		if !position.Valid() {
			return fmt.Errorf("%w: %s", ErrUnknownPosition, position)
		}
		if limit < 0 {
			return fmt.Errorf("main cap for %s must be >= 0", position)
		}
		mainTotal += limit
	}
	if mainTotal > r.RosterSize {
		return fmt.Errorf("main caps total %d exceeds roster size %d", mainTotal, r.RosterSize)
	}
	for position, limit := range r.SubstituteCaps {
		if !position.Valid() {
			return fmt.Errorf("%w: %s", ErrUnknownPosition, position)
		}
		if limit < 0 {
			return fmt.Errorf("substitute cap for %s must be >= 0", position)
		}
	}

	return nil
}
