package round

import (
	"fmt"
	"strings"
	"time"
)

// State is derived from the stored round fields and the clock; it is never persisted.
type State string

const (
	StateScheduled State = "scheduled"
	StateOpen      State = "open"
	StateLocked    State = "locked"
	StateSettled   State = "settled"
)

// Round is one scoring period with a lockout instant after which rosters freeze.
type Round struct {
	ID          string
	Name        string
	Sequence    int
	LockoutTime time.Time
	IsActive    bool
	// IsLocked caches the last observed lock state; IsLockedAt is authoritative.
	IsLocked  bool
	StartedAt *time.Time
	SettledAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLockedAt reports whether roster mutations are frozen at now.
// Only the active round gates mutations.
func (r Round) IsLockedAt(now time.Time) bool {
	if !r.IsActive {
		return false
	}
	return !now.Before(r.LockoutTime)
}

func (r Round) StateAt(now time.Time) State {
	switch {
	case r.SettledAt != nil:
		return StateSettled
	case !r.IsActive:
		return StateScheduled
	case r.IsLockedAt(now):
		return StateLocked
	default:
		return StateOpen
	}
}

func (r Round) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("round id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("round name is required")
	}
	if r.Sequence <= 0 {
		return fmt.Errorf("round sequence must be greater than zero")
	}
	if r.LockoutTime.IsZero() {
		return fmt.Errorf("round lockout time is required")
	}

	return nil
}

// ActiveOf returns the single active round, if any.
func ActiveOf(rounds []Round) (Round, bool) {
	for _, r := range rounds {
		if r.IsActive {
			return r, true
		}
	}
	return Round{}, false
}
