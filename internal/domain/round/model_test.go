package round

import (
	"testing"
	"time"
)

func TestRound_StateAt(t *testing.T) {
	lockout := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)
	settledAt := lockout.Add(48 * time.Hour)

	tests := []struct {
		name       string
		round      Round
		now        time.Time
		wantState  State
		wantLocked bool
	}{
		{
			name:      "inactive round is scheduled even after lockout",
			round:     Round{LockoutTime: lockout},
			now:       lockout.Add(time.Hour),
			wantState: StateScheduled,
		},
		{
			name:      "active round before lockout is open",
			round:     Round{LockoutTime: lockout, IsActive: true},
			now:       lockout.Add(-time.Second),
			wantState: StateOpen,
		},
		{
			name:       "lockout instant itself is locked",
			round:      Round{LockoutTime: lockout, IsActive: true},
			now:        lockout,
			wantState:  StateLocked,
			wantLocked: true,
		},
		{
			name:      "settled wins over everything",
			round:     Round{LockoutTime: lockout, SettledAt: &settledAt},
			now:       settledAt,
			wantState: StateSettled,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.round.StateAt(tc.now); got != tc.wantState {
				t.Fatalf("unexpected state: got=%s want=%s", got, tc.wantState)
			}
			if got := tc.round.IsLockedAt(tc.now); got != tc.wantLocked {
				t.Fatalf("unexpected lock flag: got=%t want=%t", got, tc.wantLocked)
			}
		})
	}
}

func TestActiveOf(t *testing.T) {
	rounds := []Round{{ID: "r1"}, {ID: "r2", IsActive: true}, {ID: "r3"}}
	active, ok := ActiveOf(rounds)
	if !ok || active.ID != "r2" {
		t.Fatalf("expected r2 active, got %+v ok=%t", active, ok)
	}
	if _, ok := ActiveOf(rounds[:1]); ok {
		t.Fatalf("expected no active round")
	}
}
