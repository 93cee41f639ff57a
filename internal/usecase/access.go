package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/round"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

func requireAdmin(actor user.Principal) error {
	if strings.TrimSpace(actor.UserID) == "" {
		return fmt.Errorf("%w: missing principal", ErrUnauthorized)
	}
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: admin role required", ErrForbidden)
	}
	return nil
}

// lockGate reads the active round and rejects the call once its lockout has passed.
// The returned round is only meaningful when found is true.
func lockGate(ctx context.Context, rounds round.Repository, now time.Time) (round.Round, bool, error) {
	active, found, err := rounds.GetActive(ctx)
	if err != nil {
		return round.Round{}, false, fmt.Errorf("get active round: %w", err)
	}
	if !found {
		return round.Round{}, false, nil
	}
	if active.IsLockedAt(now) {
		return active, true, fmt.Errorf("%w: round %s locked at %s", ErrLocked, active.Name, active.LockoutTime.UTC().Format(time.RFC3339))
	}
	return active, true, nil
}

// refreshLockFlag writes the cached locked flag once lockout has been observed.
// Failures are logged only; IsLockedAt stays authoritative.
func refreshLockFlag(ctx context.Context, rounds round.Repository, r round.Round, now time.Time, logger *logging.Logger) {
	if r.ID == "" || r.IsLocked || !r.IsLockedAt(now) {
		return
	}
	if err := rounds.MarkLocked(ctx, r.ID); err != nil {
		logger.WarnContext(ctx, "refresh round lock flag failed", "round_id", r.ID, "error", err)
	}
}
