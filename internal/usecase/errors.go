package usecase

import "github.com/cockroachdb/errors"

// Business-rule outcomes. Callers wrap these with fmt.Errorf("%w: ...") so
// the transport can map them while keeping the specific constraint message.
var (
	// ErrInvalidInput covers malformed requests; roster rejections are
	// classified separately by fantasy.IsRejection.
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
	// ErrLocked rejects roster mutations once the active round passes lockout.
	ErrLocked = errors.New("round is locked")

	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// ErrDependencyUnavailable reports an external collaborator (token
	// introspection) that is down or tripped its breaker.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
