package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/observability"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

// Services groups the usecase entry points served over HTTP.
type Services struct {
	Accounts    *usecase.AccountService
	Players     *usecase.PlayerService
	Rounds      *usecase.RoundService
	Teams       *usecase.TeamService
	Stats       *usecase.StatService
	Bonuses     *usecase.BonusService
	Leaderboard *usecase.LeaderboardService
	H2H         *usecase.H2HService
}

type Handler struct {
	accountService     *usecase.AccountService
	playerService      *usecase.PlayerService
	roundService       *usecase.RoundService
	teamService        *usecase.TeamService
	statService        *usecase.StatService
	bonusService       *usecase.BonusService
	leaderboardService *usecase.LeaderboardService
	h2hService         *usecase.H2HService
	metrics            *observability.Metrics
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(services Services, metrics *observability.Metrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		accountService:     services.Accounts,
		playerService:      services.Players,
		roundService:       services.Rounds,
		teamService:        services.Teams,
		statService:        services.Stats,
		bonusService:       services.Bonuses,
		leaderboardService: services.Leaderboard,
		h2hService:         services.H2H,
		metrics:            metrics,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest reads a JSON body into dst, rejecting unknown fields, then runs
// struct validation.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func requirePrincipal(ctx context.Context) (user.Principal, error) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}
	return principal, nil
}
