package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

type createRoundRequest struct {
	Name        string    `json:"name" validate:"required,max=120"`
	Sequence    int       `json:"sequence" validate:"required,gt=0"`
	LockoutTime time.Time `json:"lockout_time" validate:"required"`
}

func (h *Handler) ListRounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRounds")
	defer span.End()

	items, err := h.roundService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list rounds failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]roundDTO, 0, len(items))
	for _, item := range items {
		out = append(out, roundViewToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CurrentRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CurrentRound")
	defer span.End()

	item, err := h.roundService.Current(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get current round failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roundViewToDTO(item))
}

func (h *Handler) CreateRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateRound")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createRoundRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.roundService.Create(ctx, principal, usecase.CreateRoundInput{
		Name:        req.Name,
		Sequence:    req.Sequence,
		LockoutTime: req.LockoutTime,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create round failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, roundToDTO(item, ""))
}

func (h *Handler) StartRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartRound")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	roundID := strings.TrimSpace(r.PathValue("roundID"))
	result, err := h.roundService.Start(ctx, principal, roundID)
	if err != nil {
		h.logger.WarnContext(ctx, "start round failed", "user_id", principal.UserID, "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !result.AlreadyActive {
		h.metrics.RecordRoundStart()
	}

	writeSuccess(ctx, w, http.StatusOK, startRoundDTO{
		Round:         roundToDTO(result.Round, ""),
		RolledPlayers: result.RolledPlayers,
		AlreadyActive: result.AlreadyActive,
	})
}
