package httpapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

type buyPlayerRequest struct {
	PlayerID     string `json:"player_id" validate:"required"`
	AsSubstitute bool   `json:"as_substitute"`
}

type playerRefRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
}

type substituteRequest struct {
	MainPlayerID       string `json:"main_player_id" validate:"required"`
	SubstitutePlayerID string `json:"substitute_player_id" validate:"required,nefield=MainPlayerID"`
}

func (h *Handler) GetMyTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyTeam")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.teamService.GetTeam(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(view))
}

func (h *Handler) BuyPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BuyPlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req buyPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.teamService.Buy(ctx, principal.UserID, req.PlayerID, req.AsSubstitute)
	h.writeMutation(ctx, w, fantasy.MutationBuy, result, err)
}

func (h *Handler) SellPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SellPlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerRefRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.teamService.Sell(ctx, principal.UserID, req.PlayerID)
	h.writeMutation(ctx, w, fantasy.MutationSell, result, err)
}

func (h *Handler) SetCaptain(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetCaptain")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerRefRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.teamService.SetCaptain(ctx, principal.UserID, req.PlayerID)
	h.writeMutation(ctx, w, fantasy.MutationSetCaptain, result, err)
}

func (h *Handler) Substitute(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Substitute")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req substituteRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.teamService.Substitute(ctx, principal.UserID, req.MainPlayerID, req.SubstitutePlayerID)
	h.writeMutation(ctx, w, fantasy.MutationSubstitute, result, err)
}

// writeMutation records the outcome metric then writes the result or error.
func (h *Handler) writeMutation(ctx context.Context, w http.ResponseWriter, action fantasy.MutationKind, result usecase.MutationResult, err error) {
	if err != nil {
		h.metrics.RecordRosterMutation(string(action), mapError(err).Reason)
		writeError(ctx, w, err)
		return
	}

	h.metrics.RecordRosterMutation(string(action), "ok")
	writeSuccess(ctx, w, http.StatusOK, mutationToDTO(result))
}
