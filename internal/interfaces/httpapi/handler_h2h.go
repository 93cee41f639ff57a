package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

type createMatchupRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	RoundID string `json:"round_id" validate:"required"`
	User1ID string `json:"user1_id" validate:"required"`
	User2ID string `json:"user2_id" validate:"required"`
}

type recomputeDTO struct {
	RoundID string `json:"round_id"`
	Updated int    `json:"updated"`
	Failed  int    `json:"failed"`
}

func (h *Handler) ListMatchups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchups")
	defer span.End()

	roundID := strings.TrimSpace(r.URL.Query().Get("round_id"))
	items, err := h.h2hService.List(ctx, roundID)
	if err != nil {
		h.logger.WarnContext(ctx, "list matchups failed", "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchupsToDTO(items))
}

func (h *Handler) GetMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchup")
	defer span.End()

	matchupID := strings.TrimSpace(r.PathValue("matchupID"))
	item, err := h.h2hService.Get(ctx, matchupID)
	if err != nil {
		h.logger.WarnContext(ctx, "get matchup failed", "matchup_id", matchupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchupToDTO(item))
}

func (h *Handler) CreateMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatchup")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createMatchupRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.h2hService.Create(ctx, principal, usecase.CreateMatchupInput{
		Name:    req.Name,
		RoundID: req.RoundID,
		User1ID: req.User1ID,
		User2ID: req.User2ID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create matchup failed", "user_id", principal.UserID, "round_id", req.RoundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchupToDTO(item))
}

func (h *Handler) RecomputeMatchups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecomputeMatchups")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	roundID := strings.TrimSpace(r.PathValue("roundID"))
	result, err := h.h2hService.RecomputeRound(ctx, roundID)
	if err != nil {
		h.logger.WarnContext(ctx, "recompute matchups failed", "user_id", principal.UserID, "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.metrics.RecordH2HRecompute(result.Updated, result.Failed)

	writeSuccess(ctx, w, http.StatusOK, recomputeDTO{
		RoundID: result.RoundID,
		Updated: result.Updated,
		Failed:  result.Failed,
	})
}
