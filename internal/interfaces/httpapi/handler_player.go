package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

type createPlayerRequest struct {
	Name      string `json:"name" validate:"required,max=120"`
	Team      string `json:"team" validate:"required,max=120"`
	Position  string `json:"position" validate:"required"`
	BasePrice int64  `json:"base_price" validate:"gte=0"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	position := strings.TrimSpace(r.URL.Query().Get("position"))
	items, err := h.playerService.List(ctx, position)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "position", position, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(items))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	item, err := h.playerService.Get(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) ListPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerStats")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	items, err := h.playerService.ListStats(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player stats failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statEntriesToDTO(items))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Create(ctx, principal, usecase.CreatePlayerInput{
		Name:      req.Name,
		Team:      req.Team,
		Position:  req.Position,
		BasePrice: req.BasePrice,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	if err := h.playerService.Delete(ctx, principal, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "user_id", principal.UserID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": playerID})
}
