package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

type updateAccountRequest struct {
	Username string `json:"username" validate:"required,min=3,max=40"`
	Email    string `json:"email" validate:"omitempty,email"`
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMe")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	account, err := h.accountService.Get(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "get account failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, accountToDTO(account))
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMe")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateAccountRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	account, err := h.accountService.Update(ctx, principal.UserID, usecase.UpdateAccountInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update account failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, accountToDTO(account))
}

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAccounts")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.accountService.List(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "list accounts failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]accountDTO, 0, len(items))
	for _, item := range items {
		out = append(out, accountToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	items, err := h.leaderboardService.Get(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(items))
}
