package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/bonus"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
	"github.com/shopspring/decimal"
)

type createBonusRuleRequest struct {
	Name            string           `json:"name" validate:"required,max=120"`
	Description     string           `json:"description" validate:"max=500"`
	BonusPoints     int              `json:"bonus_points"`
	Conditions      bonus.Conditions `json:"conditions"`
	TargetPositions []string         `json:"target_positions" validate:"omitempty,dive,required"`
}

type upsertMultiplierRequest struct {
	Factor decimal.Decimal `json:"factor"`
}

func (h *Handler) ListBonusRules(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBonusRules")
	defer span.End()

	roundID := strings.TrimSpace(r.PathValue("roundID"))
	items, err := h.bonusService.ListRules(ctx, roundID)
	if err != nil {
		h.logger.WarnContext(ctx, "list bonus rules failed", "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]bonusRuleDTO, 0, len(items))
	for _, item := range items {
		out = append(out, bonusRuleToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateBonusRule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateBonusRule")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createBonusRuleRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	roundID := strings.TrimSpace(r.PathValue("roundID"))
	item, err := h.bonusService.CreateRule(ctx, principal, usecase.CreateBonusRuleInput{
		RoundID:         roundID,
		Name:            req.Name,
		Description:     req.Description,
		BonusPoints:     req.BonusPoints,
		Conditions:      req.Conditions,
		TargetPositions: req.TargetPositions,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create bonus rule failed", "user_id", principal.UserID, "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, bonusRuleToDTO(item))
}

func (h *Handler) DeleteBonusRule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteBonusRule")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	ruleID := strings.TrimSpace(r.PathValue("ruleID"))
	if err := h.bonusService.DeleteRule(ctx, principal, ruleID); err != nil {
		h.logger.WarnContext(ctx, "delete bonus rule failed", "user_id", principal.UserID, "rule_id", ruleID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": ruleID})
}

func (h *Handler) ListMultipliers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMultipliers")
	defer span.End()

	roundID := strings.TrimSpace(r.PathValue("roundID"))
	items, err := h.bonusService.ListMultipliers(ctx, roundID)
	if err != nil {
		h.logger.WarnContext(ctx, "list multipliers failed", "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]multiplierDTO, 0, len(items))
	for _, item := range items {
		out = append(out, multiplierToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) UpsertMultiplier(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertMultiplier")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req upsertMultiplierRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	roundID := strings.TrimSpace(r.PathValue("roundID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))
	item, err := h.bonusService.UpsertMultiplier(ctx, principal, roundID, playerID, req.Factor)
	if err != nil {
		h.logger.WarnContext(ctx, "upsert multiplier failed",
			"user_id", principal.UserID,
			"round_id", roundID,
			"player_id", playerID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, multiplierToDTO(item))
}

func (h *Handler) DeleteMultiplier(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMultiplier")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	roundID := strings.TrimSpace(r.PathValue("roundID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))
	if err := h.bonusService.DeleteMultiplier(ctx, principal, roundID, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete multiplier failed",
			"user_id", principal.UserID,
			"round_id", roundID,
			"player_id", playerID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"round_id": roundID, "player_id": playerID})
}
