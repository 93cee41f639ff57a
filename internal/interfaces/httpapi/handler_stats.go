package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
	"github.com/shopspring/decimal"
)

type recordStatRequest struct {
	PlayerID     string          `json:"player_id" validate:"required"`
	RoundID      string          `json:"round_id"`
	Runs         int             `json:"runs" validate:"gte=0,lte=1000"`
	BallsFaced   int             `json:"balls_faced" validate:"gte=0,lte=1000"`
	Fours        int             `json:"fours" validate:"gte=0,lte=500"`
	Sixes        int             `json:"sixes" validate:"gte=0,lte=500"`
	Wickets      int             `json:"wickets" validate:"gte=0,lte=10"`
	OversBowled  decimal.Decimal `json:"overs_bowled"`
	RunsConceded int             `json:"runs_conceded" validate:"gte=0,lte=1000"`
	Catches      int             `json:"catches" validate:"gte=0,lte=10"`
	Stumpings    int             `json:"stumpings" validate:"gte=0,lte=10"`
	RunOuts      int             `json:"run_outs" validate:"gte=0,lte=10"`
}

func (req recordStatRequest) line() stats.Line {
	return stats.Line{
		Runs:         req.Runs,
		BallsFaced:   req.BallsFaced,
		Fours:        req.Fours,
		Sixes:        req.Sixes,
		Wickets:      req.Wickets,
		OversBowled:  req.OversBowled,
		RunsConceded: req.RunsConceded,
		Catches:      req.Catches,
		Stumpings:    req.Stumpings,
		RunOuts:      req.RunOuts,
	}
}

func (h *Handler) RecordStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordStats")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req recordStatRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.statService.Record(ctx, principal, usecase.RecordStatInput{
		PlayerID: req.PlayerID,
		RoundID:  req.RoundID,
		Line:     req.line(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record stats failed", "user_id", principal.UserID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.metrics.RecordStatEntry()

	writeSuccess(ctx, w, http.StatusCreated, recordStatDTO{
		Entry:              statEntryToDTO(result.Entry),
		Breakdown:          breakdownToDTO(result.Breakdown),
		CurrentRoundPoints: result.CurrentRoundPoints,
		CurrentPrice:       result.CurrentPrice,
	})
}
