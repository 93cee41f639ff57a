package httpapi

import (
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/bonus"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/h2h"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/leaderboard"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/round"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
	"github.com/shopspring/decimal"
)

type playerDTO struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Team               string `json:"team"`
	Position           string `json:"position"`
	BasePrice          int64  `json:"base_price"`
	CurrentPrice       int64  `json:"current_price"`
	TotalPoints        int    `json:"total_points"`
	CurrentRoundPoints int    `json:"current_round_points"`
}

type roundDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Sequence    int        `json:"sequence"`
	LockoutTime time.Time  `json:"lockout_time"`
	IsActive    bool       `json:"is_active"`
	IsLocked    bool       `json:"is_locked"`
	State       string     `json:"state,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	SettledAt   *time.Time `json:"settled_at,omitempty"`
}

type startRoundDTO struct {
	Round         roundDTO `json:"round"`
	RolledPlayers int      `json:"rolled_players"`
	AlreadyActive bool     `json:"already_active"`
}

type accountDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
	Budget   int64  `json:"budget"`
}

type mutationDTO struct {
	Action   string `json:"action"`
	PlayerID string `json:"player_id"`
	Price    int64  `json:"price"`
	Budget   int64  `json:"budget"`
	Message  string `json:"message"`
}

type teamHoldingDTO struct {
	Player        playerDTO `json:"player"`
	PurchasePrice int64     `json:"purchase_price"`
	IsCaptain     bool      `json:"is_captain"`
	IsSubstitute  bool      `json:"is_substitute"`
}

type teamDTO struct {
	UserID    string           `json:"user_id"`
	Username  string           `json:"username"`
	Budget    int64            `json:"budget"`
	TeamValue int64            `json:"team_value"`
	Locked    bool             `json:"locked"`
	Main      []teamHoldingDTO `json:"main"`
	Bench     []teamHoldingDTO `json:"substitutes"`
}

type statLineDTO struct {
	Runs         int             `json:"runs"`
	BallsFaced   int             `json:"balls_faced"`
	Fours        int             `json:"fours"`
	Sixes        int             `json:"sixes"`
	Wickets      int             `json:"wickets"`
	OversBowled  decimal.Decimal `json:"overs_bowled"`
	RunsConceded int             `json:"runs_conceded"`
	Catches      int             `json:"catches"`
	Stumpings    int             `json:"stumpings"`
	RunOuts      int             `json:"run_outs"`
}

type statEntryDTO struct {
	ID        string      `json:"id"`
	PlayerID  string      `json:"player_id"`
	RoundID   string      `json:"round_id"`
	Line      statLineDTO `json:"line"`
	Points    int         `json:"points"`
	CreatedAt time.Time   `json:"created_at"`
}

type breakdownDTO struct {
	Batting    int             `json:"batting"`
	Bowling    int             `json:"bowling"`
	Fielding   int             `json:"fielding"`
	Milestones int             `json:"milestones"`
	Bonus      int             `json:"bonus"`
	Subtotal   int             `json:"subtotal"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Total      int             `json:"total"`
}

type recordStatDTO struct {
	Entry              statEntryDTO `json:"entry"`
	Breakdown          breakdownDTO `json:"breakdown"`
	CurrentRoundPoints int          `json:"current_round_points"`
	CurrentPrice       int64        `json:"current_price"`
}

type bonusRuleDTO struct {
	ID              string           `json:"id"`
	RoundID         string           `json:"round_id"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	BonusPoints     int              `json:"bonus_points"`
	Conditions      bonus.Conditions `json:"conditions"`
	TargetPositions []string         `json:"target_positions"`
	CreatedAt       time.Time        `json:"created_at"`
}

type multiplierDTO struct {
	RoundID   string          `json:"round_id"`
	PlayerID  string          `json:"player_id"`
	Factor    decimal.Decimal `json:"factor"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type leaderboardEntryDTO struct {
	Rank          int    `json:"rank"`
	UserID        string `json:"user_id"`
	Username      string `json:"username"`
	Points        int    `json:"points"`
	CaptainID     string `json:"captain_id,omitempty"`
	MainRosterLen int    `json:"main_roster_size"`
}

type matchupDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	RoundID    string    `json:"round_id"`
	User1ID    string    `json:"user1_id"`
	User2ID    string    `json:"user2_id"`
	Status     string    `json:"status"`
	User1Score int       `json:"user1_score"`
	User2Score int       `json:"user2_score"`
	WinnerID   *string   `json:"winner_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:                 p.ID,
		Name:               p.Name,
		Team:               p.Team,
		Position:           string(p.Position),
		BasePrice:          p.BasePrice,
		CurrentPrice:       p.CurrentPrice,
		TotalPoints:        p.TotalPoints,
		CurrentRoundPoints: p.CurrentRoundPoints,
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	return out
}

func roundToDTO(r round.Round, state round.State) roundDTO {
	return roundDTO{
		ID:          r.ID,
		Name:        r.Name,
		Sequence:    r.Sequence,
		LockoutTime: r.LockoutTime.UTC(),
		IsActive:    r.IsActive,
		IsLocked:    r.IsLocked,
		State:       string(state),
		StartedAt:   r.StartedAt,
		SettledAt:   r.SettledAt,
	}
}

func roundViewToDTO(v usecase.RoundView) roundDTO {
	return roundToDTO(v.Round, v.State)
}

func accountToDTO(a user.Account) accountDTO {
	return accountDTO{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		Role:     string(a.Role),
		Budget:   a.Budget,
	}
}

func mutationToDTO(m usecase.MutationResult) mutationDTO {
	return mutationDTO{
		Action:   string(m.Action),
		PlayerID: m.PlayerID,
		Price:    m.Price,
		Budget:   m.Budget,
		Message:  m.Message,
	}
}

func teamToDTO(v usecase.TeamView) teamDTO {
	dto := teamDTO{
		UserID:    v.Account.ID,
		Username:  v.Account.Username,
		Budget:    v.Account.Budget,
		TeamValue: v.TeamValue,
		Locked:    v.Locked,
		Main:      make([]teamHoldingDTO, 0, len(v.Holdings)),
		Bench:     make([]teamHoldingDTO, 0),
	}
	for _, item := range v.Holdings {
		h := teamHoldingDTO{
			Player:        playerToDTO(item.Player),
			PurchasePrice: item.PurchasePrice,
			IsCaptain:     item.IsCaptain,
			IsSubstitute:  item.IsSubstitute,
		}
		if item.IsSubstitute {
			dto.Bench = append(dto.Bench, h)
			continue
		}
		dto.Main = append(dto.Main, h)
	}
	return dto
}

func statLineToDTO(l stats.Line) statLineDTO {
	return statLineDTO{
		Runs:         l.Runs,
		BallsFaced:   l.BallsFaced,
		Fours:        l.Fours,
		Sixes:        l.Sixes,
		Wickets:      l.Wickets,
		OversBowled:  l.OversBowled,
		RunsConceded: l.RunsConceded,
		Catches:      l.Catches,
		Stumpings:    l.Stumpings,
		RunOuts:      l.RunOuts,
	}
}

func statEntryToDTO(e stats.Entry) statEntryDTO {
	return statEntryDTO{
		ID:        e.ID,
		PlayerID:  e.PlayerID,
		RoundID:   e.RoundID,
		Line:      statLineToDTO(e.Line),
		Points:    e.Points,
		CreatedAt: e.CreatedAt.UTC(),
	}
}

func statEntriesToDTO(items []stats.Entry) []statEntryDTO {
	out := make([]statEntryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, statEntryToDTO(item))
	}
	return out
}

func breakdownToDTO(b scoring.Breakdown) breakdownDTO {
	return breakdownDTO{
		Batting:    b.Batting,
		Bowling:    b.Bowling,
		Fielding:   b.Fielding,
		Milestones: b.Milestones,
		Bonus:      b.Bonus,
		Subtotal:   b.Subtotal,
		Multiplier: b.Multiplier,
		Total:      b.Total,
	}
}

func bonusRuleToDTO(r bonus.Rule) bonusRuleDTO {
	return bonusRuleDTO{
		ID:              r.ID,
		RoundID:         r.RoundID,
		Name:            r.Name,
		Description:     r.Description,
		BonusPoints:     r.BonusPoints,
		Conditions:      r.Conditions,
		TargetPositions: r.TargetPositions,
		CreatedAt:       r.CreatedAt.UTC(),
	}
}

func multiplierToDTO(m bonus.Multiplier) multiplierDTO {
	return multiplierDTO{
		RoundID:   m.RoundID,
		PlayerID:  m.PlayerID,
		Factor:    m.Factor,
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

func leaderboardToDTO(items []leaderboard.Entry) []leaderboardEntryDTO {
	out := make([]leaderboardEntryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, leaderboardEntryDTO{
			Rank:          item.Rank,
			UserID:        item.UserID,
			Username:      item.Username,
			Points:        item.Points,
			CaptainID:     item.CaptainID,
			MainRosterLen: item.MainRosterLen,
		})
	}
	return out
}

func matchupToDTO(m h2h.Matchup) matchupDTO {
	return matchupDTO{
		ID:         m.ID,
		Name:       m.Name,
		RoundID:    m.RoundID,
		User1ID:    m.User1ID,
		User2ID:    m.User2ID,
		Status:     string(m.Status),
		User1Score: m.User1Score,
		User2Score: m.User2Score,
		WinnerID:   m.WinnerID,
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
}

func matchupsToDTO(items []h2h.Matchup) []matchupDTO {
	out := make([]matchupDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchupToDTO(item))
	}
	return out
}
