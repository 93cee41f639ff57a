package postgres

import (
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/shopspring/decimal"
)

type statEntryTableModel struct {
	ID           string          `db:"id"`
	PlayerID     string          `db:"player_id"`
	RoundID      string          `db:"round_id"`
	Runs         int             `db:"runs"`
	BallsFaced   int             `db:"balls_faced"`
	Fours        int             `db:"fours"`
	Sixes        int             `db:"sixes"`
	Wickets      int             `db:"wickets"`
	OversBowled  decimal.Decimal `db:"overs_bowled"`
	RunsConceded int             `db:"runs_conceded"`
	Catches      int             `db:"catches"`
	Stumpings    int             `db:"stumpings"`
	RunOuts      int             `db:"run_outs"`
	Points       int             `db:"points"`
	CreatedAt    time.Time       `db:"created_at"`
}

func (m statEntryTableModel) toDomain() stats.Entry {
	return stats.Entry{
		ID:       m.ID,
		PlayerID: m.PlayerID,
		RoundID:  m.RoundID,
		Line: stats.Line{
			Runs:         m.Runs,
			BallsFaced:   m.BallsFaced,
			Fours:        m.Fours,
			Sixes:        m.Sixes,
			Wickets:      m.Wickets,
			OversBowled:  m.OversBowled,
			RunsConceded: m.RunsConceded,
			Catches:      m.Catches,
			Stumpings:    m.Stumpings,
			RunOuts:      m.RunOuts,
		},
		Points:    m.Points,
		CreatedAt: m.CreatedAt,
	}
}

func statEntryModelFrom(e stats.Entry) statEntryTableModel {
	return statEntryTableModel{
		ID:           e.ID,
		PlayerID:     e.PlayerID,
		RoundID:      e.RoundID,
		Runs:         e.Line.Runs,
		BallsFaced:   e.Line.BallsFaced,
		Fours:        e.Line.Fours,
		Sixes:        e.Line.Sixes,
		Wickets:      e.Line.Wickets,
		OversBowled:  e.Line.OversBowled,
		RunsConceded: e.Line.RunsConceded,
		Catches:      e.Line.Catches,
		Stumpings:    e.Line.Stumpings,
		RunOuts:      e.Line.RunOuts,
		Points:       e.Points,
		CreatedAt:    e.CreatedAt,
	}
}
