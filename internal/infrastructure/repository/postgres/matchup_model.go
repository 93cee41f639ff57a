package postgres

import (
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/h2h"
)

type matchupTableModel struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	RoundID    string    `db:"round_id"`
	User1ID    string    `db:"user1_id"`
	User2ID    string    `db:"user2_id"`
	Status     string    `db:"status"`
	User1Score int       `db:"user1_score"`
	User2Score int       `db:"user2_score"`
	WinnerID   *string   `db:"winner_id"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (m matchupTableModel) toDomain() h2h.Matchup {
	return h2h.Matchup{
		ID:         m.ID,
		Name:       m.Name,
		RoundID:    m.RoundID,
		User1ID:    m.User1ID,
		User2ID:    m.User2ID,
		Status:     h2h.Status(m.Status),
		User1Score: m.User1Score,
		User2Score: m.User2Score,
		WinnerID:   m.WinnerID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func matchupModelFrom(m h2h.Matchup) matchupTableModel {
	status := m.Status
	if status == "" {
		status = h2h.StatusPending
	}
	return matchupTableModel{
		ID:         m.ID,
		Name:       m.Name,
		RoundID:    m.RoundID,
		User1ID:    m.User1ID,
		User2ID:    m.User2ID,
		Status:     string(status),
		User1Score: m.User1Score,
		User2Score: m.User2Score,
		WinnerID:   m.WinnerID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
