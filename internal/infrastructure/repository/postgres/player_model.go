package postgres

import (
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

type playerTableModel struct {
	ID                 string    `db:"id"`
	Name               string    `db:"name"`
	Team               string    `db:"team"`
	Position           string    `db:"position"`
	BasePrice          int64     `db:"base_price"`
	CurrentPrice       int64     `db:"current_price"`
	TotalPoints        int       `db:"total_points"`
	CurrentRoundPoints int       `db:"current_round_points"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:                 m.ID,
		Name:               m.Name,
		Team:               m.Team,
		Position:           player.Position(m.Position),
		BasePrice:          m.BasePrice,
		CurrentPrice:       m.CurrentPrice,
		TotalPoints:        m.TotalPoints,
		CurrentRoundPoints: m.CurrentRoundPoints,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func playerModelFrom(p player.Player) playerTableModel {
	return playerTableModel{
		ID:                 p.ID,
		Name:               p.Name,
		Team:               p.Team,
		Position:           string(p.Position),
		BasePrice:          p.BasePrice,
		CurrentPrice:       p.CurrentPrice,
		TotalPoints:        p.TotalPoints,
		CurrentRoundPoints: p.CurrentRoundPoints,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
