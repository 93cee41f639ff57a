package postgres

import (
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

type holdingTableModel struct {
	UserID        string    `db:"user_id"`
	PlayerID      string    `db:"player_id"`
	Position      string    `db:"position"`
	PurchasePrice int64     `db:"purchase_price"`
	IsCaptain     bool      `db:"is_captain"`
	IsSubstitute  bool      `db:"is_substitute"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (m holdingTableModel) toDomain() fantasy.Holding {
	return fantasy.Holding{
		UserID:        m.UserID,
		PlayerID:      m.PlayerID,
		Position:      player.Position(m.Position),
		PurchasePrice: m.PurchasePrice,
		IsCaptain:     m.IsCaptain,
		IsSubstitute:  m.IsSubstitute,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func holdingModelFrom(h fantasy.Holding) holdingTableModel {
	return holdingTableModel{
		UserID:        h.UserID,
		PlayerID:      h.PlayerID,
		Position:      string(h.Position),
		PurchasePrice: h.PurchasePrice,
		IsCaptain:     h.IsCaptain,
		IsSubstitute:  h.IsSubstitute,
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}
}
