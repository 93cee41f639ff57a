package postgres

import (
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/round"
)

type roundTableModel struct {
	ID          string     `db:"id"`
	Name        string     `db:"name"`
	Sequence    int        `db:"sequence"`
	LockoutTime time.Time  `db:"lockout_time"`
	IsActive    bool       `db:"is_active"`
	IsLocked    bool       `db:"is_locked"`
	StartedAt   *time.Time `db:"started_at"`
	SettledAt   *time.Time `db:"settled_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (m roundTableModel) toDomain() round.Round {
	return round.Round{
		ID:          m.ID,
		Name:        m.Name,
		Sequence:    m.Sequence,
		LockoutTime: m.LockoutTime.UTC(),
		IsActive:    m.IsActive,
		IsLocked:    m.IsLocked,
		StartedAt:   m.StartedAt,
		SettledAt:   m.SettledAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func roundModelFrom(r round.Round) roundTableModel {
	return roundTableModel{
		ID:          r.ID,
		Name:        r.Name,
		Sequence:    r.Sequence,
		LockoutTime: r.LockoutTime,
		IsActive:    r.IsActive,
		IsLocked:    r.IsLocked,
		StartedAt:   r.StartedAt,
		SettledAt:   r.SettledAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
