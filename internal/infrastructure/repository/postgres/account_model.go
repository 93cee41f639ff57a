package postgres

import (
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
)

type accountTableModel struct {
	ID        string    `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	Budget    int64     `db:"budget"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m accountTableModel) toDomain() user.Account {
	return user.Account{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Role:      user.ParseRole(m.Role),
		Budget:    m.Budget,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func accountModelFrom(a user.Account) accountTableModel {
	role := a.Role
	if role == "" {
		role = user.RoleStandard
	}
	return accountTableModel{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Role:      string(role),
		Budget:    a.Budget,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
