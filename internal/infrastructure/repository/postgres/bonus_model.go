package postgres

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/bonus"
	"github.com/shopspring/decimal"
)

type bonusRuleTableModel struct {
	ID              string         `db:"id"`
	RoundID         string         `db:"round_id"`
	Name            string         `db:"name"`
	Description     string         `db:"description"`
	BonusPoints     int            `db:"bonus_points"`
	Conditions      string         `db:"conditions"`
	TargetPositions pq.StringArray `db:"target_positions"`
	CreatedAt       time.Time      `db:"created_at"`
}

func (m bonusRuleTableModel) toDomain() (bonus.Rule, error) {
	var conditions bonus.Conditions
	if len(m.Conditions) > 0 {
		if err := sonic.UnmarshalString(m.Conditions, &conditions); err != nil {
			return bonus.Rule{}, errors.Wrapf(err, "decode conditions of bonus rule %s", m.ID)
		}
	}

	return bonus.Rule{
		ID:              m.ID,
		RoundID:         m.RoundID,
		Name:            m.Name,
		Description:     m.Description,
		BonusPoints:     m.BonusPoints,
		Conditions:      conditions,
		TargetPositions: []string(m.TargetPositions),
		CreatedAt:       m.CreatedAt,
	}, nil
}

func bonusRuleModelFrom(rule bonus.Rule) (bonusRuleTableModel, error) {
	conditions, err := sonic.MarshalString(rule.Conditions)
	if err != nil {
		return bonusRuleTableModel{}, errors.Wrapf(err, "encode conditions of bonus rule %s", rule.ID)
	}

	return bonusRuleTableModel{
		ID:              rule.ID,
		RoundID:         rule.RoundID,
		Name:            rule.Name,
		Description:     rule.Description,
		BonusPoints:     rule.BonusPoints,
		Conditions:      conditions,
		TargetPositions: pq.StringArray(rule.TargetPositions),
		CreatedAt:       rule.CreatedAt,
	}, nil
}

type multiplierTableModel struct {
	RoundID   string          `db:"round_id"`
	PlayerID  string          `db:"player_id"`
	Factor    decimal.Decimal `db:"factor"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func (m multiplierTableModel) toDomain() bonus.Multiplier {
	return bonus.Multiplier{
		RoundID:   m.RoundID,
		PlayerID:  m.PlayerID,
		Factor:    m.Factor,
		UpdatedAt: m.UpdatedAt,
	}
}
