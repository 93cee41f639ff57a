package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/bonus"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

type BonusRuleRepository struct {
	db *sqlx.DB
}

var bonusRuleSelectColumns = []string{
	"id",
	"round_id",
	"name",
	"description",
	"bonus_points",
	"conditions",
	"target_positions",
	"created_at",
}

func NewBonusRuleRepository(db *sqlx.DB) *BonusRuleRepository {
	return &BonusRuleRepository{db: db}
}

func (r *BonusRuleRepository) ListByRound(ctx context.Context, roundID string) ([]bonus.Rule, error) {
	query, args, err := qb.Select(bonusRuleSelectColumns...).From("bonus_rules").
		Where(qb.Eq("round_id", roundID)).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select bonus rules query")
	}

	var rows []bonusRuleTableModel
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "select bonus rules of round %s", roundID)
	}

	out := make([]bonus.Rule, 0, len(rows))
	for _, row := range rows {
		rule, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, rule)
	}
	return out, nil
}

func (r *BonusRuleRepository) GetByID(ctx context.Context, ruleID string) (bonus.Rule, bool, error) {
	query, args, err := qb.Select(bonusRuleSelectColumns...).From("bonus_rules").
		Where(qb.Eq("id", ruleID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return bonus.Rule{}, false, errors.Wrap(err, "build select bonus rule query")
	}

	var row bonusRuleTableModel
	if err := conn(ctx, r.db).GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return bonus.Rule{}, false, nil
		}
		return bonus.Rule{}, false, errors.Wrapf(err, "select bonus rule %s", ruleID)
	}

	rule, err := row.toDomain()
	if err != nil {
		return bonus.Rule{}, false, err
	}
	return rule, true, nil
}

func (r *BonusRuleRepository) Create(ctx context.Context, rule bonus.Rule) error {
	model, err := bonusRuleModelFrom(rule)
	if err != nil {
		return err
	}
	query, args, err := qb.InsertModel("bonus_rules", model)
	if err != nil {
		return errors.Wrap(err, "build insert bonus rule query")
	}
	if _, err := conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "insert bonus rule %s", rule.ID)
	}
	return nil
}

func (r *BonusRuleRepository) Delete(ctx context.Context, ruleID string) error {
	query, args, err := qb.DeleteFrom("bonus_rules").Where(qb.Eq("id", ruleID)).ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete bonus rule query")
	}
	if _, err := conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "delete bonus rule %s", ruleID)
	}
	return nil
}

type MultiplierRepository struct {
	db *sqlx.DB
}

var multiplierSelectColumns = []string{
	"round_id",
	"player_id",
	"factor",
	"updated_at",
}

func NewMultiplierRepository(db *sqlx.DB) *MultiplierRepository {
	return &MultiplierRepository{db: db}
}

func (r *MultiplierRepository) Get(ctx context.Context, roundID, playerID string) (bonus.Multiplier, bool, error) {
	query, args, err := qb.Select(multiplierSelectColumns...).From("round_multipliers").
		Where(
			qb.Eq("round_id", roundID),
			qb.Eq("player_id", playerID),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return bonus.Multiplier{}, false, errors.Wrap(err, "build select multiplier query")
	}

	var row multiplierTableModel
	if err := conn(ctx, r.db).GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return bonus.Multiplier{}, false, nil
		}
		return bonus.Multiplier{}, false, errors.Wrapf(err, "select multiplier round=%s player=%s", roundID, playerID)
	}
	return row.toDomain(), true, nil
}

func (r *MultiplierRepository) ListByRound(ctx context.Context, roundID string) ([]bonus.Multiplier, error) {
	query, args, err := qb.Select(multiplierSelectColumns...).From("round_multipliers").
		Where(qb.Eq("round_id", roundID)).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select multipliers query")
	}

	var rows []multiplierTableModel
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "select multipliers of round %s", roundID)
	}

	out := make([]bonus.Multiplier, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MultiplierRepository) Upsert(ctx context.Context, m bonus.Multiplier) error {
	query, args, err := qb.InsertInto("round_multipliers").
		Columns("round_id", "player_id", "factor", "updated_at").
		Values(m.RoundID, m.PlayerID, m.Factor, m.UpdatedAt).
		Suffix("ON CONFLICT (round_id, player_id) DO UPDATE SET factor = EXCLUDED.factor, updated_at = EXCLUDED.updated_at").
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build upsert multiplier query")
	}
	if _, err := conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "upsert multiplier round=%s player=%s", m.RoundID, m.PlayerID)
	}
	return nil
}

func (r *MultiplierRepository) Delete(ctx context.Context, roundID, playerID string) error {
	query, args, err := qb.DeleteFrom("round_multipliers").
		Where(
			qb.Eq("round_id", roundID),
			qb.Eq("player_id", playerID),
		).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete multiplier query")
	}
	if _, err := conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "delete multiplier round=%s player=%s", roundID, playerID)
	}
	return nil
}
