package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

type HoldingRepository struct {
	db *sqlx.DB
}

var holdingSelectColumns = []string{
	"user_id",
	"player_id",
	"position",
	"purchase_price",
	"is_captain",
	"is_substitute",
	"created_at",
	"updated_at",
}

func NewHoldingRepository(db *sqlx.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

func (r *HoldingRepository) ListByUser(ctx context.Context, userID string) (fantasy.Roster, error) {
	query, args, err := qb.Select(holdingSelectColumns...).From("team_holdings").
		Where(qb.Eq("user_id", userID)).
		OrderBy("created_at", "player_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select holdings by user query")
	}

	rows, err := r.selectRows(ctx, query, args)
	if err != nil {
		return nil, errors.Wrapf(err, "select holdings of %s", userID)
	}
	return fantasy.Roster(rows), nil
}

func (r *HoldingRepository) ListAll(ctx context.Context) ([]fantasy.Holding, error) {
	query, args, err := qb.Select(holdingSelectColumns...).From("team_holdings").
		OrderBy("user_id", "player_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select holdings query")
	}

	rows, err := r.selectRows(ctx, query, args)
	if err != nil {
		return nil, errors.Wrap(err, "select holdings")
	}
	return rows, nil
}

func (r *HoldingRepository) CountByPlayer(ctx context.Context, playerID string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("team_holdings").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return 0, errors.Wrap(err, "build count holdings query")
	}

	var count int
	if err := conn(ctx, r.db).GetContext(ctx, &count, query, args...); err != nil {
		return 0, errors.Wrapf(err, "count holdings of player %s", playerID)
	}
	return count, nil
}

func (r *HoldingRepository) Insert(ctx context.Context, h fantasy.Holding) error {
	query, args, err := qb.InsertModel("team_holdings", holdingModelFrom(h))
	if err != nil {
		return errors.Wrap(err, "build insert holding query")
	}
	if _, err := conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "insert holding user=%s player=%s", h.UserID, h.PlayerID)
	}
	return nil
}

func (r *HoldingRepository) Delete(ctx context.Context, userID, playerID string) error {
	query, args, err := qb.DeleteFrom("team_holdings").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("player_id", playerID),
		).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete holding query")
	}
	if _, err := conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "delete holding user=%s player=%s", userID, playerID)
	}
	return nil
}

func (r *HoldingRepository) Update(ctx context.Context, h fantasy.Holding) error {
	query, args, err := qb.Update("team_holdings").
		Set("is_captain", h.IsCaptain).
		Set("is_substitute", h.IsSubstitute).
		Set("updated_at", h.UpdatedAt).
		Where(
			qb.Eq("user_id", h.UserID),
			qb.Eq("player_id", h.PlayerID),
		).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build update holding query")
	}
	result, err := conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrapf(err, "update holding user=%s player=%s", h.UserID, h.PlayerID)
	}
	return expectOneRow(result, "update holding")
}

func (r *HoldingRepository) ClearCaptain(ctx context.Context, userID string) error {
	query, args, err := qb.Update("team_holdings").
		Set("is_captain", false).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("is_captain", true),
		).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build clear captain query")
	}
	if _, err := conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "clear captain of %s", userID)
	}
	return nil
}

func (r *HoldingRepository) SetCaptain(ctx context.Context, userID, playerID string) error {
	query, args, err := qb.Update("team_holdings").
		Set("is_captain", true).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("player_id", playerID),
		).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build set captain query")
	}
	result, err := conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrapf(err, "set captain user=%s player=%s", userID, playerID)
	}
	return expectOneRow(result, "set captain")
}

func (r *HoldingRepository) selectRows(ctx context.Context, query string, args []any) ([]fantasy.Holding, error) {
	var rows []holdingTableModel
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	out := make([]fantasy.Holding, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
