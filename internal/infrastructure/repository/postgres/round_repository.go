package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/round"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

type RoundRepository struct {
	db *sqlx.DB
}

var roundSelectColumns = []string{
	"id",
	"name",
	"sequence",
	"lockout_time",
	"is_active",
	"is_locked",
	"started_at",
	"settled_at",
	"created_at",
	"updated_at",
}

func NewRoundRepository(db *sqlx.DB) *RoundRepository {
	return &RoundRepository{db: db}
}

func (r *RoundRepository) List(ctx context.Context) ([]round.Round, error) {
	query, args, err := qb.Select(roundSelectColumns...).From("rounds").
		OrderBy("sequence").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select rounds query")
	}

	var rows []roundTableModel
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select rounds")
	}

	out := make([]round.Round, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *RoundRepository) GetByID(ctx context.Context, roundID string) (round.Round, bool, error) {
	return r.getOne(ctx, "select round by id", qb.Eq("id", roundID))
}

func (r *RoundRepository) GetActive(ctx context.Context) (round.Round, bool, error) {
	return r.getOne(ctx, "select active round", qb.Eq("is_active", true))
}

func (r *RoundRepository) getOne(ctx context.Context, what string, where ...qb.Condition) (round.Round, bool, error) {
	query, args, err := qb.Select(roundSelectColumns...).From("rounds").
		Where(where...).
		Limit(1).
		ToSQL()
	if err != nil {
		return round.Round{}, false, errors.Wrapf(err, "build %s query", what)
	}

	var row roundTableModel
	if err := conn(ctx, r.db).GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return round.Round{}, false, nil
		}
		return round.Round{}, false, errors.Wrap(err, what)
	}
	return row.toDomain(), true, nil
}

func (r *RoundRepository) Create(ctx context.Context, item round.Round) error {
	query, args, err := qb.InsertModel("rounds", roundModelFrom(item))
	if err != nil {
		return errors.Wrap(err, "build insert round query")
	}
	if _, err := conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return errors.Wrapf(err, "round %s or sequence %d already exists", item.ID, item.Sequence)
		}
		return errors.Wrapf(err, "insert round %s", item.ID)
	}
	return nil
}

func (r *RoundRepository) Activate(ctx context.Context, roundID string, at time.Time) error {
	db := conn(ctx, r.db)

	settleQuery, settleArgs, err := qb.Update("rounds").
		Set("is_active", false).
		Set("settled_at", at).
		Set("updated_at", at).
		Where(
			qb.Eq("is_active", true),
			qb.Neq("id", roundID),
		).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build settle rounds query")
	}
	if _, err := db.ExecContext(ctx, settleQuery, settleArgs...); err != nil {
		return errors.Wrap(err, "settle active rounds")
	}

	activateQuery, activateArgs, err := qb.Update("rounds").
		Set("is_active", true).
		Set("is_locked", false).
		Set("started_at", at).
		Set("updated_at", at).
		Where(qb.Eq("id", roundID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build activate round query")
	}
	result, err := db.ExecContext(ctx, activateQuery, activateArgs...)
	if err != nil {
		return errors.Wrapf(err, "activate round %s", roundID)
	}
	return expectOneRow(result, "activate round")
}

func (r *RoundRepository) MarkLocked(ctx context.Context, roundID string) error {
	query, args, err := qb.Update("rounds").
		Set("is_locked", true).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", roundID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build mark round locked query")
	}
	result, err := conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrapf(err, "mark round %s locked", roundID)
	}
	return expectOneRow(result, "mark round locked")
}

func (r *RoundRepository) CountActive(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("rounds").
		Where(qb.Eq("is_active", true)).
		ToSQL()
	if err != nil {
		return 0, errors.Wrap(err, "build count active rounds query")
	}

	var count int
	if err := conn(ctx, r.db).GetContext(ctx, &count, query, args...); err != nil {
		return 0, errors.Wrap(err, "count active rounds")
	}
	return count, nil
}
