package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"name",
	"team",
	"position",
	"base_price",
	"current_price",
	"total_points",
	"current_round_points",
	"created_at",
	"updated_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	builder := qb.Select(playerSelectColumns...).From("players").OrderBy("id")
	if filter.Position != "" {
		builder = builder.Where(qb.Eq("position", string(filter.Position)))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select players query")
	}

	var rows []playerTableModel
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select players")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	return r.selectOne(ctx, playerID, false)
}

// GetForUpdate holds a row lock on the player until the surrounding
// transaction ends.
func (r *PlayerRepository) GetForUpdate(ctx context.Context, playerID string) (player.Player, bool, error) {
	return r.selectOne(ctx, playerID, true)
}

func (r *PlayerRepository) selectOne(ctx context.Context, playerID string, lock bool) (player.Player, bool, error) {
	builder := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", playerID)).
		Limit(1)
	if lock {
		builder = builder.ForUpdate()
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return player.Player{}, false, errors.Wrap(err, "build select player by id query")
	}

	var row playerTableModel
	if err := conn(ctx, r.db).GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, errors.Wrapf(err, "select player %s", playerID)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.In("id", stringSliceToAny(playerIDs))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select players by ids query")
	}

	var rows []playerTableModel
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select players by ids")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	query, args, err := qb.InsertModel("players", playerModelFrom(p))
	if err != nil {
		return errors.Wrap(err, "build insert player query")
	}
	if _, err := conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return errors.Wrapf(err, "player %s already exists", p.ID)
		}
		return errors.Wrapf(err, "insert player %s", p.ID)
	}
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	query, args, err := qb.DeleteFrom("players").Where(qb.Eq("id", playerID)).ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete player query")
	}
	if _, err := conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "delete player %s", playerID)
	}
	return nil
}

func (r *PlayerRepository) UpdateScoring(ctx context.Context, playerID string, currentRoundPoints int, currentPrice int64) error {
	query, args, err := qb.Update("players").
		Set("current_round_points", currentRoundPoints).
		Set("current_price", currentPrice).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build update player scoring query")
	}

	result, err := conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrapf(err, "update player scoring %s", playerID)
	}
	return expectOneRow(result, "update player scoring")
}

func (r *PlayerRepository) RollRoundPoints(ctx context.Context) (int, error) {
	query, args, err := qb.Update("players").
		SetExpr("total_points", "total_points + current_round_points").
		Set("current_round_points", 0).
		SetExpr("updated_at", "NOW()").
		Where(qb.Neq("current_round_points", 0)).
		ToSQL()
	if err != nil {
		return 0, errors.Wrap(err, "build roll round points query")
	}

	result, err := conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "roll round points")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "rows affected roll round points")
	}
	return int(affected), nil
}
