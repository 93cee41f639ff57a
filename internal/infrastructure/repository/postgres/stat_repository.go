package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

// StatRepository is append-only; entries keep the points computed at insert time.
type StatRepository struct {
	db *sqlx.DB
}

var statEntrySelectColumns = []string{
	"id",
	"player_id",
	"round_id",
	"runs",
	"balls_faced",
	"fours",
	"sixes",
	"wickets",
	"overs_bowled",
	"runs_conceded",
	"catches",
	"stumpings",
	"run_outs",
	"points",
	"created_at",
}

func NewStatRepository(db *sqlx.DB) *StatRepository {
	return &StatRepository{db: db}
}

func (r *StatRepository) Insert(ctx context.Context, entry stats.Entry) error {
	query, args, err := qb.InsertModel("stat_entries", statEntryModelFrom(entry))
	if err != nil {
		return errors.Wrap(err, "build insert stat entry query")
	}
	if _, err := conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "insert stat entry %s", entry.ID)
	}
	return nil
}

func (r *StatRepository) ListByPlayerAndRound(ctx context.Context, playerID, roundID string) ([]stats.Entry, error) {
	return r.list(ctx, "select stat entries by player and round",
		qb.Eq("player_id", playerID),
		qb.Eq("round_id", roundID),
	)
}

func (r *StatRepository) ListByRound(ctx context.Context, roundID string) ([]stats.Entry, error) {
	return r.list(ctx, "select stat entries by round", qb.Eq("round_id", roundID))
}

func (r *StatRepository) ListByPlayer(ctx context.Context, playerID string) ([]stats.Entry, error) {
	return r.list(ctx, "select stat entries by player", qb.Eq("player_id", playerID))
}

func (r *StatRepository) list(ctx context.Context, what string, where ...qb.Condition) ([]stats.Entry, error) {
	query, args, err := qb.Select(statEntrySelectColumns...).From("stat_entries").
		Where(where...).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrapf(err, "build %s query", what)
	}

	var rows []statEntryTableModel
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, what)
	}

	out := make([]stats.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
