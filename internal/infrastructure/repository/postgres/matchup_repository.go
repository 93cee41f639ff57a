package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/h2h"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

type MatchupRepository struct {
	db *sqlx.DB
}

var matchupSelectColumns = []string{
	"id",
	"name",
	"round_id",
	"user1_id",
	"user2_id",
	"status",
	"user1_score",
	"user2_score",
	"winner_id",
	"created_at",
	"updated_at",
}

func NewMatchupRepository(db *sqlx.DB) *MatchupRepository {
	return &MatchupRepository{db: db}
}

// List returns every matchup when roundID is empty.
func (r *MatchupRepository) List(ctx context.Context, roundID string) ([]h2h.Matchup, error) {
	builder := qb.Select(matchupSelectColumns...).From("h2h_matchups").OrderBy("created_at", "id")
	if roundID != "" {
		builder = builder.Where(qb.Eq("round_id", roundID))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select matchups query")
	}

	var rows []matchupTableModel
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select matchups")
	}

	out := make([]h2h.Matchup, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchupRepository) GetByID(ctx context.Context, matchupID string) (h2h.Matchup, bool, error) {
	return r.selectOne(ctx, matchupID, false)
}

// GetForUpdate holds a row lock on the matchup until the surrounding
// transaction ends.
func (r *MatchupRepository) GetForUpdate(ctx context.Context, matchupID string) (h2h.Matchup, bool, error) {
	return r.selectOne(ctx, matchupID, true)
}

func (r *MatchupRepository) selectOne(ctx context.Context, matchupID string, lock bool) (h2h.Matchup, bool, error) {
	builder := qb.Select(matchupSelectColumns...).From("h2h_matchups").
		Where(qb.Eq("id", matchupID)).
		Limit(1)
	if lock {
		builder = builder.ForUpdate()
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return h2h.Matchup{}, false, errors.Wrap(err, "build select matchup query")
	}

	var row matchupTableModel
	if err := conn(ctx, r.db).GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return h2h.Matchup{}, false, nil
		}
		return h2h.Matchup{}, false, errors.Wrapf(err, "select matchup %s", matchupID)
	}
	return row.toDomain(), true, nil
}

func (r *MatchupRepository) Create(ctx context.Context, m h2h.Matchup) error {
	query, args, err := qb.InsertModel("h2h_matchups", matchupModelFrom(m))
	if err != nil {
		return errors.Wrap(err, "build insert matchup query")
	}
	if _, err := conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "insert matchup %s", m.ID)
	}
	return nil
}

func (r *MatchupRepository) UpdateResult(ctx context.Context, m h2h.Matchup) error {
	query, args, err := qb.Update("h2h_matchups").
		Set("status", string(m.Status)).
		Set("user1_score", m.User1Score).
		Set("user2_score", m.User2Score).
		Set("winner_id", m.WinnerID).
		Set("updated_at", m.UpdatedAt).
		Where(qb.Eq("id", m.ID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build update matchup result query")
	}
	result, err := conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrapf(err, "update matchup result %s", m.ID)
	}
	return expectOneRow(result, "update matchup result")
}
