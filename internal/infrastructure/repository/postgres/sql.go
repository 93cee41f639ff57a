package postgres

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// gameLockKey is the advisory lock shared by every game write. Round start
// takes it exclusively.
const gameLockKey int64 = 7_305_523_011

const (
	lockSharedQuery    = "SELECT pg_advisory_xact_lock_shared($1)"
	lockExclusiveQuery = "SELECT pg_advisory_xact_lock($1)"
)

type txKey struct{}

// querier is the subset of sqlx shared by *sqlx.DB and *sqlx.Tx.
type querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

// conn returns the transaction carried by ctx, or db outside a transaction.
func conn(ctx context.Context, db *sqlx.DB) querier {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok && tx != nil {
		return tx
	}
	return db
}

type Transactor struct {
	db *sqlx.DB
}

func NewTransactor(db *sqlx.DB) *Transactor {
	return &Transactor{db: db}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.within(ctx, lockSharedQuery, fn)
}

func (t *Transactor) WithinExclusiveTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.within(ctx, lockExclusiveQuery, fn)
}

// within joins an outer transaction when one is already open on ctx; the
// outer lock mode then applies.
func (t *Transactor) within(ctx context.Context, lockQuery string, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, lockQuery, gameLockKey); err != nil {
		return errors.Wrap(err, "acquire game lock")
	}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit tx")
	}

	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func stringSliceToAny(items []string) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

// expectOneRow turns a zero-row update into a not-found error.
func expectOneRow(result sql.Result, what string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "rows affected %s", what)
	}
	if affected == 0 {
		return errors.Newf("%s: not found", what)
	}
	return nil
}
