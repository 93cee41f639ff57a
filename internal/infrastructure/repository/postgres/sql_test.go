package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("select player: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(fmt.Errorf("connection reset")) {
		t.Fatalf("expected unrelated error to not be not found")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches 23505", func(t *testing.T) {
		err := fmt.Errorf("insert round: %w", &pq.Error{Code: "23505"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected unique violation")
		}
	})

	t.Run("ignores other codes", func(t *testing.T) {
		err := &pq.Error{Code: "23503"}
		if isUniqueViolation(err) {
			t.Fatalf("expected foreign key violation to not match")
		}
	})

	t.Run("ignores non pq errors", func(t *testing.T) {
		if isUniqueViolation(fmt.Errorf("boom")) {
			t.Fatalf("expected plain error to not match")
		}
	})
}

func TestConn_PrefersContextTransaction(t *testing.T) {
	db := &sqlx.DB{}
	tx := &sqlx.Tx{}

	if got := conn(context.Background(), db); got != querier(db) {
		t.Fatalf("expected db outside a transaction")
	}
	ctx := context.WithValue(context.Background(), txKey{}, tx)
	if got := conn(ctx, db); got != querier(tx) {
		t.Fatalf("expected tx from context")
	}
}

type fakeResult struct {
	affected int64
	err      error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.affected, r.err }

func TestExpectOneRow(t *testing.T) {
	tests := []struct {
		name    string
		result  sql.Result
		wantErr bool
	}{
		{name: "one row", result: fakeResult{affected: 1}},
		{name: "no rows", result: fakeResult{affected: 0}, wantErr: true},
		{name: "driver error", result: fakeResult{err: fmt.Errorf("unsupported")}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := expectOneRow(tc.result, "update holding")
			if (err != nil) != tc.wantErr {
				t.Fatalf("unexpected error state: err=%v wantErr=%t", err, tc.wantErr)
			}
		})
	}
}
