package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

type AccountRepository struct {
	db *sqlx.DB
}

var accountSelectColumns = []string{
	"id",
	"username",
	"email",
	"role",
	"budget",
	"created_at",
	"updated_at",
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) List(ctx context.Context) ([]user.Account, error) {
	query, args, err := qb.Select(accountSelectColumns...).From("accounts").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select accounts query")
	}
	return r.selectMany(ctx, "select accounts", query, args)
}

func (r *AccountRepository) GetByID(ctx context.Context, userID string) (user.Account, bool, error) {
	query, args, err := qb.Select(accountSelectColumns...).From("accounts").
		Where(qb.Eq("id", userID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return user.Account{}, false, errors.Wrap(err, "build select account query")
	}
	return r.selectOne(ctx, query, args, userID)
}

// GetForUpdate holds a row lock on the account until the surrounding
// transaction ends. Outside a transaction it behaves like GetByID.
func (r *AccountRepository) GetForUpdate(ctx context.Context, userID string) (user.Account, bool, error) {
	query, args, err := qb.Select(accountSelectColumns...).From("accounts").
		Where(qb.Eq("id", userID)).
		Limit(1).
		ForUpdate().
		ToSQL()
	if err != nil {
		return user.Account{}, false, errors.Wrap(err, "build select account for update query")
	}
	return r.selectOne(ctx, query, args, userID)
}

func (r *AccountRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) ([]user.Account, error) {
	var conditions []qb.Condition
	if username != "" {
		conditions = append(conditions, qb.Eq("username", username))
	}
	if email != "" {
		conditions = append(conditions, qb.Expr("LOWER(email) = LOWER(?)", email))
	}
	if len(conditions) == 0 {
		return []user.Account{}, nil
	}

	query, args, err := qb.Select(accountSelectColumns...).From("accounts").
		Where(qb.Or(conditions...)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build find accounts query")
	}
	return r.selectMany(ctx, "find accounts by username or email", query, args)
}

func (r *AccountRepository) Create(ctx context.Context, a user.Account) error {
	query, args, err := qb.InsertModel("accounts", accountModelFrom(a))
	if err != nil {
		return errors.Wrap(err, "build insert account query")
	}
	if _, err := conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return errors.Wrapf(err, "account %s, username or email already exists", a.ID)
		}
		return errors.Wrapf(err, "insert account %s", a.ID)
	}
	return nil
}

func (r *AccountRepository) UpdateProfile(ctx context.Context, userID, username, email string) error {
	query, args, err := qb.Update("accounts").
		Set("username", username).
		Set("email", email).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build update account profile query")
	}
	result, err := conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrapf(err, "update account profile %s", userID)
	}
	return expectOneRow(result, "update account profile")
}

func (r *AccountRepository) UpdateBudget(ctx context.Context, userID string, budget int64) error {
	query, args, err := qb.Update("accounts").
		Set("budget", budget).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build update account budget query")
	}
	result, err := conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrapf(err, "update account budget %s", userID)
	}
	return expectOneRow(result, "update account budget")
}

func (r *AccountRepository) selectOne(ctx context.Context, query string, args []any, userID string) (user.Account, bool, error) {
	var row accountTableModel
	if err := conn(ctx, r.db).GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.Account{}, false, nil
		}
		return user.Account{}, false, errors.Wrapf(err, "select account %s", userID)
	}
	return row.toDomain(), true, nil
}

func (r *AccountRepository) selectMany(ctx context.Context, what, query string, args []any) ([]user.Account, error) {
	var rows []accountTableModel
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, what)
	}

	out := make([]user.Account, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
