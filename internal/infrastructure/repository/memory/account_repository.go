package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
)

type AccountRepository struct {
	store *Store
}

func (r *AccountRepository) List(ctx context.Context) ([]user.Account, error) {
	var out []user.Account
	r.store.read(ctx, func(st *state) {
		out = make([]user.Account, 0, len(st.accounts))
		for _, a := range st.accounts {
			out = append(out, a)
		}
	})

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, userID string) (user.Account, bool, error) {
	var (
		a  user.Account
		ok bool
	)
	r.store.read(ctx, func(st *state) {
		a, ok = st.accounts[userID]
	})
	return a, ok, nil
}

// GetForUpdate relies on the transaction's write lock for exclusivity.
func (r *AccountRepository) GetForUpdate(ctx context.Context, userID string) (user.Account, bool, error) {
	return r.GetByID(ctx, userID)
}

func (r *AccountRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) ([]user.Account, error) {
	out := make([]user.Account, 0)
	r.store.read(ctx, func(st *state) {
		for _, a := range st.accounts {
			if (username != "" && a.Username == username) || (email != "" && a.Email == email) {
				out = append(out, a)
			}
		}
	})

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *AccountRepository) Create(ctx context.Context, a user.Account) error {
	return r.store.write(ctx, func(st *state) error {
		if _, exists := st.accounts[a.ID]; exists {
			return fmt.Errorf("account %s already exists", a.ID)
		}
		st.accounts[a.ID] = a
		return nil
	})
}

func (r *AccountRepository) UpdateProfile(ctx context.Context, userID, username, email string) error {
	return r.store.write(ctx, func(st *state) error {
		a, ok := st.accounts[userID]
		if !ok {
			return fmt.Errorf("account %s not found", userID)
		}
		a.Username = username
		a.Email = email
		st.accounts[userID] = a
		return nil
	})
}

func (r *AccountRepository) UpdateBudget(ctx context.Context, userID string, budget int64) error {
	return r.store.write(ctx, func(st *state) error {
		a, ok := st.accounts[userID]
		if !ok {
			return fmt.Errorf("account %s not found", userID)
		}
		a.Budget = budget
		st.accounts[userID] = a
		return nil
	})
}
