package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
)

func TestAccountService_EnsureAccountIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	principal := user.Principal{UserID: "u1", Username: "ana", Email: "Ana@Example.com"}

	first, err := env.accounts.EnsureAccount(ctx, principal)
	if err != nil {
		t.Fatalf("ensure account: %v", err)
	}
	if first.Budget != 1000000 || first.Role != user.RoleStandard || first.Email != "ana@example.com" {
		t.Fatalf("unexpected new account: %+v", first)
	}

	env.buy(t, "u1", "bat-kohli", false)

	second, err := env.accounts.EnsureAccount(ctx, principal)
	if err != nil {
		t.Fatalf("ensure account again: %v", err)
	}
	if second.Budget != 850000 {
		t.Fatalf("expected existing budget 850000, got %d", second.Budget)
	}

	clash, err := env.accounts.EnsureAccount(ctx, user.Principal{UserID: "u2", Username: "ana"})
	if err != nil {
		t.Fatalf("ensure clashing account: %v", err)
	}
	if clash.Username != "u2" {
		t.Fatalf("expected username fallback to user id, got %s", clash.Username)
	}
}

func TestAccountService_Update(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.account(t, "u1")
	env.account(t, "u2")

	updated, err := env.accounts.Update(ctx, "u1", UpdateAccountInput{Username: "ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("update account: %v", err)
	}
	if updated.Username != "ana" {
		t.Fatalf("unexpected updated account: %+v", updated)
	}

	cases := []struct {
		name  string
		input UpdateAccountInput
		want  error
	}{
		{"duplicate username", UpdateAccountInput{Username: "ana"}, ErrConflict},
		{"duplicate email", UpdateAccountInput{Username: "bob", Email: "ANA@example.com"}, ErrConflict},
		{"blank username", UpdateAccountInput{Username: " "}, ErrInvalidInput},
		{"bad email", UpdateAccountInput{Username: "bob", Email: "nope"}, ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := env.accounts.Update(ctx, "u2", tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := env.accounts.Update(ctx, "ghost", UpdateAccountInput{Username: "ghost"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAccountService_ListRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.account(t, "u1")

	if _, err := env.accounts.List(ctx, user.Principal{UserID: "u1"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	items, err := env.accounts.List(ctx, testAdmin)
	if err != nil || len(items) != 1 {
		t.Fatalf("expected one account, got %d err=%v", len(items), err)
	}
}
